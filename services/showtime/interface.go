package showtime

import (
	"time"

	movieRepo "cinebook/database/repository/movie"
	showtimeRepo "cinebook/database/repository/showtime"
	"cinebook/models"
)

// CreateShowtimeInput carries the fields of a new showtime. Creation is
// unrestricted; no caller identity is checked on this path.
type CreateShowtimeInput struct {
	MovieID        string    `json:"movieId"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
	Price          float64   `json:"price"`
	Hall           string    `json:"hall,omitempty"`
	TotalSeats     int       `json:"totalSeats,omitempty"`
	AvailableSeats int       `json:"availableSeats,omitempty"`
}

// ShowtimeService defines the showtime operations exposed to the HTTP layer.
type ShowtimeService interface {
	// ListForMovie returns showtimes for a movie that have not yet elapsed,
	// ordered by date then by the raw time string.
	ListForMovie(movieID string) ([]models.Showtime, error)
	// GetByID returns a showtime with its movie subset resolved, failing
	// with NotFoundError on a miss.
	GetByID(id string) (*models.ShowtimeDetail, error)
	// Create persists a new showtime, applying schema defaults for omitted
	// fields.
	Create(input CreateShowtimeInput) (*models.Showtime, error)
}

// DefaultShowtimeService is the production implementation.
type DefaultShowtimeService struct {
	Showtimes showtimeRepo.ShowtimeRepository
	Movies    movieRepo.MovieRepository

	// Now is the clock used for the future-showtime cutoff; tests override it.
	Now func() time.Time
}
