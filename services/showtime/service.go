package showtime

import (
	"time"

	"cinebook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultShowtimeService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ListForMovie returns showtimes whose date is at or after the current
// moment. "Future" is purely the calendar date comparison; a show already
// running still lists until its date passes.
func (s *DefaultShowtimeService) ListForMovie(movieID string) ([]models.Showtime, error) {
	return s.Showtimes.ListByMovie(movieID, s.now())
}

// GetByID returns a showtime with the referenced movie's title, poster and
// duration embedded.
func (s *DefaultShowtimeService) GetByID(id string) (*models.ShowtimeDetail, error) {
	showtime, err := s.Showtimes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if showtime == nil {
		return nil, &NotFoundError{ID: id}
	}

	detail := &models.ShowtimeDetail{Showtime: *showtime}
	movie, err := s.Movies.GetByIDWithProjection(showtime.MovieID, bson.M{
		"title": 1, "poster_url": 1, "duration": 1,
	})
	if err != nil {
		return nil, err
	}
	if movie != nil {
		detail.Movie = &models.ShowtimeMovieSummary{
			Title:     movie.Title,
			PosterURL: movie.PosterURL,
			Duration:  movie.Duration,
		}
	}
	return detail, nil
}

// Create persists a new showtime. Omitted hall and seat counts fall back to
// the schema defaults; availableSeats starts equal to totalSeats unless the
// caller supplies it.
func (s *DefaultShowtimeService) Create(input CreateShowtimeInput) (*models.Showtime, error) {
	showtime := &models.Showtime{
		ID:             uuid.New().String(),
		MovieID:        input.MovieID,
		Date:           input.Date,
		Time:           input.Time,
		Price:          input.Price,
		Hall:           input.Hall,
		TotalSeats:     input.TotalSeats,
		AvailableSeats: input.AvailableSeats,
	}
	if showtime.Hall == "" {
		showtime.Hall = models.DefaultHall
	}
	if showtime.TotalSeats == 0 {
		showtime.TotalSeats = models.DefaultTotalSeats
	}
	if showtime.AvailableSeats == 0 {
		showtime.AvailableSeats = showtime.TotalSeats
	}

	if err := s.Showtimes.Create(showtime); err != nil {
		return nil, err
	}
	return showtime, nil
}
