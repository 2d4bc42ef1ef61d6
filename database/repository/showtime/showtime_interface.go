package showtimeRepo

import (
	"time"

	"cinebook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ShowtimeRepository defines methods for showtime data access.
type ShowtimeRepository interface {
	// GetByID retrieves a showtime by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Showtime, error)
	// ListByMovie retrieves showtimes for a movie whose date is at or after
	// the given cutoff, ordered by date ascending then by the raw time
	// string ascending.
	ListByMovie(movieID string, from time.Time) ([]models.Showtime, error)
	// Create inserts a new showtime record.
	Create(showtime *models.Showtime) error
	// DecrementAvailableSeats subtracts seats from a showtime's availability
	// counter. A missing showtime is not an error; the write simply matches
	// nothing.
	DecrementAvailableSeats(id string, seats int) error
	// GetByIDWithProjection retrieves a showtime by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Showtime, error)
}
