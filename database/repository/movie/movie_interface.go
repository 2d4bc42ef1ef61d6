package movieRepo

import (
	"cinebook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// MovieRepository defines methods for movie catalog data access.
type MovieRepository interface {
	// GetByID retrieves a movie by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Movie, error)
	// GetAllActive retrieves all active catalog entries.
	GetAllActive() ([]models.Movie, error)
	// Create inserts a new movie record.
	Create(movie *models.Movie) error
	// GetByIDWithProjection retrieves a movie by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Movie, error)
}
