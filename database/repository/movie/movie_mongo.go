package movieRepo

import (
	"context"
	"fmt"
	"time"

	"cinebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMovieRepo implements MovieRepository using MongoDB.
type MongoMovieRepo struct {
	coll *mongo.Collection
}

// NewMongoMovieRepo creates a new instance of MovieRepository using MongoDB.
func NewMongoMovieRepo(db *mongo.Database) MovieRepository {
	repo := &MongoMovieRepo{coll: db.Collection("movies")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoMovieRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves a movie by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoMovieRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Movie, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var movie models.Movie
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&movie); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch movie with id %s: %w", id, err)
	}
	return &movie, nil
}

// GetByID retrieves a movie by its unique ID (full document).
func (r *MongoMovieRepo) GetByID(id string) (*models.Movie, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetAllActive retrieves all active catalog entries.
func (r *MongoMovieRepo) GetAllActive() ([]models.Movie, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve movies: %w", err)
	}
	defer cursor.Close(ctx)

	var movies []models.Movie
	for cursor.Next(ctx) {
		var m models.Movie
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode movie: %w", err)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

// Create inserts a new movie document.
func (r *MongoMovieRepo) Create(movie *models.Movie) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, movie)
	if err != nil {
		return fmt.Errorf("failed to create movie: %w", err)
	}
	return nil
}
