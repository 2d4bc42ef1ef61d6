package showtimeRepo

import (
	"context"
	"fmt"
	"time"

	"cinebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoShowtimeRepo implements ShowtimeRepository using MongoDB.
type MongoShowtimeRepo struct {
	coll *mongo.Collection
}

// NewMongoShowtimeRepo creates a new instance of ShowtimeRepository using MongoDB.
func NewMongoShowtimeRepo(db *mongo.Database) ShowtimeRepository {
	repo := &MongoShowtimeRepo{coll: db.Collection("showtimes")}

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
func (r *MongoShowtimeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "movie_id", Value: 1}, {Key: "date", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves a showtime by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoShowtimeRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Showtime, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var showtime models.Showtime
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&showtime); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch showtime with id %s: %w", id, err)
	}
	return &showtime, nil
}

// GetByID retrieves a showtime by its unique ID (full document).
func (r *MongoShowtimeRepo) GetByID(id string) (*models.Showtime, error) {
	return r.GetByIDWithProjection(id, nil)
}

// ListByMovie retrieves showtimes for a movie with date at or after the
// cutoff, ordered by date ascending then by the raw time string ascending.
// The time ordering is lexical; free-text values like "09:30 PM" do not sort
// chronologically.
func (r *MongoShowtimeRepo) ListByMovie(movieID string, from time.Time) ([]models.Showtime, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"movie_id": movieID,
		"date":     bson.M{"$gte": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve showtimes for movie %s: %w", movieID, err)
	}
	defer cursor.Close(ctx)

	var showtimes []models.Showtime
	for cursor.Next(ctx) {
		var s models.Showtime
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode showtime: %w", err)
		}
		showtimes = append(showtimes, s)
	}
	return showtimes, nil
}

// Create inserts a new showtime document.
func (r *MongoShowtimeRepo) Create(showtime *models.Showtime) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	showtime.CreatedAt = now
	showtime.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, showtime)
	if err != nil {
		return fmt.Errorf("failed to create showtime: %w", err)
	}
	return nil
}

// DecrementAvailableSeats subtracts the given number of seats from a
// showtime's availability counter. No floor is enforced; the counter can go
// negative under concurrent bookings. A showtime that matches nothing is not
// an error.
func (r *MongoShowtimeRepo) DecrementAvailableSeats(id string, seats int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"available_seats": -seats},
		"$set": bson.M{"updated_at": time.Now()},
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("failed to decrement seats for showtime %s: %w", id, err)
	}
	return nil
}
