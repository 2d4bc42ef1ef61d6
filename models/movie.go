package models

import "time"

// Movie represents a catalog entry. Catalog records are seeded and treated
// as immutable by this service.
type Movie struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Genre       string    `bson:"genre" json:"genre"`
	Duration    int       `bson:"duration" json:"duration"` // Runtime in minutes
	Language    string    `bson:"language" json:"language"`
	Rating      float64   `bson:"rating" json:"rating"`
	Description string    `bson:"description" json:"description"`
	PosterURL   string    `bson:"poster_url" json:"posterUrl"`
	ReleaseDate time.Time `bson:"release_date" json:"releaseDate"`
	IsActive    bool      `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// MovieSummary is the subset of movie fields embedded into booking responses.
type MovieSummary struct {
	Title     string `bson:"title" json:"title"`
	PosterURL string `bson:"poster_url" json:"posterUrl"`
	Genre     string `bson:"genre" json:"genre"`
	Duration  int    `bson:"duration" json:"duration"`
}

// ShowtimeMovieSummary is the subset of movie fields embedded into showtime responses.
type ShowtimeMovieSummary struct {
	Title     string `bson:"title" json:"title"`
	PosterURL string `bson:"poster_url" json:"posterUrl"`
	Duration  int    `bson:"duration" json:"duration"`
}
