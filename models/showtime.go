package models

import "time"

// Showtime default values applied on creation when the caller omits them.
const (
	DefaultHall       = "Hall 1"
	DefaultTotalSeats = 80
)

// Showtime represents a scheduled screening of a movie.
//
// Time is a raw display string ("06:30 PM") kept separate from Date; listings
// order by it lexically, not chronologically.
type Showtime struct {
	ID             string    `bson:"id" json:"id"`
	MovieID        string    `bson:"movie_id" json:"movieId"`
	Date           time.Time `bson:"date" json:"date"`
	Time           string    `bson:"time" json:"time"`
	Price          float64   `bson:"price" json:"price"`
	Hall           string    `bson:"hall" json:"hall"`
	TotalSeats     int       `bson:"total_seats" json:"totalSeats"`
	AvailableSeats int       `bson:"available_seats" json:"availableSeats"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// ShowtimeSummary is the subset of showtime fields embedded into booking responses.
type ShowtimeSummary struct {
	Date  time.Time `bson:"date" json:"date"`
	Time  string    `bson:"time" json:"time"`
	Hall  string    `bson:"hall" json:"hall"`
	Price float64   `bson:"price" json:"price"`
}

// ShowtimeDetail is a showtime with its referenced movie resolved.
type ShowtimeDetail struct {
	Showtime
	Movie *ShowtimeMovieSummary `json:"movie,omitempty"`
}
