package models

import "time"

// Booking status values. Bookings are created Confirmed and never
// transitioned by this service; the remaining values exist for records
// written by external tooling.
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusPending   = "Pending"
	BookingStatusCancelled = "Cancelled"
	BookingStatusExpired   = "Expired"
)

// Payment status values. Payment fields are static metadata; no gateway is
// involved.
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
	PaymentStatusFailed  = "Failed"
)

// DefaultPaymentMethod is recorded when the client supplies none.
const DefaultPaymentMethod = "Card"

// Booking represents a user's purchase of seats for a showtime.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"booking_id" json:"bookingId"` // Human-facing reference, unique-indexed
	UserID        string    `bson:"user_id" json:"userId"`
	MovieID       string    `bson:"movie_id" json:"movieId"`
	ShowtimeID    string    `bson:"showtime_id" json:"showtimeId"`
	SeatNumbers   []string  `bson:"seat_numbers" json:"seatNumbers"`
	TotalAmount   float64   `bson:"total_amount" json:"totalAmount"`
	Status        string    `bson:"status" json:"status"`
	PaymentMethod string    `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus string    `bson:"payment_status" json:"paymentStatus"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// BookingDetail is a booking with its referenced movie and showtime resolved.
type BookingDetail struct {
	Booking
	Movie    *MovieSummary    `json:"movie,omitempty"`
	Showtime *ShowtimeSummary `json:"showtime,omitempty"`
}
