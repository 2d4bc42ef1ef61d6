package booking

import (
	bookingRepo "cinebook/database/repository/booking"
	movieRepo "cinebook/database/repository/movie"
	showtimeRepo "cinebook/database/repository/showtime"
	"cinebook/models"
)

// CreateBookingInput carries the client-supplied booking fields. Status is
// accepted but ignored; persisted bookings are always Confirmed.
type CreateBookingInput struct {
	MovieID     string   `json:"movieId"`
	ShowtimeID  string   `json:"showtimeId"`
	SeatNumbers []string `json:"seatNumbers"`
	TotalAmount float64  `json:"totalAmount"`
	Status      string   `json:"status,omitempty"`
}

// BookingService defines the booking operations exposed to the HTTP layer.
type BookingService interface {
	// CreateBooking validates the input, persists a Confirmed booking with a
	// fresh reference, and decrements the showtime's seat counter as a
	// second, independent write.
	CreateBooking(userID string, input CreateBookingInput) (*models.Booking, error)
	// ListUserBookings returns the user's bookings newest first, with movie
	// and showtime subsets resolved.
	ListUserBookings(userID string) ([]models.BookingDetail, error)
	// GetBookingByID returns a single booking with references resolved. It
	// fails with NotFoundError on a miss and ForbiddenError when the booking
	// is owned by another user.
	GetBookingByID(id, requestingUserID string) (*models.BookingDetail, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Showtimes showtimeRepo.ShowtimeRepository
	Movies    movieRepo.MovieRepository
}
