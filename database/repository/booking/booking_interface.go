package bookingRepo

import (
	"cinebook/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record. The bookings collection carries a
	// unique index on booking_id; a reference collision surfaces as a store
	// error from this call.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.Booking, error)
	// ListByUser retrieves all bookings for a user, newest first.
	ListByUser(userID string) ([]models.Booking, error)
}
