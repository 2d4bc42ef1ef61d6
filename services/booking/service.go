package booking

import (
	"fmt"
	"math/rand"
	"time"

	"cinebook/models"
	"cinebook/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// bookingRefPrefix is the fixed prefix of human-facing booking references.
const bookingRefPrefix = "TB"

// newBookingRef builds a reference from the current epoch-millisecond
// timestamp and a random 0-999 suffix. Two calls in the same millisecond can
// collide; the unique index on booking_id is what rejects the duplicate.
func newBookingRef() string {
	return fmt.Sprintf("%s%d%d", bookingRefPrefix, time.Now().UnixMilli(), rand.Intn(1000))
}

// CreateBooking validates required fields, persists a Confirmed booking, then
// decrements the showtime seat counter. The two writes are not atomic: when
// the decrement fails the booking is already committed and stays, and the
// error from the decrement is what the caller sees.
func (s *DefaultBookingService) CreateBooking(userID string, input CreateBookingInput) (*models.Booking, error) {
	if input.MovieID == "" {
		return nil, NewValidationError("movieId is required")
	}
	if input.ShowtimeID == "" {
		return nil, NewValidationError("showtimeId is required")
	}
	if input.SeatNumbers == nil {
		return nil, NewValidationError("seatNumbers is required")
	}
	if input.TotalAmount == 0 {
		return nil, NewValidationError("totalAmount is required")
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		BookingID:     newBookingRef(),
		UserID:        userID,
		MovieID:       input.MovieID,
		ShowtimeID:    input.ShowtimeID,
		SeatNumbers:   input.SeatNumbers,
		TotalAmount:   input.TotalAmount,
		Status:        models.BookingStatusConfirmed,
		PaymentMethod: models.DefaultPaymentMethod,
		PaymentStatus: models.PaymentStatusPaid,
	}

	if err := s.Bookings.Create(booking); err != nil {
		return nil, err
	}

	if err := s.Showtimes.DecrementAvailableSeats(input.ShowtimeID, len(input.SeatNumbers)); err != nil {
		utils.GetLogger().Error("seat decrement failed after booking insert",
			zap.String("bookingId", booking.BookingID),
			zap.String("showtimeId", input.ShowtimeID),
			zap.Error(err))
		return nil, err
	}

	return booking, nil
}

// ListUserBookings returns the user's bookings newest first, each with its
// movie and showtime subsets resolved by explicit fetches.
func (s *DefaultBookingService) ListUserBookings(userID string) ([]models.BookingDetail, error) {
	bookings, err := s.Bookings.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		detail, err := s.resolveReferences(b)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// GetBookingByID returns a single booking with references resolved, enforcing
// ownership by string comparison of user identifiers.
func (s *DefaultBookingService) GetBookingByID(id, requestingUserID string) (*models.BookingDetail, error) {
	booking, err := s.Bookings.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &NotFoundError{Resource: "booking", ID: id}
	}
	if booking.UserID != requestingUserID {
		return nil, &ForbiddenError{Message: "booking does not belong to the requesting user"}
	}
	return s.resolveReferences(*booking)
}

// resolveReferences embeds the movie and showtime field subsets into a
// booking. A dangling reference resolves to a nil summary rather than an
// error, matching the populate semantics of the store.
func (s *DefaultBookingService) resolveReferences(b models.Booking) (*models.BookingDetail, error) {
	detail := &models.BookingDetail{Booking: b}

	movie, err := s.Movies.GetByIDWithProjection(b.MovieID, bson.M{
		"title": 1, "poster_url": 1, "genre": 1, "duration": 1,
	})
	if err != nil {
		return nil, err
	}
	if movie != nil {
		detail.Movie = &models.MovieSummary{
			Title:     movie.Title,
			PosterURL: movie.PosterURL,
			Genre:     movie.Genre,
			Duration:  movie.Duration,
		}
	}

	showtime, err := s.Showtimes.GetByIDWithProjection(b.ShowtimeID, bson.M{
		"date": 1, "time": 1, "hall": 1, "price": 1,
	})
	if err != nil {
		return nil, err
	}
	if showtime != nil {
		detail.Showtime = &models.ShowtimeSummary{
			Date:  showtime.Date,
			Time:  showtime.Time,
			Hall:  showtime.Hall,
			Price: showtime.Price,
		}
	}

	return detail, nil
}
