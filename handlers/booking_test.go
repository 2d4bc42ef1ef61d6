package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cinebook/models"
	"cinebook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	createFn func(userID string, input booking.CreateBookingInput) (*models.Booking, error)
	listFn   func(userID string) ([]models.BookingDetail, error)
	getFn    func(id, userID string) (*models.BookingDetail, error)
}

func (s *stubBookingService) CreateBooking(userID string, input booking.CreateBookingInput) (*models.Booking, error) {
	return s.createFn(userID, input)
}

func (s *stubBookingService) ListUserBookings(userID string) ([]models.BookingDetail, error) {
	return s.listFn(userID)
}

func (s *stubBookingService) GetBookingByID(id, userID string) (*models.BookingDetail, error) {
	return s.getFn(id, userID)
}

// setUser mimics the auth middleware for tests.
func setUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func newBookingRouter(svc booking.BookingService, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, zap.NewNop())
	api := r.Group("/api/bookings")
	if authed {
		api.Use(setUser("user-1"))
	}
	api.POST("", h.CreateBooking)
	api.GET("/my-bookings", h.ListMyBookings)
	api.GET("/:id", h.GetBookingByID)
	return r
}

func TestCreateBookingEndpoint(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(userID string, input booking.CreateBookingInput) (*models.Booking, error) {
			return &models.Booking{
				ID:          "b1",
				BookingID:   "TB1756380000000123",
				UserID:      userID,
				MovieID:     input.MovieID,
				ShowtimeID:  input.ShowtimeID,
				SeatNumbers: input.SeatNumbers,
				TotalAmount: input.TotalAmount,
				Status:      models.BookingStatusConfirmed,
			}, nil
		},
	}
	r := newBookingRouter(svc, true)

	body := []byte(`{"movieId":"movie-1","showtimeId":"showtime-1","seatNumbers":["A1","A2"],"totalAmount":800}`)
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.BookingStatusConfirmed, created.Status)
	assert.Equal(t, "user-1", created.UserID)
}

func TestCreateBookingEndpointValidation(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(string, booking.CreateBookingInput) (*models.Booking, error) {
			return nil, booking.NewValidationError("movieId is required")
		},
	}
	r := newBookingRouter(svc, true)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All fields are required")
}

func TestCreateBookingEndpointStoreError(t *testing.T) {
	svc := &stubBookingService{
		createFn: func(string, booking.CreateBookingInput) (*models.Booking, error) {
			return nil, assert.AnError
		},
	}
	r := newBookingRouter(svc, true)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{"movieId":"m"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateBookingEndpointUnauthenticated(t *testing.T) {
	svc := &stubBookingService{}
	r := newBookingRouter(svc, false)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListMyBookingsEndpoint(t *testing.T) {
	svc := &stubBookingService{
		listFn: func(userID string) ([]models.BookingDetail, error) {
			return []models.BookingDetail{
				{Booking: models.Booking{ID: "b2", UserID: userID}},
				{Booking: models.Booking{ID: "b1", UserID: userID}},
			}, nil
		},
	}
	r := newBookingRouter(svc, true)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/my-bookings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var details []models.BookingDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &details))
	require.Len(t, details, 2)
	assert.Equal(t, "b2", details[0].ID)
}

func TestGetBookingEndpointNotFound(t *testing.T) {
	svc := &stubBookingService{
		getFn: func(id, userID string) (*models.BookingDetail, error) {
			return nil, &booking.NotFoundError{Resource: "booking", ID: id}
		},
	}
	r := newBookingRouter(svc, true)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBookingEndpointForbidden(t *testing.T) {
	svc := &stubBookingService{
		getFn: func(id, userID string) (*models.BookingDetail, error) {
			return nil, &booking.ForbiddenError{Message: "booking does not belong to the requesting user"}
		},
	}
	r := newBookingRouter(svc, true)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/b1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
