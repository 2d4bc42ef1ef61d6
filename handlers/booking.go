package handlers

import (
	"errors"
	"net/http"

	"cinebook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// requestingUserID reads the verified user identifier set by the auth middleware.
func requestingUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(userID, input)
	if err != nil {
		var valErr *booking.ValidationError
		if errors.As(err, &valErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}
		h.Logger.Error("failed to create booking", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListMyBookings handles GET /api/bookings/my-bookings.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	bookings, err := h.Service.ListUserBookings(userID)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	detail, err := h.Service.GetBookingByID(c.Param("id"), userID)
	if err != nil {
		var notFound *booking.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
			return
		}
		var forbidden *booking.ForbiddenError
		if errors.As(err, &forbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
			return
		}
		h.Logger.Error("failed to get booking", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}
