package handlers

import (
	"errors"
	"net/http"

	"cinebook/services/showtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShowtimeHandler exposes the showtime endpoints.
type ShowtimeHandler struct {
	Service showtime.ShowtimeService
	Logger  *zap.Logger
}

// NewShowtimeHandler creates a ShowtimeHandler.
func NewShowtimeHandler(svc showtime.ShowtimeService, logger *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{Service: svc, Logger: logger}
}

// ListForMovie handles GET /api/showtimes/movie/:movieId.
func (h *ShowtimeHandler) ListForMovie(c *gin.Context) {
	movieID := c.Param("movieId")

	showtimes, err := h.Service.ListForMovie(movieID)
	if err != nil {
		h.Logger.Error("failed to list showtimes", zap.String("movieID", movieID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, showtimes)
}

// GetByID handles GET /api/showtimes/:id.
func (h *ShowtimeHandler) GetByID(c *gin.Context) {
	detail, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		var notFound *showtime.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Showtime not found"})
			return
		}
		h.Logger.Error("failed to get showtime", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create handles POST /api/showtimes. The route carries no authorization
// check; creation is open, matching the system it replaces.
func (h *ShowtimeHandler) Create(c *gin.Context) {
	var input showtime.CreateShowtimeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(input)
	if err != nil {
		h.Logger.Error("failed to create showtime", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}
