package handlers

import (
	"errors"
	"net/http"

	"cinebook/services/movie"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MovieHandler exposes the catalog endpoints.
type MovieHandler struct {
	Service movie.MovieService
	Logger  *zap.Logger
}

// NewMovieHandler creates a MovieHandler.
func NewMovieHandler(svc movie.MovieService, logger *zap.Logger) *MovieHandler {
	return &MovieHandler{Service: svc, Logger: logger}
}

// ListMovies handles GET /api/movies.
func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.Service.ListMovies()
	if err != nil {
		h.Logger.Error("failed to list movies", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movies)
}

// GetMovieByID handles GET /api/movies/:id.
func (h *MovieHandler) GetMovieByID(c *gin.Context) {
	found, err := h.Service.GetMovieByID(c.Param("id"))
	if err != nil {
		var notFound *movie.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Movie not found"})
			return
		}
		h.Logger.Error("failed to get movie", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, found)
}
