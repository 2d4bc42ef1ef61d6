package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinebook/models"
	"cinebook/services/showtime"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubShowtimeService struct {
	listFn   func(movieID string) ([]models.Showtime, error)
	getFn    func(id string) (*models.ShowtimeDetail, error)
	createFn func(input showtime.CreateShowtimeInput) (*models.Showtime, error)
}

func (s *stubShowtimeService) ListForMovie(movieID string) ([]models.Showtime, error) {
	return s.listFn(movieID)
}

func (s *stubShowtimeService) GetByID(id string) (*models.ShowtimeDetail, error) {
	return s.getFn(id)
}

func (s *stubShowtimeService) Create(input showtime.CreateShowtimeInput) (*models.Showtime, error) {
	return s.createFn(input)
}

func newShowtimeRouter(svc showtime.ShowtimeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewShowtimeHandler(svc, zap.NewNop())
	api := r.Group("/api/showtimes")
	api.GET("/movie/:movieId", h.ListForMovie)
	api.GET("/:id", h.GetByID)
	api.POST("", h.Create)
	return r
}

func TestListShowtimesForMovieEndpoint(t *testing.T) {
	svc := &stubShowtimeService{
		listFn: func(movieID string) ([]models.Showtime, error) {
			return []models.Showtime{
				{ID: "s1", MovieID: movieID, Time: "10:00 AM"},
				{ID: "s2", MovieID: movieID, Time: "02:30 PM"},
			}, nil
		},
	}
	r := newShowtimeRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/showtimes/movie/movie-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var showtimes []models.Showtime
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &showtimes))
	require.Len(t, showtimes, 2)
	assert.Equal(t, "movie-1", showtimes[0].MovieID)
}

func TestGetShowtimeEndpointNotFound(t *testing.T) {
	svc := &stubShowtimeService{
		getFn: func(id string) (*models.ShowtimeDetail, error) {
			return nil, &showtime.NotFoundError{ID: id}
		},
	}
	r := newShowtimeRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/showtimes/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Showtime not found")
}

func TestCreateShowtimeEndpoint(t *testing.T) {
	svc := &stubShowtimeService{
		createFn: func(input showtime.CreateShowtimeInput) (*models.Showtime, error) {
			return &models.Showtime{
				ID:             "s1",
				MovieID:        input.MovieID,
				Date:           input.Date,
				Time:           input.Time,
				Price:          input.Price,
				Hall:           models.DefaultHall,
				TotalSeats:     models.DefaultTotalSeats,
				AvailableSeats: models.DefaultTotalSeats,
			}, nil
		},
	}
	r := newShowtimeRouter(svc)

	payload := map[string]interface{}{
		"movieId": "movie-1",
		"date":    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		"time":    "06:00 PM",
		"price":   400,
	}
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/showtimes", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Showtime
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.DefaultHall, created.Hall)
	assert.Equal(t, models.DefaultTotalSeats, created.AvailableSeats)
}

func TestCreateShowtimeEndpointBadJSON(t *testing.T) {
	svc := &stubShowtimeService{}
	r := newShowtimeRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/showtimes", bytes.NewBufferString(`{not json`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
