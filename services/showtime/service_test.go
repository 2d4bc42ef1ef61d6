package showtime

import (
	"testing"
	"time"

	"cinebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeShowtimeRepo struct {
	showtimes map[string]*models.Showtime
	listed    []models.Showtime
	lastMovie string
	lastFrom  time.Time
	created   []*models.Showtime
}

func (f *fakeShowtimeRepo) GetByID(id string) (*models.Showtime, error) {
	return f.showtimes[id], nil
}

func (f *fakeShowtimeRepo) GetByIDWithProjection(id string, _ bson.M) (*models.Showtime, error) {
	return f.showtimes[id], nil
}

func (f *fakeShowtimeRepo) ListByMovie(movieID string, from time.Time) ([]models.Showtime, error) {
	f.lastMovie = movieID
	f.lastFrom = from
	var out []models.Showtime
	for _, s := range f.listed {
		if s.MovieID == movieID && !s.Date.Before(from) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShowtimeRepo) Create(s *models.Showtime) error {
	f.created = append(f.created, s)
	return nil
}

func (f *fakeShowtimeRepo) DecrementAvailableSeats(string, int) error { return nil }

type fakeMovieRepo struct {
	movies map[string]*models.Movie
}

func (f *fakeMovieRepo) GetByID(id string) (*models.Movie, error) { return f.movies[id], nil }

func (f *fakeMovieRepo) GetByIDWithProjection(id string, _ bson.M) (*models.Movie, error) {
	return f.movies[id], nil
}

func (f *fakeMovieRepo) GetAllActive() ([]models.Movie, error) { return nil, nil }
func (f *fakeMovieRepo) Create(*models.Movie) error            { return nil }

func newService() (*DefaultShowtimeService, *fakeShowtimeRepo, *fakeMovieRepo) {
	showtimes := &fakeShowtimeRepo{showtimes: map[string]*models.Showtime{}}
	movies := &fakeMovieRepo{movies: map[string]*models.Movie{}}
	svc := &DefaultShowtimeService{Showtimes: showtimes, Movies: movies}
	return svc, showtimes, movies
}

func TestListForMovieFiltersElapsedShowtimes(t *testing.T) {
	svc, showtimes, _ := newService()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return now }

	showtimes.listed = []models.Showtime{
		{ID: "past", MovieID: "movie-1", Date: now.AddDate(0, 0, -1)},
		{ID: "future", MovieID: "movie-1", Date: now.AddDate(0, 0, 1)},
	}

	result, err := svc.ListForMovie("movie-1")
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "future", result[0].ID)
	// The cutoff passed to the store is the call-time clock.
	assert.Equal(t, now, showtimes.lastFrom)
	assert.Equal(t, "movie-1", showtimes.lastMovie)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.GetByID("missing")

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGetByIDResolvesMovie(t *testing.T) {
	svc, showtimes, movies := newService()
	showtimes.showtimes["s1"] = &models.Showtime{ID: "s1", MovieID: "movie-1", Time: "10:00 AM"}
	movies.movies["movie-1"] = &models.Movie{
		ID: "movie-1", Title: "Pocahontas", PosterURL: "assets/posters/movie2.png", Duration: 150,
	}

	detail, err := svc.GetByID("s1")
	require.NoError(t, err)

	require.NotNil(t, detail.Movie)
	assert.Equal(t, "Pocahontas", detail.Movie.Title)
	assert.Equal(t, 150, detail.Movie.Duration)
}

func TestCreateAppliesSchemaDefaults(t *testing.T) {
	svc, showtimes, _ := newService()

	created, err := svc.Create(CreateShowtimeInput{
		MovieID: "movie-1",
		Date:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:    "06:00 PM",
		Price:   400,
	})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultHall, created.Hall)
	assert.Equal(t, models.DefaultTotalSeats, created.TotalSeats)
	// Availability starts equal to capacity.
	assert.Equal(t, created.TotalSeats, created.AvailableSeats)
	assert.NotEmpty(t, created.ID)
	require.Len(t, showtimes.created, 1)
}

func TestCreateKeepsExplicitFields(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.Create(CreateShowtimeInput{
		MovieID:        "movie-1",
		Date:           time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:           "09:30 PM",
		Price:          200,
		Hall:           "Premium Hall",
		TotalSeats:     50,
		AvailableSeats: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, "Premium Hall", created.Hall)
	assert.Equal(t, 50, created.TotalSeats)
	assert.Equal(t, 45, created.AvailableSeats)
}
