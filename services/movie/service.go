package movie

import (
	"context"
	"encoding/json"
	"time"

	movieRepo "cinebook/database/repository/movie"
	"cinebook/models"
	"cinebook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// catalogCacheTTL bounds staleness of the cached movie list. The catalog is
// seed-time data, so there is no invalidation path.
const catalogCacheTTL = 60 * time.Second

const catalogCacheKey = utils.CatalogCachePrefix + "movies"

// MovieService defines the catalog operations exposed to the HTTP layer.
type MovieService interface {
	// ListMovies returns all active catalog entries.
	ListMovies() ([]models.Movie, error)
	// GetMovieByID returns a single movie, failing with NotFoundError on a miss.
	GetMovieByID(id string) (*models.Movie, error)
}

// DefaultMovieService is the production implementation. Cache is optional;
// when nil every list goes to the store.
type DefaultMovieService struct {
	Repo  movieRepo.MovieRepository
	Cache *redis.Client
}

// ListMovies returns active movies, served from the redis cache when a fresh
// entry exists. Cache failures are logged and fall through to the store.
func (s *DefaultMovieService) ListMovies() ([]models.Movie, error) {
	ctx := context.Background()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, catalogCacheKey).Result()
		if err == nil {
			var movies []models.Movie
			if err := json.Unmarshal([]byte(cached), &movies); err == nil {
				return movies, nil
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("catalog cache read failed", zap.Error(err))
		}
	}

	movies, err := s.Repo.GetAllActive()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(movies); err == nil {
			if err := s.Cache.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return movies, nil
}

// GetMovieByID returns a single movie by its unique ID.
func (s *DefaultMovieService) GetMovieByID(id string) (*models.Movie, error) {
	movie, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, &NotFoundError{ID: id}
	}
	return movie, nil
}
