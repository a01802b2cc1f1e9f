package repository

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/entity"

	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
}

type movieRepository struct {
	store *orderedStore[*entity.Movie]
	log   *zap.Logger
}

func NewMovieRepository(log *zap.Logger) MovieRepository {
	return &movieRepository{
		store: newOrderedStore[*entity.Movie](),
		log:   log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if !r.store.insert(movie.ID, movie) {
		r.log.Warn("Movie id already registered", zap.String("movie_id", movie.ID))
		return fmt.Errorf("create movie %s: %w", movie.ID, entity.ErrDuplicateID)
	}
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	movie, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("movie %s: %w", id, entity.ErrMovieNotFound)
	}
	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return r.store.filter(nil, 0, 0), nil
}
