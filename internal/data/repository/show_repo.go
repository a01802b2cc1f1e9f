package repository

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/entity"

	"go.uber.org/zap"
)

// ShowRepository hands out the live *entity.Show: a show guards its own seat
// state, and its schedule fields do not change once it is indexed.
type ShowRepository interface {
	Create(ctx context.Context, show *entity.Show) error
	FindByID(ctx context.Context, id string) (*entity.Show, error)
	FindByMovieID(ctx context.Context, movieID string) ([]*entity.Show, error)
	FindByIDs(ctx context.Context, ids []string) ([]*entity.Show, error)
	FindAll(ctx context.Context) ([]*entity.Show, error)
}

type showRepository struct {
	store *orderedStore[*entity.Show]
	log   *zap.Logger
}

func NewShowRepository(log *zap.Logger) ShowRepository {
	return &showRepository{
		store: newOrderedStore[*entity.Show](),
		log:   log.With(zap.String("repository", "show")),
	}
}

func (r *showRepository) Create(ctx context.Context, show *entity.Show) error {
	if !r.store.insert(show.ID, show) {
		r.log.Warn("Show id already registered", zap.String("show_id", show.ID))
		return fmt.Errorf("create show %s: %w", show.ID, entity.ErrDuplicateID)
	}
	return nil
}

func (r *showRepository) FindByID(ctx context.Context, id string) (*entity.Show, error) {
	show, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("show %s: %w", id, entity.ErrShowNotFound)
	}
	return show, nil
}

// FindByMovieID returns the movie's shows in the order they were scheduled.
func (r *showRepository) FindByMovieID(ctx context.Context, movieID string) ([]*entity.Show, error) {
	return r.store.filter(func(s *entity.Show) bool {
		return s.MovieID == movieID
	}, 0, 0), nil
}

func (r *showRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Show, error) {
	shows := make([]*entity.Show, 0, len(ids))
	for _, id := range ids {
		show, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		shows = append(shows, show)
	}
	return shows, nil
}

func (r *showRepository) FindAll(ctx context.Context) ([]*entity.Show, error) {
	return r.store.filter(nil, 0, 0), nil
}
