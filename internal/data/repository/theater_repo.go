package repository

import (
	"context"
	"fmt"
	"slices"

	"ticket-booking/internal/data/entity"

	"go.uber.org/zap"
)

type TheaterRepository interface {
	Create(ctx context.Context, theater *entity.Theater) error
	FindByID(ctx context.Context, id string) (*entity.Theater, error)
	FindAll(ctx context.Context) ([]*entity.Theater, error)

	// AddShow appends showID to the theater's ordered show list.
	AddShow(ctx context.Context, theaterID, showID string) error
}

type theaterRepository struct {
	store *orderedStore[*entity.Theater]
	log   *zap.Logger
}

func NewTheaterRepository(log *zap.Logger) TheaterRepository {
	return &theaterRepository{
		store: newOrderedStore[*entity.Theater](),
		log:   log.With(zap.String("repository", "theater")),
	}
}

func (r *theaterRepository) Create(ctx context.Context, theater *entity.Theater) error {
	stored := cloneTheater(theater)
	if !r.store.insert(stored.ID, stored) {
		r.log.Warn("Theater id already registered", zap.String("theater_id", theater.ID))
		return fmt.Errorf("create theater %s: %w", theater.ID, entity.ErrDuplicateID)
	}
	return nil
}

// FindByID returns a copy; the show list is only changed through AddShow.
func (r *theaterRepository) FindByID(ctx context.Context, id string) (*entity.Theater, error) {
	theater, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("theater %s: %w", id, entity.ErrTheaterNotFound)
	}
	return cloneTheater(theater), nil
}

func (r *theaterRepository) FindAll(ctx context.Context) ([]*entity.Theater, error) {
	theaters := r.store.filter(nil, 0, 0)
	for i, t := range theaters {
		theaters[i] = cloneTheater(t)
	}
	return theaters, nil
}

func (r *theaterRepository) AddShow(ctx context.Context, theaterID, showID string) error {
	_, ok, err := r.store.update(theaterID, func(t *entity.Theater) (*entity.Theater, error) {
		next := cloneTheater(t)
		next.ShowIDs = append(next.ShowIDs, showID)
		return next, nil
	})
	if !ok {
		return fmt.Errorf("theater %s: %w", theaterID, entity.ErrTheaterNotFound)
	}
	return err
}

func cloneTheater(t *entity.Theater) *entity.Theater {
	c := *t
	c.ShowIDs = slices.Clone(t.ShowIDs)
	return &c
}
