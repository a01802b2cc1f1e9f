package repository

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"ticket-booking/internal/data/entity"

	"go.uber.org/zap"
)

type BookingRepository interface {
	// NextID mints a booking id that is never reused for the process lifetime.
	NextID(ctx context.Context) (string, uint64)
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindAll(ctx context.Context, offset, limit int) ([]*entity.Booking, error)
	CountAll(ctx context.Context) (int64, error)

	// MarkCancelled moves a confirmed booking to cancelled and returns the
	// updated copy. Exactly one caller wins for a given booking.
	MarkCancelled(ctx context.Context, id string, at time.Time) (*entity.Booking, error)
}

type bookingRepository struct {
	store *orderedStore[*entity.Booking]
	seq   atomic.Uint64
	log   *zap.Logger
}

func NewBookingRepository(log *zap.Logger) BookingRepository {
	return &bookingRepository{
		store: newOrderedStore[*entity.Booking](),
		log:   log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) NextID(ctx context.Context) (string, uint64) {
	seq := r.seq.Add(1)
	return fmt.Sprintf("B%d", seq), seq
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if !r.store.insert(booking.ID, booking.Clone()) {
		r.log.Error("Booking id collision", zap.String("booking_id", booking.ID))
		return fmt.Errorf("create booking %s: %w", booking.ID, entity.ErrDuplicateID)
	}
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	booking, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, entity.ErrBookingNotFound)
	}
	return booking.Clone(), nil
}

func (r *bookingRepository) FindAll(ctx context.Context, offset, limit int) ([]*entity.Booking, error) {
	bookings := r.store.filter(nil, offset, limit)
	for i, b := range bookings {
		bookings[i] = b.Clone()
	}
	return bookings, nil
}

func (r *bookingRepository) CountAll(ctx context.Context) (int64, error) {
	return int64(r.store.len()), nil
}

func (r *bookingRepository) MarkCancelled(ctx context.Context, id string, at time.Time) (*entity.Booking, error) {
	updated, ok, err := r.store.update(id, func(b *entity.Booking) (*entity.Booking, error) {
		if b.Status == entity.BookingStatusCancelled {
			return nil, fmt.Errorf("booking %s: %w", id, entity.ErrAlreadyCancelled)
		}
		next := b.Clone()
		next.Status = entity.BookingStatusCancelled
		next.CancelledAt = &at
		return next, nil
	})
	if !ok {
		return nil, fmt.Errorf("booking %s: %w", id, entity.ErrBookingNotFound)
	}
	if err != nil {
		return nil, err
	}
	return updated.Clone(), nil
}
