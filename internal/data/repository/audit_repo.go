package repository

import (
	"context"
	"fmt"

	"ticket-booking/internal/data/entity"
	"ticket-booking/pkg/database"

	"go.uber.org/zap"
)

// AuditRepository stores booking state changes append-only. Nothing is read
// back: the booking ledger itself lives in memory.
type AuditRepository interface {
	Init(ctx context.Context) error
	Record(ctx context.Context, event *entity.BookingEvent) error
}

type auditRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAuditRepository(db database.PgxIface, log *zap.Logger) AuditRepository {
	if db == nil {
		return noopAuditRepository{}
	}
	return &auditRepository{
		db:  db,
		log: log.With(zap.String("repository", "audit")),
	}
}

func (r *auditRepository) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS booking_events (
			id           UUID PRIMARY KEY,
			event_type   TEXT NOT NULL,
			booking_id   TEXT NOT NULL,
			show_id      TEXT NOT NULL,
			seats        INTEGER[] NOT NULL,
			phone_digest TEXT NOT NULL,
			occurred_at  TIMESTAMPTZ NOT NULL
		)
	`

	if _, err := r.db.Exec(ctx, query); err != nil {
		r.log.Error("Failed to create booking_events table", zap.Error(err))
		return fmt.Errorf("init audit schema: %w", err)
	}
	return nil
}

func (r *auditRepository) Record(ctx context.Context, event *entity.BookingEvent) error {
	query := `
		INSERT INTO booking_events (id, event_type, booking_id, show_id, seats, phone_digest, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	seats := make([]int32, len(event.Seats))
	for i, s := range event.Seats {
		seats[i] = int32(s)
	}

	_, err := r.db.Exec(ctx, query,
		event.ID,
		string(event.Type),
		event.BookingID,
		event.ShowID,
		seats,
		event.PhoneDigest,
		event.OccurredAt,
	)
	if err != nil {
		r.log.Error("Failed to record booking event",
			zap.Error(err),
			zap.String("event_type", string(event.Type)),
			zap.String("booking_id", event.BookingID),
		)
		return fmt.Errorf("record %s for booking %s: %w", event.Type, event.BookingID, err)
	}

	return nil
}

type noopAuditRepository struct{}

func (noopAuditRepository) Init(ctx context.Context) error { return nil }

func (noopAuditRepository) Record(ctx context.Context, event *entity.BookingEvent) error {
	return nil
}
