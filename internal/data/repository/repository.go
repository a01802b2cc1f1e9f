package repository

import (
	"ticket-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie   MovieRepository
	Theater TheaterRepository
	Show    ShowRepository
	Booking BookingRepository
	Audit   AuditRepository
}

// NewRepository builds the in-memory ledger indexes. db may be nil, in which
// case booking events are not audited.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:   NewMovieRepository(log),
		Theater: NewTheaterRepository(log),
		Show:    NewShowRepository(log),
		Booking: NewBookingRepository(log),
		Audit:   NewAuditRepository(db, log),
	}
}
