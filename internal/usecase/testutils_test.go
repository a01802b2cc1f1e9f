package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingAudit struct {
	mu     sync.Mutex
	events []*entity.BookingEvent
	err    error
}

func (a *recordingAudit) Init(ctx context.Context) error { return nil }

func (a *recordingAudit) Record(ctx context.Context, event *entity.BookingEvent) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, event)
	return a.err
}

func (a *recordingAudit) types() []entity.BookingEventType {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]entity.BookingEventType, len(a.events))
	for i, e := range a.events {
		out[i] = e.Type
	}
	return out
}

// failingBookings lets Create fail while the rest of the index behaves normally.
type failingBookings struct {
	repository.BookingRepository
	err error
}

func (f *failingBookings) Create(ctx context.Context, booking *entity.Booking) error {
	if f.err != nil {
		return f.err
	}
	return f.BookingRepository.Create(ctx, booking)
}

type testLedger struct {
	repo    *repository.Repository
	catalog CatalogService
	booking BookingService
	audit   *recordingAudit
}

func newTestLedger(t *testing.T) *testLedger {
	t.Helper()

	log := zap.NewNop()
	repo := repository.NewRepository(nil, log)
	audit := &recordingAudit{}
	repo.Audit = audit

	l := &testLedger{
		repo:    repo,
		catalog: NewCatalogService(repo, log),
		booking: NewBookingService(repo, log),
		audit:   audit,
	}

	ctx := context.Background()
	require.NoError(t, l.catalog.AddMovie(ctx, &entity.Movie{
		Base:           entity.Base{ID: "M001"},
		Title:          "Vikram",
		Genre:          entity.GenreAction,
		RuntimeMinutes: 173,
		Language:       "Tamil",
		Cast:           []string{"Kamal Haasan"},
	}))
	require.NoError(t, l.catalog.AddTheater(ctx, &entity.Theater{
		Base:     entity.Base{ID: "T001"},
		Name:     "Pathe Cinema Chennai",
		City:     "Chennai",
		Capacity: 100,
	}))
	require.NoError(t, l.catalog.ScheduleShow(ctx, "T001", newShow("S001", 100)))
	require.NoError(t, l.catalog.ScheduleShow(ctx, "T001", newShow("S002", 100)))

	return l
}

func newShow(id string, seats int) *entity.Show {
	date := time.Date(2025, 12, 13, 0, 0, 0, 0, time.UTC)
	at := time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC)
	return entity.NewShow(id, "M001", date, at, decimal.NewFromInt(280), seats)
}

func (l *testLedger) show(t *testing.T, id string) *entity.Show {
	t.Helper()
	show, err := l.repo.Show.FindByID(context.Background(), id)
	require.NoError(t, err)
	return show
}
