package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingService_Walkthrough(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	show := l.show(t, "S001")

	rajesh, err := l.booking.CreateBooking(ctx, "S001", "Rajesh Kumar", "+91-9876543210", []int{5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, "B1", rajesh.ID)
	assert.Equal(t, entity.BookingStatusConfirmed, rajesh.Status)
	assert.Equal(t, 97, show.AvailableCount())

	_, err = l.booking.CreateBooking(ctx, "S001", "Priya Singh", "+91-9876543211", []int{5, 6, 7})
	require.ErrorIs(t, err, entity.ErrSeatsUnavailable)
	assert.Equal(t, 97, show.AvailableCount())

	priya, err := l.booking.CreateBooking(ctx, "S001", "Priya Singh", "+91-9876543211", []int{10, 11, 12})
	require.NoError(t, err)
	assert.Equal(t, "B2", priya.ID)
	assert.Equal(t, 94, show.AvailableCount())

	require.NoError(t, l.booking.CancelBooking(ctx, rajesh.ID))
	assert.Equal(t, 97, show.AvailableCount())

	cancelled, ok := l.booking.FindBooking(ctx, rajesh.ID)
	require.True(t, ok)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, []int{5, 6, 7}, cancelled.Seats)
	assert.NotNil(t, cancelled.CancelledAt)

	again, err := l.booking.CreateBooking(ctx, "S001", "Priya Singh", "+91-9876543211", []int{5, 6, 7})
	require.NoError(t, err)
	assert.Equal(t, "B3", again.ID)
	assert.Equal(t, 91, show.AvailableCount())

	assert.Equal(t, []entity.BookingEventType{
		entity.BookingEventCreated,
		entity.BookingEventCreated,
		entity.BookingEventCancelled,
		entity.BookingEventCreated,
	}, l.audit.types())
}

func TestBookingService_CreateBookingErrors(t *testing.T) {
	tests := []struct {
		name    string
		showID  string
		cname   string
		phone   string
		seats   []int
		wantErr error
	}{
		{"unknown show", "S404", "Rajesh Kumar", "+91-1", []int{1}, entity.ErrShowNotFound},
		{"blank name", "S001", "   ", "+91-1", []int{1}, entity.ErrInvalidCustomer},
		{"blank phone", "S001", "Rajesh Kumar", "", []int{1}, entity.ErrInvalidCustomer},
		{"no seats", "S001", "Rajesh Kumar", "+91-1", nil, entity.ErrInvalidSeat},
		{"seat zero", "S001", "Rajesh Kumar", "+91-1", []int{0, 1}, entity.ErrInvalidSeat},
		{"seat above range", "S001", "Rajesh Kumar", "+91-1", []int{100, 101}, entity.ErrInvalidSeat},
		{"already held", "S001", "Rajesh Kumar", "+91-1", []int{49, 50}, entity.ErrSeatsUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)
			ctx := context.Background()
			_, err := l.booking.CreateBooking(ctx, "S001", "Holder", "+91-0", []int{50})
			require.NoError(t, err)
			show := l.show(t, "S001")

			_, err = l.booking.CreateBooking(ctx, tt.showID, tt.cname, tt.phone, tt.seats)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 99, show.AvailableCount(), "failed requests must not change seat state")
			assert.Equal(t, []int{50}, show.ClaimedSeats())
			total, err := l.repo.Booking.CountAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(1), total, "failed requests must not index a booking")
		})
	}
}

func TestBookingService_ConflictReportsSeats(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	_, err := l.booking.CreateBooking(ctx, "S001", "Rajesh Kumar", "+91-1", []int{5, 6, 7})
	require.NoError(t, err)

	_, err = l.booking.CreateBooking(ctx, "S001", "Priya Singh", "+91-2", []int{4, 5, 7, 8})

	var conflict *entity.SeatConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, []int{5, 7}, conflict.Seats)
	assert.False(t, l.show(t, "S001").IsClaimed(4))
	assert.False(t, l.show(t, "S001").IsClaimed(8))
}

func TestBookingService_SeatsAreNormalized(t *testing.T) {
	l := newTestLedger(t)

	booking, err := l.booking.CreateBooking(context.Background(), "S001", " Rajesh Kumar ", "+91-1", []int{7, 5, 6, 5})
	require.NoError(t, err)

	assert.Equal(t, []int{5, 6, 7}, booking.Seats)
	assert.Equal(t, "Rajesh Kumar", booking.CustomerName)
	assert.Equal(t, 97, l.show(t, "S001").AvailableCount())
}

func TestBookingService_CancelTwice(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	show := l.show(t, "S001")

	first, err := l.booking.CreateBooking(ctx, "S001", "Rajesh Kumar", "+91-1", []int{1, 2})
	require.NoError(t, err)
	require.NoError(t, l.booking.CancelBooking(ctx, first.ID))

	// someone else takes seat 1 after the cancel
	_, err = l.booking.CreateBooking(ctx, "S001", "Priya Singh", "+91-2", []int{1})
	require.NoError(t, err)

	err = l.booking.CancelBooking(ctx, first.ID)
	require.ErrorIs(t, err, entity.ErrAlreadyCancelled)
	assert.True(t, show.IsClaimed(1), "second cancel must not release seats")
	assert.Equal(t, 99, show.AvailableCount())
}

func TestBookingService_CancelUnknown(t *testing.T) {
	l := newTestLedger(t)
	require.ErrorIs(t, l.booking.CancelBooking(context.Background(), "B42"), entity.ErrBookingNotFound)
}

func TestBookingService_FindBookingMissing(t *testing.T) {
	l := newTestLedger(t)
	booking, ok := l.booking.FindBooking(context.Background(), "B1")
	assert.False(t, ok)
	assert.Nil(t, booking)
}

func TestBookingService_ShowsAreIndependent(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	_, err := l.booking.CreateBooking(ctx, "S001", "Rajesh Kumar", "+91-1", []int{5})
	require.NoError(t, err)
	_, err = l.booking.CreateBooking(ctx, "S002", "Priya Singh", "+91-2", []int{5})
	require.NoError(t, err)

	assert.Equal(t, 99, l.show(t, "S001").AvailableCount())
	assert.Equal(t, 99, l.show(t, "S002").AvailableCount())
}

func TestBookingService_IndexFailureReleasesSeats(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	bookings := &failingBookings{BookingRepository: l.repo.Booking, err: errors.New("index unavailable")}
	l.repo.Booking = bookings
	show := l.show(t, "S001")

	_, err := l.booking.CreateBooking(ctx, "S001", "Rajesh Kumar", "+91-1", []int{1, 2})
	require.Error(t, err)
	assert.Equal(t, 100, show.AvailableCount())
	assert.False(t, show.IsClaimed(1))
	assert.Empty(t, l.audit.events)

	total, err := l.repo.Booking.CountAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	// the same seats are claimable once indexing works again
	bookings.err = nil
	booking, err := l.booking.CreateBooking(ctx, "S001", "Rajesh Kumar", "+91-1", []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, booking.Seats)
	assert.Equal(t, 98, show.AvailableCount())
}

func TestBookingService_AuditFailureDoesNotFailBooking(t *testing.T) {
	l := newTestLedger(t)
	l.audit.err = errors.New("database unavailable")

	booking, err := l.booking.CreateBooking(context.Background(), "S001", "Rajesh Kumar", "+91-9876543210", []int{1})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)

	require.Len(t, l.audit.events, 1)
	assert.NotContains(t, l.audit.events[0].PhoneDigest, "9876543210")
}

func TestBookingService_ConcurrentClaimsNeverOverlap(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			// every request overlaps its neighbour on one seat
			seats := []int{i + 1, i + 2}
			_, err := l.booking.CreateBooking(ctx, "S001", fmt.Sprintf("Customer %d", i), "+91-1", seats)
			if err != nil {
				assert.ErrorIs(t, err, entity.ErrSeatsUnavailable)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	bookings, err := l.repo.Booking.FindAll(ctx, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, bookings)

	held := make(map[int]string)
	for _, b := range bookings {
		for _, seat := range b.Seats {
			owner, taken := held[seat]
			require.False(t, taken, "seat %d held by %s and %s", seat, owner, b.ID)
			held[seat] = b.ID
		}
	}
	assert.Equal(t, 100-len(held), l.show(t, "S001").AvailableCount())
}

func TestBookingService_ConcurrentCancelReleasesOnce(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	booking, err := l.booking.CreateBooking(ctx, "S001", "Rajesh Kumar", "+91-1", []int{1, 2, 3})
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.booking.CancelBooking(ctx, booking.ID); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, entity.ErrAlreadyCancelled)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 100, l.show(t, "S001").AvailableCount())
}

func TestBookingService_GetBookingReceipt(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	booking, err := l.booking.CreateBooking(ctx, "S001", "Rajesh Kumar", "+91-9876543210", []int{5, 6, 7})
	require.NoError(t, err)

	receipt, err := l.booking.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vikram", receipt.MovieTitle)
	assert.Equal(t, "Pathe Cinema Chennai", receipt.TheaterName)
	assert.Equal(t, "2025-12-13", receipt.ShowDate)
	assert.Equal(t, "18:00", receipt.ShowTime)
	assert.Equal(t, "280.00", receipt.TicketPrice)
	assert.Equal(t, "840.00", receipt.TotalAmount)
	assert.Equal(t, entity.BookingStatusConfirmed, receipt.Status)

	_, err = l.booking.GetBooking(ctx, "B99")
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)
}

func TestBookingService_ListBookings(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		_, err := l.booking.CreateBooking(ctx, "S001", "Rajesh Kumar", "+91-1", []int{i})
		require.NoError(t, err)
	}

	page, err := l.booking.ListBookings(ctx, &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, "B3", page.Data[0].ID)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}
