package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/request"
	"ticket-booking/internal/dto/response"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

// BookingService is the reservation ledger. It resolves shows, lets the show
// decide seat claims, and indexes the resulting bookings by id.
type BookingService interface {
	CreateBooking(ctx context.Context, showID, customerName, customerPhone string, seats []int) (*entity.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	FindBooking(ctx context.Context, bookingID string) (*entity.Booking, bool)

	// Receipt views
	GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, showID, customerName, customerPhone string, seats []int) (*entity.Booking, error) {
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		s.log.Warn("Create booking for unknown show", zap.String("show_id", showID))
		return nil, err
	}

	name := strings.TrimSpace(customerName)
	phone := strings.TrimSpace(customerPhone)
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", entity.ErrInvalidCustomer)
	}
	if phone == "" {
		return nil, fmt.Errorf("customer phone is required: %w", entity.ErrInvalidCustomer)
	}

	seats = entity.NormalizeSeats(seats)
	if err := show.TryClaim(seats); err != nil {
		s.log.Warn("Seat claim rejected",
			zap.Error(err),
			zap.String("show_id", showID),
			zap.Ints("seats", seats),
		)
		return nil, err
	}

	id, seq := s.repo.Booking.NextID(ctx)
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        id,
			CreatedAt: s.now(),
		},
		Sequence:      seq,
		ShowID:        show.ID,
		CustomerName:  name,
		CustomerPhone: phone,
		Seats:         seats,
		Status:        entity.BookingStatusConfirmed,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		// the claim and the index insert succeed or fail together
		show.Release(seats)
		s.log.Error("Failed to index booking, seats released",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("show_id", show.ID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("show_id", show.ID),
		zap.Ints("seats", seats),
		zap.Int("available_seats", show.AvailableCount()),
	)

	s.record(ctx, entity.BookingEventCreated, booking)
	return booking.Clone(), nil
}

// CancelBooking releases the booking's seats and marks it cancelled. The
// booking stays indexed; a second cancel fails with ErrAlreadyCancelled.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Warn("Cancel unknown booking", zap.String("booking_id", bookingID))
		return err
	}

	show, err := s.repo.Show.FindByID(ctx, booking.ShowID)
	if err != nil {
		s.log.Error("Booking references unknown show",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("show_id", booking.ShowID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	cancelled, err := s.repo.Booking.MarkCancelled(ctx, bookingID, s.now())
	if err != nil {
		s.log.Warn("Cancel booking rejected",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return err
	}

	show.Release(cancelled.Seats)

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("show_id", show.ID),
		zap.Ints("seats", cancelled.Seats),
		zap.Int("available_seats", show.AvailableCount()),
	)

	s.record(ctx, entity.BookingEventCancelled, cancelled)
	return nil
}

func (s *bookingService) FindBooking(ctx context.Context, bookingID string) (*entity.Booking, bool) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, false
	}
	return booking, true
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	resp := s.buildBookingResponse(ctx, booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindAll(ctx, offset, limit)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = s.buildBookingResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(responses, req.Page, limit, total), nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) response.BookingResponse {
	var (
		movie   *entity.Movie
		theater *entity.Theater
	)

	show, _ := s.repo.Show.FindByID(ctx, booking.ShowID)
	if show != nil {
		movie, _ = s.repo.Movie.FindByID(ctx, show.MovieID)
		theater, _ = s.repo.Theater.FindByID(ctx, show.TheaterID)
	}

	return response.BookingToResponse(booking, show, movie, theater)
}

// record writes an audit event. Audit failures never undo a booking change.
func (s *bookingService) record(ctx context.Context, eventType entity.BookingEventType, booking *entity.Booking) {
	event := &entity.BookingEvent{
		ID:          utils.GenerateUUID(),
		Type:        eventType,
		BookingID:   booking.ID,
		ShowID:      booking.ShowID,
		Seats:       booking.Seats,
		PhoneDigest: utils.HashPhone(booking.CustomerPhone),
		OccurredAt:  s.now(),
	}

	if err := s.repo.Audit.Record(ctx, event); err != nil {
		s.log.Error("Failed to audit booking event",
			zap.Error(err),
			zap.String("event_type", string(eventType)),
			zap.String("booking_id", booking.ID),
		)
	}
}
