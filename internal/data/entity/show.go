package entity

import (
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Show is a scheduled screening and the single authority over its seat state.
// Seat numbers are in [1, TotalSeats]. All claims and releases against one show
// are serialized by its own lock, so unrelated shows never contend.
type Show struct {
	ID         string
	MovieID    string
	TheaterID  string
	ShowDate   time.Time
	ShowTime   time.Time
	Price      decimal.Decimal
	TotalSeats int
	CreatedAt  time.Time

	mu      sync.Mutex
	claimed map[int]struct{}
}

func NewShow(id, movieID string, showDate, showTime time.Time, price decimal.Decimal, totalSeats int) *Show {
	return &Show{
		ID:         id,
		MovieID:    movieID,
		ShowDate:   showDate,
		ShowTime:   showTime,
		Price:      price,
		TotalSeats: totalSeats,
		claimed:    make(map[int]struct{}),
	}
}

// NormalizeSeats returns the seat numbers sorted ascending with duplicates removed.
func NormalizeSeats(seats []int) []int {
	out := slices.Clone(seats)
	slices.Sort(out)
	return slices.Compact(out)
}

// TryClaim claims every requested seat or none of them.
func (s *Show) TryClaim(seats []int) error {
	seats = NormalizeSeats(seats)
	if len(seats) == 0 {
		return &InvalidSeatError{ShowID: s.ID, Total: s.TotalSeats}
	}

	var outOfRange []int
	for _, seat := range seats {
		if seat < 1 || seat > s.TotalSeats {
			outOfRange = append(outOfRange, seat)
		}
	}
	if len(outOfRange) > 0 {
		return &InvalidSeatError{ShowID: s.ID, Seats: outOfRange, Total: s.TotalSeats}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.claimed == nil {
		s.claimed = make(map[int]struct{})
	}

	var taken []int
	for _, seat := range seats {
		if _, ok := s.claimed[seat]; ok {
			taken = append(taken, seat)
		}
	}
	if len(taken) > 0 {
		return &SeatConflictError{ShowID: s.ID, Seats: taken}
	}

	for _, seat := range seats {
		s.claimed[seat] = struct{}{}
	}
	return nil
}

// Release frees the given seats. Seats that are already free are ignored.
func (s *Show) Release(seats []int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, seat := range seats {
		delete(s.claimed, seat)
	}
}

func (s *Show) AvailableCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.TotalSeats - len(s.claimed)
}

func (s *Show) IsClaimed(seat int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.claimed[seat]
	return ok
}

// ClaimedSeats returns a sorted snapshot of the claimed seat numbers.
func (s *Show) ClaimedSeats() []int {
	s.mu.Lock()
	seats := make([]int, 0, len(s.claimed))
	for seat := range s.claimed {
		seats = append(seats, seat)
	}
	s.mu.Unlock()

	slices.Sort(seats)
	return seats
}

// TotalPrice is the flat per-seat price times the number of seats.
func (s *Show) TotalPrice(seatCount int) decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(seatCount)))
}
