package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrTheaterNotFound = errors.New("theater not found")
	ErrShowNotFound    = errors.New("show not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrInvalidSeat      = errors.New("invalid seat")
	ErrSeatsUnavailable = errors.New("seats unavailable")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrInvalidCustomer  = errors.New("invalid customer")
)

var (
	ErrCapacityExceeded = errors.New("seat count exceeds theater capacity")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrInvalidCatalog   = errors.New("invalid catalog entry")
)

// SeatConflictError lists the requested seats that were already claimed.
type SeatConflictError struct {
	ShowID string
	Seats  []int
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats %s already booked for show %s", joinSeats(e.Seats), e.ShowID)
}

func (e *SeatConflictError) Unwrap() error {
	return ErrSeatsUnavailable
}

// InvalidSeatError lists the requested seats outside [1, Total].
type InvalidSeatError struct {
	ShowID string
	Seats  []int
	Total  int
}

func (e *InvalidSeatError) Error() string {
	if len(e.Seats) == 0 {
		return fmt.Sprintf("no seats requested for show %s", e.ShowID)
	}
	return fmt.Sprintf("seats %s out of range 1-%d for show %s", joinSeats(e.Seats), e.Total, e.ShowID)
}

func (e *InvalidSeatError) Unwrap() error {
	return ErrInvalidSeat
}

func joinSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
