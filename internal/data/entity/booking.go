package entity

import (
	"slices"
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	Base
	Sequence      uint64
	ShowID        string
	CustomerName  string
	CustomerPhone string
	Seats         []int // sorted, unique
	Status        BookingStatus
	CancelledAt   *time.Time
}

func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusConfirmed
}

// Clone returns a copy that shares no mutable state with b.
func (b *Booking) Clone() *Booking {
	c := *b
	c.Seats = slices.Clone(b.Seats)
	if b.CancelledAt != nil {
		at := *b.CancelledAt
		c.CancelledAt = &at
	}
	return &c
}
