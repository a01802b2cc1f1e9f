package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingEventType string

const (
	BookingEventCreated   BookingEventType = "booking.created"
	BookingEventCancelled BookingEventType = "booking.cancelled"
)

// BookingEvent is an append-only audit record of a booking state change.
type BookingEvent struct {
	ID          uuid.UUID
	Type        BookingEventType
	BookingID   string
	ShowID      string
	Seats       []int
	PhoneDigest string
	OccurredAt  time.Time
}
