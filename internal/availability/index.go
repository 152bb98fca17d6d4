// Package availability answers whether rooms are free for a date range or on
// a single date. All ranges are half-open: [From, To).
package availability

import (
	"errors"
	"time"

	"hotel-reservation-backend/internal/model"
)

// ErrInvalidRange is returned for a range whose end is not after its start.
var ErrInvalidRange = errors.New("invalid date range: end must be after start")

const day = 24 * time.Hour

// Range is a half-open interval [From, To).
type Range struct {
	From time.Time
	To   time.Time
}

// Validate rejects empty and inverted ranges.
func (r Range) Validate() error {
	if !r.To.After(r.From) {
		return ErrInvalidRange
	}
	return nil
}

// Overlaps reports whether [start, end) intersects r. Adjacent ranges do not
// overlap.
func (r Range) Overlaps(start, end time.Time) bool {
	return start.Before(r.To) && end.After(r.From)
}

// Nights is the number of whole days in r, truncated: a 36 hour span is one night.
func (r Range) Nights() int {
	if !r.To.After(r.From) {
		return 0
	}
	return int(r.To.Sub(r.From) / day)
}

// Covers reports whether at falls inside [start, end).
func Covers(start, end, at time.Time) bool {
	return !at.Before(start) && at.Before(end)
}

// Bookable reports whether the room's status permits new reservations at all.
// Occupied rooms are out of the booking flow until their status is reset.
func Bookable(status model.RoomStatus) bool {
	return status == model.RoomStatusAvailable || status == model.RoomStatusBooked
}

// IsFree reports whether room can take a booking over rng. room.Bookings must
// be loaded.
func IsFree(room model.Room, rng Range) bool {
	if !Bookable(room.Status) {
		return false
	}
	for _, b := range room.Bookings {
		if rng.Overlaps(b.StartDate, b.EndDate) {
			return false
		}
	}
	return true
}

// FreeOn reports whether room has no booking covering asOf.
func FreeOn(room model.Room, asOf time.Time) bool {
	if !Bookable(room.Status) {
		return false
	}
	for _, b := range room.Bookings {
		if Covers(b.StartDate, b.EndDate, asOf) {
			return false
		}
	}
	return true
}

// ListAvailable filters rooms down to those free on asOf, preserving order.
func ListAvailable(rooms []model.Room, asOf time.Time) []model.Room {
	available := make([]model.Room, 0, len(rooms))
	for _, room := range rooms {
		if FreeOn(room, asOf) {
			available = append(available, room)
		}
	}
	return available
}
