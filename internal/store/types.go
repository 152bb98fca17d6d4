package store

import (
	"errors"

	"hotel-reservation-backend/internal/model"
)

var (
	// ErrNotFound is returned when a room, category or booking id is absent.
	ErrNotFound = errors.New("record not found")
	// ErrVersionMismatch is returned when a compare-and-swap on a room's version fails.
	ErrVersionMismatch = errors.New("room version mismatch")
)

// RoomFilter narrows ListRooms. Zero values mean "no restriction".
type RoomFilter struct {
	Statuses     []model.RoomStatus
	WithBookings bool
}
