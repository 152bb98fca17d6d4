package reservation

import (
	"errors"

	"hotel-reservation-backend/internal/availability"
	"hotel-reservation-backend/internal/factory"
)

// Faults surfaced by the engine. Expected booking outcomes (overlap, room not
// bookable) are reported through PreviewResult instead.
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidClientName = errors.New("client name is empty")
	ErrInvalidStatus     = errors.New("invalid room status")
	ErrStaleDraft        = errors.New("booking draft is stale, preview again")
	ErrBookingConflict   = errors.New("dates overlap an existing booking")

	ErrInvalidRange       = availability.ErrInvalidRange
	ErrInvalidCategoryTag = factory.ErrInvalidCategoryTag
	ErrInvalidRoomNumber  = factory.ErrInvalidRoomNumber
)

// IsInvalidInput reports whether err was caused by the caller's input rather
// than by storage or state.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidRange) ||
		errors.Is(err, ErrInvalidClientName) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrInvalidCategoryTag) ||
		errors.Is(err, ErrInvalidRoomNumber)
}
