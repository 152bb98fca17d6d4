package reservation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hotel-reservation-backend/internal/availability"
	"hotel-reservation-backend/internal/model"
	"hotel-reservation-backend/internal/store"
)

// Rejection explains why a preview produced no draft.
type Rejection string

const (
	RejectRoomNotFound    Rejection = "room_not_found"
	RejectRoomUnavailable Rejection = "room_unavailable"
	RejectDatesOverlap    Rejection = "dates_overlap"
)

// Draft is an unpersisted, priced booking proposal. RoomVersion is the room's
// version at preview time; Confirm refuses the draft once the room has moved on.
type Draft struct {
	Token        uuid.UUID
	RoomID       int64
	RoomNumber   string
	CategoryName string
	ClientName   string
	Range        availability.Range
	Nights       int
	Total        decimal.Decimal
	RoomVersion  int64
	IssuedAt     time.Time
}

// PreviewResult carries either a Draft or the reason there is none.
type PreviewResult struct {
	Draft     *Draft
	Rejection Rejection
}

// Rejected reports whether the preview was refused.
func (p PreviewResult) Rejected() bool {
	return p.Draft == nil
}

// Preview prices a booking of roomID over rng without writing anything.
// Malformed input is an error; a missing, unbookable or already reserved room
// is a rejection.
func (e *Engine) Preview(ctx context.Context, roomID int64, rng availability.Range, clientName string) (PreviewResult, error) {
	rng = utcRange(rng)
	client := strings.TrimSpace(clientName)
	if err := validateRequest(rng, client); err != nil {
		return PreviewResult{}, err
	}

	room, err := e.store.GetRoom(ctx, roomID, true)
	if errors.Is(err, store.ErrNotFound) {
		return PreviewResult{Rejection: RejectRoomNotFound}, nil
	}
	if err != nil {
		return PreviewResult{}, err
	}

	if !availability.Bookable(room.Status) {
		return PreviewResult{Rejection: RejectRoomUnavailable}, nil
	}
	if !availability.IsFree(*room, rng) {
		return PreviewResult{Rejection: RejectDatesOverlap}, nil
	}

	nights := rng.Nights()
	return PreviewResult{Draft: &Draft{
		Token:        uuid.New(),
		RoomID:       room.ID,
		RoomNumber:   room.Number,
		CategoryName: room.Category.Name,
		ClientName:   client,
		Range:        rng,
		Nights:       nights,
		Total:        room.Category.BasePrice.Mul(decimal.NewFromInt(int64(nights))),
		RoomVersion:  room.Version,
		IssuedAt:     e.now(),
	}}, nil
}

// Confirm persists draft and marks the room Booked in one transaction. The
// overlap check is repeated inside the transaction and the status write is a
// compare-and-swap on the draft's room version.
func (e *Engine) Confirm(ctx context.Context, draft Draft) (*model.Booking, error) {
	rng := utcRange(draft.Range)
	client := strings.TrimSpace(draft.ClientName)
	if err := validateRequest(rng, client); err != nil {
		return nil, err
	}

	booking := &model.Booking{
		RoomID:     draft.RoomID,
		ClientName: client,
		StartDate:  rng.From,
		EndDate:    rng.To,
		TotalPrice: draft.Total,
	}

	err := e.store.Atomic(ctx, func(tx store.Store) error {
		room, err := tx.GetRoom(ctx, draft.RoomID, true)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("room %d: %w", draft.RoomID, ErrRoomNotFound)
		}
		if err != nil {
			return err
		}
		if room.Version != draft.RoomVersion {
			return fmt.Errorf("room %s changed since preview: %w", room.Number, ErrStaleDraft)
		}
		if !availability.IsFree(*room, rng) {
			return fmt.Errorf("room %s: %w", room.Number, ErrBookingConflict)
		}

		if err := tx.CreateBooking(ctx, booking); err != nil {
			return err
		}
		if err := tx.MarkRoomStatus(ctx, room.ID, room.Version, model.RoomStatusBooked); err != nil {
			if errors.Is(err, store.ErrVersionMismatch) {
				return fmt.Errorf("room %s: %w", room.Number, ErrStaleDraft)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Booked room %d for %q from %s to %s (total %s)",
		booking.RoomID, booking.ClientName, booking.StartDate.Format(time.DateOnly), booking.EndDate.Format(time.DateOnly), booking.TotalPrice)
	return booking, nil
}

// Cancel deletes every booking of roomID and resets the room to Available.
// Cancelling a missing room is a no-op.
func (e *Engine) Cancel(ctx context.Context, roomID int64) error {
	return e.store.Atomic(ctx, func(tx store.Store) error {
		room, err := tx.GetRoom(ctx, roomID, false)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		deleted, err := tx.DeleteBookings(ctx, roomID)
		if err != nil {
			return err
		}
		if err := tx.MarkRoomStatus(ctx, room.ID, room.Version, model.RoomStatusAvailable); err != nil {
			return err
		}
		log.Printf("Cancelled %d booking(s) for room %s", deleted, room.Number)
		return nil
	})
}

func validateRequest(rng availability.Range, client string) error {
	if err := rng.Validate(); err != nil {
		return err
	}
	if rng.Nights() < 1 {
		return fmt.Errorf("%w: a booking covers at least one night", ErrInvalidRange)
	}
	if client == "" {
		return ErrInvalidClientName
	}
	return nil
}

func utcRange(rng availability.Range) availability.Range {
	return availability.Range{From: rng.From.UTC(), To: rng.To.UTC()}
}
