// Package reservation implements the booking workflow over the room
// inventory: availability queries, priced previews, and atomic confirm and
// cancel. The engine is the only writer of room status and booking rows.
package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-reservation-backend/internal/availability"
	"hotel-reservation-backend/internal/catalog"
	"hotel-reservation-backend/internal/factory"
	"hotel-reservation-backend/internal/model"
	"hotel-reservation-backend/internal/store"
)

// Engine orchestrates previews, confirmations and cancellations.
type Engine struct {
	store   store.Store
	factory *factory.Factory
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the clock used to stamp drafts.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates an engine over s that builds new rooms with f.
func NewEngine(s store.Store, f *factory.Factory, opts ...Option) *Engine {
	e := &Engine{store: s, factory: f, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GetAvailableRooms returns the rooms with no booking covering date.
func (e *Engine) GetAvailableRooms(ctx context.Context, date time.Time) ([]model.Room, error) {
	rooms, err := e.store.ListRooms(ctx, store.RoomFilter{
		Statuses:     []model.RoomStatus{model.RoomStatusAvailable, model.RoomStatusBooked},
		WithBookings: true,
	})
	if err != nil {
		return nil, err
	}
	return availability.ListAvailable(rooms, date.UTC()), nil
}

// GetAllRooms returns every room with its category.
func (e *Engine) GetAllRooms(ctx context.Context) ([]model.Room, error) {
	return e.store.ListRooms(ctx, store.RoomFilter{})
}

// GetRoom returns one room with its category and bookings.
func (e *Engine) GetRoom(ctx context.Context, id int64) (*model.Room, error) {
	room, err := e.store.GetRoom(ctx, id, true)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("room %d: %w", id, ErrRoomNotFound)
	}
	return room, err
}

// ListCategories returns every room category.
func (e *Engine) ListCategories(ctx context.Context) ([]model.RoomCategory, error) {
	return catalog.NewRegistry(e.store).List(ctx)
}
