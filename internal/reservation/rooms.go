package reservation

import (
	"context"
	"errors"
	"fmt"
	"log"

	"hotel-reservation-backend/internal/catalog"
	"hotel-reservation-backend/internal/factory"
	"hotel-reservation-backend/internal/model"
	"hotel-reservation-backend/internal/parse"
	"hotel-reservation-backend/internal/store"
)

// seedRooms is the bootstrap inventory, in insertion order.
var seedRooms = []struct {
	tier   factory.Tier
	number string
}{
	{factory.Standard, "101"},
	{factory.Standard, "102"},
	{factory.Deluxe, "201"},
}

// AddRoomViaFactory builds a room for the category tag, attaches the existing
// category of the same name (or creates it) and persists the room.
func (e *Engine) AddRoomViaFactory(ctx context.Context, tag, number string) (*model.Room, error) {
	room, draftCategory, err := e.factory.CreateRoom(tag, number)
	if err != nil {
		return nil, err
	}

	err = e.store.Atomic(ctx, func(tx store.Store) error {
		category, err := catalog.NewRegistry(tx).Resolve(ctx, draftCategory.Name, draftCategory.BasePrice)
		if err != nil {
			return err
		}
		room.CategoryID = category.ID
		room.Category = *category
		return tx.CreateRooms(ctx, &room)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Added room %s (id=%d) in category %q", room.Number, room.ID, room.Category.Name)
	return &room, nil
}

// RoomUpdate carries the writable fields of a room.
type RoomUpdate struct {
	ID         int64
	Number     string
	CategoryID int64
	Status     string
}

// UpdateRoom overwrites a room's number, category and status.
func (e *Engine) UpdateRoom(ctx context.Context, upd RoomUpdate) (*model.Room, error) {
	number, err := parse.RoomNumber(upd.Number)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRoomNumber, err)
	}
	status, err := model.ParseRoomStatus(upd.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	var updated *model.Room
	err = e.store.Atomic(ctx, func(tx store.Store) error {
		if _, err := tx.GetCategory(ctx, upd.CategoryID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("category %d: %w", upd.CategoryID, ErrCategoryNotFound)
			}
			return err
		}

		err := tx.UpdateRoom(ctx, &model.Room{ID: upd.ID, Number: number, CategoryID: upd.CategoryID, Status: status})
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("room %d: %w", upd.ID, ErrRoomNotFound)
		}
		if err != nil {
			return err
		}

		updated, err = tx.GetRoom(ctx, upd.ID, false)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteRoom removes a room together with its bookings. Deleting a missing
// room is a no-op.
func (e *Engine) DeleteRoom(ctx context.Context, id int64) error {
	err := e.store.Atomic(ctx, func(tx store.Store) error {
		return tx.DeleteRoom(ctx, id)
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// SeedData creates the default categories and rooms when no category exists.
// Categories are committed first so the rooms can reference their ids.
func (e *Engine) SeedData(ctx context.Context) error {
	count, err := catalog.NewRegistry(e.store).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed skipped: categories already exist.")
		return nil
	}

	categories := make(map[factory.Tier]*model.RoomCategory, len(factory.Tiers))
	ordered := make([]*model.RoomCategory, 0, len(factory.Tiers))
	for _, tier := range factory.Tiers {
		c := e.factory.Category(tier)
		categories[tier] = &c
		ordered = append(ordered, &c)
	}
	if err := e.store.Atomic(ctx, func(tx store.Store) error {
		return catalog.NewRegistry(tx).CreateAll(ctx, ordered...)
	}); err != nil {
		return err
	}

	rooms := make([]*model.Room, 0, len(seedRooms))
	for _, sr := range seedRooms {
		room, _, err := e.factory.CreateRoom(string(sr.tier), sr.number)
		if err != nil {
			return err
		}
		room.CategoryID = categories[sr.tier].ID
		room.Category = *categories[sr.tier]
		rooms = append(rooms, &room)
	}
	if err := e.store.Atomic(ctx, func(tx store.Store) error {
		return tx.CreateRooms(ctx, rooms...)
	}); err != nil {
		return err
	}

	log.Printf("Seeded %d categories and %d rooms.", len(ordered), len(rooms))
	return nil
}
