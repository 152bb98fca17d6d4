package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-reservation-backend/internal/model"
)

// Store defines the interface for all database operations.
//
// Writes made through the Store passed to an Atomic callback are committed
// together when the callback returns nil and rolled back otherwise.
type Store interface {
	ListCategories(ctx context.Context) ([]model.RoomCategory, error)
	CountCategories(ctx context.Context) (int64, error)
	GetCategory(ctx context.Context, id int64) (*model.RoomCategory, error)
	FindCategoryByKey(ctx context.Context, key string) (*model.RoomCategory, error)
	CreateCategories(ctx context.Context, categories ...*model.RoomCategory) error

	ListRooms(ctx context.Context, filter RoomFilter) ([]model.Room, error)
	GetRoom(ctx context.Context, id int64, withBookings bool) (*model.Room, error)
	CreateRooms(ctx context.Context, rooms ...*model.Room) error
	UpdateRoom(ctx context.Context, room *model.Room) error
	MarkRoomStatus(ctx context.Context, id, expectedVersion int64, status model.RoomStatus) error
	DeleteRoom(ctx context.Context, id int64) error

	ListBookings(ctx context.Context, roomID int64) ([]model.Booking, error)
	CreateBooking(ctx context.Context, booking *model.Booking) error
	DeleteBookings(ctx context.Context, roomID int64) (int64, error)

	Atomic(ctx context.Context, fn func(tx Store) error) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Atomic runs fn inside one database transaction.
func (s *gormStore) Atomic(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// --- Categories ---

func (s *gormStore) ListCategories(ctx context.Context) ([]model.RoomCategory, error) {
	var categories []model.RoomCategory
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *gormStore) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.RoomCategory{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

func (s *gormStore) GetCategory(ctx context.Context, id int64) (*model.RoomCategory, error) {
	var category model.RoomCategory
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, notFound(err, "category %d", id)
	}
	return &category, nil
}

func (s *gormStore) FindCategoryByKey(ctx context.Context, key string) (*model.RoomCategory, error) {
	var category model.RoomCategory
	if err := s.db.WithContext(ctx).Where("lookup_key = ?", key).First(&category).Error; err != nil {
		return nil, notFound(err, "category %q", key)
	}
	return &category, nil
}

func (s *gormStore) CreateCategories(ctx context.Context, categories ...*model.RoomCategory) error {
	if len(categories) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(categories).Error; err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	return nil
}

// --- Rooms ---

func (s *gormStore) ListRooms(ctx context.Context, filter RoomFilter) ([]model.Room, error) {
	q := s.db.WithContext(ctx).Preload("Category")
	if filter.WithBookings {
		q = q.Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date")
		})
	}
	if len(filter.Statuses) > 0 {
		q = q.Where("status IN ?", filter.Statuses)
	}

	var rooms []model.Room
	if err := q.Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *gormStore) GetRoom(ctx context.Context, id int64, withBookings bool) (*model.Room, error) {
	q := s.db.WithContext(ctx).Preload("Category")
	if withBookings {
		q = q.Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date")
		})
	}

	var room model.Room
	if err := q.First(&room, id).Error; err != nil {
		return nil, notFound(err, "room %d", id)
	}
	return &room, nil
}

// CreateRooms inserts rooms without touching their preloaded associations;
// CategoryID must already reference a persisted category.
func (s *gormStore) CreateRooms(ctx context.Context, rooms ...*model.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(rooms).Error; err != nil {
		return fmt.Errorf("failed to create rooms: %w", err)
	}
	return nil
}

// UpdateRoom overwrites number, category and status, and bumps the version.
func (s *gormStore) UpdateRoom(ctx context.Context, room *model.Room) error {
	res := s.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"number":      room.Number,
			"category_id": room.CategoryID,
			"status":      room.Status,
			"version":     gorm.Expr("version + ?", 1),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", room.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room %d: %w", room.ID, ErrNotFound)
	}
	return nil
}

// MarkRoomStatus sets the status only if the stored version still equals
// expectedVersion, and bumps the version.
func (s *gormStore) MarkRoomStatus(ctx context.Context, id, expectedVersion int64, status model.RoomStatus) error {
	res := s.db.WithContext(ctx).
		Model(&model.Room{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"status":  status,
			"version": gorm.Expr("version + ?", 1),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to set status of room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room %d at version %d: %w", id, expectedVersion, ErrVersionMismatch)
	}
	return nil
}

// DeleteRoom removes the room and its bookings. Run it inside Atomic so both
// deletes commit together.
func (s *gormStore) DeleteRoom(ctx context.Context, id int64) error {
	if _, err := s.DeleteBookings(ctx, id); err != nil {
		return err
	}
	res := s.db.WithContext(ctx).Delete(&model.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room %d: %w", id, ErrNotFound)
	}
	return nil
}

// --- Bookings ---

func (s *gormStore) ListBookings(ctx context.Context, roomID int64) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := s.db.WithContext(ctx).Where("room_id = ?", roomID).Order("start_date").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings for room %d: %w", roomID, err)
	}
	return bookings, nil
}

func (s *gormStore) CreateBooking(ctx context.Context, booking *model.Booking) error {
	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking for room %d: %w", booking.RoomID, err)
	}
	return nil
}

func (s *gormStore) DeleteBookings(ctx context.Context, roomID int64) (int64, error) {
	res := s.db.WithContext(ctx).Where("room_id = ?", roomID).Delete(&model.Booking{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete bookings for room %d: %w", roomID, res.Error)
	}
	return res.RowsAffected, nil
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
	}
	return fmt.Errorf("failed to load "+format+": %w", append(args, err)...)
}
