package model

import (
	"fmt"
	"time"
)

// RoomStatus is the coarse status flag of a room.
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "Available"
	RoomStatusBooked    RoomStatus = "Booked"
	RoomStatusOccupied  RoomStatus = "Occupied"
)

// ParseRoomStatus accepts exactly one of the three status tokens.
func ParseRoomStatus(s string) (RoomStatus, error) {
	switch st := RoomStatus(s); st {
	case RoomStatusAvailable, RoomStatusBooked, RoomStatusOccupied:
		return st, nil
	}
	return "", fmt.Errorf("unknown room status %q", s)
}

// Room represents a bookable hotel room.
type Room struct {
	ID         int64      `gorm:"primaryKey"`
	Number     string     `gorm:"size:32;not null"`
	CategoryID int64      `gorm:"index;not null"`
	Status     RoomStatus `gorm:"size:16;not null"`
	// Version is bumped on every status write; drafts carry it as a freshness marker.
	Version   int64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Associations, loaded with Preload only.
	Category RoomCategory `gorm:"foreignKey:CategoryID"`
	Bookings []Booking    `gorm:"foreignKey:RoomID"`
}
