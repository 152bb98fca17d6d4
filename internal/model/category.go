package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomCategory is a price tier shared by many rooms.
type RoomCategory struct {
	ID        int64           `gorm:"primaryKey"`
	LookupKey string          `gorm:"uniqueIndex;size:128;not null"` // normalized Name
	Name      string          `gorm:"size:128;not null"`
	BasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}
