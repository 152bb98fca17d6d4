package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking is a confirmed reservation of a room over [StartDate, EndDate).
type Booking struct {
	ID         int64           `gorm:"primaryKey"`
	RoomID     int64           `gorm:"index;not null"`
	ClientName string          `gorm:"size:256;not null"`
	StartDate  time.Time       `gorm:"not null"`
	EndDate    time.Time       `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}
