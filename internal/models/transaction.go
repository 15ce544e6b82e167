package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a dated financial movement. It belongs to a user; the
// account reference is optional and survives account deletion as NULL.
// CheckCode, Notes and Tags exist in the schema but have no write path
// in the current handlers.
type Transaction struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	AccountID   *uint           `gorm:"index"`
	Date        time.Time       `gorm:"not null"`
	Description string          `gorm:"type:text;not null"`
	Notes       *string         `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CheckCode   string          `gorm:"size:50"`
	Checked     int16           `gorm:"not null;default:0"`
	Tags        *string         `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	User    User     `gorm:"constraint:OnDelete:CASCADE"`
	Account *Account `gorm:"constraint:OnDelete:SET NULL"`
}
