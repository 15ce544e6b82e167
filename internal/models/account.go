package models

import "time"

// Account is a bank account owned by exactly one user.
type Account struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"size:100;not null"`
	Agency    string `gorm:"size:50"`
	Number    string `gorm:"size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
