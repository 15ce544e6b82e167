package models

import "time"

// User represents an application user. Username is an e-mail address,
// lower-cased before storage. Password holds the salted digest, never
// the plaintext.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:255;uniqueIndex;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
