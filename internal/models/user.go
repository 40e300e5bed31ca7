package models

import "gorm.io/gorm"

// User represents a player profile. Only the digest of the bearer token is kept.
type User struct {
	gorm.Model
	Name         string `gorm:"size:255;not null"`
	LeaderCardID int64  `gorm:"not null"`
	TokenDigest  string `gorm:"size:64;uniqueIndex;not null"`
}
