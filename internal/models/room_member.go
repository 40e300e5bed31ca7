package models

import "time"

// RoomMember is one user's seat in a room. The auto-increment ID doubles as
// the join order.
type RoomMember struct {
	ID          uint  `gorm:"primaryKey"`
	RoomID      uint  `gorm:"not null;uniqueIndex:idx_room_member"`
	UserID      uint  `gorm:"not null;uniqueIndex:idx_room_member"`
	Difficulty  int   `gorm:"not null"`
	IsHost      bool  `gorm:"not null;default:false"`
	Reported    bool  `gorm:"not null;default:false"`
	JudgeCounts []int `gorm:"serializer:json"`
	Score       int
	CreatedAt   time.Time

	User User `gorm:"foreignKey:UserID"` // Belongs to User
}
