package models

import "gorm.io/gorm"

// Room represents a lobby tied to one live. Rows are soft state: a dissolved
// room keeps its row until the janitor purges it.
type Room struct {
	gorm.Model
	LiveID     int64 `gorm:"not null;index:idx_room_live_status"`
	Difficulty int   `gorm:"not null"`
	Status     int   `gorm:"not null;default:1;index:idx_room_live_status"`
	MaxMembers int   `gorm:"not null;default:4"`
	HostUserID uint

	Members []RoomMember `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;"` // Has Many relationship
}
