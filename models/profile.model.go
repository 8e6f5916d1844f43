package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile holds the gamification state for a user. Created at signup with
// zeroed progress and mutated on lesson completion or by the admin override.
type Profile struct {
	gorm.Model
	UserID     uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	XP         int        `json:"xp" gorm:"default:0"`
	Level      int        `json:"level" gorm:"default:1"`
	Streak     int        `json:"streak" gorm:"default:0"`
	LastActive *time.Time `json:"last_active"`
}
