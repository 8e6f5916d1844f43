package models

import "gorm.io/gorm"

// DailyProgress accumulates XP earned within one calendar day, keyed by the
// ISO date string (YYYY-MM-DD). One row per (user, day).
type DailyProgress struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex:idx_user_date;not null"`
	Date   string `json:"date" gorm:"uniqueIndex:idx_user_date;not null;size:10"`
	Points int    `json:"points" gorm:"default:0"`
}
