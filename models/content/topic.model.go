package content

import "gorm.io/gorm"

// Topic is a unit of study within a track, gating a theory phase and a quiz
// phase. One "lesson" is one full pass through the topic's quiz.
type Topic struct {
	gorm.Model
	TrackID      uint   `json:"track_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	OrderIndex   int    `json:"order_index" gorm:"default:0"`
	TotalLessons int    `json:"total_lessons" gorm:"default:1"`
}
