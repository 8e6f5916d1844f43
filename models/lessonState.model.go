package models

import "gorm.io/gorm"

// LessonState is the durable fallback for a suspended quiz session, keyed by
// (user_id, topic_id). It is read only when no in-memory payload exists for
// the pair and is deleted as soon as it has been consumed, so a saved state
// can be restored at most once.
type LessonState struct {
	gorm.Model
	UserID          uint `json:"user_id" gorm:"uniqueIndex:idx_user_topic_state;not null"`
	TopicID         uint `json:"topic_id" gorm:"uniqueIndex:idx_user_topic_state;not null"`
	CurrentQuestion int  `json:"current_question" gorm:"default:0"`
	SelectedAnswer  *int `json:"selected_answer"`
	CorrectAnswers  int  `json:"correct_answers" gorm:"default:0"`
	ShowFeedback    bool `json:"show_feedback" gorm:"default:false"`
}
