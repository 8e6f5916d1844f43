package models

import "gorm.io/gorm"

// TopicProgress tracks a user's progress within a single topic. Rows are
// created lazily on first interaction and upserted on the
// (user_id, topic_id) unique constraint thereafter.
//
// TheoryCompleted and TheorySkipped are independent flags; either one being
// true means the theory gate is satisfied and the one-time theory bonus has
// already been awarded.
type TopicProgress struct {
	gorm.Model
	UserID           uint `json:"user_id" gorm:"uniqueIndex:idx_user_topic;not null"`
	TopicID          uint `json:"topic_id" gorm:"uniqueIndex:idx_user_topic;not null"`
	LessonsCompleted int  `json:"lessons_completed" gorm:"default:0"`
	TheoryCompleted  bool `json:"theory_completed" gorm:"default:false"`
	TheorySkipped    bool `json:"theory_skipped" gorm:"default:false"`
}
