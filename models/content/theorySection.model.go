package content

import "gorm.io/gorm"

// TheorySection is a read-only block of theory content within a topic,
// presented in order_index order before the topic's quiz.
type TheorySection struct {
	gorm.Model
	TopicID    uint   `json:"topic_id" gorm:"index;not null"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`
	ImageURL   string `json:"image_url"`
}
