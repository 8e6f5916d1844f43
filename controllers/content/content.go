package contentController

import (
	"log"

	"lexlingo/database"
	"lexlingo/gamification"
	"lexlingo/middleware"
	"lexlingo/models"
	contentModels "lexlingo/models/content"

	"github.com/gofiber/fiber/v2"
)

// progressMap loads the caller's lessons_completed counters keyed by topic id
func progressMap(userID uint) map[uint]int {
	var rows []models.TopicProgress
	database.Database.Db.Where("user_id = ?", userID).Find(&rows)

	progress := make(map[uint]int, len(rows))
	for _, row := range rows {
		progress[row.TopicID] = row.LessonsCompleted
	}
	return progress
}

// topicStatuses pairs a track's ordered topics with the caller's counters
func topicStatuses(topics []contentModels.Topic, progress map[uint]int) []gamification.TopicStatus {
	statuses := make([]gamification.TopicStatus, len(topics))
	for i, topic := range topics {
		statuses[i] = gamification.TopicStatus{
			LessonsCompleted: progress[topic.ID],
			TotalLessons:     topic.TotalLessons,
		}
	}
	return statuses
}

// GetTracks lists published tracks in order with their unlock state. A track
// unlocks only when every topic of the preceding track is individually
// complete.
func GetTracks(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var tracks []contentModels.Track
	if err := db.Where("is_published = ?", true).Order("order_index asc").Find(&tracks).Error; err != nil {
		log.Printf("Error fetching tracks: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tracks!", nil)
	}

	progress := progressMap(userID)

	type trackWithLock struct {
		contentModels.Track
		Locked bool `json:"locked"`
	}

	result := make([]trackWithLock, len(tracks))
	var previousStatuses []gamification.TopicStatus
	for i, track := range tracks {
		var topics []contentModels.Topic
		db.Where("track_id = ?", track.ID).Order("order_index asc").Find(&topics)

		result[i] = trackWithLock{
			Track:  track,
			Locked: !gamification.TrackUnlocked(i, previousStatuses),
		}
		previousStatuses = topicStatuses(topics, progress)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tracks fetched successfully!", result)
}

// GetTrackTopics lists a track's topics in order, each with the caller's
// progress, the single-predecessor unlock state and the completion crown
// count
func GetTrackTopics(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	trackID := c.Locals("trackID").(int)

	db := database.Database.Db

	var track contentModels.Track
	if err := db.Where("id = ? AND is_published = ?", trackID, true).First(&track).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Track not found!", nil)
	}

	var topics []contentModels.Topic
	if err := db.Where("track_id = ?", trackID).Order("order_index asc").Find(&topics).Error; err != nil {
		log.Printf("Error fetching topics: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topics!", nil)
	}

	progress := progressMap(userID)
	statuses := topicStatuses(topics, progress)

	type topicWithProgress struct {
		contentModels.Topic
		LessonsCompleted int  `json:"lessons_completed"`
		CompletionCount  int  `json:"completion_count"`
		Locked           bool `json:"locked"`
	}

	result := make([]topicWithProgress, len(topics))
	for i, topic := range topics {
		completionCount := 0
		if topic.TotalLessons > 0 {
			completionCount = progress[topic.ID] / topic.TotalLessons
		}
		result[i] = topicWithProgress{
			Topic:            topic,
			LessonsCompleted: progress[topic.ID],
			CompletionCount:  completionCount,
			Locked:           !gamification.TopicUnlocked(i, statuses),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics fetched successfully!", fiber.Map{
		"track":  track,
		"topics": result,
	})
}

// GetTheorySections lists a topic's theory content in reading order
func GetTheorySections(c *fiber.Ctx) error {
	if _, ok := c.Locals("userId").(uint); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := c.Locals("topicID").(int)

	db := database.Database.Db

	var topic contentModels.Topic
	if err := db.Where("id = ?", topicID).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	var sections []contentModels.TheorySection
	if err := db.Where("topic_id = ?", topicID).Order("order_index asc").Find(&sections).Error; err != nil {
		log.Printf("Error fetching theory sections: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch theory sections!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Theory sections fetched successfully!", fiber.Map{
		"topic":    topic,
		"sections": sections,
	})
}
