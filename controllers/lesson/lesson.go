package lessonController

import (
	"context"
	"log"
	"sync"
	"time"

	progressController "lexlingo/controllers/progress"
	"lexlingo/database"
	"lexlingo/gamification"
	"lexlingo/lesson"
	"lexlingo/middleware"
	"lexlingo/models"
	contentModels "lexlingo/models/content"
	"lexlingo/realtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	managerOnce sync.Once
	manager     *lesson.Manager
)

// sessionManager returns the process-wide lesson manager, wired to the
// database on first use
func sessionManager() *lesson.Manager {
	managerOnce.Do(func() {
		manager = lesson.NewManager(&gormQuestionRepo{}, &gormStateStore{})
	})
	return manager
}

// gormQuestionRepo adapts the question bank tables to the state machine's
// read-only repository interface
type gormQuestionRepo struct{}

func (r *gormQuestionRepo) QuestionsForTopic(topicID uint) ([]lesson.Question, error) {
	var rows []contentModels.Question
	if err := database.Database.Db.
		Where("topic_id = ?", topicID).
		Order("order_index asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	bank := make([]lesson.Question, len(rows))
	for i, row := range rows {
		bank[i] = lesson.Question{
			ID:           row.ID,
			Prompt:       row.Prompt,
			Options:      row.OptionList(),
			CorrectIndex: row.CorrectIndex,
			Explanation:  row.Explanation,
		}
	}
	return bank, nil
}

// gormStateStore adapts the lesson_states table to the durable suspend
// fallback
type gormStateStore struct{}

func (s *gormStateStore) Load(userID, topicID uint) (*lesson.SavedState, error) {
	var row models.LessonState
	err := database.Database.Db.Where("user_id = ? AND topic_id = ?", userID, topicID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &lesson.SavedState{
		CurrentQuestion: row.CurrentQuestion,
		SelectedAnswer:  row.SelectedAnswer,
		CorrectAnswers:  row.CorrectAnswers,
		ShowFeedback:    row.ShowFeedback,
	}, nil
}

func (s *gormStateStore) Save(userID, topicID uint, state lesson.SavedState) error {
	row := models.LessonState{
		UserID:          userID,
		TopicID:         topicID,
		CurrentQuestion: state.CurrentQuestion,
		SelectedAnswer:  state.SelectedAnswer,
		CorrectAnswers:  state.CorrectAnswers,
		ShowFeedback:    state.ShowFeedback,
	}

	var existing models.LessonState
	err := database.Database.Db.Where("user_id = ? AND topic_id = ?", userID, topicID).First(&existing).Error
	if err == nil {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	} else if err != gorm.ErrRecordNotFound {
		return err
	}
	return database.Database.Db.Save(&row).Error
}

func (s *gormStateStore) Delete(userID, topicID uint) error {
	return database.Database.Db.Unscoped().
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Delete(&models.LessonState{}).Error
}

// awardXP credits XP to the profile and the daily tracker, recomputing level,
// streak and last_active through the canonical rules. It writes through the
// given handle so completion credits commit atomically with their progress
// rows.
func awardXP(tx *gorm.DB, userID uint, amount int) (*models.Profile, error) {
	now := time.Now()

	var profile models.Profile
	if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		profile = models.Profile{UserID: userID}
	}

	profile.XP += amount
	profile.Level = gamification.LevelForXP(profile.XP)
	profile.Streak = gamification.NextStreak(profile.LastActive, now, profile.Streak)
	profile.LastActive = &now

	if err := tx.Save(&profile).Error; err != nil {
		return nil, err
	}

	if err := progressController.AddDailyXP(tx, userID, amount); err != nil {
		return nil, err
	}

	realtime.Notify.Publish(context.Background(), "profiles")
	return &profile, nil
}

// topicLocked applies the unlock gates server-side: single-predecessor within
// the track, all topics of the preceding track across tracks
func topicLocked(userID uint, topic contentModels.Topic) (bool, error) {
	db := database.Database.Db

	var progressRows []models.TopicProgress
	if err := db.Where("user_id = ?", userID).Find(&progressRows).Error; err != nil {
		return false, err
	}
	completed := make(map[uint]int, len(progressRows))
	for _, row := range progressRows {
		completed[row.TopicID] = row.LessonsCompleted
	}

	statuses := func(topics []contentModels.Topic) []gamification.TopicStatus {
		result := make([]gamification.TopicStatus, len(topics))
		for i, t := range topics {
			result[i] = gamification.TopicStatus{
				LessonsCompleted: completed[t.ID],
				TotalLessons:     t.TotalLessons,
			}
		}
		return result
	}

	var siblings []contentModels.Topic
	if err := db.Where("track_id = ?", topic.TrackID).Order("order_index asc").Find(&siblings).Error; err != nil {
		return false, err
	}
	topicIndex := 0
	for i, sibling := range siblings {
		if sibling.ID == topic.ID {
			topicIndex = i
			break
		}
	}
	if !gamification.TopicUnlocked(topicIndex, statuses(siblings)) {
		return true, nil
	}

	var tracks []contentModels.Track
	if err := db.Where("is_published = ?", true).Order("order_index asc").Find(&tracks).Error; err != nil {
		return false, err
	}
	trackIndex := 0
	for i, track := range tracks {
		if track.ID == topic.TrackID {
			trackIndex = i
			break
		}
	}
	if trackIndex == 0 {
		return false, nil
	}

	var previous []contentModels.Topic
	if err := db.Where("track_id = ?", tracks[trackIndex-1].ID).Order("order_index asc").Find(&previous).Error; err != nil {
		return false, err
	}
	return !gamification.TrackUnlocked(trackIndex, statuses(previous)), nil
}

// questionPayload is the sanitized view of the current question: the correct
// index stays server-side until the answer is checked
func questionPayload(s *lesson.Session) fiber.Map {
	question := s.Current()
	return fiber.Map{
		"index":   s.CurrentQuestion,
		"total":   s.QuestionCount(),
		"prompt":  question.Prompt,
		"options": question.Options,
	}
}

func sessionPayload(s *lesson.Session) fiber.Map {
	return fiber.Map{
		"session_id":       s.ID,
		"topic_id":         s.TopicID,
		"current_question": s.CurrentQuestion,
		"selected_answer":  s.SelectedAnswer,
		"show_feedback":    s.ShowFeedback,
		"correct_answers":  s.CorrectAnswers,
		"question":         questionPayload(s),
	}
}

// StartLesson opens a topic: users who have neither completed nor skipped the
// theory are routed there first, everyone else gets a quiz session (resuming
// any suspended state for the pair)
func StartLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := c.Locals("topicID").(int)

	db := database.Database.Db

	var topic contentModels.Topic
	if err := db.Where("id = ?", topicID).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	locked, err := topicLocked(userID, topic)
	if err != nil {
		log.Printf("Error checking topic unlock: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start lesson!", nil)
	}
	if locked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Topic is locked!", nil)
	}

	// Gate decision: absent row means the theory gate is not yet satisfied
	var progress models.TopicProgress
	theoryDone := false
	if err := db.Where("user_id = ? AND topic_id = ?", userID, topicID).First(&progress).Error; err == nil {
		theoryDone = progress.TheoryCompleted || progress.TheorySkipped
	}

	if !theoryDone {
		var sections []contentModels.TheorySection
		db.Where("topic_id = ?", topicID).Order("order_index asc").Find(&sections)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Theory first!", fiber.Map{
			"phase":    "theory",
			"topic":    topic,
			"sections": sections,
		})
	}

	session, err := sessionManager().Start(userID, uint(topicID))
	if err != nil {
		if err == lesson.ErrNoQuestions {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "This topic has no quiz yet!", nil)
		}
		log.Printf("Error starting lesson session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start lesson!", nil)
	}

	payload := sessionPayload(session)
	payload["phase"] = "quiz"
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson started!", payload)
}

// finishTheory is the shared exit for both theory paths. The 30 XP bonus is
// awarded at most once across completing and skipping combined; replaying
// either path once the gate is satisfied only flips the flag.
func finishTheory(c *fiber.Ctx, skipped bool) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := c.Locals("topicID").(int)

	db := database.Database.Db

	var topic contentModels.Topic
	if err := db.Where("id = ?", topicID).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	locked, err := topicLocked(userID, topic)
	if err != nil {
		log.Printf("Error checking topic unlock: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}
	if locked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Topic is locked!", nil)
	}

	var progress models.TopicProgress
	if err := db.Where("user_id = ? AND topic_id = ?", userID, topicID).First(&progress).Error; err != nil {
		progress = models.TopicProgress{UserID: userID, TopicID: uint(topicID)}
	}
	alreadyAwarded := progress.TheoryCompleted || progress.TheorySkipped

	if skipped {
		progress.TheorySkipped = true
	} else {
		progress.TheoryCompleted = true
	}

	xpAwarded := 0
	var profile *models.Profile
	txErr := db.Transaction(func(tx *gorm.DB) error {
		// Save keeps the existing lessons_completed counter intact
		if err := tx.Save(&progress).Error; err != nil {
			return err
		}
		if alreadyAwarded {
			return nil
		}
		p, err := awardXP(tx, userID, gamification.TheoryBonusXP)
		if err != nil {
			return err
		}
		profile = p
		xpAwarded = gamification.TheoryBonusXP
		return nil
	})
	if txErr != nil {
		log.Printf("Error saving theory progress: %v", txErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	message := "Going to practice lessons."
	if xpAwarded > 0 {
		message = "+30 XP earned!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"xp_awarded": xpAwarded,
		"progress":   progress,
		"profile":    profile,
	})
}

// CompleteTheory marks the theory phase read to the end
func CompleteTheory(c *fiber.Ctx) error {
	return finishTheory(c, false)
}

// SkipTheory marks the theory phase skipped
func SkipTheory(c *fiber.Ctx) error {
	return finishTheory(c, true)
}

// getOwnSession resolves the session id and checks it belongs to the caller
func getOwnSession(c *fiber.Ctx) (*lesson.Session, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sessionID := c.Params("sessionId")
	session, found := sessionManager().Get(sessionID)
	if !found || session.UserID != userID {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson session not found!", nil)
	}
	return session, nil
}

// SelectAnswer records the selection for the current question
func SelectAnswer(c *fiber.Ctx) error {
	session, err := getOwnSession(c)
	if session == nil {
		return err
	}

	optionIndex := c.Locals("optionIndex").(int)

	if err := session.SelectAnswer(optionIndex); err != nil {
		if err == lesson.ErrInvalidOption {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid option index!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already complete!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer selected!", sessionPayload(session))
}

// CheckAnswer reveals whether the selection is correct, together with the
// explanation
func CheckAnswer(c *fiber.Ctx) error {
	session, err := getOwnSession(c)
	if session == nil {
		return err
	}

	result, err := session.CheckAnswer()
	if err != nil {
		if err == lesson.ErrNoAnswerSelected {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please select an answer first!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already complete!", nil)
	}

	payload := sessionPayload(session)
	payload["feedback"] = result
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer checked!", payload)
}

// NextQuestion advances the quiz; at the last question it finalizes the pass,
// crediting profile XP, the daily tracker and the topic's lesson counter
func NextQuestion(c *fiber.Ctx) error {
	session, respErr := getOwnSession(c)
	if session == nil {
		return respErr
	}

	result, err := session.NextQuestion()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Lesson already complete!", nil)
	}

	if result == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Next question!", sessionPayload(session))
	}

	sessionManager().Finish(session.ID)

	// The lesson counter and the XP credits commit together or not at all.
	var progress models.TopicProgress
	var profile *models.Profile
	txErr := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		// One lesson is one full quiz pass, regardless of question count
		if err := tx.Where("user_id = ? AND topic_id = ?", session.UserID, session.TopicID).First(&progress).Error; err != nil {
			progress = models.TopicProgress{
				UserID:           session.UserID,
				TopicID:          session.TopicID,
				LessonsCompleted: 1,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		} else {
			progress.LessonsCompleted++
			if err := tx.Save(&progress).Error; err != nil {
				return err
			}
		}

		p, err := awardXP(tx, session.UserID, result.XPEarned)
		if err != nil {
			return err
		}
		profile = p
		return nil
	})
	if txErr != nil {
		log.Printf("Error finalizing lesson: %v", txErr)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson complete!", fiber.Map{
		"phase":             "complete",
		"result":            result,
		"lessons_completed": progress.LessonsCompleted,
		"profile":           profile,
		"level_name":        gamification.LevelName(profile.Level),
		"theme":             gamification.ThemeForLevel(profile.Level),
	})
}

// SuspendSession captures the quiz state so the user can navigate away (for
// example back to the theory) and resume exactly where they left off
func SuspendSession(c *fiber.Ctx) error {
	session, respErr := getOwnSession(c)
	if session == nil {
		return respErr
	}

	if err := sessionManager().Suspend(session.ID); err != nil {
		log.Printf("Error suspending lesson session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save lesson state!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson state saved!", fiber.Map{
		"topic_id": session.TopicID,
	})
}
