package lessonController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"lexlingo/config"
	"lexlingo/database"
	"lexlingo/models"
	contentModels "lexlingo/models/content"
	lessonValidators "lexlingo/validators/lesson"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.TopicProgress{},
		&models.DailyProgress{},
		&models.LessonState{},
		&contentModels.Track{},
		&contentModels.Topic{},
		&contentModels.TheorySection{},
		&contentModels.Question{},
	))

	database.Database = database.DbInstance{Db: db}
	return db
}

// setupTestApp wires the lesson routes behind a stand-in for the JWT
// middleware that pins the caller identity.
func setupTestApp(userID uint) *fiber.App {
	asUser := func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		return c.Next()
	}

	app := fiber.New()
	app.Post("/lesson/:topicId/start", asUser, lessonValidators.TopicID(), StartLesson)
	app.Post("/lesson/:topicId/theory/complete", asUser, lessonValidators.TopicID(), CompleteTheory)
	app.Post("/lesson/:topicId/theory/skip", asUser, lessonValidators.TopicID(), SkipTheory)
	app.Post("/lesson/session/:sessionId/answer", asUser, lessonValidators.SelectAnswer(), SelectAnswer)
	app.Post("/lesson/session/:sessionId/check", asUser, CheckAnswer)
	app.Post("/lesson/session/:sessionId/next", asUser, NextQuestion)
	return app
}

// seedTopic creates a published track with one topic and one four-option
// question per given correct index.
func seedTopic(t *testing.T, db *gorm.DB, correct ...int) (contentModels.Track, contentModels.Topic) {
	t.Helper()

	track := contentModels.Track{Title: "Direito das Obrigações", OrderIndex: 0, IsPublished: true}
	require.NoError(t, db.Create(&track).Error)

	topic := contentModels.Topic{TrackID: track.ID, Title: "Fundamentos das Obrigações", OrderIndex: 0, TotalLessons: 1}
	require.NoError(t, db.Create(&topic).Error)

	for i, index := range correct {
		question := contentModels.Question{
			TopicID:      topic.ID,
			OrderIndex:   i,
			Prompt:       fmt.Sprintf("Questão %d", i+1),
			CorrectIndex: index,
		}
		require.NoError(t, question.SetOptions([]string{"a", "b", "c", "d"}))
		require.NoError(t, db.Create(&question).Error)
	}
	return track, topic
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload
}

func dataOf(t *testing.T, payload map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok, "response carries a data object")
	return data
}

func TestTheoryBonusAwardedOnce(t *testing.T) {
	db := setupTestDB(t)
	_, topic := seedTopic(t, db, 3, 2, 2)
	app := setupTestApp(101)

	skipPath := fmt.Sprintf("/lesson/%d/theory/skip", topic.ID)
	completePath := fmt.Sprintf("/lesson/%d/theory/complete", topic.ID)

	code, payload := doJSON(t, app, "POST", skipPath, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(30), dataOf(t, payload)["xp_awarded"])

	// Replaying either exit once the gate is satisfied only flips flags.
	code, payload = doJSON(t, app, "POST", completePath, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), dataOf(t, payload)["xp_awarded"])

	code, payload = doJSON(t, app, "POST", skipPath, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), dataOf(t, payload)["xp_awarded"])

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", 101).First(&profile).Error)
	assert.Equal(t, 30, profile.XP, "30 XP across all theory exits combined")

	var progress models.TopicProgress
	require.NoError(t, db.Where("user_id = ? AND topic_id = ?", 101, topic.ID).First(&progress).Error)
	assert.True(t, progress.TheorySkipped)
	assert.True(t, progress.TheoryCompleted)
	assert.Equal(t, 0, progress.LessonsCompleted, "theory exits never touch the lesson counter")
}

func TestSkipTheoryThenPerfectQuiz(t *testing.T) {
	db := setupTestDB(t)
	_, topic := seedTopic(t, db, 3, 2, 2)
	app := setupTestApp(102)

	code, _ := doJSON(t, app, "POST", fmt.Sprintf("/lesson/%d/theory/skip", topic.ID), nil)
	require.Equal(t, http.StatusOK, code)

	code, payload := doJSON(t, app, "POST", fmt.Sprintf("/lesson/%d/start", topic.ID), nil)
	require.Equal(t, http.StatusOK, code)
	data := dataOf(t, payload)
	require.Equal(t, "quiz", data["phase"])
	sessionID, ok := data["session_id"].(string)
	require.True(t, ok)

	answers := []int{3, 2, 2}
	var final map[string]interface{}
	for i, answer := range answers {
		code, _ = doJSON(t, app, "POST", "/lesson/session/"+sessionID+"/answer", fiber.Map{"option_index": answer})
		require.Equal(t, http.StatusOK, code)
		code, _ = doJSON(t, app, "POST", "/lesson/session/"+sessionID+"/check", nil)
		require.Equal(t, http.StatusOK, code)
		code, payload = doJSON(t, app, "POST", "/lesson/session/"+sessionID+"/next", nil)
		require.Equal(t, http.StatusOK, code)
		if i == len(answers)-1 {
			final = dataOf(t, payload)
		}
	}

	require.Equal(t, "complete", final["phase"])
	result, ok := final["result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), result["correct_answers"])
	assert.Equal(t, float64(30), result["xp_earned"])
	assert.Equal(t, float64(1), final["lessons_completed"])

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", 102).First(&profile).Error)
	assert.Equal(t, 60, profile.XP, "30 theory bonus + 30 quiz XP")
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, 1, profile.Streak)

	var daily models.DailyProgress
	require.NoError(t, db.Where("user_id = ?", 102).First(&daily).Error)
	assert.Equal(t, 60, daily.Points)

	var progress models.TopicProgress
	require.NoError(t, db.Where("user_id = ? AND topic_id = ?", 102, topic.ID).First(&progress).Error)
	assert.Equal(t, 1, progress.LessonsCompleted)
}

func TestLockedTopicRejected(t *testing.T) {
	db := setupTestDB(t)
	track, first := seedTopic(t, db, 3)

	second := contentModels.Topic{TrackID: track.ID, Title: "Adimplemento e Extinção", OrderIndex: 1, TotalLessons: 1}
	require.NoError(t, db.Create(&second).Error)

	nextTrack := contentModels.Track{Title: "Contratos", OrderIndex: 1, IsPublished: true}
	require.NoError(t, db.Create(&nextTrack).Error)
	gated := contentModels.Topic{TrackID: nextTrack.ID, Title: "Teoria Geral dos Contratos", OrderIndex: 0, TotalLessons: 1}
	require.NoError(t, db.Create(&gated).Error)

	app := setupTestApp(103)

	// Predecessor incomplete: neither the quiz nor the theory exits open.
	code, _ := doJSON(t, app, "POST", fmt.Sprintf("/lesson/%d/start", second.ID), nil)
	assert.Equal(t, http.StatusForbidden, code)
	code, _ = doJSON(t, app, "POST", fmt.Sprintf("/lesson/%d/theory/skip", second.ID), nil)
	assert.Equal(t, http.StatusForbidden, code)

	var count int64
	db.Model(&models.TopicProgress{}).Where("user_id = ?", 103).Count(&count)
	assert.Equal(t, int64(0), count, "rejected requests leave no progress rows")

	require.NoError(t, db.Create(&models.TopicProgress{
		UserID: 103, TopicID: first.ID, LessonsCompleted: 1, TheorySkipped: true,
	}).Error)

	code, payload := doJSON(t, app, "POST", fmt.Sprintf("/lesson/%d/start", second.ID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "theory", dataOf(t, payload)["phase"])

	// The next track stays locked until every topic of this one is complete.
	code, _ = doJSON(t, app, "POST", fmt.Sprintf("/lesson/%d/start", gated.ID), nil)
	assert.Equal(t, http.StatusForbidden, code)
}
