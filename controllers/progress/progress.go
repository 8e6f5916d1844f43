package progressController

import (
	"context"
	"errors"
	"log"
	"time"

	"lexlingo/database"
	"lexlingo/gamification"
	"lexlingo/middleware"
	"lexlingo/models"
	"lexlingo/realtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvalidAmount is returned when a negative XP amount is credited.
var ErrInvalidAmount = errors.New("xp amount must not be negative")

// AddDailyXP credits XP to the caller's daily progress row, creating it on
// first activity of the day. The increment runs as one atomic upsert so two
// racing completions never lose an update. Listeners get a best-effort change
// event afterwards. Callers pass their own handle so the write can join an
// enclosing transaction.
func AddDailyXP(db *gorm.DB, userID uint, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if amount == 0 {
		return nil
	}

	today := gamification.DateString(time.Now())

	row := models.DailyProgress{
		UserID: userID,
		Date:   today,
		Points: amount,
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"points":     gorm.Expr("points + ?", amount),
			"updated_at": time.Now(),
		}),
	}).Create(&row).Error
	if err != nil {
		return err
	}

	realtime.Notify.Publish(context.Background(), "daily_progress")
	return nil
}

// GetDailyProgress returns today's earned XP against the level-derived goal.
// No row for today simply means zero earned.
func GetDailyProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var profile models.Profile
	level := 1
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err == nil {
		level = profile.Level
	}

	today := gamification.DateString(time.Now())

	earned := 0
	var progress models.DailyProgress
	if err := db.Where("user_id = ? AND date = ?", userID, today).First(&progress).Error; err == nil {
		earned = progress.Points
	}

	goal := gamification.DailyGoalForLevel(level)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Daily progress fetched successfully!", fiber.Map{
		"earned_xp":  earned,
		"goal_xp":    goal,
		"level":      level,
		"date":       today,
		"percentage": gamification.ProgressPercentage(earned, goal),
	})
}

// GetProgressHistory returns the daily progress rows of the requested window
// with the days-studied and total-points aggregates
func GetProgressHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	days := c.Locals("days").(int)
	startDate := gamification.DateString(time.Now().AddDate(0, 0, -days))

	var rows []models.DailyProgress
	if err := database.Database.Db.
		Where("user_id = ? AND date >= ?", userID, startDate).
		Order("date asc").
		Find(&rows).Error; err != nil {
		log.Printf("Error fetching progress history: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress history!", nil)
	}

	totalPoints := 0
	for _, row := range rows {
		totalPoints += row.Points
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress history fetched successfully!", fiber.Map{
		"days":         days,
		"entries":      rows,
		"days_studied": len(rows),
		"total_points": totalPoints,
	})
}
