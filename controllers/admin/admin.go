package adminController

import (
	"log"
	"time"

	"lexlingo/database"
	"lexlingo/gamification"
	"lexlingo/middleware"
	"lexlingo/models"

	"github.com/gofiber/fiber/v2"
)

// ListProfiles returns every user profile, newest first, with the owning
// account's name and email
func ListProfiles(c *fiber.Ctx) error {
	db := database.Database.Db

	var profiles []models.Profile
	if err := db.Order("created_at desc").Find(&profiles).Error; err != nil {
		log.Printf("Error listing profiles: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list profiles!", nil)
	}

	type profileWithUser struct {
		models.Profile
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	result := make([]profileWithUser, len(profiles))
	for i, profile := range profiles {
		result[i] = profileWithUser{Profile: profile}
		var user models.User
		if err := db.Where("id = ?", profile.UserID).First(&user).Error; err == nil {
			result[i].Name = user.Name
			result[i].Email = user.Email
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profiles fetched successfully!", result)
}

// UpdateProfile overrides a user's xp, streak and level. The level is always
// re-derived from the new XP so an override can never leave the two out of
// sync.
func UpdateProfile(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	reqData := new(struct {
		XP     *int `json:"xp"`
		Streak *int `json:"streak"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var profile models.Profile
	if err := db.Where("user_id = ?", targetID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	if reqData.XP != nil {
		profile.XP = *reqData.XP
	}
	if reqData.Streak != nil {
		profile.Streak = *reqData.Streak
	}
	profile.Level = gamification.LevelForXP(profile.XP)

	if err := db.Save(&profile).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}

// ResetUser zeroes a user's profile and bulk-deletes every progress row they
// own. This is the only path that ever deletes progress.
func ResetUser(c *fiber.Ctx) error {
	targetID := c.Locals("targetUserID").(int)

	db := database.Database.Db

	var profile models.Profile
	if err := db.Where("user_id = ?", targetID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	profile.XP = 0
	profile.Level = 1
	profile.Streak = 0
	profile.LastActive = nil
	profile.UpdatedAt = time.Now()

	if err := db.Save(&profile).Error; err != nil {
		log.Printf("Error resetting profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset profile!", nil)
	}

	if err := db.Unscoped().Where("user_id = ?", targetID).Delete(&models.TopicProgress{}).Error; err != nil {
		log.Printf("Error deleting topic progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete topic progress!", nil)
	}

	if err := db.Unscoped().Where("user_id = ?", targetID).Delete(&models.DailyProgress{}).Error; err != nil {
		log.Printf("Error deleting daily progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete daily progress!", nil)
	}

	if err := db.Unscoped().Where("user_id = ?", targetID).Delete(&models.LessonState{}).Error; err != nil {
		log.Printf("Error deleting lesson state: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson state!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User reset successfully!", profile)
}
