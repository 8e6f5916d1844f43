package adminValidator

import (
	"strconv"

	"lexlingo/middleware"

	"github.com/gofiber/fiber/v2"
)

// TargetUser validates the :userId route param
func TargetUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := strconv.Atoi(c.Params("userId"))
		if err != nil || userID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
		}

		c.Locals("targetUserID", userID)
		return c.Next()
	}
}

// UpdateProfile validates the profile override body
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			XP     *int `json:"xp"`
			Streak *int `json:"streak"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.XP == nil && reqData.Streak == nil {
			errors["body"] = "Nothing to update!"
		}
		if reqData.XP != nil && *reqData.XP < 0 {
			errors["xp"] = "XP must not be negative!"
		}
		if reqData.Streak != nil && *reqData.Streak < 0 {
			errors["streak"] = "Streak must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
