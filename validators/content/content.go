package contentValidator

import (
	"strconv"

	"lexlingo/middleware"

	"github.com/gofiber/fiber/v2"
)

// TrackID validates the :trackId route param
func TrackID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		trackID, err := strconv.Atoi(c.Params("trackId"))
		if err != nil || trackID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid track id!", nil)
		}

		c.Locals("trackID", trackID)
		return c.Next()
	}
}

// TopicID validates the :topicId route param
func TopicID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		topicID, err := strconv.Atoi(c.Params("topicId"))
		if err != nil || topicID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic id!", nil)
		}

		c.Locals("topicID", topicID)
		return c.Next()
	}
}
