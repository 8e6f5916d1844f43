package lessonValidator

import (
	"strconv"

	"lexlingo/middleware"

	"github.com/gofiber/fiber/v2"
)

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

// SelectAnswer validates the answer selection body
func SelectAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OptionIndex *int `json:"option_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Option Index
		if reqData.OptionIndex == nil {
			errors["option_index"] = "Option index is required!"
		} else if *reqData.OptionIndex < 0 {
			errors["option_index"] = "Option index must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("optionIndex", *reqData.OptionIndex)
		return c.Next()
	}
}
