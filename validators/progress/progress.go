package progressValidator

import (
	"lexlingo/middleware"

	"github.com/gofiber/fiber/v2"
)

// History validates the ?days query for the progress history window
func History() fiber.Handler {
	return func(c *fiber.Ctx) error {
		days := c.QueryInt("days", 30)

		if days < 1 || days > 365 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"days": "Days must be between 1 and 365!",
			})
		}

		c.Locals("days", days)
		return c.Next()
	}
}
