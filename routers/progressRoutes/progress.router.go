package progressRoutes

import (
	progressControllers "lexlingo/controllers/progress"
	"lexlingo/middleware"
	progressValidators "lexlingo/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up the daily goal and history routes
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Get("/daily", middleware.JWTMiddleware, progressControllers.GetDailyProgress)
	progressGroup.Get("/history", middleware.JWTMiddleware, progressValidators.History(), progressControllers.GetProgressHistory)
}
