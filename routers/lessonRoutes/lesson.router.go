package lessonRoutes

import (
	lessonControllers "lexlingo/controllers/lesson"
	"lexlingo/middleware"
	lessonValidators "lexlingo/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

// SetupLessonRoutes sets up the lesson flow routes
func SetupLessonRoutes(app *fiber.App) {
	lessonGroup := app.Group("/lesson")

	// Gate decision: theory first, quiz otherwise (resuming suspended state)
	lessonGroup.Post("/:topicId/start", middleware.JWTMiddleware, lessonValidators.TopicID(), lessonControllers.StartLesson)

	// Theory exits, both satisfy the gate and award the one-time bonus
	lessonGroup.Post("/:topicId/theory/complete", middleware.JWTMiddleware, lessonValidators.TopicID(), lessonControllers.CompleteTheory)
	lessonGroup.Post("/:topicId/theory/skip", middleware.JWTMiddleware, lessonValidators.TopicID(), lessonControllers.SkipTheory)

	// Quiz session
	lessonGroup.Post("/session/:sessionId/answer", middleware.JWTMiddleware, lessonValidators.SelectAnswer(), lessonControllers.SelectAnswer)
	lessonGroup.Post("/session/:sessionId/check", middleware.JWTMiddleware, lessonControllers.CheckAnswer)
	lessonGroup.Post("/session/:sessionId/next", middleware.JWTMiddleware, lessonControllers.NextQuestion)
	lessonGroup.Post("/session/:sessionId/suspend", middleware.JWTMiddleware, lessonControllers.SuspendSession)
}
