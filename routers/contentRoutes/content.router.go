package contentRoutes

import (
	contentControllers "lexlingo/controllers/content"
	"lexlingo/middleware"
	contentValidators "lexlingo/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up the read-only content hierarchy routes
func SetupContentRoutes(app *fiber.App) {
	trackGroup := app.Group("/tracks")

	trackGroup.Get("/", middleware.JWTMiddleware, contentControllers.GetTracks)
	trackGroup.Get("/:trackId/topics", middleware.JWTMiddleware, contentValidators.TrackID(), contentControllers.GetTrackTopics)

	topicGroup := app.Group("/topics")
	topicGroup.Get("/:topicId/theory", middleware.JWTMiddleware, contentValidators.TopicID(), contentControllers.GetTheorySections)
}
