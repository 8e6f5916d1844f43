package adminRoutes

import (
	adminControllers "lexlingo/controllers/admin"
	"lexlingo/middleware"
	adminValidators "lexlingo/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the privileged profile override routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/profiles", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), adminControllers.ListProfiles)
	adminGroup.Patch("/profiles/:userId", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), adminValidators.TargetUser(), adminValidators.UpdateProfile(), adminControllers.UpdateProfile)
	adminGroup.Post("/profiles/:userId/reset", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), adminValidators.TargetUser(), adminControllers.ResetUser)
}
