package authRoutes

import (
	authControllers "lexlingo/controllers/auth"
	"lexlingo/middleware"
	authValidators "lexlingo/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)

	app.Get("/profile", middleware.JWTMiddleware, authControllers.GetProfile)
}
