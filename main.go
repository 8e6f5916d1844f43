package main

import (
	"lexlingo/config"
	"lexlingo/database"
	"lexlingo/realtime"
	adminRoutes "lexlingo/routers/adminRoutes"
	authRoutes "lexlingo/routers/authRoutes"
	contentRoutes "lexlingo/routers/contentRoutes"
	lessonRoutes "lexlingo/routers/lessonRoutes"
	progressRoutes "lexlingo/routers/progressRoutes"
	"lexlingo/scheduler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	realtime.Connect(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword)

	scheduler.New().Start()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	progressRoutes.SetupProgressRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
