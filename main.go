package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"dayflow-backend/config"
	"dayflow-backend/repository"
	"dayflow-backend/router"
	"dayflow-backend/seeder"

	_ "time/tzdata"
)

// @title Dayflow HR API
// @version 1.0
// @description REST API for the Dayflow HR application: authentication, attendance check-in, leave requests and the employee directory.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Authentication and profile endpoints
//
// @tag.name Users
// @tag.description Employee directory endpoints
//
// @tag.name Attendance
// @tag.description Attendance check-in endpoints
//
// @tag.name Leave
// @tag.description Leave request lifecycle endpoints
//
// @tag.name Admin
// @tag.description Admin only endpoints
func main() {
	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase(cfg)
	defer config.DisconnectDB()

	if cfg.SeedOnStart {
		seeder.SeedUsers(repository.NewUserRepository())
	}

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(logger.New())

	if err := router.SetupRoutes(app, cfg); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	log.Fatal(app.Listen(":" + cfg.Port))
}
