package main

import (
	"log"

	"impulsatech/config"
	"impulsatech/database"
	authRoutes "impulsatech/routers/authRoutes"
	categoryRoutes "impulsatech/routers/categoryRoutes"
	courseRoutes "impulsatech/routers/courseRoutes"
	partnerRoutes "impulsatech/routers/partnerRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Database handle unavailable: %v", err)
	}
	defer sqlDB.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}
	if err := database.SeedAdmin(db, config.AppConfig); err != nil {
		log.Fatalf("Admin seeding failed: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, db)
	categoryRoutes.SetupCategoryRoutes(app, db)
	partnerRoutes.SetupPartnerRoutes(app, db)
	courseRoutes.SetupCourseRoutes(app, db)
	courseRoutes.SetupAdminCourseRoutes(app, db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)

	// log.Fatal would skip the deferred pool close
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
