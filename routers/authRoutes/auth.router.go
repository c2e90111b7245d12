package authRoutes

import (
	authController "impulsatech/controllers/auth"
	authValidator "impulsatech/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAuthRoutes sets up registration and login routes
func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	h := authController.NewHandler(db)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", authValidator.Register(), h.Register)
	authGroup.Post("/login", authValidator.Login(), h.Login)
}
