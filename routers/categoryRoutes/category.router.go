package categoryRoutes

import (
	categoryController "impulsatech/controllers/category"
	"impulsatech/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCategoryRoutes sets up public category listing and admin category management
func SetupCategoryRoutes(app *fiber.App, db *gorm.DB) {
	h := categoryController.NewHandler(db)

	app.Get("/categories", h.ListCategories)

	adminGroup := app.Group("/admin/categories", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/", h.CreateCategory)
	adminGroup.Put("/:id", h.UpdateCategory)
	adminGroup.Delete("/:id", h.DeleteCategory)
}
