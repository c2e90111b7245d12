package partnerRoutes

import (
	partnerController "impulsatech/controllers/partner"
	"impulsatech/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupPartnerRoutes sets up public partner listing and admin partner management
func SetupPartnerRoutes(app *fiber.App, db *gorm.DB) {
	h := partnerController.NewHandler(db)

	app.Get("/partners", h.ListPartners)
	app.Get("/partners/:id", h.GetPartner)

	adminGroup := app.Group("/admin/partners", middleware.JWTMiddleware, middleware.AdminOnly)
	adminGroup.Post("/", h.CreatePartner)
	adminGroup.Delete("/:id", h.DeletePartner)
}
