package courseRoutes

import (
	controllers "impulsatech/controllers/course"
	"impulsatech/middleware"
	validators "impulsatech/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupAdminCourseRoutes sets up admin course authoring routes
func SetupAdminCourseRoutes(app *fiber.App, db *gorm.DB) {
	h := controllers.NewHandler(db)

	adminGroup := app.Group("/admin/courses", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Post("/", validators.CourseBody(), h.AdminCreateCourse)
	adminGroup.Put("/:id", validators.CourseID(), validators.CourseBody(), h.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.CourseID(), h.AdminDeleteCourse)
	adminGroup.Delete("/:id/hard", validators.CourseID(), h.AdminHardDeleteCourse)
}
