package courseRoutes

import (
	controllers "impulsatech/controllers/course"
	"impulsatech/middleware"
	validators "impulsatech/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupCourseRoutes sets up all user-facing course routes. Reads that only
// annotate per-user state use the optional token middleware so anonymous
// callers degrade to defaults instead of errors.
func SetupCourseRoutes(app *fiber.App, db *gorm.DB) {
	h := controllers.NewHandler(db)

	courseGroup := app.Group("/courses")

	// Catalog
	courseGroup.Get("/", h.ListCourses)
	courseGroup.Get("/:id", middleware.OptionalJWTMiddleware, validators.CourseID(), h.GetCourseDetails)
	courseGroup.Get("/:id/lessons", middleware.OptionalJWTMiddleware, validators.CourseID(), h.GetCourseLessons)

	// Enrollment
	courseGroup.Get("/:id/enrolled", middleware.OptionalJWTMiddleware, validators.CourseID(), h.CheckEnrollment)
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), h.EnrollInCourse)

	// Progress tracking
	courseGroup.Get("/:id/progress", middleware.OptionalJWTMiddleware, validators.CourseID(), h.GetCourseProgress)

	lessonGroup := app.Group("/lessons")
	lessonGroup.Get("/:id", middleware.OptionalJWTMiddleware, validators.LessonID(), h.GetLessonDetails)
	lessonGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.LessonID(), validators.RecordProgress(), h.RecordLessonProgress)

	app.Get("/my-courses", middleware.JWTMiddleware, h.GetMyCourses)
}
