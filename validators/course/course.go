package courseValidator

import (
	"strconv"
	"strings"

	"impulsatech/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseInput is the full authoring payload. The caller's array order is
// authoritative: each child is stored with its 0-based position as order.
type CourseInput struct {
	Title              string        `json:"title"`
	Subtitle           string        `json:"subtitle"`
	Description        string        `json:"description"`
	Company            string        `json:"company"`
	CategoryID         uint          `json:"category_id"`
	LogoIcon           string        `json:"logo_icon"`
	BannerURL          string        `json:"banner_url"`
	VideoURL           string        `json:"video_url"`
	Periods            []PeriodInput `json:"periods"`
	LearningObjectives []string      `json:"learning_objectives"`
	Lessons            []LessonInput `json:"lessons"`
}

type PeriodInput struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// LessonInput carries an optional id: updates match existing lessons by it,
// items without one (or with an unknown one) are inserted as new lessons.
type LessonInput struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ProgressInput is the per-lesson progress event body
type ProgressInput struct {
	Completed     bool `json:"completed"`
	PercentViewed int  `json:"percent_viewed"`
}

func CourseBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.CategoryID == 0 {
			errors["category_id"] = "Category is required!"
		}

		if len(errors) > 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title and category are required!", errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}

func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Lesson ID!", nil)
		}

		c.Locals("lessonID", id)
		return c.Next()
	}
}

func RecordProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressInput)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Player position reports are caller-supplied; clamp instead of reject
		if reqData.PercentViewed < 0 {
			reqData.PercentViewed = 0
		}
		if reqData.PercentViewed > 100 {
			reqData.PercentViewed = 100
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
