package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"impulsatech/config"
	"impulsatech/database"
	"impulsatech/middleware"
	"impulsatech/models"
	courseModels "impulsatech/models/course"
	authRoutes "impulsatech/routers/authRoutes"
	categoryRoutes "impulsatech/routers/categoryRoutes"
	courseRoutes "impulsatech/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestApp builds the full route surface against a fresh in-memory
// database so tests stay isolated from each other
func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		Port:      "3000",
		JWTKey:    "test-secret-key",
		SaltRound: bcrypt.MinCost,
	}

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, db)
	categoryRoutes.SetupCategoryRoutes(app, db)
	courseRoutes.SetupCourseRoutes(app, db)
	courseRoutes.SetupAdminCourseRoutes(app, db)

	return app, db
}

func createTestUser(t *testing.T, db *gorm.DB, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     "Test " + role,
		Email:    uuid.NewString() + "@example.com",
		Role:     role,
		Password: string(hashed),
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	return user, token
}

func createTestCategory(t *testing.T, db *gorm.DB) models.Category {
	t.Helper()

	category := models.Category{Name: "Category " + uuid.NewString(), Active: true}
	require.NoError(t, db.Create(&category).Error)
	return category
}

// courseBody builds an authoring payload with the given lesson titles
func courseBody(categoryID uint, lessonTitles ...string) fiber.Map {
	lessons := make([]fiber.Map, len(lessonTitles))
	for i, title := range lessonTitles {
		lessons[i] = fiber.Map{
			"title":     title,
			"video_url": "https://videos.example.com/" + title,
		}
	}
	return fiber.Map{
		"title":       "Intro to X",
		"subtitle":    "From zero",
		"description": "A course about X",
		"company":     "Acme Academy",
		"category_id": categoryID,
		"banner_url":  "https://cdn.example.com/banner.png",
		"periods": []fiber.Map{
			{"name": "Week 1", "duration": "1 week"},
			{"name": "Week 2", "duration": "1 week"},
		},
		"learning_objectives": []string{"Understand X", "Apply X", "Master X"},
		"lessons":             lessons,
	}
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	payload := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}

	return resp.StatusCode, payload
}

func responseData(t *testing.T, payload map[string]interface{}) map[string]interface{} {
	t.Helper()

	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok, "expected data object in response, got %v", payload)
	return data
}

// createCourseViaAPI creates a course through the admin endpoint and returns its id
func createCourseViaAPI(t *testing.T, app *fiber.App, adminToken string, body fiber.Map) uint {
	t.Helper()

	status, payload := doRequest(t, app, "POST", "/admin/courses/", adminToken, body)
	require.Equal(t, fiber.StatusCreated, status, "create course failed: %v", payload)

	id, ok := responseData(t, payload)["course_id"].(float64)
	require.True(t, ok)
	return uint(id)
}

func courseLessons(t *testing.T, db *gorm.DB, courseID uint) []courseModels.Lesson {
	t.Helper()

	var lessons []courseModels.Lesson
	require.NoError(t, db.Where("course_id = ?", courseID).Order("order_index asc").Find(&lessons).Error)
	return lessons
}
