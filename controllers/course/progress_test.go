package controllers_test

import (
	"fmt"
	"testing"

	courseModels "impulsatech/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordProgressUpsert(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createTestUser(t, db, "ADMIN")
	user, userToken := createTestUser(t, db, "USER")
	category := createTestCategory(t, db)

	courseID := createCourseViaAPI(t, app, adminToken, courseBody(category.ID, "L1"))
	lesson := courseLessons(t, db, courseID)[0]
	path := fmt.Sprintf("/lessons/%d/progress", lesson.ID)

	status, _ := doRequest(t, app, "POST", path, userToken, fiber.Map{"completed": false, "percent_viewed": 30})
	require.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, "POST", path, userToken, fiber.Map{"completed": true, "percent_viewed": 80})
	require.Equal(t, fiber.StatusOK, status)

	// Exactly one row with the second call's values
	var rows []courseModels.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Completed)
	assert.Equal(t, 80, rows[0].PercentViewed)
}

func TestRecordProgressReturnsNewCoursePercentage(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createTestUser(t, db, "ADMIN")
	_, userToken := createTestUser(t, db, "USER")
	category := createTestCategory(t, db)

	courseID := createCourseViaAPI(t, app, adminToken, courseBody(category.ID, "L1", "L2"))
	lessons := courseLessons(t, db, courseID)

	status, _ := doRequest(t, app, "POST", fmt.Sprintf("/courses/%d/enroll", courseID), userToken, nil)
	require.Equal(t, fiber.StatusCreated, status)

	status, payload := doRequest(t, app, "POST", fmt.Sprintf("/lessons/%d/progress", lessons[0].ID), userToken,
		fiber.Map{"completed": true, "percent_viewed": 100})
	require.Equal(t, fiber.StatusOK, status)

	data := responseData(t, payload)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(50), data["new_progress"])

	status, payload = doRequest(t, app, "GET", fmt.Sprintf("/courses/%d/progress", courseID), userToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	data = responseData(t, payload)
	assert.Equal(t, float64(50), data["percent_complete"])
	assert.Equal(t, float64(1), data["completed_lessons"])
	assert.Equal(t, float64(2), data["total_lessons"])
}

func TestViewedPercentageAloneDoesNotComplete(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createTestUser(t, db, "ADMIN")
	_, userToken := createTestUser(t, db, "USER")
	category := createTestCategory(t, db)

	courseID := createCourseViaAPI(t, app, adminToken, courseBody(category.ID, "L1"))
	lesson := courseLessons(t, db, courseID)[0]

	// Fully viewed but not explicitly completed: the client owns the trigger
	status, _ := doRequest(t, app, "POST", fmt.Sprintf("/lessons/%d/progress", lesson.ID), userToken,
		fiber.Map{"completed": false, "percent_viewed": 100})
	require.Equal(t, fiber.StatusOK, status)

	status, payload := doRequest(t, app, "GET", fmt.Sprintf("/courses/%d/progress", courseID), userToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(0), responseData(t, payload)["percent_complete"])
}

func TestProgressZeroLessonsCourse(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createTestUser(t, db, "ADMIN")
	_, userToken := createTestUser(t, db, "USER")
	category := createTestCategory(t, db)

	courseID := createCourseViaAPI(t, app, adminToken, courseBody(category.ID))

	status, payload := doRequest(t, app, "GET", fmt.Sprintf("/courses/%d/progress", courseID), userToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	data := responseData(t, payload)
	assert.Equal(t, float64(0), data["percent_complete"])
	assert.Equal(t, float64(0), data["total_lessons"])
}

func TestProgressAnonymousDefaults(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createTestUser(t, db, "ADMIN")
	_, userToken := createTestUser(t, db, "USER")
	category := createTestCategory(t, db)

	courseID := createCourseViaAPI(t, app, adminToken, courseBody(category.ID, "L1", "L2", "L3"))

	// One user's progress must not leak into the anonymous view
	lesson := courseLessons(t, db, courseID)[0]
	status, _ := doRequest(t, app, "POST", fmt.Sprintf("/lessons/%d/progress", lesson.ID), userToken,
		fiber.Map{"completed": true, "percent_viewed": 100})
	require.Equal(t, fiber.StatusOK, status)

	status, payload := doRequest(t, app, "GET", fmt.Sprintf("/courses/%d/progress", courseID), "", nil)
	require.Equal(t, fiber.StatusOK, status)

	data := responseData(t, payload)
	assert.Equal(t, float64(0), data["percent_complete"])
	assert.Equal(t, float64(0), data["completed_lessons"])
	assert.Equal(t, float64(3), data["total_lessons"])
}

func TestAnonymousProgressStoreFailure(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createTestUser(t, db, "ADMIN")
	category := createTestCategory(t, db)
	courseID := createCourseViaAPI(t, app, adminToken, courseBody(category.ID, "L1"))

	// A failing lesson count must surface as a server error, not zero totals
	require.NoError(t, db.Migrator().DropTable(&courseModels.Lesson{}))

	status, _ := doRequest(t, app, "GET", fmt.Sprintf("/courses/%d/progress", courseID), "", nil)
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestRecordProgressClampsPercentViewed(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createTestUser(t, db, "ADMIN")
	user, userToken := createTestUser(t, db, "USER")
	category := createTestCategory(t, db)

	courseID := createCourseViaAPI(t, app, adminToken, courseBody(category.ID, "L1"))
	lesson := courseLessons(t, db, courseID)[0]

	status, _ := doRequest(t, app, "POST", fmt.Sprintf("/lessons/%d/progress", lesson.ID), userToken,
		fiber.Map{"completed": false, "percent_viewed": 150})
	require.Equal(t, fiber.StatusOK, status)

	var progress courseModels.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", user.ID, lesson.ID).First(&progress).Error)
	assert.Equal(t, 100, progress.PercentViewed)
}

func TestRecordProgressUnknownLesson(t *testing.T) {
	app, db := setupTestApp(t)
	_, userToken := createTestUser(t, db, "USER")

	status, _ := doRequest(t, app, "POST", "/lessons/9999/progress", userToken,
		fiber.Map{"completed": true, "percent_viewed": 100})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRecordProgressRequiresAuth(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createTestUser(t, db, "ADMIN")
	category := createTestCategory(t, db)

	courseID := createCourseViaAPI(t, app, adminToken, courseBody(category.ID, "L1"))
	lesson := courseLessons(t, db, courseID)[0]

	status, _ := doRequest(t, app, "POST", fmt.Sprintf("/lessons/%d/progress", lesson.ID), "",
		fiber.Map{"completed": true, "percent_viewed": 100})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
