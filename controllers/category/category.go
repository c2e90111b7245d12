package categoryController

import (
	"errors"
	"log"
	"strings"

	"impulsatech/middleware"
	"impulsatech/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

type categoryInput struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// ListCategories returns active categories ordered by name. Public.
func (h *Handler) ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := h.DB.Where("active = ?", true).Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": categories,
	})
}

// CreateCategory creates a new category (admin)
func (h *Handler) CreateCategory(c *fiber.Ctx) error {
	reqData := new(categoryInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Name) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name is required!", nil)
	}

	category := models.Category{
		Name:        reqData.Name,
		Icon:        reqData.Icon,
		Description: reqData.Description,
		Active:      true,
	}
	if category.Icon == "" {
		category.Icon = "📚"
	}

	if err := h.DB.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Category already exists!", nil)
		}
		log.Printf("Error creating category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// UpdateCategory updates a category's name, icon and description (admin)
func (h *Handler) UpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
	}

	var category models.Category
	if err := h.DB.Where("id = ?", id).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	reqData := new(categoryInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if strings.TrimSpace(reqData.Name) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name is required!", nil)
	}

	category.Name = reqData.Name
	category.Icon = reqData.Icon
	category.Description = reqData.Description

	if err := h.DB.Save(&category).Error; err != nil {
		log.Printf("Error updating category %d: %v", category.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

// DeleteCategory soft deletes a category (admin)
func (h *Handler) DeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Category ID!", nil)
	}

	var category models.Category
	if err := h.DB.Where("id = ?", id).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	category.Active = false
	if err := h.DB.Save(&category).Error; err != nil {
		log.Printf("Error deactivating category %d: %v", category.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully!", nil)
}
