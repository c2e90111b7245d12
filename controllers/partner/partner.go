package partnerController

import (
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

type partnerInput struct {
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
}

// ListPartners returns active partners ordered by name. Public.
func (h *Handler) ListPartners(c *fiber.Ctx) error {
	var partners []models.Partner
	if err := h.DB.Where("active = ?", true).Order("name asc").Find(&partners).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch partners!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partners fetched successfully!", fiber.Map{
		"partners": partners,
	})
}

// GetPartner returns one partner by id. Detail pages stay reachable for
// inactive partners so existing members keep their agreement info.
func (h *Handler) GetPartner(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Partner ID!", nil)
	}

	var partner models.Partner
	if err := h.DB.Where("id = ?", id).First(&partner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner fetched successfully!", fiber.Map{
		"partner": partner,
	})
}

// CreatePartner creates a new partner agreement (admin)
func (h *Handler) CreatePartner(c *fiber.Ctx) error {
	reqData := new(partnerInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Name) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Name is required!", nil)
	}

	partner := models.Partner{
		Name:        reqData.Name,
		LogoURL:     reqData.LogoURL,
		Description: reqData.Description,
		Active:      true,
	}

	if err := h.DB.Create(&partner).Error; err != nil {
		log.Printf("Error creating partner: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create partner!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Partner created successfully!", partner)
}

// DeletePartner removes a partner agreement (admin). Removal is permanent;
// there is no edit flow that could bring an agreement back.
func (h *Handler) DeletePartner(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Partner ID!", nil)
	}

	var partner models.Partner
	if err := h.DB.Where("id = ?", id).First(&partner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Partner not found!", nil)
	}

	if err := h.DB.Unscoped().Delete(&partner).Error; err != nil {
		log.Printf("Error deleting partner %d: %v", partner.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete partner!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Partner deleted successfully!", nil)
}
