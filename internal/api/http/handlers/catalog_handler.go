package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/interaction-service/internal/api/dto"
	"github.com/spec-kit/interaction-service/internal/domain"
	"github.com/spec-kit/interaction-service/internal/service"
)

// CatalogHandler serves the requirement-tag catalog and the seed endpoint.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: catalogService}
}

// ListTags GET /api/tags.
func (h *CatalogHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.service.ListTags(c.Context())
	if err != nil {
		return err
	}
	data := make([]dto.TagResponse, 0, len(tags))
	for i := range tags {
		data = append(data, tagResponse(&tags[i]))
	}
	return c.JSON(fiber.Map{"data": data})
}

// Seed POST /api/seed.
func (h *CatalogHandler) Seed(c *fiber.Ctx) error {
	if err := h.service.Seed(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Database seeded successfully"})
}

func tagResponse(tag *domain.RequirementTag) dto.TagResponse {
	return dto.TagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		Category:  tag.Category,
		IsActive:  tag.Active,
		SortOrder: tag.SortOrder,
	}
}
