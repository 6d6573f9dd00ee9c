package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/interaction-service/internal/api/dto"
	"github.com/spec-kit/interaction-service/internal/domain"
	"github.com/spec-kit/interaction-service/internal/service"
	apperrors "github.com/spec-kit/interaction-service/pkg/util/errorutil"
)

// StaffHandler manages RSO directory endpoints.
type StaffHandler struct {
	service *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{service: staffService}
}

// List GET /api/rsos.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	members, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	data := make([]dto.RSOResponse, 0, len(members))
	for i := range members {
		data = append(data, rsoResponse(&members[i]))
	}
	return c.JSON(fiber.Map{"data": data})
}

// Create POST /api/rsos.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRSORequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	member, err := h.service.Create(c.Context(), service.StaffCreateInput{
		Name:         req.Name,
		EmployeeCode: req.EmployeeCode,
		Phone:        req.Phone,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": rsoResponse(member)})
}

// Get GET /api/rsos/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "RSO")
	if err != nil {
		return err
	}
	member, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rsoResponse(member)})
}

// Update PUT /api/rsos/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "RSO")
	if err != nil {
		return err
	}
	var req dto.UpdateRSORequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	member, err := h.service.Update(c.Context(), id, service.StaffUpdateInput{
		Name:         req.Name,
		EmployeeCode: req.EmployeeCode,
		Phone:        req.Phone,
		Active:       req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rsoResponse(member)})
}

// Delete DELETE /api/rsos/:id. Soft delete: the row survives.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "RSO")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func rsoResponse(member *domain.StaffMember) dto.RSOResponse {
	return dto.RSOResponse{
		ID:           member.ID,
		Name:         member.Name,
		EmployeeCode: member.EmployeeCode,
		Phone:        member.Phone,
		IsActive:     member.Active,
		CreatedAt:    member.CreatedAt,
		UpdatedAt:    member.UpdatedAt,
	}
}
