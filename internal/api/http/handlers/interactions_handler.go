package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/interaction-service/internal/api/dto"
	"github.com/spec-kit/interaction-service/internal/domain"
	"github.com/spec-kit/interaction-service/internal/repository"
	"github.com/spec-kit/interaction-service/internal/service"
	apperrors "github.com/spec-kit/interaction-service/pkg/util/errorutil"
)

// InteractionsHandler manages interaction endpoints.
type InteractionsHandler struct {
	service *service.InteractionService
}

// NewInteractionsHandler constructs handler.
func NewInteractionsHandler(interactionService *service.InteractionService) *InteractionsHandler {
	return &InteractionsHandler{service: interactionService}
}

// List GET /api/interactions.
func (h *InteractionsHandler) List(c *fiber.Ctx) error {
	filter, err := parseInteractionQuery(c)
	if err != nil {
		return err
	}

	items, total, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}

	data := make([]dto.InteractionResponse, 0, len(items))
	for i := range items {
		data = append(data, interactionResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": data, "total": total})
}

// Create POST /api/interactions.
func (h *InteractionsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInteractionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	interaction, err := h.service.Create(c.Context(), service.InteractionCreateInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Type:            req.Type,
		Status:          req.Status,
		Requirement:     req.Requirement,
		RequirementTags: req.RequirementTags,
		Notes:           req.Notes,
		AssignedToID:    req.AssignedToID,
		CreatedByID:     req.CreatedByID,
		InteractionDate: req.InteractionDate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": interactionResponse(interaction)})
}

// Get GET /api/interactions/:id.
func (h *InteractionsHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "interaction")
	if err != nil {
		return err
	}
	interaction, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": interactionResponse(interaction)})
}

// Update PUT /api/interactions/:id.
func (h *InteractionsHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "interaction")
	if err != nil {
		return err
	}

	var req dto.UpdateInteractionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	interaction, err := h.service.Update(c.Context(), id, interactionPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": interactionResponse(interaction)})
}

// Delete DELETE /api/interactions/:id.
func (h *InteractionsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "interaction")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Stats GET /api/interactions/stats.
func (h *InteractionsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StatsResponse{
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		Today:      stats.Today,
	}})
}

func parseInteractionQuery(c *fiber.Ctx) (repository.InteractionFilter, error) {
	filter := repository.InteractionFilter{
		Limit:  c.QueryInt("limit", repository.DefaultListLimit),
		Offset: c.QueryInt("offset", 0),
	}

	if status := c.Query("status"); status != "" && status != "all" {
		parsed := domain.InteractionStatus(status)
		filter.Status = &parsed
	}
	if interactionType := c.Query("type"); interactionType != "" {
		parsed := domain.InteractionType(interactionType)
		filter.Type = &parsed
	}
	if raw := c.Query("assignedToId"); raw != "" {
		assignedToID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, apperrors.NewValidationError("assignedToId must be an integer", nil)
		}
		filter.AssignedToID = &assignedToID
	}
	return filter, nil
}

func interactionPatch(req dto.UpdateInteractionRequest) repository.InteractionPatch {
	patch := repository.InteractionPatch{}

	if req.CustomerName.Set {
		if req.CustomerName.Value == nil {
			patch.ClearCustomerName = true
		} else {
			patch.CustomerName = req.CustomerName.Value
		}
	}
	if req.CustomerPhone.Set {
		if req.CustomerPhone.Value == nil {
			patch.ClearCustomerPhone = true
		} else {
			patch.CustomerPhone = req.CustomerPhone.Value
		}
	}
	if req.Type != nil {
		parsed := domain.InteractionType(*req.Type)
		patch.Type = &parsed
	}
	if req.Status != nil {
		parsed := domain.InteractionStatus(*req.Status)
		patch.Status = &parsed
	}
	if req.Requirement != nil {
		patch.Requirement = req.Requirement
	}
	if req.RequirementTags.Set {
		tags := req.RequirementTags.Value
		patch.Tags = &tags
	}
	if req.Notes.Set {
		if req.Notes.Value == nil {
			patch.ClearNotes = true
		} else {
			patch.Notes = req.Notes.Value
		}
	}
	if req.AssignedToID.Set {
		if req.AssignedToID.Value == nil {
			patch.ClearAssignedTo = true
		} else {
			patch.AssignedToID = req.AssignedToID.Value
		}
	}
	return patch
}

func interactionResponse(interaction *domain.Interaction) dto.InteractionResponse {
	tags := interaction.RequirementTags
	if tags == nil {
		tags = []string{}
	}
	return dto.InteractionResponse{
		ID:              interaction.ID,
		CustomerName:    interaction.CustomerName,
		CustomerPhone:   interaction.CustomerPhone,
		Type:            interaction.Type,
		Status:          interaction.Status,
		Requirement:     interaction.Requirement,
		RequirementTags: tags,
		Notes:           interaction.Notes,
		AssignedToID:    interaction.AssignedToID,
		AssignedToName:  interaction.AssignedToName,
		CreatedByID:     interaction.CreatedByID,
		InteractionDate: interaction.InteractionDate,
		CreatedAt:       interaction.CreatedAt,
		UpdatedAt:       interaction.UpdatedAt,
	}
}

// parseIDParam treats a malformed id the same as a missing row: the path
// does not resolve to a record.
func parseIDParam(c *fiber.Ctx, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewNotFound(resource, nil)
	}
	return id, nil
}
