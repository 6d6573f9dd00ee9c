package dto

import (
	"time"

	"github.com/spec-kit/interaction-service/internal/domain"
)

// CreateInteractionRequest payload.
type CreateInteractionRequest struct {
	CustomerName    *string                  `json:"customerName"`
	CustomerPhone   *string                  `json:"customerPhone"`
	Type            domain.InteractionType   `json:"type"`
	Status          domain.InteractionStatus `json:"status"`
	Requirement     string                   `json:"requirement"`
	RequirementTags []string                 `json:"requirementTags"`
	Notes           *string                  `json:"notes"`
	AssignedToID    *int64                   `json:"assignedToId"`
	CreatedByID     *int64                   `json:"createdById"`
	InteractionDate *time.Time               `json:"interactionDate"`
}

// UpdateInteractionRequest payload. Every field is independently optional;
// explicit nulls clear nullable fields.
type UpdateInteractionRequest struct {
	CustomerName    NullableString      `json:"customerName"`
	CustomerPhone   NullableString      `json:"customerPhone"`
	Type            *string             `json:"type"`
	Status          *string             `json:"status"`
	Requirement     *string             `json:"requirement"`
	RequirementTags NullableStringSlice `json:"requirementTags"`
	Notes           NullableString      `json:"notes"`
	AssignedToID    NullableInt64       `json:"assignedToId"`
}

// InteractionResponse envelope item.
type InteractionResponse struct {
	ID              int64                    `json:"id"`
	CustomerName    *string                  `json:"customerName"`
	CustomerPhone   *string                  `json:"customerPhone"`
	Type            domain.InteractionType   `json:"type"`
	Status          domain.InteractionStatus `json:"status"`
	Requirement     string                   `json:"requirement"`
	RequirementTags []string                 `json:"requirementTags"`
	Notes           *string                  `json:"notes"`
	AssignedToID    *int64                   `json:"assignedToId"`
	AssignedToName  *string                  `json:"assignedToName"`
	CreatedByID     *int64                   `json:"createdById"`
	InteractionDate time.Time                `json:"interactionDate"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// StatsResponse carries the four dashboard counts.
type StatsResponse struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Today      int64 `json:"today"`
}
