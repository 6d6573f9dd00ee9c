package events

import (
	"time"

	"github.com/spec-kit/interaction-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventInteractionCreated       EventType = "interaction_created"
	EventInteractionStatusChanged EventType = "interaction_status_changed"
	EventInteractionAssigned      EventType = "interaction_assigned"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	InteractionID int64       `json:"interaction_id"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// InteractionCreatedPayload payload.
type InteractionCreatedPayload struct {
	Type         domain.InteractionType   `json:"type"`
	Status       domain.InteractionStatus `json:"status"`
	AssignedToID *int64                   `json:"assigned_to_id,omitempty"`
	CreatedByID  *int64                   `json:"created_by_id,omitempty"`
}

// InteractionStatusChangedPayload payload.
type InteractionStatusChangedPayload struct {
	OldStatus domain.InteractionStatus `json:"old_status"`
	NewStatus domain.InteractionStatus `json:"new_status"`
}

// InteractionAssignedPayload payload.
type InteractionAssignedPayload struct {
	OldAssignedToID *int64 `json:"old_assigned_to_id,omitempty"`
	NewAssignedToID *int64 `json:"new_assigned_to_id,omitempty"`
}
