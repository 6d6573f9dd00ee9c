package domain

import (
	"encoding/json"
	"time"
)

// InteractionType enumerates customer contact channels.
type InteractionType string

const (
	InteractionTypePhoneCall   InteractionType = "phone_call"
	InteractionTypeWhatsApp    InteractionType = "whatsapp"
	InteractionTypeWalkIn      InteractionType = "walk_in"
	InteractionTypeEmail       InteractionType = "email"
	InteractionTypeSocialMedia InteractionType = "social_media"
)

// Valid reports whether the value is a known interaction type.
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionTypePhoneCall, InteractionTypeWhatsApp, InteractionTypeWalkIn,
		InteractionTypeEmail, InteractionTypeSocialMedia:
		return true
	}
	return false
}

// InteractionStatus enumerates lifecycle states for interactions.
// Any status may be set from any other; there is no transition graph.
type InteractionStatus string

const (
	InteractionStatusPending    InteractionStatus = "pending"
	InteractionStatusInProgress InteractionStatus = "in_progress"
	InteractionStatusCompleted  InteractionStatus = "completed"
)

// Valid reports whether the value is a known status.
func (s InteractionStatus) Valid() bool {
	switch s {
	case InteractionStatusPending, InteractionStatusInProgress, InteractionStatusCompleted:
		return true
	}
	return false
}

// Interaction is one logged customer contact event.
type Interaction struct {
	ID              int64
	CustomerName    *string
	CustomerPhone   *string
	Type            InteractionType
	Status          InteractionStatus
	Requirement     string
	RequirementTags []string
	Notes           *string
	AssignedToID    *int64
	CreatedByID     *int64
	InteractionDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// AssignedToName is resolved by joining the assignee row; it is not a
	// column on the interactions table. Resolution survives soft-deleted
	// assignees because staff rows are never physically removed.
	AssignedToName *string
}

// EncodeTags serializes a tag list for the requirement_tags text column.
func EncodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	b, _ := json.Marshal(tags)
	return string(b)
}

// DecodeTags parses stored tag text. Absent, empty, or malformed input yields
// nil so a corrupt row degrades to "no tags" instead of failing the read.
func DecodeTags(raw *string) []string {
	if raw == nil || *raw == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(*raw), &tags); err != nil {
		return nil
	}
	return tags
}
