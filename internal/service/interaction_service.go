package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/interaction-service/internal/domain"
	"github.com/spec-kit/interaction-service/internal/events"
	"github.com/spec-kit/interaction-service/internal/repository"
	apperrors "github.com/spec-kit/interaction-service/pkg/util/errorutil"
)

// InteractionService coordinates the interaction lifecycle: creation,
// filtered listing, partial updates, hard deletes, and dashboard counts.
type InteractionService struct {
	interactions repository.InteractionRepository
	dispatcher   events.Dispatcher
}

// InteractionDependencies encapsulates requirements for the service.
type InteractionDependencies struct {
	InteractionRepo repository.InteractionRepository
	Dispatcher      events.Dispatcher
}

// NewInteractionService constructs the service.
func NewInteractionService(deps InteractionDependencies) *InteractionService {
	return &InteractionService{
		interactions: deps.InteractionRepo,
		dispatcher:   deps.Dispatcher,
	}
}

// InteractionCreateInput carries creation parameters. Type and Requirement
// are mandatory; everything else defaults per the data model.
type InteractionCreateInput struct {
	CustomerName    *string
	CustomerPhone   *string
	Type            domain.InteractionType
	Status          domain.InteractionStatus
	Requirement     string
	RequirementTags []string
	Notes           *string
	AssignedToID    *int64
	CreatedByID     *int64
	InteractionDate *time.Time
}

// InteractionStats carries the four dashboard counts. The counts come from
// independent queries and are not transactionally consistent with each other.
type InteractionStats struct {
	Pending    int64
	InProgress int64
	Completed  int64
	Today      int64
}

// List returns matching interactions (creation time descending, assignee name
// joined) plus the total match count independent of pagination.
func (s *InteractionService) List(ctx context.Context, filter repository.InteractionFilter) ([]domain.Interaction, int64, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, 0, apperrors.NewValidationError("invalid status filter", map[string]any{"status": *filter.Status})
	}
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, 0, apperrors.NewValidationError("invalid type filter", map[string]any{"type": *filter.Type})
	}

	items, err := s.interactions.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	total, err := s.interactions.CountWithFilter(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// Get fetches one interaction with its joined assignee name.
func (s *InteractionService) Get(ctx context.Context, id int64) (*domain.Interaction, error) {
	interaction, err := s.interactions.GetByID(ctx, id)
	if err != nil {
		return nil, mapInteractionError(err)
	}
	return interaction, nil
}

// Create validates and persists a new interaction. Status defaults to
// pending and the interaction date to now when omitted.
func (s *InteractionService) Create(ctx context.Context, input InteractionCreateInput) (*domain.Interaction, error) {
	if input.Type == "" || strings.TrimSpace(input.Requirement) == "" {
		return nil, apperrors.NewValidationError("type and requirement are required", nil)
	}
	if !input.Type.Valid() {
		return nil, apperrors.NewValidationError("invalid interaction type", map[string]any{"type": input.Type})
	}
	status := input.Status
	if status == "" {
		status = domain.InteractionStatusPending
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid interaction status", map[string]any{"status": status})
	}

	interactionDate := time.Now()
	if input.InteractionDate != nil {
		interactionDate = *input.InteractionDate
	}

	interaction := &domain.Interaction{
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		Type:            input.Type,
		Status:          status,
		Requirement:     input.Requirement,
		RequirementTags: input.RequirementTags,
		Notes:           input.Notes,
		AssignedToID:    input.AssignedToID,
		CreatedByID:     input.CreatedByID,
		InteractionDate: interactionDate,
	}
	if err := s.interactions.Create(ctx, interaction); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventInteractionCreated, interaction.ID, events.InteractionCreatedPayload{
		Type:         interaction.Type,
		Status:       interaction.Status,
		AssignedToID: interaction.AssignedToID,
		CreatedByID:  interaction.CreatedByID,
	})
	return interaction, nil
}

// Update applies a partial update. Fields absent from the patch stay
// untouched; the updated timestamp always refreshes.
func (s *InteractionService) Update(ctx context.Context, id int64, patch repository.InteractionPatch) (*domain.Interaction, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, apperrors.NewValidationError("invalid interaction type", map[string]any{"type": *patch.Type})
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, apperrors.NewValidationError("invalid interaction status", map[string]any{"status": *patch.Status})
	}
	if patch.Requirement != nil && strings.TrimSpace(*patch.Requirement) == "" {
		return nil, apperrors.NewValidationError("requirement cannot be empty", nil)
	}

	before, err := s.interactions.GetByID(ctx, id)
	if err != nil {
		return nil, mapInteractionError(err)
	}

	if err := s.interactions.UpdatePartial(ctx, id, patch); err != nil {
		return nil, mapInteractionError(err)
	}

	after, err := s.interactions.GetByID(ctx, id)
	if err != nil {
		return nil, mapInteractionError(err)
	}

	if after.Status != before.Status {
		s.publish(ctx, events.EventInteractionStatusChanged, id, events.InteractionStatusChangedPayload{
			OldStatus: before.Status,
			NewStatus: after.Status,
		})
	}
	if !int64PtrEqual(before.AssignedToID, after.AssignedToID) {
		s.publish(ctx, events.EventInteractionAssigned, id, events.InteractionAssignedPayload{
			OldAssignedToID: before.AssignedToID,
			NewAssignedToID: after.AssignedToID,
		})
	}
	return after, nil
}

// Delete removes the interaction permanently.
func (s *InteractionService) Delete(ctx context.Context, id int64) error {
	if err := s.interactions.Delete(ctx, id); err != nil {
		return mapInteractionError(err)
	}
	return nil
}

// Stats computes the four dashboard counts. The queries run concurrently;
// local midnight bounds the "today" count.
func (s *InteractionService) Stats(ctx context.Context) (*InteractionStats, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		stats InteractionStats
		wg    sync.WaitGroup
	)
	errs := make([]error, 4)

	collect := func(idx int, dst *int64, query func(context.Context) (int64, error)) {
		defer wg.Done()
		count, err := query(ctx)
		if err != nil {
			errs[idx] = err
			return
		}
		*dst = count
	}

	wg.Add(4)
	go collect(0, &stats.Pending, func(ctx context.Context) (int64, error) {
		return s.interactions.CountByStatus(ctx, domain.InteractionStatusPending)
	})
	go collect(1, &stats.InProgress, func(ctx context.Context) (int64, error) {
		return s.interactions.CountByStatus(ctx, domain.InteractionStatusInProgress)
	})
	go collect(2, &stats.Completed, func(ctx context.Context) (int64, error) {
		return s.interactions.CountByStatus(ctx, domain.InteractionStatusCompleted)
	})
	go collect(3, &stats.Today, func(ctx context.Context) (int64, error) {
		return s.interactions.CountCreatedSince(ctx, midnight)
	})
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, apperrors.MapError(err)
		}
	}
	return &stats, nil
}

func (s *InteractionService) publish(ctx context.Context, eventType events.EventType, interactionID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:            uuid.NewString(),
		Type:          eventType,
		InteractionID: interactionID,
		Timestamp:     time.Now(),
		Payload:       payload,
	})
}

func mapInteractionError(err error) error {
	de := apperrors.ToDomainError(err)
	if de.Code == "NOT_FOUND" {
		return apperrors.NewNotFound("interaction", nil)
	}
	return de
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
