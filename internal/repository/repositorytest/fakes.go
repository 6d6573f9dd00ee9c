// Package repositorytest provides in-memory repository implementations for
// service and handler tests. The fakes mirror the SQL implementations'
// observable behavior, including pgx.ErrNoRows on row misses.
package repositorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/interaction-service/internal/domain"
	"github.com/spec-kit/interaction-service/internal/repository"
)

// FakeStaffRepository is an in-memory StaffRepository.
type FakeStaffRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.StaffMember
}

// NewFakeStaffRepository builds an empty fake.
func NewFakeStaffRepository() *FakeStaffRepository {
	return &FakeStaffRepository{rows: make(map[int64]domain.StaffMember)}
}

func (f *FakeStaffRepository) ListActive(_ context.Context) ([]domain.StaffMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.StaffMember
	for _, member := range f.rows {
		if member.Active {
			result = append(result, member)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (f *FakeStaffRepository) GetByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &member, nil
}

func (f *FakeStaffRepository) Create(_ context.Context, member *domain.StaffMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	member.ID = f.nextID
	member.CreatedAt = time.Now()
	member.UpdatedAt = member.CreatedAt
	f.rows[member.ID] = *member
	return nil
}

func (f *FakeStaffRepository) Update(_ context.Context, member *domain.StaffMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.rows[member.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	member.CreatedAt = existing.CreatedAt
	member.UpdatedAt = laterThan(existing.UpdatedAt)
	f.rows[member.ID] = *member
	return nil
}

func (f *FakeStaffRepository) Deactivate(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.rows[id]
	if !ok {
		return pgx.ErrNoRows
	}
	member.Active = false
	member.UpdatedAt = laterThan(member.UpdatedAt)
	f.rows[id] = member
	return nil
}

func (f *FakeStaffRepository) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

func (f *FakeStaffRepository) CreateBatch(ctx context.Context, members []domain.StaffMember) error {
	for i := range members {
		if err := f.Create(ctx, &members[i]); err != nil {
			return err
		}
	}
	return nil
}

// FakeTagRepository is an in-memory TagRepository.
type FakeTagRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   []domain.RequirementTag
}

// NewFakeTagRepository builds an empty fake.
func NewFakeTagRepository() *FakeTagRepository {
	return &FakeTagRepository{}
}

func (f *FakeTagRepository) ListActive(_ context.Context) ([]domain.RequirementTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.RequirementTag
	for _, tag := range f.rows {
		if tag.Active {
			result = append(result, tag)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (f *FakeTagRepository) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

func (f *FakeTagRepository) CreateBatch(_ context.Context, tags []domain.RequirementTag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, tag := range tags {
		f.nextID++
		tag.ID = f.nextID
		f.rows = append(f.rows, tag)
	}
	return nil
}

// FakeInteractionRepository is an in-memory InteractionRepository. When Staff
// is set, assignee names are resolved against it on reads, active or not,
// matching the LEFT JOIN in the SQL implementation.
type FakeInteractionRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Interaction

	Staff *FakeStaffRepository
}

// NewFakeInteractionRepository builds an empty fake.
func NewFakeInteractionRepository() *FakeInteractionRepository {
	return &FakeInteractionRepository{rows: make(map[int64]domain.Interaction)}
}

func (f *FakeInteractionRepository) Create(_ context.Context, interaction *domain.Interaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	interaction.ID = f.nextID
	interaction.CreatedAt = time.Now()
	interaction.UpdatedAt = interaction.CreatedAt
	f.rows[interaction.ID] = cloneInteraction(*interaction)
	return nil
}

func (f *FakeInteractionRepository) GetByID(ctx context.Context, id int64) (*domain.Interaction, error) {
	f.mu.Lock()
	row, ok := f.rows[id]
	f.mu.Unlock()
	if !ok {
		return nil, pgx.ErrNoRows
	}
	result := cloneInteraction(row)
	f.resolveAssignee(ctx, &result)
	return &result, nil
}

func (f *FakeInteractionRepository) ListWithFilter(ctx context.Context, filter repository.InteractionFilter) ([]domain.Interaction, error) {
	matches := f.matching(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matches) {
		return nil, nil
	}
	matches = matches[offset:]
	if len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]domain.Interaction, 0, len(matches))
	for _, row := range matches {
		item := cloneInteraction(row)
		f.resolveAssignee(ctx, &item)
		result = append(result, item)
	}
	return result, nil
}

func (f *FakeInteractionRepository) CountWithFilter(_ context.Context, filter repository.InteractionFilter) (int64, error) {
	return int64(len(f.matching(filter))), nil
}

func (f *FakeInteractionRepository) UpdatePartial(_ context.Context, id int64, patch repository.InteractionPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return pgx.ErrNoRows
	}

	switch {
	case patch.ClearCustomerName:
		row.CustomerName = nil
	case patch.CustomerName != nil:
		row.CustomerName = patch.CustomerName
	}
	switch {
	case patch.ClearCustomerPhone:
		row.CustomerPhone = nil
	case patch.CustomerPhone != nil:
		row.CustomerPhone = patch.CustomerPhone
	}
	if patch.Type != nil {
		row.Type = *patch.Type
	}
	if patch.Status != nil {
		row.Status = *patch.Status
	}
	if patch.Requirement != nil {
		row.Requirement = *patch.Requirement
	}
	if patch.Tags != nil {
		row.RequirementTags = domain.DecodeTags(ptr(domain.EncodeTags(*patch.Tags)))
	}
	switch {
	case patch.ClearNotes:
		row.Notes = nil
	case patch.Notes != nil:
		row.Notes = patch.Notes
	}
	switch {
	case patch.ClearAssignedTo:
		row.AssignedToID = nil
	case patch.AssignedToID != nil:
		row.AssignedToID = patch.AssignedToID
	}

	row.UpdatedAt = laterThan(row.UpdatedAt)
	f.rows[id] = cloneInteraction(row)
	return nil
}

func (f *FakeInteractionRepository) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.rows, id)
	return nil
}

func (f *FakeInteractionRepository) CountByStatus(_ context.Context, status domain.InteractionStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, row := range f.rows {
		if row.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *FakeInteractionRepository) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, row := range f.rows {
		if !row.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (f *FakeInteractionRepository) matching(filter repository.InteractionFilter) []domain.Interaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []domain.Interaction
	for _, row := range f.rows {
		if filter.Status != nil && row.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && row.Type != *filter.Type {
			continue
		}
		if filter.AssignedToID != nil && (row.AssignedToID == nil || *row.AssignedToID != *filter.AssignedToID) {
			continue
		}
		matches = append(matches, row)
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].ID > matches[j].ID
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return matches
}

func (f *FakeInteractionRepository) resolveAssignee(ctx context.Context, interaction *domain.Interaction) {
	if f.Staff == nil || interaction.AssignedToID == nil {
		return
	}
	member, err := f.Staff.GetByID(ctx, *interaction.AssignedToID)
	if err != nil {
		return
	}
	interaction.AssignedToName = &member.Name
}

func cloneInteraction(in domain.Interaction) domain.Interaction {
	out := in
	if in.RequirementTags != nil {
		out.RequirementTags = append([]string(nil), in.RequirementTags...)
	}
	out.AssignedToName = nil
	return out
}

func laterThan(previous time.Time) time.Time {
	now := time.Now()
	if !now.After(previous) {
		return previous.Add(time.Nanosecond)
	}
	return now
}

func ptr[T any](v T) *T {
	return &v
}
