package service

import (
	"context"
	"strings"

	"github.com/spec-kit/interaction-service/internal/domain"
	"github.com/spec-kit/interaction-service/internal/repository"
	apperrors "github.com/spec-kit/interaction-service/pkg/util/errorutil"
)

// StaffService manages the RSO directory.
type StaffService struct {
	staff repository.StaffRepository
}

// StaffDependencies encapsulates repo requirements for the directory service.
type StaffDependencies struct {
	StaffRepo repository.StaffRepository
}

// NewStaffService constructs the service.
func NewStaffService(deps StaffDependencies) *StaffService {
	return &StaffService{staff: deps.StaffRepo}
}

// StaffCreateInput carries creation parameters; only Name is required.
type StaffCreateInput struct {
	Name         string
	EmployeeCode *string
	Phone        *string
}

// StaffUpdateInput carries full-replace update parameters. Active defaults
// to true when the caller leaves it unset.
type StaffUpdateInput struct {
	Name         string
	EmployeeCode *string
	Phone        *string
	Active       *bool
}

// List returns active members ordered by name.
func (s *StaffService) List(ctx context.Context) ([]domain.StaffMember, error) {
	members, err := s.staff.ListActive(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return members, nil
}

// Get fetches one member regardless of active flag.
func (s *StaffService) Get(ctx context.Context, id int64) (*domain.StaffMember, error) {
	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		return nil, mapStaffError(err)
	}
	return member, nil
}

// Create adds a new active member.
func (s *StaffService) Create(ctx context.Context, input StaffCreateInput) (*domain.StaffMember, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	member := &domain.StaffMember{
		Name:         input.Name,
		EmployeeCode: input.EmployeeCode,
		Phone:        input.Phone,
		Active:       true,
	}
	if err := s.staff.Create(ctx, member); err != nil {
		return nil, apperrors.MapError(err)
	}
	return member, nil
}

// Update replaces name, employee code, phone, and active flag.
func (s *StaffService) Update(ctx context.Context, id int64, input StaffUpdateInput) (*domain.StaffMember, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}
	member := &domain.StaffMember{
		ID:           id,
		Name:         input.Name,
		EmployeeCode: input.EmployeeCode,
		Phone:        input.Phone,
		Active:       active,
	}
	if err := s.staff.Update(ctx, member); err != nil {
		return nil, mapStaffError(err)
	}
	return member, nil
}

// Delete soft-deletes: the member drops out of active listings but the row
// survives so interaction references keep resolving.
func (s *StaffService) Delete(ctx context.Context, id int64) error {
	if err := s.staff.Deactivate(ctx, id); err != nil {
		return mapStaffError(err)
	}
	return nil
}

func mapStaffError(err error) error {
	de := apperrors.ToDomainError(err)
	if de.Code == "NOT_FOUND" {
		return apperrors.NewNotFound("RSO", nil)
	}
	return de
}
