package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/interaction-service/internal/domain"
	"github.com/spec-kit/interaction-service/internal/repository"
	apperrors "github.com/spec-kit/interaction-service/pkg/util/errorutil"
)

// CatalogService exposes the requirement-tag catalog and the idempotent
// seed operation for the default roster and tag set.
type CatalogService struct {
	tags   repository.TagRepository
	staff  repository.StaffRepository
	logger *zap.Logger
}

// CatalogDependencies encapsulates repo requirements for the catalog.
type CatalogDependencies struct {
	TagRepo   repository.TagRepository
	StaffRepo repository.StaffRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(deps CatalogDependencies, logger *zap.Logger) *CatalogService {
	return &CatalogService{tags: deps.TagRepo, staff: deps.StaffRepo, logger: logger}
}

// ListTags returns active tags ordered by sort order.
func (s *CatalogService) ListTags(ctx context.Context) ([]domain.RequirementTag, error) {
	tags, err := s.tags.ListActive(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tags, nil
}

// Seed inserts the default RSO roster and tag catalog, each only when its
// table is empty. The two checks are independent, and running Seed twice
// leaves the same rows as running it once.
func (s *CatalogService) Seed(ctx context.Context) error {
	staffCount, err := s.staff.Count(ctx)
	if err != nil {
		return apperrors.MapError(err)
	}
	if staffCount == 0 {
		if err := s.staff.CreateBatch(ctx, defaultStaffMembers()); err != nil {
			return apperrors.MapError(err)
		}
		s.logger.Info("seeded default staff roster", zap.Int("count", len(defaultStaffSeed)))
	}

	tagCount, err := s.tags.Count(ctx)
	if err != nil {
		return apperrors.MapError(err)
	}
	if tagCount == 0 {
		if err := s.tags.CreateBatch(ctx, defaultRequirementTags()); err != nil {
			return apperrors.MapError(err)
		}
		s.logger.Info("seeded default requirement tags", zap.Int("count", len(defaultTagSeed)))
	}
	return nil
}
