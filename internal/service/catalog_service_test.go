package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/interaction-service/internal/domain"
	"github.com/spec-kit/interaction-service/internal/repository/repositorytest"
	"github.com/spec-kit/interaction-service/internal/service"
)

func newCatalogFixture() (*service.CatalogService, *repositorytest.FakeTagRepository, *repositorytest.FakeStaffRepository) {
	tagRepo := repositorytest.NewFakeTagRepository()
	staffRepo := repositorytest.NewFakeStaffRepository()
	svc := service.NewCatalogService(service.CatalogDependencies{
		TagRepo:   tagRepo,
		StaffRepo: staffRepo,
	}, zap.NewNop())
	return svc, tagRepo, staffRepo
}

func TestSeedPopulatesEmptyTables(t *testing.T) {
	svc, tagRepo, staffRepo := newCatalogFixture()
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	staffCount, err := staffRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, staffCount)

	tagCount, err := tagRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 25, tagCount)

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 25)
	// sort order follows catalog position
	assert.Equal(t, "Necklace", tags[0].Name)
	assert.Equal(t, "Polki", tags[24].Name)
	for i, tag := range tags {
		assert.Equal(t, i, tag.SortOrder, tag.Name)
		assert.True(t, tag.Active, tag.Name)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	svc, tagRepo, staffRepo := newCatalogFixture()
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	staffCount, err := staffRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, staffCount)

	tagCount, err := tagRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 25, tagCount)
}

func TestSeedChecksTablesIndependently(t *testing.T) {
	svc, tagRepo, staffRepo := newCatalogFixture()
	ctx := context.Background()

	// a pre-existing member blocks the roster seed but not the tag seed
	require.NoError(t, staffRepo.Create(ctx, &domain.StaffMember{Name: "Existing", Active: true}))

	require.NoError(t, svc.Seed(ctx))

	staffCount, err := staffRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, staffCount)

	tagCount, err := tagRepo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 25, tagCount)
}

func TestListTagsSkipsInactive(t *testing.T) {
	svc, tagRepo, _ := newCatalogFixture()
	ctx := context.Background()

	require.NoError(t, tagRepo.CreateBatch(ctx, []domain.RequirementTag{
		{Name: "Ring", Active: true, SortOrder: 1},
		{Name: "Retired", Active: false, SortOrder: 0},
	}))

	tags, err := svc.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, "Ring", tags[0].Name)
}
