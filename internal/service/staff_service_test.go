package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/interaction-service/internal/repository/repositorytest"
	"github.com/spec-kit/interaction-service/internal/service"
)

func newStaffFixture() (*service.StaffService, *repositorytest.FakeStaffRepository) {
	repo := repositorytest.NewFakeStaffRepository()
	return service.NewStaffService(service.StaffDependencies{StaffRepo: repo}), repo
}

func TestStaffCreateAndList(t *testing.T) {
	svc, _ := newStaffFixture()
	ctx := context.Background()

	code := "RSO010"
	created, err := svc.Create(ctx, service.StaffCreateInput{Name: "Vikram Mehta", EmployeeCode: &code})
	require.NoError(t, err)
	assert.True(t, created.Active)
	assert.NotZero(t, created.ID)

	_, err = svc.Create(ctx, service.StaffCreateInput{Name: "Anita Rao"})
	require.NoError(t, err)

	members, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	// ordered by name
	assert.Equal(t, "Anita Rao", members[0].Name)
	assert.Equal(t, "Vikram Mehta", members[1].Name)
}

func TestStaffCreateRequiresName(t *testing.T) {
	svc, _ := newStaffFixture()

	_, err := svc.Create(context.Background(), service.StaffCreateInput{Name: "   "})
	requireDomainCode(t, err, "VALIDATION_FAILED")
}

func TestStaffUpdateReplacesFields(t *testing.T) {
	svc, _ := newStaffFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, service.StaffCreateInput{Name: "Vikram Mehta"})
	require.NoError(t, err)

	phone := "+91-9876543210"
	inactive := false
	updated, err := svc.Update(ctx, created.ID, service.StaffUpdateInput{
		Name:   "Vikram S. Mehta",
		Phone:  &phone,
		Active: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Vikram S. Mehta", updated.Name)
	assert.False(t, updated.Active)
	// employee code was omitted from the replacement, so it is gone
	assert.Nil(t, updated.EmployeeCode)

	// active defaults to true when unset
	updated, err = svc.Update(ctx, created.ID, service.StaffUpdateInput{Name: "Vikram S. Mehta"})
	require.NoError(t, err)
	assert.True(t, updated.Active)
}

func TestStaffUpdateMissing(t *testing.T) {
	svc, _ := newStaffFixture()

	_, err := svc.Update(context.Background(), 404, service.StaffUpdateInput{Name: "Ghost"})
	requireDomainCode(t, err, "NOT_FOUND")
}

func TestStaffSoftDelete(t *testing.T) {
	svc, _ := newStaffFixture()
	ctx := context.Background()

	created, err := svc.Create(ctx, service.StaffCreateInput{Name: "Vikram Mehta"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	members, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)

	// the row survives so existing interaction references keep resolving
	member, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, member.Active)
	assert.Equal(t, "Vikram Mehta", member.Name)

	err = svc.Delete(ctx, 404)
	requireDomainCode(t, err, "NOT_FOUND")
}
