package database

import (
	"context"
	"testing"

	"dnotes/internal/domain/entity"
	"dnotes/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_InsertAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "ana@example.com")
	assert.NotZero(t, user.ID)

	found, err := repo.FindByEmail(ctx, " ANA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, entity.UserStatusNotValidated, found.Status)
	assert.Equal(t, "123456", found.ValidationCode)

	_, err = repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	dup, err := entity.NewUser("ana@example.com", "hash", "654321")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Insert(ctx, dup), repository.ErrDuplicate)
}

func TestUserRepository_CompanyMembership(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	company, err := entity.NewCompany("Acme", "B1234567C", "Gran Via 1")
	require.NoError(t, err)
	require.NoError(t, NewCompanyRepository(db).Insert(ctx, company))

	user := seedUser(t, db, "ana@example.com")
	user.JoinCompany(company.ID)
	rows, err := repo.UpdateFields(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Company)
	assert.Equal(t, "B1234567C", found.Company.CIF)
	assert.Equal(t, entity.RoleCompany, found.Role)

	count, err := repo.CountCompanyMembers(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	rows, err = repo.UpdateLifecycle(ctx, user.ID, entity.TransitionSources(entity.LifecycleHardDeleted), entity.LifecycleHardDeleted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	count, err = repo.CountCompanyMembers(ctx, company.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	scrubbed, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleHardDeleted, scrubbed.Lifecycle)
	assert.Empty(t, scrubbed.Email)
	assert.Empty(t, scrubbed.PasswordHash)
	assert.Nil(t, scrubbed.CompanyID)
	assert.Empty(t, scrubbed.Role)
	assert.Empty(t, scrubbed.Status)

	_, err = repo.FindByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// the address is free again
	seedUser(t, db, "ana@example.com")
}

func TestUserRepository_UpdateFieldsSkipsInactive(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "ana@example.com")
	rows, err := repo.UpdateLifecycle(ctx, user.ID, entity.TransitionSources(entity.LifecycleSoftDeleted), entity.LifecycleSoftDeleted)
	require.NoError(t, err)
	require.Equal(t, int64(1), rows)

	user.Name = "Ana"
	rows, err = repo.UpdateFields(ctx, user)
	require.NoError(t, err)
	assert.Zero(t, rows)

	rows, err = repo.UpdateLifecycle(ctx, user.ID, entity.TransitionSources(entity.LifecycleSoftDeleted), entity.LifecycleSoftDeleted)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestUserRepository_Stats(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	active := seedUser(t, db, "a@example.com")
	active.Status = entity.UserStatusValidated
	_, err := repo.UpdateFields(ctx, active)
	require.NoError(t, err)

	seedUser(t, db, "b@example.com")
	soft := seedUser(t, db, "c@example.com")
	hard := seedUser(t, db, "d@example.com")

	_, err = repo.UpdateLifecycle(ctx, soft.ID, entity.TransitionSources(entity.LifecycleSoftDeleted), entity.LifecycleSoftDeleted)
	require.NoError(t, err)
	_, err = repo.UpdateLifecycle(ctx, hard.ID, entity.TransitionSources(entity.LifecycleHardDeleted), entity.LifecycleHardDeleted)
	require.NoError(t, err)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.UserStats{
		Total:        4,
		Active:       2,
		SoftDeleted:  1,
		HardDeleted:  1,
		NotValidated: 2,
		Personal:     2,
		Company:      0,
	}, stats)
}
