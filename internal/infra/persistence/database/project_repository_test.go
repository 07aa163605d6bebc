package database

import (
	"context"
	"testing"

	"dnotes/internal/domain/entity"
	"dnotes/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_CodeIsGloballyUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	client := seedClient(t, db, owner.ID, "A1234567Z")
	otherClient := seedClient(t, db, other.ID, "A1234567Z")

	project := seedProject(t, db, owner.ID, client.ID, "P-001")

	dup, err := entity.NewProject(other.ID, otherClient.ID, "P-001", "Depot", "depot@example.com", "Road 1")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Insert(ctx, dup), repository.ErrDuplicate)

	found, err := repo.FindByCode(ctx, " P-001 ")
	require.NoError(t, err)
	assert.Equal(t, project.ID, found.ID)

	_, err = repo.UpdateLifecycle(ctx, project.ID, entity.TransitionSources(entity.LifecycleHardDeleted), entity.LifecycleHardDeleted)
	require.NoError(t, err)

	_, err = repo.FindByCode(ctx, "P-001")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Insert(ctx, dup))
}

func TestProjectRepository_ListAndUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com")
	client := seedClient(t, db, owner.ID, "A1234567Z")
	otherClient := seedClient(t, db, owner.ID, "B7654321X")

	first := seedProject(t, db, owner.ID, client.ID, "P-001")
	second := seedProject(t, db, owner.ID, client.ID, "P-002")
	seedProject(t, db, owner.ID, otherClient.ID, "P-003")

	first.Email = "new@example.com"
	rows, err := repo.UpdateFields(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = repo.UpdateLifecycle(ctx, second.ID, entity.TransitionSources(entity.LifecycleSoftDeleted), entity.LifecycleSoftDeleted)
	require.NoError(t, err)

	projects, err := repo.ListByClient(ctx, owner.ID, client.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "new@example.com", projects[0].Email)

	projects, err = repo.ListByClient(ctx, owner.ID+1, client.ID)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
