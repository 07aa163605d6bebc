package impl

import (
	"context"
	"testing"

	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientServiceFixtures struct {
	storeFixtures
	service usecase.ClientUsecase
}

func createTestClientService(t *testing.T) clientServiceFixtures {
	s := newStoreFixtures(t)

	return clientServiceFixtures{
		storeFixtures: s,
		service: NewClientService(ClientServiceParams{
			TxManager:  s.txManager,
			ClientRepo: s.clientRepo,
			Logger:     newDiscardLogger(),
		}),
	}
}

func TestClientService_CreateClient_CIFUniquePerOwner(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	owner := fx.seedUser(t, "owner@example.com", true)
	other := fx.seedUser(t, "other@example.com", true)
	input := usecase.CreateClientInput{Name: "Acme", CIF: "A1234567Z", Address: "1 Main St"}

	created, err := fx.service.CreateClient(ctx, principalOf(owner.ID), input)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = fx.service.CreateClient(ctx, principalOf(owner.ID), usecase.CreateClientInput{Name: "Acme 2", CIF: "a1234567z", Address: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrClientAlreadyExists)

	_, err = fx.service.CreateClient(ctx, principalOf(other.ID), input)
	assert.NoError(t, err)
}

func TestClientService_CreateClient_Validation(t *testing.T) {
	fx := createTestClientService(t)
	owner := fx.seedUser(t, "owner@example.com", true)

	_, err := fx.service.CreateClient(context.Background(), principalOf(owner.ID), usecase.CreateClientInput{Name: "Acme", CIF: "bad"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestClientService_SoftDeleteThenRestore(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	owner := fx.seedUser(t, "owner@example.com", true)
	client := fx.seedClient(t, owner.ID, "A1234567Z")
	p := principalOf(owner.ID)

	require.NoError(t, fx.service.SoftDeleteClient(ctx, p, client.ID))

	err := fx.service.SoftDeleteClient(ctx, p, client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)

	_, err = fx.service.GetClientByID(ctx, p, client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)

	listed, err := fx.service.ListClients(ctx, p)
	require.NoError(t, err)
	assert.Empty(t, listed)

	restored, err := fx.service.RestoreClient(ctx, p, client.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleActive, restored.Lifecycle)
	assert.Equal(t, client.Name, restored.Name)
	assert.Equal(t, client.CIF, restored.CIF)
	assert.Equal(t, client.Address, restored.Address)

	_, err = fx.service.RestoreClient(ctx, p, client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)

	require.NoError(t, fx.service.HardDeleteClient(ctx, p, client.ID))
	_, err = fx.service.RestoreClient(ctx, p, client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
	err = fx.service.SoftDeleteClient(ctx, p, client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
}

func TestClientService_DeleteBlockedByDeliveryNotes(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	owner := fx.seedUser(t, "owner@example.com", true)
	client := fx.seedClient(t, owner.ID, "A1234567Z")
	project := fx.seedProject(t, client, "P-001")
	note := fx.seedNote(t, project, 8)
	p := principalOf(owner.ID)

	err := fx.service.SoftDeleteClient(ctx, p, client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientHasDeliveryNotes)

	err = fx.service.HardDeleteClient(ctx, p, client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientHasDeliveryNotes)

	// Notes in any lifecycle state still block.
	_, err = fx.noteRepo.UpdateLifecycle(ctx, note.ID, []entity.Lifecycle{entity.LifecycleActive}, entity.LifecycleHardDeleted)
	require.NoError(t, err)

	err = fx.service.HardDeleteClient(ctx, p, client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientHasDeliveryNotes)

	stored, err := fx.clientRepo.FindByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleActive, stored.Lifecycle)
}

func TestClientService_HardDeleteTwice(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	owner := fx.seedUser(t, "owner@example.com", true)
	client := fx.seedClient(t, owner.ID, "A1234567Z")
	p := principalOf(owner.ID)

	require.NoError(t, fx.service.HardDeleteClient(ctx, p, client.ID))

	err := fx.service.HardDeleteClient(ctx, p, client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)

	// The scrubbed CIF is free again for the same owner.
	_, err = fx.service.CreateClient(ctx, p, usecase.CreateClientInput{Name: "Acme", CIF: "A1234567Z", Address: "1 Main St"})
	assert.NoError(t, err)
}

func TestClientService_Ownership(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	owner := fx.seedUser(t, "owner@example.com", true)
	intruder := fx.seedUser(t, "intruder@example.com", true)
	client := fx.seedClient(t, owner.ID, "A1234567Z")

	_, err := fx.service.GetClientByID(ctx, principalOf(intruder.ID), client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotOwned)

	err = fx.service.SoftDeleteClient(ctx, principalOf(intruder.ID), client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotOwned)

	_, err = fx.service.GetClientByID(ctx, principalOf(owner.ID), client.ID+100)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
}

func TestClientService_UpdateClient(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	owner := fx.seedUser(t, "owner@example.com", true)
	client := fx.seedClient(t, owner.ID, "A1234567Z")

	name := "Acme Corp"
	updated, err := fx.service.UpdateClient(ctx, principalOf(owner.ID), client.ID, entity.ClientPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, "A1234567Z", updated.CIF)

	empty := ""
	_, err = fx.service.UpdateClient(ctx, principalOf(owner.ID), client.ID, entity.ClientPatch{Name: &empty})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
