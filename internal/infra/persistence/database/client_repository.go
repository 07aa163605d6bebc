package database

import (
	"context"

	"dnotes/internal/domain/entity"
	"dnotes/internal/domain/repository"
	"dnotes/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type clientRepository struct {
	conn conn
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{conn: conn{db: db}}
}

func (repo *clientRepository) FindByID(ctx context.Context, id uint64) (*entity.Client, error) {
	var clientM model.ClientModel
	if err := repo.conn.read(ctx).Where("id = ?", id).Take(&clientM).Error; err != nil {
		return nil, translateError(err, repository.ErrClientNotFound, "find client by id")
	}

	return toClientDomain(&clientM), nil
}

func (repo *clientRepository) FindByOwnerAndCIF(ctx context.Context, ownerUserID uint64, cif string) (*entity.Client, error) {
	var clientM model.ClientModel
	err := repo.conn.read(ctx).
		Where("owner_user_id = ? AND cif = ?", ownerUserID, entity.NormalizeTaxID(cif)).
		Take(&clientM).Error
	if err != nil {
		return nil, translateError(err, repository.ErrClientNotFound, "find client by cif")
	}

	return toClientDomain(&clientM), nil
}

func (repo *clientRepository) ListByOwner(ctx context.Context, ownerUserID uint64) ([]*entity.Client, error) {
	var clientMs []*model.ClientModel
	err := repo.conn.write(ctx).
		Where("owner_user_id = ? AND lifecycle = ?", ownerUserID, int8(entity.LifecycleActive)).
		Order("id").
		Find(&clientMs).Error
	if err != nil {
		return nil, translateError(err, repository.ErrClientNotFound, "list clients")
	}

	clients := make([]*entity.Client, 0, len(clientMs))
	for _, clientM := range clientMs {
		clients = append(clients, toClientDomain(clientM))
	}

	return clients, nil
}

func (repo *clientRepository) Insert(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)
	if err := repo.conn.write(ctx).Omit("Owner").Create(clientM).Error; err != nil {
		return translateError(err, repository.ErrClientNotFound, "insert client")
	}

	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

func (repo *clientRepository) UpdateFields(ctx context.Context, client *entity.Client) (int64, error) {
	result := repo.conn.write(ctx).Model(&model.ClientModel{}).
		Where("id = ? AND lifecycle = ?", client.ID, int8(entity.LifecycleActive)).
		Updates(map[string]any{
			"name":    nullable(client.Name),
			"address": nullable(client.Address),
		})
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrClientNotFound, "update client")
	}

	return result.RowsAffected, nil
}

func (repo *clientRepository) UpdateLifecycle(ctx context.Context, id uint64, from []entity.Lifecycle, to entity.Lifecycle) (int64, error) {
	updates := map[string]any{"lifecycle": int8(to)}
	if to == entity.LifecycleHardDeleted {
		updates["name"] = nil
		updates["cif"] = nil
		updates["address"] = nil
	}

	result := repo.conn.write(ctx).Model(&model.ClientModel{}).
		Where("id = ? AND lifecycle IN ?", id, lifecycleValues(from)).
		Updates(updates)
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrClientNotFound, "update client lifecycle")
	}

	return result.RowsAffected, nil
}

func (repo *clientRepository) CountDeliveryNotes(ctx context.Context, clientID uint64) (int64, error) {
	var count int64
	err := repo.conn.write(ctx).Model(&model.DeliveryNoteModel{}).Where("client_id = ?", clientID).Count(&count).Error
	if err != nil {
		return 0, translateError(err, repository.ErrClientNotFound, "count client delivery notes")
	}

	return count, nil
}
