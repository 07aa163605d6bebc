package database

import (
	"context"
	"time"

	"dnotes/internal/domain/entity"
	"dnotes/internal/domain/repository"
	"dnotes/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type deliveryNoteRepository struct {
	conn conn
}

// NewDeliveryNoteRepository is the constructor for deliveryNoteRepository.
func NewDeliveryNoteRepository(db *gorm.DB) repository.DeliveryNoteRepository {
	return &deliveryNoteRepository{conn: conn{db: db}}
}

func (repo *deliveryNoteRepository) FindByID(ctx context.Context, id uint64) (*entity.DeliveryNote, error) {
	var noteM model.DeliveryNoteModel
	if err := repo.conn.read(ctx).Where("id = ?", id).Take(&noteM).Error; err != nil {
		return nil, translateError(err, repository.ErrDeliveryNoteNotFound, "find delivery note by id")
	}

	return toDeliveryNoteDomain(&noteM), nil
}

// FindDuplicate compares the content columns; empty material and description match NULL.
func (repo *deliveryNoteRepository) FindDuplicate(ctx context.Context, note *entity.DeliveryNote) (*entity.DeliveryNote, error) {
	q := repo.conn.write(ctx).
		Where("owner_user_id = ? AND client_id = ? AND project_id = ?", note.OwnerUserID, note.ClientID, note.ProjectID).
		Where("format = ? AND hours = ? AND date = ?", note.Format.String(), note.Hours, noteDate(note.Date)).
		Where("lifecycle <> ?", int8(entity.LifecycleHardDeleted))
	q = whereNullable(q, "material", note.Material)
	q = whereNullable(q, "description", note.Description)

	var noteM model.DeliveryNoteModel
	if err := q.Order("id").Take(&noteM).Error; err != nil {
		return nil, translateError(err, repository.ErrDeliveryNoteNotFound, "find duplicate delivery note")
	}

	return toDeliveryNoteDomain(&noteM), nil
}

func whereNullable(q *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return q.Where(column + " IS NULL")
	}

	return q.Where(column+" = ?", value)
}

func (repo *deliveryNoteRepository) ListByProject(ctx context.Context, ownerUserID, clientID, projectID uint64) ([]*entity.DeliveryNote, error) {
	var noteMs []*model.DeliveryNoteModel
	err := repo.conn.write(ctx).
		Where("owner_user_id = ? AND client_id = ? AND project_id = ?", ownerUserID, clientID, projectID).
		Where("lifecycle = ?", int8(entity.LifecycleActive)).
		Order("date").Order("id").
		Find(&noteMs).Error
	if err != nil {
		return nil, translateError(err, repository.ErrDeliveryNoteNotFound, "list delivery notes")
	}

	notes := make([]*entity.DeliveryNote, 0, len(noteMs))
	for _, noteM := range noteMs {
		notes = append(notes, toDeliveryNoteDomain(noteM))
	}

	return notes, nil
}

func (repo *deliveryNoteRepository) Insert(ctx context.Context, note *entity.DeliveryNote) error {
	noteM := fromDeliveryNoteDomain(note)
	if err := repo.conn.write(ctx).Omit("Owner", "Client", "Project").Create(noteM).Error; err != nil {
		return translateError(err, repository.ErrDeliveryNoteNotFound, "insert delivery note")
	}

	note.ID = noteM.ID
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

func (repo *deliveryNoteRepository) UpdateFields(ctx context.Context, note *entity.DeliveryNote) (int64, error) {
	result := repo.conn.write(ctx).Model(&model.DeliveryNoteModel{}).
		Where("id = ? AND lifecycle = ? AND signed = ?", note.ID, int8(entity.LifecycleActive), false).
		Updates(map[string]any{
			"format":      note.Format.String(),
			"material":    nullable(note.Material),
			"hours":       note.Hours,
			"description": nullable(note.Description),
			"date":        noteDate(note.Date),
		})
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrDeliveryNoteNotFound, "update delivery note")
	}

	return result.RowsAffected, nil
}

func (repo *deliveryNoteRepository) UpdateLifecycle(ctx context.Context, id uint64, from []entity.Lifecycle, to entity.Lifecycle) (int64, error) {
	updates := map[string]any{"lifecycle": int8(to)}
	if to == entity.LifecycleHardDeleted {
		updates["material"] = nil
		updates["description"] = nil
		updates["artifact_location"] = nil
		updates["hours"] = 0
		updates["date"] = nil
	}

	result := repo.conn.write(ctx).Model(&model.DeliveryNoteModel{}).
		Where("id = ? AND lifecycle IN ?", id, lifecycleValues(from)).
		Updates(updates)
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrDeliveryNoteNotFound, "update delivery note lifecycle")
	}

	return result.RowsAffected, nil
}

func (repo *deliveryNoteRepository) MarkSigned(ctx context.Context, id uint64, signedAt time.Time) (int64, error) {
	result := repo.conn.write(ctx).Model(&model.DeliveryNoteModel{}).
		Where("id = ? AND lifecycle = ? AND signed = ?", id, int8(entity.LifecycleActive), false).
		Updates(map[string]any{"signed": true, "signed_at": signedAt.UTC()})
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrDeliveryNoteNotFound, "sign delivery note")
	}

	return result.RowsAffected, nil
}

func (repo *deliveryNoteRepository) SetArtifactLocation(ctx context.Context, id uint64, location string) error {
	result := repo.conn.write(ctx).Model(&model.DeliveryNoteModel{}).
		Where("id = ? AND lifecycle <> ?", id, int8(entity.LifecycleHardDeleted)).
		Update("artifact_location", nullable(location))
	if result.Error != nil {
		return translateError(result.Error, repository.ErrDeliveryNoteNotFound, "record artifact location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNoteNotFound
	}

	return nil
}
