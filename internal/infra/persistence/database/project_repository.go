package database

import (
	"context"
	"strings"

	"dnotes/internal/domain/entity"
	"dnotes/internal/domain/repository"
	"dnotes/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type projectRepository struct {
	conn conn
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{conn: conn{db: db}}
}

func (repo *projectRepository) FindByID(ctx context.Context, id uint64) (*entity.Project, error) {
	var projectM model.ProjectModel
	if err := repo.conn.read(ctx).Where("id = ?", id).Take(&projectM).Error; err != nil {
		return nil, translateError(err, repository.ErrProjectNotFound, "find project by id")
	}

	return toProjectDomain(&projectM), nil
}

func (repo *projectRepository) FindByCode(ctx context.Context, projectCode string) (*entity.Project, error) {
	var projectM model.ProjectModel
	err := repo.conn.read(ctx).Where("project_code = ?", strings.TrimSpace(projectCode)).Take(&projectM).Error
	if err != nil {
		return nil, translateError(err, repository.ErrProjectNotFound, "find project by code")
	}

	return toProjectDomain(&projectM), nil
}

func (repo *projectRepository) ListByClient(ctx context.Context, ownerUserID, clientID uint64) ([]*entity.Project, error) {
	var projectMs []*model.ProjectModel
	err := repo.conn.write(ctx).
		Where("owner_user_id = ? AND client_id = ? AND lifecycle = ?", ownerUserID, clientID, int8(entity.LifecycleActive)).
		Order("id").
		Find(&projectMs).Error
	if err != nil {
		return nil, translateError(err, repository.ErrProjectNotFound, "list projects")
	}

	projects := make([]*entity.Project, 0, len(projectMs))
	for _, projectM := range projectMs {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

func (repo *projectRepository) Insert(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)
	if err := repo.conn.write(ctx).Omit("Owner", "Client").Create(projectM).Error; err != nil {
		return translateError(err, repository.ErrProjectNotFound, "insert project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt
	project.UpdatedAt = projectM.UpdatedAt

	return nil
}

func (repo *projectRepository) UpdateFields(ctx context.Context, project *entity.Project) (int64, error) {
	result := repo.conn.write(ctx).Model(&model.ProjectModel{}).
		Where("id = ? AND lifecycle = ?", project.ID, int8(entity.LifecycleActive)).
		Updates(map[string]any{
			"name":    nullable(project.Name),
			"email":   nullable(project.Email),
			"address": nullable(project.Address),
		})
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrProjectNotFound, "update project")
	}

	return result.RowsAffected, nil
}

func (repo *projectRepository) UpdateLifecycle(ctx context.Context, id uint64, from []entity.Lifecycle, to entity.Lifecycle) (int64, error) {
	updates := map[string]any{"lifecycle": int8(to)}
	if to == entity.LifecycleHardDeleted {
		for _, column := range []string{"project_code", "name", "email", "address"} {
			updates[column] = nil
		}
	}

	result := repo.conn.write(ctx).Model(&model.ProjectModel{}).
		Where("id = ? AND lifecycle IN ?", id, lifecycleValues(from)).
		Updates(updates)
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrProjectNotFound, "update project lifecycle")
	}

	return result.RowsAffected, nil
}

func (repo *projectRepository) CountDeliveryNotes(ctx context.Context, projectID uint64) (int64, error) {
	var count int64
	err := repo.conn.write(ctx).Model(&model.DeliveryNoteModel{}).Where("project_id = ?", projectID).Count(&count).Error
	if err != nil {
		return 0, translateError(err, repository.ErrProjectNotFound, "count project delivery notes")
	}

	return count, nil
}
