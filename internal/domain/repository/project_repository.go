package repository

import (
	"context"

	"dnotes/internal/domain/entity"
)

// ProjectRepository defines the persistence operations for projects.
type ProjectRepository interface {
	// FindByID retrieves a project in any lifecycle state.
	FindByID(ctx context.Context, id uint64) (*entity.Project, error)

	// FindByCode retrieves a project by its globally unique code.
	FindByCode(ctx context.Context, projectCode string) (*entity.Project, error)

	// ListByClient returns the active projects of a user's client ordered by id.
	ListByClient(ctx context.Context, ownerUserID, clientID uint64) ([]*entity.Project, error)

	// Insert persists a new project and sets its ID. A taken project code yields ErrDuplicate.
	Insert(ctx context.Context, project *entity.Project) error

	// UpdateFields writes the mutable fields of an active project.
	UpdateFields(ctx context.Context, project *entity.Project) (int64, error)

	// UpdateLifecycle moves the project from one of the given states to `to`.
	// Moving to hard-deleted scrubs every content field including the code.
	UpdateLifecycle(ctx context.Context, id uint64, from []entity.Lifecycle, to entity.Lifecycle) (int64, error)

	// CountDeliveryNotes counts the delivery notes under a project in every lifecycle state.
	CountDeliveryNotes(ctx context.Context, projectID uint64) (int64, error)
}
