package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
)

// CreateProjectInput defines the data required to open a project under a client.
type CreateProjectInput struct {
	ClientID    uint64
	ProjectCode string
	Name        string
	Email       string
	Address     string
}

// ProjectUsecase defines the project operations. Every project is addressed through its client.
type ProjectUsecase interface {
	CreateProject(ctx context.Context, principal entity.Principal, input CreateProjectInput) (*entity.Project, error)
	GetProjectByID(ctx context.Context, principal entity.Principal, clientID, projectID uint64) (*entity.Project, error)
	ListProjects(ctx context.Context, principal entity.Principal, clientID uint64) ([]*entity.Project, error)
	UpdateProject(ctx context.Context, principal entity.Principal, clientID, projectID uint64, patch entity.ProjectPatch) (*entity.Project, error)
	SoftDeleteProject(ctx context.Context, principal entity.Principal, clientID, projectID uint64) error
	HardDeleteProject(ctx context.Context, principal entity.Principal, clientID, projectID uint64) error
	RestoreProject(ctx context.Context, principal entity.Principal, clientID, projectID uint64) (*entity.Project, error)
}
