package impl

import (
	"context"
	"log/slog"

	deliverycontext "dnotes/internal/delivery/context"
	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/domain/repository"
	"dnotes/internal/errors"
	"dnotes/internal/usecase"

	"go.uber.org/fx"
)

type projectService struct {
	txManager   repository.TransactionManager
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ClientRepo  repository.ClientRepository
	ProjectRepo repository.ProjectRepository
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		txManager:   params.TxManager,
		clientRepo:  params.ClientRepo,
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *projectService) CreateProject(ctx context.Context, principal entity.Principal, input usecase.CreateProjectInput) (*entity.Project, error) {
	project, err := entity.NewProject(principal.UserID, input.ClientID, input.ProjectCode, input.Name, input.Email, input.Address)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := clientOwnership(f.ClientRepo()).resolve(ctx, principal, project.ClientID, entity.Ancestors{}, activeOnly); err != nil {
			return err
		}

		repo := f.ProjectRepo()
		_, err := repo.FindByCode(ctx, project.ProjectCode)
		if err == nil {
			return domainerrors.ErrProjectCodeTaken.WithDetailsf("code %s", project.ProjectCode)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if err := repo.Insert(ctx, project); err != nil {
			if errors.Is(err, repository.ErrInvalidReference) {
				return domainerrors.ErrClientNotFound
			}

			return mapDuplicate(err, domainerrors.ErrProjectCodeTaken)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Project created", slog.Uint64("projectID", project.ID), slog.Uint64("clientID", project.ClientID))

	return project, nil
}

func (srv *projectService) GetProjectByID(ctx context.Context, principal entity.Principal, clientID, projectID uint64) (*entity.Project, error) {
	return projectOwnership(srv.projectRepo).resolve(ctx, principal, projectID, entity.Ancestors{ClientID: clientID}, activeOnly)
}

// ListProjects resolves the client first so a foreign or missing client is reported as such.
func (srv *projectService) ListProjects(ctx context.Context, principal entity.Principal, clientID uint64) ([]*entity.Project, error) {
	if _, err := clientOwnership(srv.clientRepo).resolve(ctx, principal, clientID, entity.Ancestors{}, activeOnly); err != nil {
		return nil, err
	}

	return srv.projectRepo.ListByClient(ctx, principal.UserID, clientID)
}

func (srv *projectService) UpdateProject(ctx context.Context, principal entity.Principal, clientID, projectID uint64, patch entity.ProjectPatch) (*entity.Project, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated *entity.Project
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ProjectRepo()

		project, err := projectOwnership(repo).resolve(ctx, principal, projectID, entity.Ancestors{ClientID: clientID}, activeOnly)
		if err != nil {
			return err
		}

		next, err := project.Apply(patch)
		if err != nil {
			return err
		}

		rows, err := repo.UpdateFields(ctx, next)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domainerrors.ErrProjectNotFound
		}

		updated, err = repo.FindByID(ctx, projectID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *projectService) SoftDeleteProject(ctx context.Context, principal entity.Principal, clientID, projectID uint64) error {
	return srv.delete(ctx, principal, clientID, projectID, entity.LifecycleSoftDeleted)
}

func (srv *projectService) HardDeleteProject(ctx context.Context, principal entity.Principal, clientID, projectID uint64) error {
	return srv.delete(ctx, principal, clientID, projectID, entity.LifecycleHardDeleted)
}

// delete refuses while any delivery note, in any state, still references the project.
func (srv *projectService) delete(ctx context.Context, principal entity.Principal, clientID, projectID uint64, target entity.Lifecycle) error {
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ProjectRepo()

		_, err := projectOwnership(repo).resolve(ctx, principal, projectID, entity.Ancestors{ClientID: clientID}, includeSoftDeleted)
		if err != nil {
			return err
		}

		notes, err := repo.CountDeliveryNotes(ctx, projectID)
		if err != nil {
			return err
		}
		if notes > 0 {
			return domainerrors.ErrProjectHasDeliveryNotes.WithDetailsf("%d delivery notes", notes)
		}

		return transition(ctx, repo.UpdateLifecycle, projectID, target, domainerrors.ErrProjectNotFound)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Project deleted", slog.Uint64("projectID", projectID), slog.String("lifecycle", target.String()))

	return nil
}

func (srv *projectService) RestoreProject(ctx context.Context, principal entity.Principal, clientID, projectID uint64) (*entity.Project, error) {
	var restored *entity.Project
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ProjectRepo()

		_, err := projectOwnership(repo).resolve(ctx, principal, projectID, entity.Ancestors{ClientID: clientID}, includeSoftDeleted)
		if err != nil {
			return err
		}
		if err := transition(ctx, repo.UpdateLifecycle, projectID, entity.LifecycleActive, domainerrors.ErrProjectNotFound); err != nil {
			return err
		}

		restored, err = repo.FindByID(ctx, projectID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return restored, nil
}
