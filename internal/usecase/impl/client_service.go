// Package impl contains the implementation of the application's business logic.
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

type clientService struct {
	txManager  repository.TransactionManager
	clientRepo repository.ClientRepository
	logger     *slog.Logger
}

// ClientServiceParams holds dependencies for ClientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ClientRepo repository.ClientRepository
	Logger     *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		txManager:  params.TxManager,
		clientRepo: params.ClientRepo,
		logger:     params.Logger,
	}
}

func (srv *clientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *clientService) CreateClient(ctx context.Context, principal entity.Principal, input usecase.CreateClientInput) (*entity.Client, error) {
	client, err := entity.NewClient(principal.UserID, input.Name, input.CIF, input.Address)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ClientRepo()

		_, err := repo.FindByOwnerAndCIF(ctx, client.OwnerUserID, client.CIF)
		if err == nil {
			return domainerrors.ErrClientAlreadyExists.WithDetailsf("cif %s", client.CIF)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if err := repo.Insert(ctx, client); err != nil {
			if errors.Is(err, repository.ErrInvalidReference) {
				return domainerrors.ErrUserNotFound
			}

			return mapDuplicate(err, domainerrors.ErrClientAlreadyExists)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Client created", slog.Uint64("clientID", client.ID), slog.Uint64("ownerUserID", client.OwnerUserID))

	return client, nil
}

func (srv *clientService) GetClientByID(ctx context.Context, principal entity.Principal, clientID uint64) (*entity.Client, error) {
	return clientOwnership(srv.clientRepo).resolve(ctx, principal, clientID, entity.Ancestors{}, activeOnly)
}

func (srv *clientService) ListClients(ctx context.Context, principal entity.Principal) ([]*entity.Client, error) {
	return srv.clientRepo.ListByOwner(ctx, principal.UserID)
}

func (srv *clientService) UpdateClient(ctx context.Context, principal entity.Principal, clientID uint64, patch entity.ClientPatch) (*entity.Client, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated *entity.Client
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ClientRepo()

		client, err := clientOwnership(repo).resolve(ctx, principal, clientID, entity.Ancestors{}, activeOnly)
		if err != nil {
			return err
		}

		next, err := client.Apply(patch)
		if err != nil {
			return err
		}

		rows, err := repo.UpdateFields(ctx, next)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domainerrors.ErrClientNotFound
		}

		updated, err = repo.FindByID(ctx, clientID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *clientService) SoftDeleteClient(ctx context.Context, principal entity.Principal, clientID uint64) error {
	return srv.delete(ctx, principal, clientID, entity.LifecycleSoftDeleted)
}

func (srv *clientService) HardDeleteClient(ctx context.Context, principal entity.Principal, clientID uint64) error {
	return srv.delete(ctx, principal, clientID, entity.LifecycleHardDeleted)
}

// delete refuses while any delivery note, in any state, still references the client.
func (srv *clientService) delete(ctx context.Context, principal entity.Principal, clientID uint64, target entity.Lifecycle) error {
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ClientRepo()

		if _, err := clientOwnership(repo).resolve(ctx, principal, clientID, entity.Ancestors{}, includeSoftDeleted); err != nil {
			return err
		}

		notes, err := repo.CountDeliveryNotes(ctx, clientID)
		if err != nil {
			return err
		}
		if notes > 0 {
			return domainerrors.ErrClientHasDeliveryNotes.WithDetailsf("%d delivery notes", notes)
		}

		return transition(ctx, repo.UpdateLifecycle, clientID, target, domainerrors.ErrClientNotFound)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Client deleted", slog.Uint64("clientID", clientID), slog.String("lifecycle", target.String()))

	return nil
}

func (srv *clientService) RestoreClient(ctx context.Context, principal entity.Principal, clientID uint64) (*entity.Client, error) {
	var restored *entity.Client
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.ClientRepo()

		if _, err := clientOwnership(repo).resolve(ctx, principal, clientID, entity.Ancestors{}, includeSoftDeleted); err != nil {
			return err
		}
		if err := transition(ctx, repo.UpdateLifecycle, clientID, entity.LifecycleActive, domainerrors.ErrClientNotFound); err != nil {
			return err
		}

		var err error
		restored, err = repo.FindByID(ctx, clientID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return restored, nil
}
