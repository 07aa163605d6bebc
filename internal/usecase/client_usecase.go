package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
)

// CreateClientInput defines the data required to register a client.
type CreateClientInput struct {
	Name    string
	CIF     string
	Address string
}

// ClientUsecase defines the client operations of a user.
type ClientUsecase interface {
	CreateClient(ctx context.Context, principal entity.Principal, input CreateClientInput) (*entity.Client, error)
	GetClientByID(ctx context.Context, principal entity.Principal, clientID uint64) (*entity.Client, error)
	ListClients(ctx context.Context, principal entity.Principal) ([]*entity.Client, error)
	UpdateClient(ctx context.Context, principal entity.Principal, clientID uint64, patch entity.ClientPatch) (*entity.Client, error)
	SoftDeleteClient(ctx context.Context, principal entity.Principal, clientID uint64) error
	HardDeleteClient(ctx context.Context, principal entity.Principal, clientID uint64) error
	RestoreClient(ctx context.Context, principal entity.Principal, clientID uint64) (*entity.Client, error)
}
