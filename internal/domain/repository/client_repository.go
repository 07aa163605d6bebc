package repository

import (
	"context"

	"dnotes/internal/domain/entity"
)

// ClientRepository defines the persistence operations for clients.
type ClientRepository interface {
	// FindByID retrieves a client in any lifecycle state.
	FindByID(ctx context.Context, id uint64) (*entity.Client, error)

	// FindByOwnerAndCIF retrieves the client a user registered under a CIF.
	FindByOwnerAndCIF(ctx context.Context, ownerUserID uint64, cif string) (*entity.Client, error)

	// ListByOwner returns the active clients of a user ordered by id.
	ListByOwner(ctx context.Context, ownerUserID uint64) ([]*entity.Client, error)

	// Insert persists a new client and sets its ID. A taken (owner, CIF) pair yields ErrDuplicate.
	Insert(ctx context.Context, client *entity.Client) error

	// UpdateFields writes the mutable fields of an active client.
	UpdateFields(ctx context.Context, client *entity.Client) (int64, error)

	// UpdateLifecycle moves the client from one of the given states to `to`.
	// Moving to hard-deleted scrubs name, CIF and address.
	UpdateLifecycle(ctx context.Context, id uint64, from []entity.Lifecycle, to entity.Lifecycle) (int64, error)

	// CountDeliveryNotes counts the delivery notes under a client in every lifecycle state.
	CountDeliveryNotes(ctx context.Context, clientID uint64) (int64, error)
}
