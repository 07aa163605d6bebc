package repository

import (
	"context"

	"dnotes/internal/domain/entity"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	// FindByID retrieves a user in any lifecycle state, with its company loaded when linked.
	FindByID(ctx context.Context, id uint64) (*entity.User, error)

	// FindByEmail retrieves a user by email address. Hard-deleted users have no email and never match.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Insert persists a new user and sets its ID. A taken email yields ErrDuplicate.
	Insert(ctx context.Context, user *entity.User) error

	// UpdateFields writes the mutable account fields of an active user and returns the affected row count.
	UpdateFields(ctx context.Context, user *entity.User) (int64, error)

	// UpdateLifecycle moves the user from one of the given states to `to`.
	// Moving to hard-deleted scrubs every personal field and the company link.
	UpdateLifecycle(ctx context.Context, id uint64, from []entity.Lifecycle, to entity.Lifecycle) (int64, error)

	// CountCompanyMembers counts the users still linked to a company.
	CountCompanyMembers(ctx context.Context, companyID uint64) (int64, error)

	// Stats aggregates account counters.
	Stats(ctx context.Context) (*entity.UserStats, error)
}
