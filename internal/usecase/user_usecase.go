package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ProfileImageInput is an uploaded profile picture.
type ProfileImageInput struct {
	Filename string
	Data     []byte
}

// --- Output DTOs ---

// AuthOutput returns the session token issued for a user.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the account operations. Every method but Register, Login and
// RequestPasswordReset acts on the principal's own account.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	ValidateEmail(ctx context.Context, principal entity.Principal, code string) (*entity.User, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	GetMe(ctx context.Context, principal entity.Principal) (*entity.User, error)
	UpdatePersonalData(ctx context.Context, principal entity.Principal, data entity.PersonalData) (*entity.User, error)
	UpdateProfileImage(ctx context.Context, principal entity.Principal, input ProfileImageInput) (*entity.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	RecoverPassword(ctx context.Context, principal entity.Principal, newPassword string) error
	SoftDeleteUser(ctx context.Context, principal entity.Principal) error
	HardDeleteUser(ctx context.Context, principal entity.Principal) error
	RestoreUser(ctx context.Context, principal entity.Principal) (*entity.User, error)
	Dashboard(ctx context.Context, principal entity.Principal) (*entity.UserStats, error)
}
