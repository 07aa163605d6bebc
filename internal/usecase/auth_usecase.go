// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
)

// CredentialScope selects which kind of token an endpoint accepts.
type CredentialScope int

const (
	// ScopeAccess accepts regular session tokens only.
	ScopeAccess CredentialScope = iota
	// ScopeReset accepts password-reset tokens only.
	ScopeReset
)

// AuthUsecase turns a credential into the principal every other use case runs for.
type AuthUsecase interface {
	// Authenticate verifies the credential and checks that its user may still act.
	// allowSoftDeleted admits soft-deleted users, used by the restore endpoint.
	Authenticate(ctx context.Context, credential string, scope CredentialScope, allowSoftDeleted bool) (*entity.Principal, error)
}
