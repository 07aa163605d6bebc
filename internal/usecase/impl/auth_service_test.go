package impl

import (
	"context"
	"testing"

	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/domain/service"
	mockService "dnotes/internal/mocks/service"
	"dnotes/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuthService(t *testing.T) (storeFixtures, *mockService.MockTokenService, usecase.AuthUsecase) {
	s := newStoreFixtures(t)
	tokens := mockService.NewMockTokenService(t)

	return s, tokens, NewAuthService(AuthServiceParams{
		Verifier: tokens,
		UserRepo: s.userRepo,
		Logger:   newDiscardLogger(),
	})
}

func authFailure(t *testing.T, err error) domainerrors.AuthFailure {
	t.Helper()

	var authErr *domainerrors.AuthenticationError
	require.ErrorAs(t, err, &authErr)

	return authErr.Reason()
}

func TestAuthService_Authenticate(t *testing.T) {
	s, tokens, svc := createTestAuthService(t)
	ctx := context.Background()
	user := s.seedUser(t, "ana@example.com", true)

	tokens.EXPECT().Verify("access").Return(&service.Claims{UserID: user.ID}, nil)
	tokens.EXPECT().Verify("reset").Return(&service.Claims{UserID: user.ID, ResetScope: true}, nil)
	tokens.EXPECT().Verify("ghost").Return(&service.Claims{UserID: user.ID + 100}, nil)
	tokens.EXPECT().Verify("expired").Return(nil, domainerrors.NewAuthenticationError(domainerrors.AuthFailureExpired, nil))

	principal, err := svc.Authenticate(ctx, "access", usecase.ScopeAccess, false)
	require.NoError(t, err)
	assert.Equal(t, entity.Principal{UserID: user.ID}, *principal)

	_, err = svc.Authenticate(ctx, "reset", usecase.ScopeAccess, false)
	assert.Equal(t, domainerrors.AuthFailureWrongScope, authFailure(t, err))

	_, err = svc.Authenticate(ctx, "access", usecase.ScopeReset, false)
	assert.Equal(t, domainerrors.AuthFailureWrongScope, authFailure(t, err))

	principal, err = svc.Authenticate(ctx, "reset", usecase.ScopeReset, false)
	require.NoError(t, err)
	assert.True(t, principal.ResetScope)

	_, err = svc.Authenticate(ctx, "ghost", usecase.ScopeAccess, false)
	assert.Equal(t, domainerrors.AuthFailureInactiveUser, authFailure(t, err))

	_, err = svc.Authenticate(ctx, "expired", usecase.ScopeAccess, false)
	assert.Equal(t, domainerrors.AuthFailureExpired, authFailure(t, err))
}

func TestAuthService_SoftDeletedUser(t *testing.T) {
	s, tokens, svc := createTestAuthService(t)
	ctx := context.Background()
	user := s.seedUser(t, "ana@example.com", true)
	_, err := s.userRepo.UpdateLifecycle(ctx, user.ID, []entity.Lifecycle{entity.LifecycleActive}, entity.LifecycleSoftDeleted)
	require.NoError(t, err)

	tokens.EXPECT().Verify("access").Return(&service.Claims{UserID: user.ID}, nil)

	_, err = svc.Authenticate(ctx, "access", usecase.ScopeAccess, false)
	assert.Equal(t, domainerrors.AuthFailureInactiveUser, authFailure(t, err))

	principal, err := svc.Authenticate(ctx, "access", usecase.ScopeAccess, true)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
}
