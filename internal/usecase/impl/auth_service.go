package impl

import (
	"context"
	"log/slog"

	deliverycontext "dnotes/internal/delivery/context"
	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/domain/repository"
	"dnotes/internal/domain/service"
	"dnotes/internal/errors"
	"dnotes/internal/usecase"

	"go.uber.org/fx"
)

type authService struct {
	verifier service.PrincipalVerifier
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Verifier service.TokenService
	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		verifier: params.Verifier,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// Authenticate never tells the caller why a credential was refused; the reason is logged.
func (srv *authService) Authenticate(ctx context.Context, credential string, scope usecase.CredentialScope,
	allowSoftDeleted bool,
) (*entity.Principal, error) {
	principal, err := srv.authenticate(ctx, credential, scope, allowSoftDeleted)
	if err != nil {
		if authErr, ok := errors.AsType[*domainerrors.AuthenticationError](err); ok {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Credential rejected",
				slog.String("reason", string(authErr.Reason())),
			)
		}

		return nil, err
	}

	return principal, nil
}

func (srv *authService) authenticate(ctx context.Context, credential string, scope usecase.CredentialScope,
	allowSoftDeleted bool,
) (*entity.Principal, error) {
	claims, err := srv.verifier.Verify(credential)
	if err != nil {
		return nil, err
	}

	if claims.ResetScope != (scope == usecase.ScopeReset) {
		return nil, domainerrors.NewAuthenticationError(domainerrors.AuthFailureWrongScope, nil)
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.NewAuthenticationError(domainerrors.AuthFailureInactiveUser, err)
	}
	if err != nil {
		return nil, err
	}

	switch user.Lifecycle {
	case entity.LifecycleActive:
	case entity.LifecycleSoftDeleted:
		if !allowSoftDeleted {
			return nil, domainerrors.NewAuthenticationError(domainerrors.AuthFailureInactiveUser, nil)
		}
	default:
		return nil, domainerrors.NewAuthenticationError(domainerrors.AuthFailureInactiveUser, nil)
	}

	return &entity.Principal{UserID: user.ID, ResetScope: claims.ResetScope}, nil
}
