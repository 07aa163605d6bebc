package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "dnotes/internal/delivery/context"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the bearer token of a request into a principal.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, logger: logger}
}

// Authenticate accepts session tokens of active users.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(usecase.ScopeAccess, false)(next)
}

// AuthenticateInactive also accepts soft-deleted users, for the account restore route.
func (m *AuthMiddleware) AuthenticateInactive(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(usecase.ScopeAccess, true)(next)
}

// AuthenticateReset accepts only password reset tokens.
func (m *AuthMiddleware) AuthenticateReset(next echo.HandlerFunc) echo.HandlerFunc {
	return m.require(usecase.ScopeReset, false)(next)
}

func (m *AuthMiddleware) require(scope usecase.CredentialScope, allowSoftDeleted bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			credential, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return err
			}

			principal, err := m.authUC.Authenticate(c.Request().Context(), credential, scope, allowSoftDeleted)
			if err != nil {
				return err
			}

			deliverycontext.SetPrincipal(c, *principal)

			// Enrich the request-scoped logger with the user id
			ctx := c.Request().Context()
			logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.Uint64("user_id", principal.UserID))
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

			return next(c)
		}
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", domainerrors.NewAuthenticationError(domainerrors.AuthFailureMissing, nil)
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", domainerrors.NewAuthenticationError(domainerrors.AuthFailureMalformed, nil)
	}

	return strings.TrimSpace(token), nil
}
