// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"strings"
	"time"

	"dnotes/config"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/domain/service"
	"dnotes/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	resetTTL  time.Duration
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	svc := &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		accessTTL: 24 * time.Hour,
		resetTTL:  15 * time.Minute,
		now:       time.Now,
	}
	if cfg.Auth != nil {
		svc.issuer = cfg.Auth.Issuer
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.ResetTokenTTL > 0 {
			svc.resetTTL = cfg.Auth.ResetTokenTTL
		}
	}

	return svc, nil
}

// IssueAccessToken creates a session token for the user.
func (s *jwtService) IssueAccessToken(userID uint64) (string, error) {
	return s.issue(userID, false, s.accessTTL)
}

// IssueResetToken creates a password reset token for the user.
func (s *jwtService) IssueResetToken(userID uint64) (string, error) {
	return s.issue(userID, true, s.resetTTL)
}

func (s *jwtService) issue(userID uint64, reset bool, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &service.Claims{
		UserID:     userID,
		ResetScope: reset,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses and validates a credential. Failures carry the reason the token was rejected.
func (s *jwtService) Verify(credential string) (*service.Claims, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return nil, domainerrors.NewAuthenticationError(domainerrors.AuthFailureMissing, nil)
	}

	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(credential, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, domainerrors.NewAuthenticationError(classifyTokenError(err), err)
	}

	if claims.UserID == 0 || claims.Subject != strconv.FormatUint(claims.UserID, 10) {
		return nil, domainerrors.NewAuthenticationError(domainerrors.AuthFailureMalformed,
			errors.New("token subject does not match user id"))
	}

	return claims, nil
}

func classifyTokenError(err error) domainerrors.AuthFailure {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.AuthFailureExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domainerrors.AuthFailureInvalidSignature
	default:
		return domainerrors.AuthFailureMalformed
	}
}
