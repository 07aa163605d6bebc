package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by issued tokens.
// The subject holds the user id as a decimal string.
type Claims struct {
	UserID     uint64 `json:"uid"`
	ResetScope bool   `json:"reset,omitempty"`
	jwt.RegisteredClaims
}

// PrincipalVerifier validates an opaque credential.
// Failures are *errors.AuthenticationError values carrying the internal reason.
type PrincipalVerifier interface {
	Verify(credential string) (*Claims, error)
}

// TokenIssuer creates signed credentials for a user.
type TokenIssuer interface {
	// IssueAccessToken creates a regular session token.
	IssueAccessToken(userID uint64) (string, error)

	// IssueResetToken creates a short-lived token that only allows a password change.
	IssueResetToken(userID uint64) (string, error)
}

// TokenService bundles issuing and verification.
type TokenService interface {
	PrincipalVerifier
	TokenIssuer
}
