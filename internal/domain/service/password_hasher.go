// Package service defines interfaces for the collaborators the use cases depend on.
// Concrete implementations live under internal/infra.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool
}

// CodeGenerator produces email validation codes.
type CodeGenerator interface {
	// Next returns a fresh 6-digit code.
	Next() (string, error)
}
