// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "dnotes/internal/errors"

// Persistence sentinels. Implementations wrap them so callers can match with errors.Is.
var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update violates a unique key.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalidReference is returned when a row points at a parent that does not exist.
	ErrInvalidReference = errors.New("invalid reference")
)

// Per-resource not found errors.
var (
	ErrUserNotFound         = errors.Wrap(ErrNotFound, "user")
	ErrCompanyNotFound      = errors.Wrap(ErrNotFound, "company")
	ErrClientNotFound       = errors.Wrap(ErrNotFound, "client")
	ErrProjectNotFound      = errors.Wrap(ErrNotFound, "project")
	ErrDeliveryNoteNotFound = errors.Wrap(ErrNotFound, "delivery note")
)
