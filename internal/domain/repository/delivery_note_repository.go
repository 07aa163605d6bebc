package repository

import (
	"context"
	"time"

	"dnotes/internal/domain/entity"
)

// DeliveryNoteRepository defines the persistence operations for delivery notes.
type DeliveryNoteRepository interface {
	// FindByID retrieves a delivery note in any lifecycle state.
	FindByID(ctx context.Context, id uint64) (*entity.DeliveryNote, error)

	// FindDuplicate returns a non hard-deleted note of the same project with identical content.
	FindDuplicate(ctx context.Context, note *entity.DeliveryNote) (*entity.DeliveryNote, error)

	// ListByProject returns the active notes of a project ordered by date, then id.
	ListByProject(ctx context.Context, ownerUserID, clientID, projectID uint64) ([]*entity.DeliveryNote, error)

	// Insert persists a new delivery note and sets its ID.
	Insert(ctx context.Context, note *entity.DeliveryNote) error

	// UpdateFields writes the content of an active, unsigned note.
	UpdateFields(ctx context.Context, note *entity.DeliveryNote) (int64, error)

	// UpdateLifecycle moves the note from one of the given states to `to`.
	// Moving to hard-deleted scrubs material, description and artifact location.
	UpdateLifecycle(ctx context.Context, id uint64, from []entity.Lifecycle, to entity.Lifecycle) (int64, error)

	// MarkSigned sets signed=true on an active, unsigned note. Zero affected rows means it was already signed.
	MarkSigned(ctx context.Context, id uint64, signedAt time.Time) (int64, error)

	// SetArtifactLocation records where the rendered document of a note is stored.
	SetArtifactLocation(ctx context.Context, id uint64, location string) error
}
