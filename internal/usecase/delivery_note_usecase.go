package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
)

// RenderedDocument is a generated delivery note document.
type RenderedDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DeliveryNoteUsecase defines the delivery note operations. Notes are addressed through their
// client and project; ancestors carries both ids.
type DeliveryNoteUsecase interface {
	CreateDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, content entity.DeliveryNoteContent) (*entity.DeliveryNote, error)
	GetDeliveryNoteByID(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) (*entity.DeliveryNote, error)
	// ListDeliveryNotes fails with NotFound when the project has no active notes.
	ListDeliveryNotes(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors) ([]*entity.DeliveryNote, error)
	UpdateDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64, patch entity.DeliveryNotePatch) (*entity.DeliveryNote, error)
	SoftDeleteDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) error
	HardDeleteDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) error
	RestoreDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) (*entity.DeliveryNote, error)

	// SignDeliveryNote signs the note, then renders and stores its document.
	// When only the document step fails, the signed note is returned together with an
	// *errors.ArtifactPersistenceError.
	SignDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) (*entity.DeliveryNote, error)
	RenderDeliveryNotePDF(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) (*RenderedDocument, error)

	// RegenerateArtifact renders and stores the document of a signed note that has none yet.
	RegenerateArtifact(ctx context.Context, noteID uint64) (*entity.DeliveryNote, error)
}
