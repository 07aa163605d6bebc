package service

import (
	"context"

	"dnotes/internal/domain/entity"
)

// DocumentRenderer turns a delivery note and its related records into a printable document.
type DocumentRenderer interface {
	Render(ctx context.Context, doc *entity.DeliveryNoteDocument) ([]byte, error)

	// ContentType is the media type of the rendered bytes.
	ContentType() string
}

// ArtifactStore persists binary artifacts (rendered notes, profile images).
type ArtifactStore interface {
	// Put writes data under key and returns the location to record.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the object written under key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}
