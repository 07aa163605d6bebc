package service

import (
	"context"
	"time"
)

// DeliveryNoteEvent is published when a note is signed or when its artifact needs to be regenerated.
type DeliveryNoteEvent struct {
	RequestID        string    `json:"request_id,omitempty"` // For distributed tracing
	Type             string    `json:"type"`
	DeliveryNoteID   uint64    `json:"delivery_note_id"`
	OwnerUserID      uint64    `json:"owner_user_id"`
	ClientID         uint64    `json:"client_id"`
	ProjectID        uint64    `json:"project_id"`
	ArtifactLocation string    `json:"artifact_location,omitempty"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeliveryNoteEvent publishes a delivery note event for async processing
	PublishDeliveryNoteEvent(ctx context.Context, event *DeliveryNoteEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
