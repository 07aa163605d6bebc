package entity

import (
	"strings"
	"time"

	domainerrors "dnotes/internal/domain/errors"
)

// DeliveryNoteFormat tells whether a note records delivered material or worked hours.
type DeliveryNoteFormat string

const (
	FormatMaterial DeliveryNoteFormat = "material"
	FormatHours    DeliveryNoteFormat = "hours"
)

// String returns the string representation of the DeliveryNoteFormat.
func (f DeliveryNoteFormat) String() string {
	return string(f)
}

// IsValid checks if the format is a known value.
func (f DeliveryNoteFormat) IsValid() bool {
	return f == FormatMaterial || f == FormatHours
}

// DeliveryNote records material or hours delivered for a project.
// Once Signed is true the content fields are frozen.
type DeliveryNote struct {
	ID               uint64
	OwnerUserID      uint64
	ClientID         uint64
	ProjectID        uint64
	Format           DeliveryNoteFormat
	Material         string
	Hours            int
	Description      string
	Date             time.Time
	Signed           bool
	SignedAt         *time.Time
	ArtifactLocation string
	Lifecycle        Lifecycle
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DeliveryNoteContent is the user-supplied part of a delivery note.
type DeliveryNoteContent struct {
	Format      DeliveryNoteFormat
	Material    string
	Hours       int
	Description string
	Date        time.Time
}

// DeliveryNotePatch lists the mutable delivery note fields.
type DeliveryNotePatch struct {
	Format      *DeliveryNoteFormat
	Material    *string
	Hours       *int
	Description *string
	Date        *time.Time
}

// Validate checks the fields a patch sets on their own. Format-dependent rules run in Apply.
func (p DeliveryNotePatch) Validate() error {
	if p.Format != nil {
		format := DeliveryNoteFormat(strings.ToLower(strings.TrimSpace(p.Format.String())))
		if !format.IsValid() {
			return domainerrors.NewValidationError("format", "must be one of: material hours")
		}
	}
	if p.Hours != nil {
		if err := checkField("hours", *p.Hours, "gte=0"); err != nil {
			return err
		}
	}
	if p.Material != nil {
		if err := checkField("material", strings.TrimSpace(*p.Material), "max=255"); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := checkField("description", strings.TrimSpace(*p.Description), "required,max=2000"); err != nil {
			return err
		}
	}
	if p.Date != nil && p.Date.IsZero() {
		return domainerrors.NewValidationError("date", "must not be empty")
	}

	return nil
}

// NewDeliveryNote validates and builds an unsigned, active delivery note.
func NewDeliveryNote(ownerUserID, clientID, projectID uint64, content DeliveryNoteContent) (*DeliveryNote, error) {
	if err := checkField("ownerUserId", ownerUserID, "required"); err != nil {
		return nil, err
	}
	if err := checkField("clientId", clientID, "required"); err != nil {
		return nil, err
	}
	if err := checkField("projectId", projectID, "required"); err != nil {
		return nil, err
	}

	content = content.normalized()
	if err := content.Validate(); err != nil {
		return nil, err
	}

	return &DeliveryNote{
		OwnerUserID: ownerUserID,
		ClientID:    clientID,
		ProjectID:   projectID,
		Format:      content.Format,
		Material:    content.Material,
		Hours:       content.Hours,
		Description: content.Description,
		Date:        content.Date,
		Lifecycle:   LifecycleActive,
	}, nil
}

func (c DeliveryNoteContent) normalized() DeliveryNoteContent {
	c.Format = DeliveryNoteFormat(strings.ToLower(strings.TrimSpace(string(c.Format))))
	c.Material = strings.TrimSpace(c.Material)
	c.Description = strings.TrimSpace(c.Description)
	if !c.Date.IsZero() {
		c.Date = time.Date(c.Date.Year(), c.Date.Month(), c.Date.Day(), 0, 0, 0, 0, time.UTC)
	}

	return c
}

// Validate enforces the format rules: a material note needs a material and no hours,
// an hours note needs non-negative hours and no material.
func (c DeliveryNoteContent) Validate() error {
	if !c.Format.IsValid() {
		return domainerrors.NewValidationError("format", "must be one of: material hours")
	}
	if err := checkField("hours", c.Hours, "gte=0"); err != nil {
		return err
	}

	switch c.Format {
	case FormatMaterial:
		if err := checkField("material", c.Material, "required,max=255"); err != nil {
			return err
		}
		if c.Hours != 0 {
			return domainerrors.NewValidationError("hours", "must be empty for material delivery notes")
		}
	case FormatHours:
		if c.Material != "" {
			return domainerrors.NewValidationError("material", "must be empty for hours delivery notes")
		}
	}

	if err := checkField("description", c.Description, "required,max=2000"); err != nil {
		return err
	}
	if c.Date.IsZero() {
		return domainerrors.NewValidationError("date", "must not be empty")
	}

	return nil
}

// Content returns the user-supplied fields of the note.
func (n *DeliveryNote) Content() DeliveryNoteContent {
	return DeliveryNoteContent{
		Format:      n.Format,
		Material:    n.Material,
		Hours:       n.Hours,
		Description: n.Description,
		Date:        n.Date,
	}
}

// Apply merges a patch into a copy of the note. Signed notes reject every patch.
// Switching the format clears the field that belonged to the previous format.
func (n *DeliveryNote) Apply(patch DeliveryNotePatch) (*DeliveryNote, error) {
	if n.Signed {
		return nil, domainerrors.ErrDeliveryNoteSigned
	}

	content := n.Content()
	if patch.Format != nil {
		format := DeliveryNoteFormat(strings.ToLower(strings.TrimSpace(patch.Format.String())))
		if format != content.Format {
			content.Format = format
			content.Material = ""
			content.Hours = 0
		}
	}
	if patch.Material != nil {
		content.Material = *patch.Material
	}
	if patch.Hours != nil {
		content.Hours = *patch.Hours
	}
	if patch.Description != nil {
		content.Description = *patch.Description
	}
	if patch.Date != nil {
		content.Date = *patch.Date
	}

	content = content.normalized()
	if err := content.Validate(); err != nil {
		return nil, err
	}

	updated := *n
	updated.Format = content.Format
	updated.Material = content.Material
	updated.Hours = content.Hours
	updated.Description = content.Description
	updated.Date = content.Date

	return &updated, nil
}

// Owner returns the owning user id.
func (n *DeliveryNote) Owner() uint64 {
	return n.OwnerUserID
}

// State returns the lifecycle state.
func (n *DeliveryNote) State() Lifecycle {
	return n.Lifecycle
}

// DeliveryNoteDocument gathers everything printed on a rendered delivery note.
type DeliveryNoteDocument struct {
	Note    *DeliveryNote
	Owner   *User
	Company *Company
	Client  *Client
	Project *Project
}
