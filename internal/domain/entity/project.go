package entity

import (
	"strings"
	"time"
)

// Project belongs to a client of the same owner. ProjectCode is unique across all owners.
type Project struct {
	ID          uint64
	OwnerUserID uint64
	ClientID    uint64
	ProjectCode string
	Name        string
	Email       string
	Address     string
	Lifecycle   Lifecycle
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectPatch lists the mutable project fields. The project code cannot change.
type ProjectPatch struct {
	Name    *string
	Email   *string
	Address *string
}

// Validate checks the fields a patch sets, before any record is loaded.
func (p ProjectPatch) Validate() error {
	if p.Name != nil {
		if err := checkField("name", strings.TrimSpace(*p.Name), "required,max=255"); err != nil {
			return err
		}
	}
	if p.Email != nil {
		if err := ValidateEmail(NormalizeEmail(*p.Email)); err != nil {
			return err
		}
	}
	if p.Address != nil {
		return checkField("address", strings.TrimSpace(*p.Address), "required,max=255")
	}

	return nil
}

// NewProject validates and builds an active project.
func NewProject(ownerUserID, clientID uint64, projectCode, name, email, address string) (*Project, error) {
	if err := checkField("ownerUserId", ownerUserID, "required"); err != nil {
		return nil, err
	}
	if err := checkField("clientId", clientID, "required"); err != nil {
		return nil, err
	}

	project := &Project{
		OwnerUserID: ownerUserID,
		ClientID:    clientID,
		ProjectCode: strings.TrimSpace(projectCode),
		Name:        strings.TrimSpace(name),
		Email:       NormalizeEmail(email),
		Address:     strings.TrimSpace(address),
		Lifecycle:   LifecycleActive,
	}
	if err := checkField("projectCode", project.ProjectCode, "required,max=64"); err != nil {
		return nil, err
	}
	if err := project.validate(); err != nil {
		return nil, err
	}

	return project, nil
}

func (p *Project) validate() error {
	if err := checkField("name", p.Name, "required,max=255"); err != nil {
		return err
	}
	if err := ValidateEmail(p.Email); err != nil {
		return err
	}

	return checkField("address", p.Address, "required,max=255")
}

// Apply merges a patch into a copy of the project and validates the result.
func (p *Project) Apply(patch ProjectPatch) (*Project, error) {
	updated := *p
	if patch.Name != nil {
		updated.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		updated.Email = NormalizeEmail(*patch.Email)
	}
	if patch.Address != nil {
		updated.Address = strings.TrimSpace(*patch.Address)
	}
	if err := updated.validate(); err != nil {
		return nil, err
	}

	return &updated, nil
}

// Owner returns the owning user id.
func (p *Project) Owner() uint64 {
	return p.OwnerUserID
}

// State returns the lifecycle state.
func (p *Project) State() Lifecycle {
	return p.Lifecycle
}
