package entity

import (
	"strings"
	"time"
)

// Client is a customer of a user. (CIF, OwnerUserID) is unique.
type Client struct {
	ID          uint64
	OwnerUserID uint64
	Name        string
	CIF         string
	Address     string
	Lifecycle   Lifecycle
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ClientPatch lists the mutable client fields. The CIF is part of the client's identity and cannot change.
type ClientPatch struct {
	Name    *string
	Address *string
}

// Validate checks the fields a patch sets, before any record is loaded.
func (p ClientPatch) Validate() error {
	if p.Name != nil {
		if err := checkField("name", strings.TrimSpace(*p.Name), "required,max=255"); err != nil {
			return err
		}
	}
	if p.Address != nil {
		return checkField("address", strings.TrimSpace(*p.Address), "required,max=255")
	}

	return nil
}

// NewClient validates and builds an active client owned by ownerUserID.
func NewClient(ownerUserID uint64, name, cif, address string) (*Client, error) {
	if err := checkField("ownerUserId", ownerUserID, "required"); err != nil {
		return nil, err
	}

	client := &Client{
		OwnerUserID: ownerUserID,
		Name:        strings.TrimSpace(name),
		CIF:         NormalizeTaxID(cif),
		Address:     strings.TrimSpace(address),
		Lifecycle:   LifecycleActive,
	}
	if err := client.validate(); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *Client) validate() error {
	if err := checkField("name", c.Name, "required,max=255"); err != nil {
		return err
	}
	if err := ValidateCIF(c.CIF); err != nil {
		return err
	}

	return checkField("address", c.Address, "required,max=255")
}

// Apply merges a patch into a copy of the client and validates the result.
func (c *Client) Apply(patch ClientPatch) (*Client, error) {
	updated := *c
	if patch.Name != nil {
		updated.Name = strings.TrimSpace(*patch.Name)
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
func (c *Client) Owner() uint64 {
	return c.OwnerUserID
}

// State returns the lifecycle state.
func (c *Client) State() Lifecycle {
	return c.Lifecycle
}
