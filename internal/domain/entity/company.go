package entity

import (
	"strings"
	"time"
)

// Company is the legal entity a user may act for. Several users can share one company.
type Company struct {
	ID        uint64
	Name      string
	CIF       string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCompany validates and builds a company.
func NewCompany(name, cif, address string) (*Company, error) {
	company := &Company{
		Name:    strings.TrimSpace(name),
		CIF:     NormalizeTaxID(cif),
		Address: strings.TrimSpace(address),
	}
	if err := company.Validate(); err != nil {
		return nil, err
	}

	return company, nil
}

// Validate checks every content field.
func (c *Company) Validate() error {
	if err := checkField("name", c.Name, "required,max=255"); err != nil {
		return err
	}
	if err := ValidateCIF(c.CIF); err != nil {
		return err
	}

	return checkField("address", c.Address, "required,max=255")
}

// IsScrubbed reports whether the company data was removed after its last member was hard-deleted.
func (c *Company) IsScrubbed() bool {
	return c.CIF == "" && c.Name == ""
}
