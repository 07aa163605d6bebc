package repository

import (
	"context"

	"dnotes/internal/domain/entity"
)

// CompanyRepository defines the persistence operations for companies.
type CompanyRepository interface {
	// FindByID retrieves a company by id.
	FindByID(ctx context.Context, id uint64) (*entity.Company, error)

	// FindByCIF retrieves a company by its tax id.
	FindByCIF(ctx context.Context, cif string) (*entity.Company, error)

	// Insert persists a new company and sets its ID. A taken CIF yields ErrDuplicate.
	Insert(ctx context.Context, company *entity.Company) error

	// UpdateFields writes the name and address of a company.
	UpdateFields(ctx context.Context, company *entity.Company) (int64, error)

	// Scrub clears the name, CIF and address of a company, keeping its id.
	Scrub(ctx context.Context, id uint64) (int64, error)
}
