package database

import (
	"context"

	"dnotes/internal/domain/entity"
	"dnotes/internal/domain/repository"
	"dnotes/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type companyRepository struct {
	conn conn
}

// NewCompanyRepository is the constructor for companyRepository.
func NewCompanyRepository(db *gorm.DB) repository.CompanyRepository {
	return &companyRepository{conn: conn{db: db}}
}

func (repo *companyRepository) FindByID(ctx context.Context, id uint64) (*entity.Company, error) {
	var companyM model.CompanyModel
	if err := repo.conn.read(ctx).Where("id = ?", id).Take(&companyM).Error; err != nil {
		return nil, translateError(err, repository.ErrCompanyNotFound, "find company by id")
	}

	return toCompanyDomain(&companyM), nil
}

func (repo *companyRepository) FindByCIF(ctx context.Context, cif string) (*entity.Company, error) {
	var companyM model.CompanyModel
	err := repo.conn.read(ctx).Where("cif = ?", entity.NormalizeTaxID(cif)).Take(&companyM).Error
	if err != nil {
		return nil, translateError(err, repository.ErrCompanyNotFound, "find company by cif")
	}

	return toCompanyDomain(&companyM), nil
}

func (repo *companyRepository) Insert(ctx context.Context, company *entity.Company) error {
	companyM := fromCompanyDomain(company)
	if err := repo.conn.write(ctx).Create(companyM).Error; err != nil {
		return translateError(err, repository.ErrCompanyNotFound, "insert company")
	}

	company.ID = companyM.ID
	company.CreatedAt = companyM.CreatedAt
	company.UpdatedAt = companyM.UpdatedAt

	return nil
}

func (repo *companyRepository) UpdateFields(ctx context.Context, company *entity.Company) (int64, error) {
	result := repo.conn.write(ctx).Model(&model.CompanyModel{}).
		Where("id = ? AND cif IS NOT NULL", company.ID).
		Updates(map[string]any{
			"name":    nullable(company.Name),
			"address": nullable(company.Address),
		})
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrCompanyNotFound, "update company")
	}

	return result.RowsAffected, nil
}

func (repo *companyRepository) Scrub(ctx context.Context, id uint64) (int64, error) {
	result := repo.conn.write(ctx).Model(&model.CompanyModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": nil, "cif": nil, "address": nil})
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrCompanyNotFound, "scrub company")
	}

	return result.RowsAffected, nil
}
