package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
)

// CompanyInput is the company onboarding payload.
type CompanyInput struct {
	Name    string
	CIF     string
	Address string
}

// CompanyUsecase links users to the company they act for.
type CompanyUsecase interface {
	// OnboardCompany registers the company, or reuses the one with the same CIF, and links the user to it.
	OnboardCompany(ctx context.Context, principal entity.Principal, input CompanyInput) (*entity.User, error)
	GetMyCompany(ctx context.Context, principal entity.Principal) (*entity.Company, error)
}
