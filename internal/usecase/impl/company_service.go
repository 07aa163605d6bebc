package impl

import (
	"context"
	"log/slog"

	deliverycontext "dnotes/internal/delivery/context"
	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/domain/repository"
	"dnotes/internal/errors"
	"dnotes/internal/usecase"

	"go.uber.org/fx"
)

type companyService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// CompanyServiceParams holds dependencies for CompanyService, injected by Fx.
type CompanyServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewCompanyService is the constructor for companyService.
func NewCompanyService(params CompanyServiceParams) usecase.CompanyUsecase {
	return &companyService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// OnboardCompany reuses an existing company with the same CIF instead of failing.
func (srv *companyService) OnboardCompany(ctx context.Context, principal entity.Principal, input usecase.CompanyInput) (*entity.User, error) {
	company, err := entity.NewCompany(input.Name, input.CIF, input.Address)
	if err != nil {
		return nil, err
	}

	var onboarded *entity.User
	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		userRepo := f.UserRepo()
		companyRepo := f.CompanyRepo()

		user, err := userOwnership(userRepo).resolve(ctx, principal, principal.UserID, entity.Ancestors{}, activeOnly)
		if err != nil {
			return err
		}
		if !user.IsValidated() {
			return domainerrors.ErrUserNotValidated
		}

		existing, err := companyRepo.FindByCIF(ctx, company.CIF)
		switch {
		case err == nil:
			company = existing
		case errors.Is(err, repository.ErrNotFound):
			if err := companyRepo.Insert(ctx, company); err != nil {
				return mapDuplicate(err, domainerrors.ErrCompanyAlreadyExists)
			}
		default:
			return err
		}

		user.JoinCompany(company.ID)
		if _, err := userRepo.UpdateFields(ctx, user); err != nil {
			return err
		}

		onboarded, err = userRepo.FindByID(ctx, user.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Company onboarded",
		slog.Uint64("userID", onboarded.ID),
		slog.Uint64("companyID", company.ID),
	)

	return onboarded, nil
}

func (srv *companyService) GetMyCompany(ctx context.Context, principal entity.Principal) (*entity.Company, error) {
	user, err := userOwnership(srv.userRepo).resolve(ctx, principal, principal.UserID, entity.Ancestors{}, activeOnly)
	if err != nil {
		return nil, err
	}
	if user.Company == nil {
		return nil, domainerrors.ErrCompanyNotFound.WithDetails("user is not linked to a company")
	}

	return user.Company, nil
}
