package impl

import (
	"context"
	"fmt"
	"log/slog"

	"dnotes/config"
	deliverycontext "dnotes/internal/delivery/context"
	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/domain/repository"
	"dnotes/internal/domain/service"
	"dnotes/internal/errors"
	"dnotes/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultMaxValidationAttempts = 3

// userService implements the UserUsecase interface.
type userService struct {
	txManager             repository.TransactionManager
	userRepo              repository.UserRepository
	hasher                service.PasswordHasher
	codes                 service.CodeGenerator
	tokenService          service.TokenService
	mailer                service.Mailer
	store                 service.ArtifactStore
	maxValidationAttempts int
	logger                *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	Codes        service.CodeGenerator
	TokenService service.TokenService
	Mailer       service.Mailer
	Store        service.ArtifactStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxAttempts := defaultMaxValidationAttempts
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MaxValidationAttempts > 0 {
		maxAttempts = params.Config.Auth.MaxValidationAttempts
	}

	return &userService{
		txManager:             params.TxManager,
		userRepo:              params.UserRepo,
		hasher:                params.Hasher,
		codes:                 params.Codes,
		tokenService:          params.TokenService,
		mailer:                params.Mailer,
		store:                 params.Store,
		maxValidationAttempts: maxAttempts,
		logger:                params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register opens an unvalidated account and emails its validation code.
// A failed email does not undo the registration.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}
	code, err := srv.codes.Next()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate validation code")
	}

	user, err := entity.NewUser(email, hash, code)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.UserRepo()

		_, err := repo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		return mapDuplicate(repo.Insert(ctx, user), domainerrors.ErrUserAlreadyExists)
	})
	if err != nil {
		return nil, err
	}

	if err := srv.mailer.SendValidationCode(ctx, user.Email, code); err != nil {
		srv.log(ctx).Warn("Failed to send validation code", slog.Uint64("userID", user.ID), slog.Any("error", err))
	}

	token, err := srv.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("User registered", slog.Uint64("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// ValidateEmail checks the emailed code. Failed attempts are counted even though an error is returned.
func (srv *userService) ValidateEmail(ctx context.Context, principal entity.Principal, code string) (*entity.User, error) {
	if err := entity.ValidateCode(code); err != nil {
		return nil, err
	}

	var (
		validated *entity.User
		outcome   error
	)
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.UserRepo()

		user, err := userOwnership(repo).resolve(ctx, principal, principal.UserID, entity.Ancestors{}, activeOnly)
		if err != nil {
			return err
		}
		if user.IsValidated() {
			return domainerrors.ErrUserAlreadyValidated
		}
		if user.ValidationAttempts >= srv.maxValidationAttempts {
			return domainerrors.ErrValidationAttemptsExceeded
		}

		if code != user.ValidationCode {
			user.ValidationAttempts++
			if _, err := repo.UpdateFields(ctx, user); err != nil {
				return err
			}

			remaining := srv.maxValidationAttempts - user.ValidationAttempts
			if remaining <= 0 {
				outcome = domainerrors.ErrValidationAttemptsExceeded
			} else {
				outcome = domainerrors.ErrInvalidValidationCode.WithDetailsf("%d attempts left", remaining)
			}

			return nil
		}

		user.Status = entity.UserStatusValidated
		user.ValidationCode = ""
		user.ValidationAttempts = 0
		if _, err := repo.UpdateFields(ctx, user); err != nil {
			return err
		}
		validated = user

		return nil
	})
	if err != nil {
		return nil, err
	}
	if outcome != nil {
		return nil, outcome
	}

	srv.log(ctx).Info("Email validated", slog.Uint64("userID", validated.ID))

	return validated, nil
}

// Login checks the password before the validation status so unvalidated accounts are not disclosed.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}
	if input.Password == "" {
		return nil, domainerrors.NewValidationError("password", "must not be empty")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Lifecycle != entity.LifecycleActive {
		return nil, domainerrors.ErrUserNotFound
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsValidated() {
		return nil, domainerrors.ErrUserNotValidated
	}

	token, err := srv.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

func (srv *userService) GetMe(ctx context.Context, principal entity.Principal) (*entity.User, error) {
	return userOwnership(srv.userRepo).resolve(ctx, principal, principal.UserID, entity.Ancestors{}, activeOnly)
}

func (srv *userService) UpdatePersonalData(ctx context.Context, principal entity.Principal, data entity.PersonalData) (*entity.User, error) {
	probe := &entity.User{}
	if err := probe.ApplyPersonalData(data); err != nil {
		return nil, err
	}

	return srv.updateSelf(ctx, principal, func(user *entity.User) error {
		if !user.IsValidated() {
			return domainerrors.ErrUserNotValidated
		}

		return user.ApplyPersonalData(data)
	})
}

// UpdateProfileImage stores the picture before touching the account row.
func (srv *userService) UpdateProfileImage(ctx context.Context, principal entity.Principal, input usecase.ProfileImageInput) (*entity.User, error) {
	contentType, err := entity.ProfileImageContentType(input.Filename, len(input.Data))
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("profile-images/%d/%s%s", principal.UserID, uuid.NewString(), entity.ProfileImageExtension(input.Filename))
	location, err := srv.store.Put(ctx, key, input.Data, contentType)
	if err != nil {
		return nil, domainerrors.NewUploadError(err, "store profile image")
	}

	updated, err := srv.updateSelf(ctx, principal, func(user *entity.User) error {
		user.ProfileImageURL = location

		return nil
	})
	if err != nil {
		// The account row was not updated, so nothing references the upload.
		if delErr := srv.store.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned profile image", slog.String("key", key), slog.Any("error", delErr))
		}

		return nil, err
	}

	return updated, nil
}

// updateSelf applies mutate to the principal's locked account row and returns the stored result.
func (srv *userService) updateSelf(ctx context.Context, principal entity.Principal, mutate func(*entity.User) error) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.UserRepo()

		user, err := userOwnership(repo).resolve(ctx, principal, principal.UserID, entity.Ancestors{}, activeOnly)
		if err != nil {
			return err
		}
		if err := mutate(user); err != nil {
			return err
		}

		rows, err := repo.UpdateFields(ctx, user)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domainerrors.ErrUserNotFound
		}

		updated, err = repo.FindByID(ctx, user.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *userService) RequestPasswordReset(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return err
	}
	if user.Lifecycle != entity.LifecycleActive {
		return domainerrors.ErrUserNotFound
	}

	token, err := srv.tokenService.IssueResetToken(user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to issue reset token")
	}
	if err := srv.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		return errors.Wrap(err, "failed to send password reset email")
	}

	srv.log(ctx).Info("Password reset requested", slog.Uint64("userID", user.ID))

	return nil
}

// RecoverPassword only runs for principals authenticated with a reset token.
func (srv *userService) RecoverPassword(ctx context.Context, principal entity.Principal, newPassword string) error {
	if !principal.ResetScope {
		return domainerrors.NewAuthenticationError(domainerrors.AuthFailureWrongScope, nil)
	}
	if err := entity.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	_, err = srv.updateSelf(ctx, principal, func(user *entity.User) error {
		user.PasswordHash = hash

		return nil
	})

	return err
}

func (srv *userService) SoftDeleteUser(ctx context.Context, principal entity.Principal) error {
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.UserRepo()

		if _, err := userOwnership(repo).resolve(ctx, principal, principal.UserID, entity.Ancestors{}, includeSoftDeleted); err != nil {
			return err
		}

		return transition(ctx, repo.UpdateLifecycle, principal.UserID, entity.LifecycleSoftDeleted, domainerrors.ErrUserNotFound)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User soft-deleted", slog.Uint64("userID", principal.UserID))

	return nil
}

// HardDeleteUser scrubs the account and, when it was the company's last member, the company too.
func (srv *userService) HardDeleteUser(ctx context.Context, principal entity.Principal) error {
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.UserRepo()

		user, err := userOwnership(repo).resolve(ctx, principal, principal.UserID, entity.Ancestors{}, includeSoftDeleted)
		if err != nil {
			return err
		}
		if err := transition(ctx, repo.UpdateLifecycle, user.ID, entity.LifecycleHardDeleted, domainerrors.ErrUserNotFound); err != nil {
			return err
		}
		if user.CompanyID == nil {
			return nil
		}

		members, err := repo.CountCompanyMembers(ctx, *user.CompanyID)
		if err != nil {
			return err
		}
		if members > 0 {
			return nil
		}

		_, err = f.CompanyRepo().Scrub(ctx, *user.CompanyID)

		return err
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User hard-deleted", slog.Uint64("userID", principal.UserID))

	return nil
}

func (srv *userService) RestoreUser(ctx context.Context, principal entity.Principal) (*entity.User, error) {
	var restored *entity.User
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.UserRepo()

		if _, err := userOwnership(repo).resolve(ctx, principal, principal.UserID, entity.Ancestors{}, includeSoftDeleted); err != nil {
			return err
		}
		if err := transition(ctx, repo.UpdateLifecycle, principal.UserID, entity.LifecycleActive, domainerrors.ErrUserNotFound); err != nil {
			return err
		}

		var err error
		restored, err = repo.FindByID(ctx, principal.UserID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return restored, nil
}

func (srv *userService) Dashboard(ctx context.Context, principal entity.Principal) (*entity.UserStats, error) {
	if _, err := srv.GetMe(ctx, principal); err != nil {
		return nil, err
	}

	return srv.userRepo.Stats(ctx)
}
