package database

import (
	"context"

	"dnotes/internal/domain/entity"
	"dnotes/internal/domain/repository"
	"dnotes/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type userRepository struct {
	conn conn
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{conn: conn{db: db}}
}

// FindByID loads the company with a second, unlocked query.
func (repo *userRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.conn.read(ctx).Where("id = ?", id).Take(&userM).Error; err != nil {
		return nil, translateError(err, repository.ErrUserNotFound, "find user by id")
	}

	if userM.CompanyID != nil {
		var companyM model.CompanyModel
		err := repo.conn.write(ctx).Where("id = ?", *userM.CompanyID).Take(&companyM).Error
		if err != nil {
			return nil, translateError(err, repository.ErrCompanyNotFound, "find user company")
		}
		userM.Company = &companyM
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.conn.read(ctx).Where("email = ?", entity.NormalizeEmail(email)).Take(&userM).Error
	if err != nil {
		return nil, translateError(err, repository.ErrUserNotFound, "find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) Insert(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.conn.write(ctx).Omit("Company").Create(userM).Error; err != nil {
		return translateError(err, repository.ErrUserNotFound, "insert user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) UpdateFields(ctx context.Context, user *entity.User) (int64, error) {
	result := repo.conn.write(ctx).Model(&model.UserModel{}).
		Where("id = ? AND lifecycle = ?", user.ID, int8(entity.LifecycleActive)).
		Updates(map[string]any{
			"email":               nullable(user.Email),
			"password_hash":       nullable(user.PasswordHash),
			"validation_code":     nullable(user.ValidationCode),
			"validation_attempts": user.ValidationAttempts,
			"status":              user.Status.String(),
			"role":                user.Role.String(),
			"name":                nullable(user.Name),
			"surname":             nullable(user.Surname),
			"nif":                 nullable(user.NIF),
			"profile_image_url":   nullable(user.ProfileImageURL),
			"company_id":          user.CompanyID,
		})
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrUserNotFound, "update user")
	}

	return result.RowsAffected, nil
}

func (repo *userRepository) UpdateLifecycle(ctx context.Context, id uint64, from []entity.Lifecycle, to entity.Lifecycle) (int64, error) {
	updates := map[string]any{"lifecycle": int8(to)}
	if to == entity.LifecycleHardDeleted {
		for _, column := range []string{
			"email", "password_hash", "validation_code", "status", "role",
			"name", "surname", "nif", "profile_image_url", "company_id",
		} {
			updates[column] = nil
		}
		updates["validation_attempts"] = 0
	}

	result := repo.conn.write(ctx).Model(&model.UserModel{}).
		Where("id = ? AND lifecycle IN ?", id, lifecycleValues(from)).
		Updates(updates)
	if result.Error != nil {
		return 0, translateError(result.Error, repository.ErrUserNotFound, "update user lifecycle")
	}

	return result.RowsAffected, nil
}

func (repo *userRepository) CountCompanyMembers(ctx context.Context, companyID uint64) (int64, error) {
	var count int64
	err := repo.conn.write(ctx).Model(&model.UserModel{}).Where("company_id = ?", companyID).Count(&count).Error
	if err != nil {
		return 0, translateError(err, repository.ErrCompanyNotFound, "count company members")
	}

	return count, nil
}

func (repo *userRepository) Stats(ctx context.Context) (*entity.UserStats, error) {
	var stats entity.UserStats
	err := repo.conn.write(ctx).Model(&model.UserModel{}).
		Select(`COUNT(*) AS total,
			COUNT(CASE WHEN lifecycle = ? THEN 1 END) AS active,
			COUNT(CASE WHEN lifecycle = ? THEN 1 END) AS soft_deleted,
			COUNT(CASE WHEN lifecycle = ? THEN 1 END) AS hard_deleted,
			COUNT(CASE WHEN status = ? AND lifecycle <> ? THEN 1 END) AS not_validated,
			COUNT(CASE WHEN role = ? AND lifecycle = ? THEN 1 END) AS personal,
			COUNT(CASE WHEN role = ? AND lifecycle = ? THEN 1 END) AS company`,
			int8(entity.LifecycleActive),
			int8(entity.LifecycleSoftDeleted),
			int8(entity.LifecycleHardDeleted),
			entity.UserStatusNotValidated.String(), int8(entity.LifecycleHardDeleted),
			entity.RolePersonal.String(), int8(entity.LifecycleActive),
			entity.RoleCompany.String(), int8(entity.LifecycleActive),
		).
		Scan(&stats).Error
	if err != nil {
		return nil, translateError(err, repository.ErrUserNotFound, "aggregate user stats")
	}

	return &stats, nil
}
