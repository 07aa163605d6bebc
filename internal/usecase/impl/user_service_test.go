package impl

import (
	"context"
	"testing"

	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	mockService "dnotes/internal/mocks/service"
	"dnotes/internal/errors"
	"dnotes/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	storeFixtures
	service usecase.UserUsecase
	hasher  *mockService.MockPasswordHasher
	codes   *mockService.MockCodeGenerator
	tokens  *mockService.MockTokenService
	mailer  *mockService.MockMailer
	store   *mockService.MockArtifactStore
}

func createTestUserService(t *testing.T, maxValidationAttempts int) userServiceFixtures {
	s := newStoreFixtures(t)
	hasher := mockService.NewMockPasswordHasher(t)
	codes := mockService.NewMockCodeGenerator(t)
	tokens := mockService.NewMockTokenService(t)
	mailer := mockService.NewMockMailer(t)
	store := mockService.NewMockArtifactStore(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    s.txManager,
		UserRepo:     s.userRepo,
		Hasher:       hasher,
		Codes:        codes,
		TokenService: tokens,
		Mailer:       mailer,
		Store:        store,
		Config:       newTestConfig(maxValidationAttempts),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		storeFixtures: s,
		service:       svc,
		hasher:        hasher,
		codes:         codes,
		tokens:        tokens,
		mailer:        mailer,
		store:         store,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret-password").Return("hash:secret-password", nil).Once()
	fx.codes.EXPECT().Next().Return("654321", nil).Once()
	fx.mailer.EXPECT().SendValidationCode(mock.Anything, "ana@example.com", "654321").Return(nil).Once()
	fx.tokens.EXPECT().IssueAccessToken(mock.AnythingOfType("uint64")).Return("access-token", nil).Once()

	out, err := fx.service.Register(ctx, usecase.RegisterInput{Email: " Ana@Example.com ", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.Token)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.Equal(t, entity.UserStatusNotValidated, out.User.Status)

	stored, err := fx.userRepo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "654321", stored.ValidationCode)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t, 3)
	fx.seedUser(t, "ana@example.com", true)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil).Once()
	fx.codes.EXPECT().Next().Return("654321", nil).Once()

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{Email: "ana@example.com", Password: "secret-password"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	fx := createTestUserService(t, 3)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{Email: "ana@example.com", Password: "short"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_MailFailureKeepsAccount(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.Anything).Return("hash", nil).Once()
	fx.codes.EXPECT().Next().Return("654321", nil).Once()
	fx.mailer.EXPECT().SendValidationCode(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
	fx.tokens.EXPECT().IssueAccessToken(mock.Anything).Return("access-token", nil).Once()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "ana@example.com", Password: "secret-password"})
	require.NoError(t, err)

	_, err = fx.userRepo.FindByEmail(ctx, "ana@example.com")
	assert.NoError(t, err)
}

func TestUserService_ValidateEmail_CountsAttempts(t *testing.T) {
	fx := createTestUserService(t, 2)
	ctx := context.Background()
	user := fx.seedUser(t, "ana@example.com", false)
	p := principalOf(user.ID)

	_, err := fx.service.ValidateEmail(ctx, p, "000000")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidValidationCode)

	stored, err := fx.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ValidationAttempts)

	_, err = fx.service.ValidateEmail(ctx, p, "000000")
	assert.ErrorIs(t, err, domainerrors.ErrValidationAttemptsExceeded)

	// The right code no longer helps once the attempts are spent.
	_, err = fx.service.ValidateEmail(ctx, p, "123456")
	assert.ErrorIs(t, err, domainerrors.ErrValidationAttemptsExceeded)
}

func TestUserService_ValidateEmail_Success(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()
	user := fx.seedUser(t, "ana@example.com", false)
	p := principalOf(user.ID)

	validated, err := fx.service.ValidateEmail(ctx, p, "123456")
	require.NoError(t, err)
	assert.True(t, validated.IsValidated())

	_, err = fx.service.ValidateEmail(ctx, p, "123456")
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyValidated)
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()
	validated := fx.seedUser(t, "ana@example.com", true)
	fx.seedUser(t, "pending@example.com", false)

	fx.hasher.EXPECT().Check("secret-password", "hash:secret-password").Return(true)
	fx.hasher.EXPECT().Check("wrong-password", "hash:secret-password").Return(false)
	fx.tokens.EXPECT().IssueAccessToken(validated.ID).Return("access-token", nil).Once()

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "access-token", out.Token)

	_, err = fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.service.Login(ctx, usecase.LoginInput{Email: "pending@example.com", Password: "secret-password"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotValidated)

	_, err = fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "secret-password"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	require.NoError(t, fx.service.SoftDeleteUser(ctx, principalOf(validated.ID)))
	_, err = fx.service.Login(ctx, usecase.LoginInput{Email: "ana@example.com", Password: "secret-password"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdatePersonalData(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()
	user := fx.seedUser(t, "ana@example.com", true)
	pending := fx.seedUser(t, "pending@example.com", false)
	data := entity.PersonalData{Name: "Ana", Surname: "García", NIF: "12345678z"}

	updated, err := fx.service.UpdatePersonalData(ctx, principalOf(user.ID), data)
	require.NoError(t, err)
	assert.Equal(t, "12345678Z", updated.NIF)
	assert.Equal(t, "García", updated.Surname)

	_, err = fx.service.UpdatePersonalData(ctx, principalOf(pending.ID), data)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotValidated)

	_, err = fx.service.UpdatePersonalData(ctx, principalOf(user.ID), entity.PersonalData{Name: "A", Surname: "B", NIF: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UpdateProfileImage(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()
	user := fx.seedUser(t, "ana@example.com", true)
	p := principalOf(user.ID)

	fx.store.EXPECT().Put(mock.Anything, mock.MatchedBy(func(key string) bool {
		return len(key) > 4 && key[len(key)-4:] == ".png"
	}), []byte("png-bytes"), "image/png").Return("https://cdn.example.com/me.png", nil).Once()

	updated, err := fx.service.UpdateProfileImage(ctx, p, usecase.ProfileImageInput{Filename: "me.PNG", Data: []byte("png-bytes")})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/me.png", updated.ProfileImageURL)

	_, err = fx.service.UpdateProfileImage(ctx, p, usecase.ProfileImageInput{Filename: "me.gif", Data: []byte("gif")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_UpdateProfileImage_UploadFailure(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()
	user := fx.seedUser(t, "ana@example.com", true)

	fx.store.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, "image/jpeg").
		Return("", errors.New("bucket offline")).Once()

	_, err := fx.service.UpdateProfileImage(ctx, principalOf(user.ID), usecase.ProfileImageInput{Filename: "me.jpg", Data: []byte("jpg")})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindUploadFailed))
	assert.False(t, domainerrors.IsKind(err, domainerrors.KindStoreUnavailable))
	assert.True(t, domainerrors.IsRetryable(err))

	stored, err := fx.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.ProfileImageURL)
}

func TestUserService_UpdateProfileImage_RemovesUploadWhenAccountUnchanged(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()
	user := fx.seedUser(t, "ana@example.com", true)
	_, err := fx.userRepo.UpdateLifecycle(ctx, user.ID, entity.TransitionSources(entity.LifecycleSoftDeleted), entity.LifecycleSoftDeleted)
	require.NoError(t, err)

	var uploaded string
	fx.store.EXPECT().Put(mock.Anything, mock.Anything, []byte("png"), "image/png").
		Run(func(args mock.Arguments) { uploaded = args.String(1) }).
		Return("https://cdn.example.com/me.png", nil).Once()
	fx.store.EXPECT().Delete(mock.Anything, mock.MatchedBy(func(key string) bool {
		return key != "" && key == uploaded
	})).Return(nil).Once()

	_, err = fx.service.UpdateProfileImage(ctx, principalOf(user.ID), usecase.ProfileImageInput{Filename: "me.png", Data: []byte("png")})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_PasswordReset(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()
	user := fx.seedUser(t, "ana@example.com", true)

	fx.tokens.EXPECT().IssueResetToken(user.ID).Return("reset-token", nil).Once()
	fx.mailer.EXPECT().SendPasswordReset(mock.Anything, "ana@example.com", "reset-token").Return(nil).Once()
	require.NoError(t, fx.service.RequestPasswordReset(ctx, "ana@example.com"))

	err := fx.service.RecoverPassword(ctx, principalOf(user.ID), "new-password")
	var authErr *domainerrors.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domainerrors.AuthFailureWrongScope, authErr.Reason())

	fx.hasher.EXPECT().Hash("new-password").Return("hash:new-password", nil).Once()
	require.NoError(t, fx.service.RecoverPassword(ctx, entity.Principal{UserID: user.ID, ResetScope: true}, "new-password"))

	stored, err := fx.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash:new-password", stored.PasswordHash)
}

func TestUserService_SoftDeleteAndRestore(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()
	user := fx.seedUser(t, "ana@example.com", true)
	p := principalOf(user.ID)

	require.NoError(t, fx.service.SoftDeleteUser(ctx, p))

	_, err := fx.service.GetMe(ctx, p)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	restored, err := fx.service.RestoreUser(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, entity.LifecycleActive, restored.Lifecycle)
	assert.Equal(t, "ana@example.com", restored.Email)
}

func TestUserService_HardDeleteScrubsLastCompanyMember(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()
	first := fx.seedUser(t, "first@example.com", true)
	second := fx.seedUser(t, "second@example.com", true)

	company, err := entity.NewCompany("Acme SL", "A1234567Z", "1 Main St")
	require.NoError(t, err)
	require.NoError(t, fx.companyRepo.Insert(ctx, company))
	for _, user := range []*entity.User{first, second} {
		user.JoinCompany(company.ID)
		_, err := fx.userRepo.UpdateFields(ctx, user)
		require.NoError(t, err)
	}

	require.NoError(t, fx.service.HardDeleteUser(ctx, principalOf(first.ID)))

	kept, err := fx.companyRepo.FindByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "A1234567Z", kept.CIF)

	require.NoError(t, fx.service.HardDeleteUser(ctx, principalOf(second.ID)))

	scrubbed, err := fx.companyRepo.FindByID(ctx, company.ID)
	require.NoError(t, err)
	assert.True(t, scrubbed.IsScrubbed())

	err = fx.service.HardDeleteUser(ctx, principalOf(second.ID))
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	gone, err := fx.userRepo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Empty(t, gone.Email)
	assert.Nil(t, gone.CompanyID)
	assert.Empty(t, gone.Role)
	assert.Empty(t, gone.Status)
	assert.NotEqual(t, entity.RoleCompany, gone.Role)
	assert.Equal(t, entity.LifecycleHardDeleted, gone.Lifecycle)
}

func TestUserService_Dashboard(t *testing.T) {
	fx := createTestUserService(t, 3)
	ctx := context.Background()
	user := fx.seedUser(t, "ana@example.com", true)
	other := fx.seedUser(t, "bob@example.com", false)
	require.NoError(t, fx.service.SoftDeleteUser(ctx, principalOf(other.ID)))

	stats, err := fx.service.Dashboard(ctx, principalOf(user.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Active)
	assert.Equal(t, int64(1), stats.SoftDeleted)
	assert.Equal(t, int64(1), stats.Personal)
	assert.Equal(t, int64(1), stats.NotValidated)
}
