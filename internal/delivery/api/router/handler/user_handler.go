package handler

import (
	"io"
	"log/slog"
	"net/http"

	"dnotes/internal/delivery/api/response"
	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/errors"
	"dnotes/internal/usecase"
	"dnotes/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// profileImageField is the multipart field carrying the uploaded picture.
const profileImageField = "image"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	CompanyUC usecase.CompanyUsecase
	Logger    *slog.Logger
}

// UserHandler serves the account routes.
type UserHandler struct {
	userUC    usecase.UserUsecase
	companyUC usecase.CompanyUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC:    params.UserUC,
		companyUC: params.CompanyUC,
		logger:    params.Logger,
	}
}

// CredentialsRequest is the body of register and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ValidationCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type PersonalDataRequest struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
	NIF     string `json:"nif" validate:"required"`
}

type CompanyRequest struct {
	Name    string `json:"name" validate:"required"`
	CIF     string `json:"cif" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required"`
}

type RecoverPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// Register opens an account and returns a session token.
func (h *UserHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.Register(c.Request().Context(), usecase.RegisterInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, AuthView{Token: out.Token, User: toUserView(out.User)})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, AuthView{Token: out.Token, User: toUserView(out.User)})
}

func (h *UserHandler) ValidateEmail(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req ValidationCodeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.ValidateEmail(c.Request().Context(), p, req.Code)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserView(user))
}

func (h *UserHandler) GetMe(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetMe(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserView(user))
}

func (h *UserHandler) OnboardPersonal(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req PersonalDataRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdatePersonalData(c.Request().Context(), p, entity.PersonalData{
		Name:    req.Name,
		Surname: req.Surname,
		NIF:     req.NIF,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserView(user))
}

func (h *UserHandler) OnboardCompany(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req CompanyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.companyUC.OnboardCompany(c.Request().Context(), p, usecase.CompanyInput{
		Name:    req.Name,
		CIF:     req.CIF,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserView(user))
}

func (h *UserHandler) GetCompany(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	company, err := h.companyUC.GetMyCompany(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toCompanyView(company))
}

// UpdateProfileImage accepts a multipart upload in the "image" field.
func (h *UserHandler) UpdateProfileImage(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(profileImageField)
	if err != nil {
		return domainerrors.NewValidationError(profileImageField, "must be uploaded as multipart form data")
	}
	if fileHeader.Size > entity.MaxProfileImageBytes {
		return domainerrors.NewValidationError(profileImageField, "must be at most "+util.FormatBytes(entity.MaxProfileImageBytes))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, entity.MaxProfileImageBytes+1))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}

	user, err := h.userUC.UpdateProfileImage(c.Request().Context(), p, usecase.ProfileImageInput{
		Filename: fileHeader.Filename,
		Data:     data,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserView(user))
}

func (h *UserHandler) RequestPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, map[string]string{"status": "reset email sent"})
}

// RecoverPassword runs behind the reset-token middleware.
func (h *UserHandler) RecoverPassword(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req RecoverPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.RecoverPassword(c.Request().Context(), p, req.Password); err != nil {
		return err
	}

	return response.NoContent(c)
}

// Delete soft-deletes the account unless ?soft=false.
func (h *UserHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	soft, err := softDelete(c)
	if err != nil {
		return err
	}

	if soft {
		err = h.userUC.SoftDeleteUser(c.Request().Context(), p)
	} else {
		err = h.userUC.HardDeleteUser(c.Request().Context(), p)
	}
	if err != nil {
		return err
	}

	return response.NoContent(c)
}

func (h *UserHandler) Restore(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.RestoreUser(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserView(user))
}

func (h *UserHandler) Dashboard(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	stats, err := h.userUC.Dashboard(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats)
}
