package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dnotes/internal/delivery/api/middleware"
	"dnotes/internal/delivery/api/router/handler"
	"dnotes/internal/delivery/api/validator"
	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/errors"
	mockusecase "dnotes/internal/mocks/usecase"
	"dnotes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

var testPrincipal = entity.Principal{UserID: 7}

type apiFixture struct {
	e         *echo.Echo
	authUC    *mockusecase.MockAuthUsecase
	userUC    *mockusecase.MockUserUsecase
	companyUC *mockusecase.MockCompanyUsecase
	clientUC  *mockusecase.MockClientUsecase
	projectUC *mockusecase.MockProjectUsecase
	noteUC    *mockusecase.MockDeliveryNoteUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixture{
		authUC:    mockusecase.NewMockAuthUsecase(t),
		userUC:    mockusecase.NewMockUserUsecase(t),
		companyUC: mockusecase.NewMockCompanyUsecase(t),
		clientUC:  mockusecase.NewMockClientUsecase(t),
		projectUC: mockusecase.NewMockProjectUsecase(t),
		noteUC:    mockusecase.NewMockDeliveryNoteUsecase(t),
	}

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: f.userUC, CompanyUC: f.companyUC, Logger: logger,
		}),
		ClientHandler:       handler.NewClientHandler(handler.ClientHandlerParams{ClientUC: f.clientUC, Logger: logger}),
		ProjectHandler:      handler.NewProjectHandler(handler.ProjectHandlerParams{ProjectUC: f.projectUC, Logger: logger}),
		DeliveryNoteHandler: handler.NewDeliveryNoteHandler(handler.DeliveryNoteHandlerParams{DeliveryNoteUC: f.noteUC, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(f.authUC, logger),
	})
	r.RegisterRoutes(e)
	f.e = e

	return f
}

func (f *apiFixture) allow(scope usecase.CredentialScope, allowSoftDeleted bool) {
	principal := testPrincipal
	if scope == usecase.ScopeReset {
		principal.ResetScope = true
	}
	f.authUC.EXPECT().Authenticate(mock.Anything, testToken, scope, allowSoftDeleted).Return(&principal, nil).Once()
}

func (f *apiFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealthCheck(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestAuth_MissingAndMalformedToken(t *testing.T) {
	f := newAPIFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", decode(t, rec).Error.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec = httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_RejectedCredentialHidesReason(t *testing.T) {
	f := newAPIFixture(t)
	f.authUC.EXPECT().Authenticate(mock.Anything, testToken, usecase.ScopeAccess, false).
		Return(nil, domainerrors.NewAuthenticationError(domainerrors.AuthFailureExpired, errors.New("token is expired")))

	rec := f.do(http.MethodGet, "/api/user/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestUser_RegisterIsPublic(t *testing.T) {
	f := newAPIFixture(t)
	f.userUC.EXPECT().Register(mock.Anything, usecase.RegisterInput{Email: "ana@example.com", Password: "long-enough"}).
		Return(&usecase.AuthOutput{
			Token: "issued",
			User: &entity.User{
				ID: 7, Email: "ana@example.com", PasswordHash: "secret-hash", ValidationCode: "123456",
				Status: entity.UserStatusNotValidated, Role: entity.RolePersonal,
			},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/user/register",
		strings.NewReader(`{"email":"ana@example.com","password":"long-enough"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"token":"issued"`)
	assert.NotContains(t, body, "secret-hash")
	assert.NotContains(t, body, "123456")
}

func TestUser_RestoreAcceptsSoftDeletedAccount(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, true)
	f.userUC.EXPECT().RestoreUser(mock.Anything, testPrincipal).
		Return(&entity.User{ID: 7, Email: "ana@example.com", Lifecycle: entity.LifecycleActive}, nil)

	rec := f.do(http.MethodPatch, "/api/user/restore", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUser_RecoverPasswordNeedsResetToken(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeReset, false)
	f.userUC.EXPECT().RecoverPassword(mock.Anything, entity.Principal{UserID: 7, ResetScope: true}, "brand-new-pass").Return(nil)

	rec := f.do(http.MethodPut, "/api/user/password/recover", `{"password":"brand-new-pass"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUser_DeleteDefaultsToSoft(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	f.allow(usecase.ScopeAccess, false)
	f.userUC.EXPECT().SoftDeleteUser(mock.Anything, testPrincipal).Return(nil).Once()
	f.userUC.EXPECT().HardDeleteUser(mock.Anything, testPrincipal).Return(nil).Once()

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/user", "").Code)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/user?soft=false", "").Code)
}

func TestUser_ProfileImageUpload(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	f.userUC.EXPECT().UpdateProfileImage(mock.Anything, testPrincipal, usecase.ProfileImageInput{
		Filename: "me.png",
		Data:     []byte("png-bytes"),
	}).Return(&entity.User{ID: 7, ProfileImageURL: "https://cdn.example.com/me.png"}, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "me.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPatch, "/api/user/profile-image", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://cdn.example.com/me.png")
}

func TestUser_ProfileImageWithoutFile(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)

	rec := f.do(http.MethodPatch, "/api/user/profile-image", `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestClient_Create(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	f.clientUC.EXPECT().CreateClient(mock.Anything, testPrincipal, usecase.CreateClientInput{
		Name: "Acme", CIF: "A1234567Z", Address: "1 Main St",
	}).Return(&entity.Client{ID: 3, OwnerUserID: 7, Name: "Acme", CIF: "A1234567Z", Address: "1 Main St"}, nil)

	rec := f.do(http.MethodPost, "/api/clients", `{"name":"Acme","cif":"A1234567Z","address":"1 Main St"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var view handler.ClientView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, uint64(3), view.ID)
	assert.Equal(t, "active", view.Lifecycle)
}

func TestClient_CreateMissingField(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)

	rec := f.do(http.MethodPost, "/api/clients", `{"name":"Acme","address":"1 Main St"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "cif: must not be empty", env.Error.Details)
}

func TestClient_InvalidPathID(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)

	rec := f.do(http.MethodGet, "/api/clients/abc", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "clientId")
}

func TestClient_DeleteBlockedByDeliveryNotes(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	f.clientUC.EXPECT().HardDeleteClient(mock.Anything, testPrincipal, uint64(3)).
		Return(domainerrors.ErrClientHasDeliveryNotes.WithDetails("client 3 has 2 delivery notes"))

	rec := f.do(http.MethodDelete, "/api/clients/3?soft=false", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "CLIENT_HAS_DELIVERY_NOTES", env.Error.Code)
	assert.Equal(t, "client 3 has 2 delivery notes", env.Error.Details)
}

func TestClient_InvalidSoftFlag(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)

	rec := f.do(http.MethodDelete, "/api/clients/3?soft=maybe", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestClient_StoreFailureIsOpaque(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	f.clientUC.EXPECT().ListClients(mock.Anything, testPrincipal).
		Return(nil, domainerrors.NewStoreUnavailableError(errors.New("dial tcp: connection refused"), "list clients"))

	rec := f.do(http.MethodGet, "/api/clients", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "STORE_UNAVAILABLE", env.Error.Code)
	assert.Empty(t, env.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestClient_UnclassifiedErrorIsInternal(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	f.clientUC.EXPECT().GetClientByID(mock.Anything, testPrincipal, uint64(3)).Return(nil, errors.New("boom"))

	rec := f.do(http.MethodGet, "/api/clients/3", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
}

func TestProject_UpdatePassesOnlyPresentFields(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	f.projectUC.EXPECT().UpdateProject(mock.Anything, testPrincipal, uint64(3), uint64(5),
		mock.MatchedBy(func(patch entity.ProjectPatch) bool {
			return patch.Name != nil && *patch.Name == "Warehouse B" && patch.Email == nil && patch.Address == nil
		}),
	).Return(&entity.Project{ID: 5, ClientID: 3, ProjectCode: "P-001", Name: "Warehouse B"}, nil)

	rec := f.do(http.MethodPut, "/api/clients/3/projects/5", `{"name":"Warehouse B"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeliveryNote_CreateParsesDate(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	ids := entity.Ancestors{ClientID: 3, ProjectID: 5}
	f.noteUC.EXPECT().CreateDeliveryNote(mock.Anything, testPrincipal, ids,
		mock.MatchedBy(func(content entity.DeliveryNoteContent) bool {
			return content.Format == entity.FormatHours && content.Hours == 8 &&
				content.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
		}),
	).Return(&entity.DeliveryNote{
		ID: 9, ClientID: 3, ProjectID: 5, Format: entity.FormatHours, Hours: 8,
		Description: "Install", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	rec := f.do(http.MethodPost, "/api/clients/3/projects/5/deliverynotes",
		`{"format":"hours","hours":8,"description":"Install","date":"2024-03-01"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var view handler.DeliveryNoteView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, "2024-03-01", view.Date)
}

func TestDeliveryNote_CreateRejectsBadDate(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)

	rec := f.do(http.MethodPost, "/api/clients/3/projects/5/deliverynotes",
		`{"format":"hours","hours":8,"description":"Install","date":"01/03/2024"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode(t, rec).Error.Details, "date")
}

func TestDeliveryNote_SignWithPendingDocument(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	signedAt := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	f.noteUC.EXPECT().SignDeliveryNote(mock.Anything, testPrincipal, entity.Ancestors{ClientID: 3, ProjectID: 5}, uint64(9)).
		Return(
			&entity.DeliveryNote{ID: 9, Format: entity.FormatHours, Signed: true, SignedAt: &signedAt},
			domainerrors.NewArtifactPersistenceError(9, "store", errors.New("bucket unreachable")),
		)

	rec := f.do(http.MethodPatch, "/api/clients/3/projects/5/deliverynotes/9/sign", "")

	require.Equal(t, http.StatusAccepted, rec.Code)
	var view handler.SignedView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.True(t, view.ArtifactPending)
	assert.Equal(t, "store", view.ArtifactFailedAt)
	assert.True(t, view.Note.Signed)
}

func TestDeliveryNote_SignTwice(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	f.noteUC.EXPECT().SignDeliveryNote(mock.Anything, testPrincipal, entity.Ancestors{ClientID: 3, ProjectID: 5}, uint64(9)).
		Return(nil, domainerrors.ErrDeliveryNoteAlreadySigned)

	rec := f.do(http.MethodPatch, "/api/clients/3/projects/5/deliverynotes/9/sign", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DELIVERY_NOTE_ALREADY_SIGNED", decode(t, rec).Error.Code)
}

func TestDeliveryNote_PDF(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	f.noteUC.EXPECT().RenderDeliveryNotePDF(mock.Anything, testPrincipal, entity.Ancestors{ClientID: 3, ProjectID: 5}, uint64(9)).
		Return(&usecase.RenderedDocument{Filename: "delivery-note-9.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.3")}, nil)

	rec := f.do(http.MethodGet, "/api/clients/3/projects/5/deliverynotes/9/pdf", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="delivery-note-9.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestDeliveryNote_ForeignNote(t *testing.T) {
	f := newAPIFixture(t)
	f.allow(usecase.ScopeAccess, false)
	f.noteUC.EXPECT().GetDeliveryNoteByID(mock.Anything, testPrincipal, entity.Ancestors{ClientID: 3, ProjectID: 5}, uint64(9)).
		Return(nil, domainerrors.ErrDeliveryNoteNotOwned)

	rec := f.do(http.MethodGet, "/api/clients/3/projects/5/deliverynotes/9", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "DELIVERY_NOTE_NOT_OWNED", decode(t, rec).Error.Code)
}
