package errors

import (
	"fmt"
	"net/http"

	"dnotes/internal/errors"
)

// Kind classifies an application error independently of its transport mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindNotFound
	KindNotOwned
	KindAlreadyExists
	KindHasDependentChildren
	KindAlreadyProcessed
	KindStoreUnavailable
	KindStoreOperation
	KindArtifactPersistenceFailed
	KindUploadFailed
)

var kindNames = map[Kind]string{
	KindInternal:                  "internal",
	KindValidation:                "validation",
	KindAuthentication:            "authentication",
	KindNotFound:                  "not_found",
	KindNotOwned:                  "not_owned",
	KindAlreadyExists:             "already_exists",
	KindHasDependentChildren:      "has_dependent_children",
	KindAlreadyProcessed:          "already_processed",
	KindStoreUnavailable:          "store_unavailable",
	KindStoreOperation:            "store_operation",
	KindArtifactPersistenceFailed: "artifact_persistence_failed",
	KindUploadFailed:              "upload_failed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Retryable reports whether a caller may retry the same operation unchanged.
func (k Kind) Retryable() bool {
	return k == KindStoreUnavailable || k == KindArtifactPersistenceFailed || k == KindUploadFailed
}

// Business reports whether the kind is the outcome of a business rule rather than an infrastructure failure.
func (k Kind) Business() bool {
	switch k {
	case KindInternal, KindStoreUnavailable, KindStoreOperation, KindArtifactPersistenceFailed, KindUploadFailed:
		return false
	default:
		return true
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so copies made by WithDetails
// still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

func (e *BaseError) Kind() Kind {
	return e.kind
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithDetailsf is WithDetails with a format specifier.
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(KindValidation, http.StatusUnprocessableEntity,
		"VALIDATION_FAILED", "input validation failed", "")
	ErrInvalidValidationCode = NewBaseError(KindValidation, http.StatusUnprocessableEntity,
		"INVALID_VALIDATION_CODE", "validation code does not match", "")
	ErrValidationAttemptsExceeded = NewBaseError(KindValidation, http.StatusTooManyRequests,
		"VALIDATION_ATTEMPTS_EXCEEDED", "maximum validation attempts reached", "")
	ErrUserNotValidated = NewBaseError(KindValidation, http.StatusForbidden,
		"USER_NOT_VALIDATED", "email address has not been validated", "")
	ErrUserAlreadyValidated = NewBaseError(KindAlreadyProcessed, http.StatusConflict,
		"USER_ALREADY_VALIDATED", "email address is already validated", "")

	// Authentication
	ErrInvalidCredentials = NewBaseError(KindAuthentication, http.StatusUnauthorized,
		"INVALID_CREDENTIALS", "email or password is incorrect", "")

	// Not found
	ErrNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"NOT_FOUND", "resource not found", "")
	ErrUserNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"USER_NOT_FOUND", "user not found", "")
	ErrCompanyNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"COMPANY_NOT_FOUND", "company not found", "")
	ErrClientNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"CLIENT_NOT_FOUND", "client not found", "")
	ErrProjectNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"PROJECT_NOT_FOUND", "project not found", "")
	ErrDeliveryNoteNotFound = NewBaseError(KindNotFound, http.StatusNotFound,
		"DELIVERY_NOTE_NOT_FOUND", "delivery note not found", "")

	// Not owned
	ErrNotOwned = NewBaseError(KindNotOwned, http.StatusForbidden,
		"NOT_OWNED", "resource does not belong to the requesting user", "")
	ErrUserNotOwned = NewBaseError(KindNotOwned, http.StatusForbidden,
		"USER_NOT_OWNED", "user account does not belong to the requesting user", "")
	ErrClientNotOwned = NewBaseError(KindNotOwned, http.StatusForbidden,
		"CLIENT_NOT_OWNED", "client does not belong to the requesting user", "")
	ErrProjectNotOwned = NewBaseError(KindNotOwned, http.StatusForbidden,
		"PROJECT_NOT_OWNED", "project does not belong to the requesting user and client", "")
	ErrDeliveryNoteNotOwned = NewBaseError(KindNotOwned, http.StatusForbidden,
		"DELIVERY_NOTE_NOT_OWNED", "delivery note does not belong to the requesting user, client and project", "")

	// Already exists
	ErrUserAlreadyExists = NewBaseError(KindAlreadyExists, http.StatusConflict,
		"USER_ALREADY_EXISTS", "email is already registered", "")
	ErrCompanyAlreadyExists = NewBaseError(KindAlreadyExists, http.StatusConflict,
		"COMPANY_ALREADY_EXISTS", "company tax id is already registered", "")
	ErrClientAlreadyExists = NewBaseError(KindAlreadyExists, http.StatusConflict,
		"CLIENT_ALREADY_EXISTS", "a client with this tax id is already registered", "")
	ErrProjectCodeTaken = NewBaseError(KindAlreadyExists, http.StatusConflict,
		"PROJECT_CODE_TAKEN", "project code is already in use", "")
	ErrDeliveryNoteAlreadyExists = NewBaseError(KindAlreadyExists, http.StatusConflict,
		"DELIVERY_NOTE_ALREADY_EXISTS", "an identical delivery note already exists", "")

	// Dependent children
	ErrClientHasDeliveryNotes = NewBaseError(KindHasDependentChildren, http.StatusConflict,
		"CLIENT_HAS_DELIVERY_NOTES", "client has delivery notes and cannot be deleted", "")
	ErrProjectHasDeliveryNotes = NewBaseError(KindHasDependentChildren, http.StatusConflict,
		"PROJECT_HAS_DELIVERY_NOTES", "project has delivery notes and cannot be deleted", "")

	// Already processed
	ErrDeliveryNoteAlreadySigned = NewBaseError(KindAlreadyProcessed, http.StatusConflict,
		"DELIVERY_NOTE_ALREADY_SIGNED", "delivery note is already signed", "")
	ErrDeliveryNoteSigned = NewBaseError(KindAlreadyProcessed, http.StatusConflict,
		"DELIVERY_NOTE_SIGNED", "signed delivery notes cannot be modified", "")
	ErrDeliveryNoteNotSigned = NewBaseError(KindValidation, http.StatusConflict,
		"DELIVERY_NOTE_NOT_SIGNED", "delivery note is not signed", "")

	// General errors
	ErrInternalError = NewBaseError(KindInternal, http.StatusInternalServerError,
		"INTERNAL_ERROR", "internal server error", "")
)

// NewValidationError reports an invalid field value.
func NewValidationError(field, reason string) *BaseError {
	return ErrValidationFailed.WithDetailsf("%s: %s", field, reason)
}

// AuthFailure is the internal reason a credential was rejected.
type AuthFailure string

const (
	AuthFailureMissing          AuthFailure = "missing"
	AuthFailureMalformed        AuthFailure = "malformed"
	AuthFailureExpired          AuthFailure = "expired"
	AuthFailureInvalidSignature AuthFailure = "invalid_signature"
	AuthFailureWrongScope       AuthFailure = "wrong_scope"
	AuthFailureInactiveUser     AuthFailure = "inactive_user"
)

// AuthenticationError is returned when a credential cannot be verified.
// The reason is kept for logs only; clients always see the same message.
type AuthenticationError struct {
	reason AuthFailure
	cause  error
}

// NewAuthenticationError creates an authentication error with its internal reason.
func NewAuthenticationError(reason AuthFailure, cause error) *AuthenticationError {
	return &AuthenticationError{reason: reason, cause: cause}
}

func (e *AuthenticationError) Error() string {
	if e.cause == nil {
		return "authentication failed (" + string(e.reason) + ")"
	}

	return "authentication failed (" + string(e.reason) + "): " + e.cause.Error()
}

func (e *AuthenticationError) Unwrap() error {
	return e.cause
}

// Reason returns why the credential was rejected.
func (e *AuthenticationError) Reason() AuthFailure {
	return e.reason
}

func (e *AuthenticationError) HTTPCode() int {
	return http.StatusUnauthorized
}

func (e *AuthenticationError) ErrorCode() string {
	return "UNAUTHENTICATED"
}

func (e *AuthenticationError) Message() string {
	return "authentication required"
}

func (e *AuthenticationError) Details() string {
	return ""
}

func (e *AuthenticationError) Kind() Kind {
	return KindAuthentication
}

// StoreError represents a persistence failure, implementing the AppError interface.
// Unavailable stores are retryable; other failures are not.
type StoreError struct {
	kind    Kind
	err     error
	details string
}

// NewStoreUnavailableError creates an error for connectivity failures to the store.
func NewStoreUnavailableError(err error, details string) AppError {
	return &StoreError{kind: KindStoreUnavailable, err: err, details: details}
}

// NewStoreOperationError creates an error for any other failed persistence call.
func NewStoreOperationError(err error, details string) AppError {
	return &StoreError{kind: KindStoreOperation, err: err, details: details}
}

func (e *StoreError) Error() string {
	prefix := "store operation failed"
	if e.kind == KindStoreUnavailable {
		prefix = "store unavailable"
	}
	if e.err == nil {
		return prefix + ": " + e.details
	}

	return errors.Wrap(e.err, prefix+": "+e.details).Error()
}

func (e *StoreError) Unwrap() error {
	return e.err
}

func (e *StoreError) HTTPCode() int {
	if e.kind == KindStoreUnavailable {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func (e *StoreError) ErrorCode() string {
	if e.kind == KindStoreUnavailable {
		return "STORE_UNAVAILABLE"
	}

	return "STORE_OPERATION_FAILED"
}

func (e *StoreError) Message() string {
	return "internal server error"
}

func (e *StoreError) Details() string {
	return e.details
}

func (e *StoreError) Kind() Kind {
	return e.kind
}

// ArtifactPersistenceError reports that a delivery note was signed but its rendered
// artifact could not be produced or stored. The signature stays in place.
type ArtifactPersistenceError struct {
	deliveryNoteID uint64
	stage          string
	err            error
}

// NewArtifactPersistenceError creates an artifact failure for the given note and stage (render, store, record).
func NewArtifactPersistenceError(deliveryNoteID uint64, stage string, err error) *ArtifactPersistenceError {
	return &ArtifactPersistenceError{deliveryNoteID: deliveryNoteID, stage: stage, err: err}
}

func (e *ArtifactPersistenceError) Error() string {
	return fmt.Sprintf("delivery note %d artifact %s failed: %v", e.deliveryNoteID, e.stage, e.err)
}

func (e *ArtifactPersistenceError) Unwrap() error {
	return e.err
}

// DeliveryNoteID returns the signed note whose artifact is missing.
func (e *ArtifactPersistenceError) DeliveryNoteID() uint64 {
	return e.deliveryNoteID
}

// Stage returns the step that failed.
func (e *ArtifactPersistenceError) Stage() string {
	return e.stage
}

func (e *ArtifactPersistenceError) HTTPCode() int {
	return http.StatusAccepted
}

func (e *ArtifactPersistenceError) ErrorCode() string {
	return "ARTIFACT_PERSISTENCE_FAILED"
}

func (e *ArtifactPersistenceError) Message() string {
	return "delivery note signed, document generation is pending"
}

func (e *ArtifactPersistenceError) Details() string {
	return e.stage
}

func (e *ArtifactPersistenceError) Kind() Kind {
	return KindArtifactPersistenceFailed
}

// UploadError reports that a user file could not be written to the artifact store.
// Nothing was recorded in the database.
type UploadError struct {
	err     error
	details string
}

// NewUploadError creates an upload failure.
func NewUploadError(err error, details string) *UploadError {
	return &UploadError{err: err, details: details}
}

func (e *UploadError) Error() string {
	if e.err == nil {
		return "upload failed: " + e.details
	}

	return errors.Wrap(e.err, "upload failed: "+e.details).Error()
}

func (e *UploadError) Unwrap() error {
	return e.err
}

func (e *UploadError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

func (e *UploadError) ErrorCode() string {
	return "UPLOAD_FAILED"
}

func (e *UploadError) Message() string {
	return "file could not be stored, try again later"
}

func (e *UploadError) Details() string {
	return e.details
}

func (e *UploadError) Kind() Kind {
	return KindUploadFailed
}
