package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrClientNotFound.WithDetails("id=10")

	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.NotErrorIs(t, err, ErrProjectNotFound)
	assert.Equal(t, "client not found: id=10", err.Error())
	assert.Equal(t, KindNotFound, err.Kind())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindInternal},
		{name: "plain error", err: stderrors.New("boom"), want: KindInternal},
		{name: "base error", err: ErrClientNotOwned, want: KindNotOwned},
		{name: "wrapped base error", err: ErrProjectHasDeliveryNotes.WrapMessage("delete project"), want: KindHasDependentChildren},
		{name: "fmt wrapped", err: fmt.Errorf("outer: %w", ErrDeliveryNoteAlreadySigned), want: KindAlreadyProcessed},
		{name: "authentication", err: NewAuthenticationError(AuthFailureExpired, nil), want: KindAuthentication},
		{name: "store unavailable", err: NewStoreUnavailableError(stderrors.New("dial tcp"), "find client"), want: KindStoreUnavailable},
		{name: "store operation", err: NewStoreOperationError(stderrors.New("syntax"), "find client"), want: KindStoreOperation},
		{name: "artifact", err: NewArtifactPersistenceError(3, "render", stderrors.New("font")), want: KindArtifactPersistenceFailed},
		{name: "upload", err: NewUploadError(stderrors.New("bucket"), "store profile image"), want: KindUploadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewStoreUnavailableError(stderrors.New("conn refused"), "")))
	assert.True(t, IsRetryable(NewArtifactPersistenceError(1, "store", stderrors.New("bucket"))))
	assert.False(t, IsRetryable(NewStoreOperationError(stderrors.New("constraint"), "")))
	assert.True(t, IsRetryable(NewUploadError(stderrors.New("bucket"), "")))
	assert.False(t, IsRetryable(ErrClientNotFound))
	assert.False(t, IsRetryable(nil))
}

func TestAuthenticationError_HidesReason(t *testing.T) {
	err := NewAuthenticationError(AuthFailureInvalidSignature, stderrors.New("signature is invalid"))

	assert.Equal(t, http.StatusUnauthorized, err.HTTPCode())
	assert.Equal(t, "authentication required", err.Message())
	assert.Empty(t, err.Details())
	assert.Equal(t, AuthFailureInvalidSignature, err.Reason())
	assert.Contains(t, err.Error(), "invalid_signature")
}

func TestStoreError_Codes(t *testing.T) {
	unavailable := NewStoreUnavailableError(stderrors.New("timeout"), "list clients")
	operation := NewStoreOperationError(stderrors.New("bad column"), "list clients")

	assert.Equal(t, http.StatusServiceUnavailable, unavailable.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", unavailable.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, operation.HTTPCode())
	assert.Equal(t, "STORE_OPERATION_FAILED", operation.ErrorCode())
	assert.Contains(t, operation.Error(), "bad column")
}

func TestKind_Business(t *testing.T) {
	assert.True(t, KindNotOwned.Business())
	assert.True(t, KindValidation.Business())
	assert.False(t, KindStoreOperation.Business())
	assert.False(t, KindArtifactPersistenceFailed.Business())
	assert.False(t, KindUploadFailed.Business())
	assert.Equal(t, "has_dependent_children", KindHasDependentChildren.String())
}
