package errors

import (
	"net/http"
	"testing"

	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"predefined not found", ErrCartNotFound, KindNotFound},
		{"wrapped conflict", errors.Wrap(ErrCartAlreadyExists, "create cart"), KindConflict},
		{"wrap message", ErrInvalidCredentials.WrapMessage("login"), KindUnauthorized},
		{"database error", NewDatabaseExecuteError(errors.New("boom"), "insert"), KindInternal},
		{"plain error", errors.New("plain"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_HTTPCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.HTTPCode())
	assert.Equal(t, http.StatusUnauthorized, KindUnauthorized.HTTPCode())
	assert.Equal(t, http.StatusPaymentRequired, KindPaymentRequired.HTTPCode())
	assert.Equal(t, http.StatusForbidden, KindForbidden.HTTPCode())
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPCode())
	assert.Equal(t, http.StatusMethodNotAllowed, KindMethodNotAllowed.HTTPCode())
	assert.Equal(t, http.StatusConflict, KindConflict.HTTPCode())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.HTTPCode())
	assert.Equal(t, http.StatusInternalServerError, Kind(99).HTTPCode())
}

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("quantity must be at least 1")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrCartEmpty))
	assert.Equal(t, "quantity must be at least 1", detailed.Details())
	assert.Equal(t, ErrValidationFailed.Message(), detailed.Message())
}

func TestIsKind(t *testing.T) {
	assert.True(t, IsKind(errors.Wrap(ErrOrderNotFound, "get order"), KindNotFound))
	assert.False(t, IsKind(nil, KindInternal))
	assert.False(t, IsKind(ErrOrderNotFound, KindConflict))
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	root := errors.New("connection reset")
	err := NewDatabaseExecuteError(root, "select")

	assert.True(t, errors.Is(err, root))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "select", err.Details())
}
