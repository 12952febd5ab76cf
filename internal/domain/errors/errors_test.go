package errors

import (
	"net/http"
	"testing"

	"farmlink/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsCode(t *testing.T) {
	err := ErrInvalidArgument.WithDetails("bidId is required")

	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPCode())
	assert.Equal(t, "INVALID_ARGUMENT", err.ErrorCode())
	assert.Equal(t, "bidId is required", err.Details())
	// the shared value stays untouched
	assert.Empty(t, ErrInvalidArgument.Details())
}

func TestBaseError_WrapMessageIsUnwrappable(t *testing.T) {
	wrapped := ErrDeliveryNotFound.WrapMessage("load delivery")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.True(t, errors.Is(wrapped, ErrDeliveryNotFound))
}

func TestTaxonomyStatusCodes(t *testing.T) {
	tests := []struct {
		err  *BaseError
		code int
	}{
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrForbidden, http.StatusForbidden},
		{ErrTokenTooShort, http.StatusUnprocessableEntity},
		{ErrInvalidTransition, http.StatusUnprocessableEntity},
		{ErrBadRequest, http.StatusBadRequest},
		{ErrUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
		})
	}
}

func TestBaseError_DetailedCopyMatchesSentinel(t *testing.T) {
	err := errors.Wrap(ErrInvalidArgument.WithDetails("quantity must be positive"), "create delivery")

	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.False(t, errors.Is(err, ErrTokenTooShort))
	assert.Contains(t, err.Error(), "quantity must be positive")
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to save delivery progress")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "database execution failed", err.Message())
}
