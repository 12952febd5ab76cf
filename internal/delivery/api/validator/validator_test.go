package validator

import (
	"testing"

	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Step      int    `json:"targetStep" validate:"min=1"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sampleRequest{ProductID: "lot-7", Step: 1}))

	err := v.Validate(&sampleRequest{})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_ARGUMENT", appErr.ErrorCode())
	assert.Equal(t, "productId is required; targetStep must be at least 1", appErr.Details())
}
