package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/vytor/linguacards/internal/errors"
)

func TestAs_UnwrapsChain(t *testing.T) {
	base := apperrors.NewNotFoundError("language", "xx")
	wrapped := fmt.Errorf("select language: %w", base)

	got := apperrors.As(wrapped)

	assert.Same(t, base, got)
	assert.True(t, apperrors.IsNotFound(wrapped))
}

func TestAs_WrapsUnknownAsInternal(t *testing.T) {
	cause := fmt.Errorf("disk on fire")

	got := apperrors.As(cause)

	assert.Equal(t, apperrors.ErrCodeInternal, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.ErrorIs(t, got, cause)
	assert.False(t, apperrors.IsNotFound(cause))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "VALIDATION_ERROR: validation failed for status: unknown", apperrors.NewValidationError("status", "unknown").Error())
	assert.Equal(t, http.StatusUnauthorized, apperrors.NewNoSessionError().Status)
}
