package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatus(t *testing.T) {
	cases := map[*AppError]int{
		NewValidationError("bad"):   http.StatusBadRequest,
		NewAuthError("no"):          http.StatusUnauthorized,
		NewNotFoundError("missing"): http.StatusNotFound,
		NewConflictError("dup"):     http.StatusBadRequest,
		NewMethodNotAllowedError():  http.StatusMethodNotAllowed,
	}
	for err, want := range cases {
		assert.Equal(t, want, err.Status(), err.Kind)
	}
}

func TestAppErrorIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("create: %w", NewValidationError("name is required"))

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrNotFound))

	appErr, ok := AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, "name is required", appErr.Message)
}

func TestGenerateSessionToken(t *testing.T) {
	a, err := GenerateSessionToken()
	assert.NoError(t, err)
	b, err := GenerateSessionToken()
	assert.NoError(t, err)

	assert.Len(t, a, 43)
	assert.NotEqual(t, a, b)
}

func TestGenerateObjectName(t *testing.T) {
	name := GenerateObjectName()
	assert.Len(t, name, 32)
	assert.NotContains(t, name, "-")
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("secret", "secret"))
	assert.False(t, SecureCompare("secret", "Secret"))
	assert.False(t, SecureCompare("", "secret"))
}
