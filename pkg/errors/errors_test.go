package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		err    *AppError
		code   string
		status int
	}{
		{NotFound("Product", nil), CodeNotFound, http.StatusNotFound},
		{BadRequest("bad input", nil), CodeBadRequest, http.StatusBadRequest},
		{Unauthorized("who are you", nil), CodeUnauthorized, http.StatusUnauthorized},
		{Forbidden("not yours", nil), CodeForbidden, http.StatusForbidden},
		{Conflict("already there", nil), CodeConflict, http.StatusConflict},
		{Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.Code)
		assert.Equal(t, tt.status, tt.err.Status)
		assert.True(t, Is(tt.err, tt.code))
	}
}

func TestNotFoundMessage(t *testing.T) {
	assert.Equal(t, "Product not found", NotFound("Product", nil).Message)
}

func TestIsSeesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading product: %w", NotFound("Product", nil))
	assert.True(t, Is(wrapped, CodeNotFound))
	assert.False(t, Is(wrapped, CodeConflict))
	assert.False(t, Is(stderrors.New("plain"), CodeNotFound))
	assert.False(t, Is(nil, CodeNotFound))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("socket closed")
	err := Internal("query failed", cause)
	assert.ErrorIs(t, err, cause)
}
