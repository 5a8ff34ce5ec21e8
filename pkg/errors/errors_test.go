package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  string
	}{
		{"validation", NewValidation("bad input"), IsValidation, "VALIDATION: bad input"},
		{"not found", NewNotFound("node missing"), IsNotFound, "NOT_FOUND: node missing"},
		{"unavailable", NewUnavailable("graph not built"), IsUnavailable, "UNAVAILABLE: graph not built"},
		{"internal", NewInternal("boom", nil), IsInternal, "INTERNAL: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrapPreservesTypeAndCause(t *testing.T) {
	cause := fmt.Errorf("disk on fire")

	wrapped := Wrap(NewNotFound("node"), "lookup failed")
	assert.True(t, IsNotFound(wrapped))
	assert.Contains(t, wrapped.Error(), "lookup failed: node")

	internal := Wrap(cause, "load failed")
	assert.True(t, IsInternal(internal))
	assert.True(t, errors.Is(internal, cause))

	assert.Nil(t, Wrap(nil, "no-op"))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := NewInternal("wrapper", cause)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, cause, errors.Unwrap(appErr))
}
