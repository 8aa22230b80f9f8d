package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad"), KindValidation},
		{"not found", NotFound("Book not found"), KindNotFound},
		{"forbidden", Forbidden("nope"), KindForbidden},
		{"conflict", Conflict("dup"), KindConflict},
		{"unauthorized", Unauthorized("who"), KindUnauthorized},
		{"wrapped", fmt.Errorf("add review: %w", Conflict("dup")), KindConflict},
		{"plain error", errors.New("boom"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NotFound("Review not found"))

	assert.True(t, errors.Is(err, NotFound("")))
	assert.False(t, errors.Is(err, Forbidden("")))
	assert.Equal(t, "lookup: Review not found", err.Error())
}
