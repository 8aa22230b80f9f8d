package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookreview/internal/platform/apperr"
)

func TestAuthorize(t *testing.T) {
	rv := Review{ID: "r1", User: Author{ID: "alice"}}

	tests := []struct {
		name    string
		actor   string
		action  string
		wantErr string
	}{
		{"owner may update", "alice", "update", ""},
		{"owner may delete", "alice", "delete", ""},
		{"other user cannot update", "bob", "update", "You can only update your own reviews"},
		{"other user cannot delete", "bob", "delete", "You can only delete your own reviews"},
		{"anonymous", "", "delete", "You can only delete your own reviews"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, rv, tt.action)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestEnsureNotReviewed(t *testing.T) {
	assert.NoError(t, EnsureNotReviewed(nil))

	err := EnsureNotReviewed(&Review{ID: "r1"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.EqualError(t, err, "You have already reviewed this book")
}
