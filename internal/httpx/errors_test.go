package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreview/internal/logger"
	"bookreview/internal/platform/apperr"
)

func TestWriteError_StatusByKind(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", apperr.Validation("Title is required"), http.StatusBadRequest, "VALIDATION_ERROR", "Title is required"},
		{"not found", fmt.Errorf("get book: %w", apperr.NotFound("Book not found")), http.StatusNotFound, "NOT_FOUND", "Book not found"},
		{"forbidden", apperr.Forbidden("You can only update your own reviews"), http.StatusForbidden, "FORBIDDEN", "You can only update your own reviews"},
		{"conflict", apperr.Conflict("You have already reviewed this book"), http.StatusConflict, "CONFLICT", "You have already reviewed this book"},
		{"unauthorized", apperr.Unauthorized("Invalid credentials"), http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials"},
		{"internal", errors.New("connection refused"), http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			WriteError(w, r, logger.Nop(), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, tt.wantMsg, resp.Error.Message)
		})
	}
}

func TestJSONSuccess_IncludesRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(ContextWithRequestID(r.Context(), "req-1"))

	JSONSuccess(w, r, map[string]string{"ok": "yes"}, nil)

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
		Meta    map[string]string `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "yes", resp.Data["ok"])
	assert.Equal(t, "req-1", resp.Meta["request_id"])
}
