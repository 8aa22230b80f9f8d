package book

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreview/internal/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo), logger.Nop())

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), Filter{Author: "tolkien"}, 2, 2).
			Return([]Book{{ID: 3, Title: "Silmarillion", Reviews: []string{}}}, 5, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/books?author=tolkien&page=2&limit=2", nil)

		handler.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var data struct {
			Books      []Book         `json:"books"`
			Pagination map[string]any `json:"pagination"`
		}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
		assert.Len(t, data.Books, 1)
		assert.Equal(t, map[string]any{
			"currentPage": float64(2),
			"totalPages":  float64(3),
			"totalBooks":  float64(5),
			"hasNextPage": true,
			"hasPrevPage": true,
		}, data.Pagination)
	})

	t.Run("huge page keeps offset non-negative", func(t *testing.T) {
		mockRepo.EXPECT().
			List(gomock.Any(), Filter{}, 100, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ Filter, limit, offset int) ([]Book, int, error) {
				assert.GreaterOrEqual(t, offset, 0)
				return []Book{}, 3, nil
			})

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books?page=9223372036854775807&limit=100", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, 0, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo), logger.Nop())

	t.Run("created", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(Book{ID: 1, Title: "Dune", Reviews: []string{}}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"Dune","author":"Frank Herbert","genre":"SF"}`))
		handler.Create(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var b map[string]any
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &b))
		assert.Equal(t, float64(1), b["id"])
		assert.NotContains(t, b, "PK")
	})

	t.Run("validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"D","author":"Frank Herbert","genre":"SF"}`))
		handler.Create(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, "Title must be at least 2 characters long", env.Error.Message)
	})
}

func TestHTTPHandler_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo), logger.Nop())

	t.Run("missing query", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Search(w, httptest.NewRequest(http.MethodGet, "/search", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Search query is required", decodeEnvelope(t, w).Error.Message)
	})

	t.Run("count matches result", func(t *testing.T) {
		mockRepo.EXPECT().Search(gomock.Any(), Search{Query: "dune"}, SearchLimit+1).Return([]Book{{ID: 1}, {ID: 2}}, nil)

		w := httptest.NewRecorder()
		handler.Search(w, httptest.NewRequest(http.MethodGet, "/search?query=dune", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var data SearchResult
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
		assert.Equal(t, 2, data.Count)
		assert.Len(t, data.Books, 2)
		assert.False(t, data.Truncated)
	})

	t.Run("truncated when more rows match than the cap", func(t *testing.T) {
		mockRepo.EXPECT().Search(gomock.Any(), Search{Query: "e"}, SearchLimit+1).Return(make([]Book, SearchLimit+1), nil)

		w := httptest.NewRecorder()
		handler.Search(w, httptest.NewRequest(http.MethodGet, "/search?query=e", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var data SearchResult
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
		assert.Equal(t, SearchLimit, data.Count)
		assert.Len(t, data.Books, SearchLimit)
		assert.True(t, data.Truncated)
	})
}

func TestParseID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-3", ""} {
		r := httptest.NewRequest(http.MethodGet, "/books/x", nil)
		r.SetPathValue("id", raw)
		_, err := ParseID(r)
		assert.Error(t, err, raw)
	}

	r := httptest.NewRequest(http.MethodGet, "/books/42", nil)
	r.SetPathValue("id", "42")
	id, err := ParseID(r)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}
