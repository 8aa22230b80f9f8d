package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SearchBySubject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "subject:fantasy", r.URL.Query().Get("q"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "bookreview-test", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"numFound":2,"docs":[
			{"key":"/works/OL1W","title":"The Hobbit","author_name":["J.R.R. Tolkien"],"subject":["Fantasy"]},
			{"key":"/works/OL2W","title":"Anonymous Tales"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient("bookreview-test", 100, 0, WithBaseURL(srv.URL))
	res, err := c.SearchBySubject(context.Background(), "fantasy", 2)
	require.NoError(t, err)
	require.Len(t, res.Docs, 2)
	assert.Equal(t, "J.R.R. Tolkien", res.Docs[0].Author())
	assert.Equal(t, "", res.Docs[1].Author())
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"numFound":0,"docs":[]}`))
	}))
	defer srv.Close()

	c := NewClient("t", 100, 3, WithBaseURL(srv.URL), WithBackoff(time.Millisecond))
	_, err := c.SearchBySubject(context.Background(), "x", 1)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("t", 100, 3, WithBaseURL(srv.URL), WithBackoff(time.Millisecond))
	_, err := c.SearchBySubject(context.Background(), "x", 1)
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
