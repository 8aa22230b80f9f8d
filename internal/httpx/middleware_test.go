package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	handler := CORSMiddleware([]string{"http://localhost:5173"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
		t.Errorf("Expected CORS header for allowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Errorf("Expected credentials header, got %s", w.Header().Get("Access-Control-Allow-Credentials"))
	}
	methods := w.Header().Get("Access-Control-Allow-Methods")
	if !strings.Contains(methods, "PUT") || !strings.Contains(methods, "DELETE") {
		t.Errorf("Expected methods header to include PUT and DELETE, got %s", methods)
	}
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	handler := CORSMiddleware([]string{"http://localhost:5173"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Origin", "http://evil.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Errorf("Expected no CORS header for disallowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORSMiddleware_OPTIONSRequest(t *testing.T) {
	handler := CORSMiddleware([]string{"http://localhost:5173"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/books", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for OPTIONS request, got %d", w.Code)
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	for _, hsts := range []bool{false, true} {
		handler := SecurityHeadersMiddleware(hsts)(okHandler())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books", nil))

		if w.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Errorf("Expected nosniff, got %s", w.Header().Get("X-Content-Type-Options"))
		}
		got := w.Header().Get("Strict-Transport-Security") != ""
		if got != hsts {
			t.Errorf("HSTS enabled=%v but header present=%v", hsts, got)
		}
	}
}

func TestRequestSizeLimitMiddleware_UnderLimit(t *testing.T) {
	handler := RequestSizeLimitMiddleware(1024)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBuffer(make([]byte, 512)))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for request under limit, got %d", w.Code)
	}
}

func TestRequestSizeLimitMiddleware_OverLimit(t *testing.T) {
	handler := RequestSizeLimitMiddleware(1024)(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBuffer(make([]byte, 2048)))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413 for request over limit, got %d", w.Code)
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	Chain(okHandler(), mw("a"), mw("b"), mw("c")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Join(order, "") != "abc" {
		t.Errorf("Expected outermost first, got %v", order)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || w.Header().Get("X-Request-Id") != seen {
		t.Errorf("Expected generated request id in context and header, got %q / %q", seen, w.Header().Get("X-Request-Id"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "abc-123" {
		t.Errorf("Expected incoming request id to be kept, got %q", seen)
	}
}

func TestRequestIDMiddleware_RejectsUnsafeClientIDs(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	tests := []struct {
		name string
		id   string
	}{
		{"oversized", strings.Repeat("a", maxRequestIDLen+1)},
		{"log line injection", "abc\nlevel=ERROR msg=forged"},
		{"spaces", "abc 123"},
		{"quotes", `abc"}`},
		{"non ascii", "réq-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header["X-Request-Id"] = []string{tt.id}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if seen == tt.id {
				t.Fatalf("Expected client id %q to be replaced", tt.id)
			}
			if _, err := uuid.Parse(seen); err != nil {
				t.Errorf("Expected generated uuid, got %q", seen)
			}
			if w.Header().Get("X-Request-Id") != seen {
				t.Errorf("Expected header %q to match context id %q", w.Header().Get("X-Request-Id"), seen)
			}
		})
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	maxLen := strings.Repeat("Z", maxRequestIDLen)
	req.Header.Set("X-Request-Id", maxLen)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if seen != maxLen {
		t.Errorf("Expected a %d character id to be kept, got %q", maxRequestIDLen, seen)
	}
}
