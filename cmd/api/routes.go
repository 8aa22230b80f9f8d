package main

import (
	"context"
	"net/http"
	"time"

	"bookreview/internal/httpx"
)

// handlers is every endpoint the API serves.
type handlers struct {
	Signup, Login, Logout, Me          http.HandlerFunc
	ListBooks, CreateBook, GetBook     http.HandlerFunc
	GetBookRating, SearchBooks         http.HandlerFunc
	AddReview, UpdateReview, DelReview http.HandlerFunc
	Reconcile                          http.HandlerFunc
}

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(h handlers, requireAuth func(http.Handler) http.Handler, db pinger) *http.ServeMux {
	router := http.NewServeMux()
	protected := func(fn http.HandlerFunc) http.Handler {
		return requireAuth(fn)
	}

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			httpx.JSONError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Database not ready", nil)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /auth/signup", h.Signup)
	router.HandleFunc("POST /auth/login", h.Login)
	router.Handle("POST /auth/logout", protected(h.Logout))
	router.Handle("GET /auth/me", protected(h.Me))

	router.HandleFunc("GET /books", h.ListBooks)
	router.Handle("POST /books", protected(h.CreateBook))
	router.HandleFunc("GET /books/{id}", h.GetBook)
	router.HandleFunc("GET /books/{id}/rating", h.GetBookRating)
	router.Handle("POST /books/{id}/reviews", protected(h.AddReview))

	router.Handle("PUT /reviews/{id}", protected(h.UpdateReview))
	router.Handle("DELETE /reviews/{id}", protected(h.DelReview))

	router.HandleFunc("GET /search", h.SearchBooks)

	router.HandleFunc("POST /internal/jobs/reconcile", h.Reconcile)

	return router
}
