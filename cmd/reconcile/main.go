package main

import (
	"context"
	"os/signal"
	"syscall"

	"bookreview/internal/book"
	"bookreview/internal/config"
	"bookreview/internal/logger"
	"bookreview/internal/platform/postgres"
	"bookreview/internal/review"
)

// reconcile rebuilds every book's review id list from the reviews table.
func main() {
	log := logger.New(0)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadDB()
	if err != nil {
		log.Fatal("failed to load config", "error", err)
	}

	pool, err := postgres.Open(ctx, cfg.DSN)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	books := book.NewService(book.NewPostgresRepo(pool, cfg.QueryTimeout))
	svc := review.NewService(review.NewPostgresRepo(pool, cfg.QueryTimeout), books)

	n, err := svc.Reconcile(ctx)
	if err != nil {
		pool.Close()
		log.Fatal("reconcile failed", "error", err)
	}
	log.Info("reconcile finished", "books_updated", n)
}
