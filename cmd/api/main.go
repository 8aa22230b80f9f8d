package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookreview/db"
	"bookreview/internal/auth"
	"bookreview/internal/book"
	"bookreview/internal/catalog"
	"bookreview/internal/config"
	"bookreview/internal/httpx"
	"bookreview/internal/logger"
	"bookreview/internal/platform/postgres"
	"bookreview/internal/rating"
	"bookreview/internal/review"
	"bookreview/internal/user"
)

const blacklistCleanupInterval = time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("failed to load config", "error", err)
	}
	log := logger.New(cfg.LogLevel)

	pool, err := postgres.Open(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal("failed to open database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection OK", "dsn", postgres.RedactDSN(cfg.DB.DSN))

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatal("failed to migrate database", "error", err)
		}
		log.Info("migrations applied")
	}

	timeout := cfg.DB.QueryTimeout

	userService := user.NewService(user.NewPostgresRepo(pool, timeout))
	blacklistRepo := auth.NewBlacklistPostgresRepo(pool, timeout)
	authService := auth.NewService(cfg.JWT.Secret, cfg.JWT.TTL, userService, blacklistRepo)

	bookService := book.NewService(book.NewPostgresRepo(pool, timeout))
	reviewService := review.NewService(review.NewPostgresRepo(pool, timeout), bookService)
	ratingService := rating.NewService(rating.NewPostgresRepo(pool, timeout))
	catalogService := catalog.NewService(bookService, reviewService, ratingService)

	authHandler := auth.NewHTTPHandler(authService, log, cfg.HTTP.SecureCookies)
	bookHandler := book.NewHTTPHandler(bookService, log)
	reviewHandler := review.NewHTTPHandler(reviewService, log, cfg.InternalSecret)
	ratingHandler := rating.NewHTTPHandler(ratingService, log)
	catalogHandler := catalog.NewHTTPHandler(catalogService, log)

	router := newRouter(handlers{
		Signup:        authHandler.Signup,
		Login:         authHandler.Login,
		Logout:        authHandler.Logout,
		Me:            authHandler.Me,
		ListBooks:     bookHandler.List,
		CreateBook:    bookHandler.Create,
		GetBook:       catalogHandler.GetBook,
		GetBookRating: ratingHandler.GetBookRating,
		SearchBooks:   bookHandler.Search,
		AddReview:     reviewHandler.Add,
		UpdateReview:  reviewHandler.Update,
		DelReview:     reviewHandler.Delete,
		Reconcile:     reviewHandler.Reconcile,
	}, httpx.AuthMiddleware(cfg.JWT.Secret, blacklistRepo), pool)

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware(cfg.HTTP.EnableHSTS),
		httpx.CORSMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.HTTP.MaxBodyBytes),
	)

	go cleanupBlacklist(ctx, log, authService)

	httpServer := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("starting server", "addr", cfg.AppAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("starting graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
	log.Info("server shutdown")
}

func cleanupBlacklist(ctx context.Context, log *logger.Logger, svc *auth.Service) {
	ticker := time.NewTicker(blacklistCleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := svc.CleanupExpired(ctx)
			if err != nil {
				log.Warn("blacklist cleanup failed", "error", err)
				continue
			}
			log.Debug("blacklist cleanup", "removed", n)
		}
	}
}
