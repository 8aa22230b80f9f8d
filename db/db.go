// Package db embeds the SQL migrations and applies them with goose.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var Migrations embed.FS

const migrationsDir = "migrations"

func withGoose(ctx context.Context, pool *pgxpool.Pool, fn func(*sql.DB) error) error {
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping before migrate: %w", err)
	}
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return fn(sqlDB)
}

// Migrate applies every pending migration using the given pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return withGoose(ctx, pool, func(sqlDB *sql.DB) error {
		if err := goose.Up(sqlDB, migrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		return nil
	})
}

// Rollback reverts the most recently applied migration.
func Rollback(ctx context.Context, pool *pgxpool.Pool) error {
	return withGoose(ctx, pool, func(sqlDB *sql.DB) error {
		if err := goose.Down(sqlDB, migrationsDir); err != nil {
			return fmt.Errorf("rollback migration: %w", err)
		}
		return nil
	})
}

// Status prints the applied state of every migration through goose's logger.
func Status(ctx context.Context, pool *pgxpool.Pool) error {
	return withGoose(ctx, pool, func(sqlDB *sql.DB) error {
		return goose.Status(sqlDB, migrationsDir)
	})
}
