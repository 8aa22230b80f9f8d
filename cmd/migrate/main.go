package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v2"

	"bookreview/db"
	"bookreview/internal/config"
	"bookreview/internal/logger"
	"bookreview/internal/platform/postgres"
)

func main() {
	log := logger.New(0)

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal("migrate failed", "error", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "migrate",
		Usage: "apply and inspect database migrations",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					return withPool(c.Context, func(pool *pgxpool.Pool) error {
						if err := db.Migrate(c.Context, pool); err != nil {
							return err
						}
						fmt.Println("Migrations applied successfully")
						return nil
					})
				},
			},
			{
				Name:  "down",
				Usage: "roll back the most recent migration",
				Action: func(c *cli.Context) error {
					return withPool(c.Context, func(pool *pgxpool.Pool) error {
						if err := db.Rollback(c.Context, pool); err != nil {
							return err
						}
						fmt.Println("Migration rolled back successfully")
						return nil
					})
				},
			},
			{
				Name:  "status",
				Usage: "print migration status",
				Action: func(c *cli.Context) error {
					return withPool(c.Context, func(pool *pgxpool.Pool) error {
						return db.Status(c.Context, pool)
					})
				},
			},
			{
				Name:      "create",
				Usage:     "create an empty SQL migration",
				ArgsUsage: "<name words...>",
				Action: func(c *cli.Context) error {
					name := strings.Join(c.Args().Slice(), "_")
					if name == "" {
						return errors.New("name is required for 'create'")
					}
					if err := goose.Create(nil, migrationsDir(), name, "sql"); err != nil {
						return fmt.Errorf("create migration: %w", err)
					}
					fmt.Printf("Migration created: %s\n", name)
					return nil
				},
			},
		},
	}
}

func withPool(ctx context.Context, fn func(*pgxpool.Pool) error) error {
	cfg, err := config.LoadDB()
	if err != nil {
		return err
	}
	pool, err := postgres.Open(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()
	return fn(pool)
}
