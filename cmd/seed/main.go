package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"bookreview/internal/book"
	"bookreview/internal/config"
	"bookreview/internal/ingest"
	"bookreview/internal/logger"
	"bookreview/internal/platform/openlibrary"
	"bookreview/internal/platform/postgres"
)

func main() {
	log := logger.New(0)
	if err := newApp(log).Run(os.Args); err != nil {
		log.Fatal("seed failed", "error", err)
	}
}

func newApp(log *logger.Logger) *cli.App {
	return &cli.App{
		Name:  "seed",
		Usage: "populate the catalog with books from Open Library",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "subject", Value: cli.NewStringSlice("fantasy", "science_fiction", "mystery", "romance", "history"), Usage: "Open Library subjects to import"},
			&cli.IntFlag{Name: "per-subject", Value: 20, Usage: "search hits requested per subject"},
			&cli.IntFlag{Name: "max-books", Value: 0, Usage: "stop once the catalog holds this many books (0 for no cap)"},
			&cli.IntFlag{Name: "rps", Value: 2, Usage: "Open Library requests per second"},
			&cli.StringFlag{Name: "user-agent", Value: "bookreview-seed/1.0", Usage: "User-Agent sent to Open Library"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadDB()
			if err != nil {
				return err
			}
			pool, err := postgres.Open(c.Context, cfg.DSN)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := ingest.NewService(
				openlibrary.NewClient(c.String("user-agent"), c.Int("rps"), 3),
				book.NewService(book.NewPostgresRepo(pool, cfg.QueryTimeout)),
				ingest.Config{
					BooksMax:   c.Int("max-books"),
					Subjects:   c.StringSlice("subject"),
					PerSubject: c.Int("per-subject"),
				},
				log,
			)
			run, err := svc.Run(c.Context)
			if err != nil {
				return err
			}
			log.Info("seed finished", "fetched", run.Fetched, "added", run.Added, "skipped", run.Skipped, "failed", run.Failed)
			return nil
		},
	}
}
