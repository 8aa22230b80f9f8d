// Package ingest imports books from Open Library into the catalog.
package ingest

import (
	"context"

	"bookreview/internal/book"
	"bookreview/internal/pagination"
	"bookreview/internal/platform/openlibrary"
)

type Config struct {
	// BooksMax stops the run once the catalog holds this many books. Zero
	// means no cap.
	BooksMax   int
	Subjects   []string
	PerSubject int
}

type OpenLibraryClient interface {
	SearchBySubject(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
}

// Catalog is the part of the book service ingestion writes through.
type Catalog interface {
	Add(ctx context.Context, in book.NewBook) (book.Book, error)
	List(ctx context.Context, f book.Filter, p pagination.Params) ([]book.Book, pagination.Page, int, error)
}

// Run summarizes one ingestion pass.
type Run struct {
	Fetched int
	Added   int
	Skipped int
	Failed  int
}
