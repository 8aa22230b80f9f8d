package review

import (
	"context"

	"bookreview/internal/book"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=review

// Repository persists reviews together with the book's review back-references.
type Repository interface {
	// Create inserts the review and appends it to the book's review list atomically.
	Create(ctx context.Context, userID, bookPK string, in Input) (string, error)
	GetByID(ctx context.Context, id string) (Review, error)
	// FindByUserAndBook returns nil when the user has not reviewed the book.
	FindByUserAndBook(ctx context.Context, userID, bookPK string) (*Review, error)
	Update(ctx context.Context, id string, in Input) error
	// Delete removes the review and its back-reference atomically.
	Delete(ctx context.Context, id string) error
	ListByBook(ctx context.Context, bookPK string, limit, offset int) ([]Review, int, error)
	// Reconcile rebuilds every book's review list from the reviews table and
	// returns how many books changed.
	Reconcile(ctx context.Context) (int64, error)
}

// BookFinder resolves books by their external id.
type BookFinder interface {
	GetByID(ctx context.Context, id int64) (book.Book, error)
}
