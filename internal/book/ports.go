package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	Create(ctx context.Context, in NewBook) (Book, error)
	List(ctx context.Context, f Filter, limit, offset int) ([]Book, int, error)
	Search(ctx context.Context, s Search, limit int) ([]Book, error)
	GetByID(ctx context.Context, id int64) (Book, error)
}
