// Package catalog assembles the book detail view from books, reviews and ratings.
package catalog

import (
	"context"

	"bookreview/internal/book"
	"bookreview/internal/pagination"
	"bookreview/internal/rating"
	"bookreview/internal/review"
)

//go:generate mockgen -source=catalog.go -destination=mock_catalog.go -package=catalog

type BookFinder interface {
	GetByID(ctx context.Context, id int64) (book.Book, error)
}

type ReviewLister interface {
	ListForBook(ctx context.Context, bookPK string, p pagination.Params) ([]review.Review, pagination.Page, int, error)
}

type RatingSource interface {
	ForBook(ctx context.Context, bookID int64) (rating.Summary, error)
}

// BookView is a book with its aggregate rating.
type BookView struct {
	book.Book
	rating.Summary
}

type ReviewPage struct {
	pagination.Page
	TotalReviews int `json:"totalReviews"`
}

// Detail is the response body of GET /books/{id}.
type Detail struct {
	Book       BookView        `json:"book"`
	Reviews    []review.Review `json:"reviews"`
	Pagination ReviewPage      `json:"pagination"`
}
