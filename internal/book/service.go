package book

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookreview/internal/pagination"
	"bookreview/internal/platform/apperr"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add stores a new book. The store assigns its external id.
func (s *Service) Add(ctx context.Context, in NewBook) (Book, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Genre = strings.TrimSpace(in.Genre)

	b, err := s.repo.Create(ctx, in)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return Book{}, apperr.Conflict("Book already exists")
		}
		return Book{}, fmt.Errorf("create book: %w", err)
	}
	return b, nil
}

// List returns one page of books matching f, newest first.
func (s *Service) List(ctx context.Context, f Filter, p pagination.Params) ([]Book, pagination.Page, int, error) {
	p = p.Normalize(pagination.DefaultBookLimit)
	books, total, err := s.repo.List(ctx, f, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Page{}, 0, fmt.Errorf("list books: %w", err)
	}
	return books, pagination.Paginate(p.Page, p.Limit, total), total, nil
}

// Search returns up to SearchLimit books whose title or author contains the
// query, newest first.
func (s *Service) Search(ctx context.Context, q Search) (SearchResult, error) {
	if err := q.Validate(); err != nil {
		return SearchResult{}, err
	}
	books, err := s.repo.Search(ctx, q, SearchLimit+1)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search books: %w", err)
	}
	res := SearchResult{Books: books}
	if len(books) > SearchLimit {
		res.Books = books[:SearchLimit]
		res.Truncated = true
	}
	res.Count = len(res.Books)
	return res, nil
}

// GetByID resolves a book by its external id.
func (s *Service) GetByID(ctx context.Context, id int64) (Book, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Book{}, apperr.NotFound("Book not found")
		}
		return Book{}, fmt.Errorf("get book %d: %w", id, err)
	}
	return b, nil
}
