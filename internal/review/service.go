package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bookreview/internal/pagination"
	"bookreview/internal/platform/apperr"
)

type Service struct {
	repo  Repository
	books BookFinder
}

func NewService(repo Repository, books BookFinder) *Service {
	return &Service{repo: repo, books: books}
}

func (s *Service) get(ctx context.Context, id string) (Review, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Review{}, apperr.NotFound("Review not found")
	}
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Review{}, apperr.NotFound("Review not found")
		}
		return Review{}, fmt.Errorf("get review %s: %w", id, err)
	}
	return rv, nil
}

// Add records userID's review of the book with external id bookID. A user
// may review a given book once.
func (s *Service) Add(ctx context.Context, userID string, bookID int64, in Input) (Review, error) {
	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return Review{}, err
	}

	existing, err := s.repo.FindByUserAndBook(ctx, userID, b.PK)
	if err != nil {
		return Review{}, fmt.Errorf("find existing review: %w", err)
	}
	if err := EnsureNotReviewed(existing); err != nil {
		return Review{}, err
	}

	id, err := s.repo.Create(ctx, userID, b.PK, in)
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return Review{}, EnsureNotReviewed(&Review{})
		}
		return Review{}, fmt.Errorf("create review: %w", err)
	}
	return s.get(ctx, id)
}

// Update replaces the rating and comment of a review owned by userID.
func (s *Service) Update(ctx context.Context, userID, reviewID string, in Input) (Review, error) {
	rv, err := s.get(ctx, reviewID)
	if err != nil {
		return Review{}, err
	}
	if err := Authorize(userID, rv, "update"); err != nil {
		return Review{}, err
	}

	if err := s.repo.Update(ctx, reviewID, in); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Review{}, apperr.NotFound("Review not found")
		}
		return Review{}, fmt.Errorf("update review: %w", err)
	}
	return s.get(ctx, reviewID)
}

// Delete removes a review owned by userID and its book back-reference.
func (s *Service) Delete(ctx context.Context, userID, reviewID string) error {
	rv, err := s.get(ctx, reviewID)
	if err != nil {
		return err
	}
	if err := Authorize(userID, rv, "delete"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("Review not found")
		}
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}

// ListForBook returns one page of a book's reviews, newest first.
func (s *Service) ListForBook(ctx context.Context, bookPK string, p pagination.Params) ([]Review, pagination.Page, int, error) {
	p = p.Normalize(pagination.DefaultReviewLimit)
	reviews, total, err := s.repo.ListByBook(ctx, bookPK, p.Limit, p.Offset())
	if err != nil {
		return nil, pagination.Page{}, 0, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, pagination.Paginate(p.Page, p.Limit, total), total, nil
}

// Reconcile repairs book review lists that drifted from the reviews table.
func (s *Service) Reconcile(ctx context.Context) (int64, error) {
	n, err := s.repo.Reconcile(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile review lists: %w", err)
	}
	return n, nil
}
