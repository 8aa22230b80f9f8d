package rating

import (
	"context"
	"errors"
	"fmt"
	"math"

	"bookreview/internal/platform/apperr"
)

// ErrNotFound is returned when the rated book does not exist.
var ErrNotFound = errors.New("book not found")

// Stats are the raw totals over every review of a book.
type Stats struct {
	Sum   int
	Count int
}

// Summary is the aggregate rating shown with a book.
type Summary struct {
	AvgRating    float64 `json:"avgRating"`
	TotalReviews int     `json:"totalReviews"`
}

// Aggregate computes the mean rating rounded to one decimal place, half away
// from zero. A book without reviews has an average of exactly 0.
func Aggregate(sum, count int) Summary {
	if count <= 0 {
		return Summary{}
	}
	avg := float64(sum) / float64(count)
	return Summary{
		AvgRating:    math.Round(avg*10) / 10,
		TotalReviews: count,
	}
}

type Repository interface {
	StatsByBookID(ctx context.Context, bookID int64) (Stats, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ForBook recomputes the summary on every call; nothing is cached.
func (s *Service) ForBook(ctx context.Context, bookID int64) (Summary, error) {
	st, err := s.repo.StatsByBookID(ctx, bookID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Summary{}, apperr.NotFound("Book not found")
		}
		return Summary{}, fmt.Errorf("rating stats for book %d: %w", bookID, err)
	}
	return Aggregate(st.Sum, st.Count), nil
}
