package catalog

import (
	"context"

	"bookreview/internal/pagination"
)

type Service struct {
	books   BookFinder
	reviews ReviewLister
	ratings RatingSource
}

func NewService(books BookFinder, reviews ReviewLister, ratings RatingSource) *Service {
	return &Service{books: books, reviews: reviews, ratings: ratings}
}

// GetBookDetail loads a book, one page of its reviews and the rating over all
// of its reviews.
func (s *Service) GetBookDetail(ctx context.Context, bookID int64, p pagination.Params) (Detail, error) {
	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return Detail{}, err
	}

	reviews, page, total, err := s.reviews.ListForBook(ctx, b.PK, p)
	if err != nil {
		return Detail{}, err
	}

	summary, err := s.ratings.ForBook(ctx, b.ID)
	if err != nil {
		return Detail{}, err
	}

	return Detail{
		Book:       BookView{Book: b, Summary: summary},
		Reviews:    reviews,
		Pagination: ReviewPage{Page: page, TotalReviews: total},
	}, nil
}
