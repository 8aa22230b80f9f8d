package review

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookreview/internal/book"
	"bookreview/internal/pagination"
	"bookreview/internal/platform/apperr"
)

const (
	reviewID = "7d3f1c2a-5b4e-4c8d-9a1f-2e3b4c5d6e7f"
	bookPK   = "0b0c5a8e-1111-4a2b-9c3d-000000000001"
)

func ratingp(v Rating) *Rating { return &v }

func newTestService(t *testing.T) (*Service, *MockRepository, *MockBookFinder) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	books := NewMockBookFinder(ctrl)
	return NewService(repo, books), repo, books
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	in := Input{Rating: ratingp(4), Comment: "Loved it"}
	stored := Review{ID: reviewID, User: Author{ID: "alice", Username: "alice"}, BookPK: bookPK, Book: 1, Rating: 4, Comment: "Loved it"}

	t.Run("creates and reloads", func(t *testing.T) {
		svc, repo, books := newTestService(t)
		books.EXPECT().GetByID(ctx, int64(1)).Return(book.Book{PK: bookPK, ID: 1}, nil)
		gomock.InOrder(
			repo.EXPECT().FindByUserAndBook(ctx, "alice", bookPK).Return(nil, nil),
			repo.EXPECT().Create(ctx, "alice", bookPK, in).Return(reviewID, nil),
			repo.EXPECT().GetByID(ctx, reviewID).Return(stored, nil),
		)

		rv, err := svc.Add(ctx, "alice", 1, in)
		require.NoError(t, err)
		assert.Equal(t, stored, rv)
	})

	t.Run("unknown book", func(t *testing.T) {
		svc, _, books := newTestService(t)
		books.EXPECT().GetByID(ctx, int64(9)).Return(book.Book{}, apperr.NotFound("Book not found"))

		_, err := svc.Add(ctx, "alice", 9, in)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("second review is a conflict", func(t *testing.T) {
		svc, repo, books := newTestService(t)
		books.EXPECT().GetByID(ctx, int64(1)).Return(book.Book{PK: bookPK, ID: 1}, nil)
		repo.EXPECT().FindByUserAndBook(ctx, "alice", bookPK).Return(&stored, nil)

		_, err := svc.Add(ctx, "alice", 1, in)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.EqualError(t, err, "You have already reviewed this book")
	})

	t.Run("racing insert hits the unique constraint", func(t *testing.T) {
		svc, repo, books := newTestService(t)
		books.EXPECT().GetByID(ctx, int64(1)).Return(book.Book{PK: bookPK, ID: 1}, nil)
		repo.EXPECT().FindByUserAndBook(ctx, "alice", bookPK).Return(nil, nil)
		repo.EXPECT().Create(ctx, "alice", bookPK, in).Return("", ErrDuplicate)

		_, err := svc.Add(ctx, "alice", 1, in)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	owned := Review{ID: reviewID, User: Author{ID: "alice"}, Rating: 2, Comment: "meh..."}
	in := Input{Rating: ratingp(5), Comment: "Better on a reread"}

	t.Run("owner", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		updated := owned
		updated.Rating = 5
		gomock.InOrder(
			repo.EXPECT().GetByID(ctx, reviewID).Return(owned, nil),
			repo.EXPECT().Update(ctx, reviewID, in).Return(nil),
			repo.EXPECT().GetByID(ctx, reviewID).Return(updated, nil),
		)

		rv, err := svc.Update(ctx, "alice", reviewID, in)
		require.NoError(t, err)
		assert.Equal(t, 5, rv.Rating)
	})

	t.Run("not the owner", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetByID(ctx, reviewID).Return(owned, nil)

		_, err := svc.Update(ctx, "bob", reviewID, in)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		assert.EqualError(t, err, "You can only update your own reviews")
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetByID(ctx, reviewID).Return(Review{}, ErrNotFound)

		_, err := svc.Update(ctx, "alice", reviewID, in)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	owned := Review{ID: reviewID, User: Author{ID: "alice"}}

	t.Run("owner", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetByID(ctx, reviewID).Return(owned, nil)
		repo.EXPECT().Delete(ctx, reviewID).Return(nil)

		assert.NoError(t, svc.Delete(ctx, "alice", reviewID))
	})

	t.Run("not the owner", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetByID(ctx, reviewID).Return(owned, nil)

		err := svc.Delete(ctx, "bob", reviewID)
		assert.EqualError(t, err, "You can only delete your own reviews")
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		err := svc.Delete(ctx, "alice", "not-a-uuid")
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("store failure is internal", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().GetByID(ctx, reviewID).Return(owned, nil)
		repo.EXPECT().Delete(ctx, reviewID).Return(errors.New("tx aborted"))

		err := svc.Delete(ctx, "alice", reviewID)
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})
}

func TestService_ListForBook(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)
	repo.EXPECT().ListByBook(ctx, bookPK, pagination.DefaultReviewLimit, 0).Return([]Review{{ID: reviewID}}, 6, nil)

	reviews, page, total, err := svc.ListForBook(ctx, bookPK, pagination.Params{})
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, 6, total)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNextPage)
	assert.False(t, page.HasPrevPage)
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)
	repo.EXPECT().Reconcile(ctx).Return(int64(3), nil)

	n, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
