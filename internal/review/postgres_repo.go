package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookreview/internal/platform/postgres"
)

const reviewSelect = `
	SELECT r.id, r.user_id, u.username, r.book_pk, b.id, r.rating, r.comment, r.created_at, r.updated_at
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	JOIN books b ON b.pk = r.book_pk`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func scanReview(row pgx.Row) (Review, error) {
	var rv Review
	err := row.Scan(&rv.ID, &rv.User.ID, &rv.User.Username, &rv.BookPK, &rv.Book,
		&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}

func (r *PostgresRepo) Create(ctx context.Context, userID, bookPK string, in Input) (string, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return "", err
	}
	defer tx.Rollback(timeoutCtx)

	const insertSQL = `
	INSERT INTO reviews (user_id, book_pk, rating, comment)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

	var id string
	if err := tx.QueryRow(timeoutCtx, insertSQL, userID, bookPK, int(*in.Rating), in.Comment).Scan(&id); err != nil {
		if postgres.IsUniqueViolation(err, "reviews_user_book_key") {
			return "", ErrDuplicate
		}
		return "", fmt.Errorf("insert review: %w", err)
	}

	const linkSQL = `
	UPDATE books SET review_ids = array_append(review_ids, $1::uuid), updated_at = now()
	WHERE pk = $2`

	if _, err := tx.Exec(timeoutCtx, linkSQL, id, bookPK); err != nil {
		return "", fmt.Errorf("link review to book: %w", err)
	}

	return id, tx.Commit(timeoutCtx)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Review, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rv, err := scanReview(r.db.QueryRow(timeoutCtx, reviewSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Review{}, ErrNotFound
		}
		return Review{}, err
	}
	return rv, nil
}

func (r *PostgresRepo) FindByUserAndBook(ctx context.Context, userID, bookPK string) (*Review, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rv, err := scanReview(r.db.QueryRow(timeoutCtx, reviewSelect+` WHERE r.user_id = $1 AND r.book_pk = $2`, userID, bookPK))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rv, nil
}

func (r *PostgresRepo) Update(ctx context.Context, id string, in Input) error {
	const query = `
	UPDATE reviews SET rating = $2, comment = $3, updated_at = now()
	WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id, int(*in.Rating), in.Comment)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	const unlinkSQL = `
	UPDATE books SET review_ids = array_remove(review_ids, $1::uuid), updated_at = now()
	WHERE pk = (SELECT book_pk FROM reviews WHERE id = $1)`

	if _, err := tx.Exec(timeoutCtx, unlinkSQL, id); err != nil {
		return fmt.Errorf("unlink review from book: %w", err)
	}

	tag, err := tx.Exec(timeoutCtx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(timeoutCtx)
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookPK string, limit, offset int) ([]Review, int, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	if err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM reviews WHERE book_pk = $1`, bookPK).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(timeoutCtx, reviewSelect+`
	WHERE r.book_pk = $1
	ORDER BY r.created_at DESC, r.id DESC
	LIMIT $2 OFFSET $3`, bookPK, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rv)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) Reconcile(ctx context.Context) (int64, error) {
	const query = `
	UPDATE books b SET review_ids = agg.ids, updated_at = now()
	FROM (
		SELECT b2.pk, ARRAY(
			SELECT r.id FROM reviews r WHERE r.book_pk = b2.pk ORDER BY r.created_at, r.id
		) AS ids
		FROM books b2
	) agg
	WHERE agg.pk = b.pk AND b.review_ids IS DISTINCT FROM agg.ids`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
