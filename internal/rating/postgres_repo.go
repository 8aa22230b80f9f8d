package rating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (repo *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, repo.timeout)
}

func (repo *PostgresRepo) StatsByBookID(ctx context.Context, bookID int64) (Stats, error) {
	const query = `
		SELECT COALESCE(SUM(r.rating), 0), COUNT(r.id)
		FROM books b
		LEFT JOIN reviews r ON r.book_pk = b.pk
		WHERE b.id = $1
		GROUP BY b.pk
	`
	timeoutCtx, cancel := repo.withTimeout(ctx)
	defer cancel()

	var st Stats
	if err := repo.db.QueryRow(timeoutCtx, query, bookID).Scan(&st.Sum, &st.Count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Stats{}, ErrNotFound
		}
		return Stats{}, fmt.Errorf("rating stats: %w", err)
	}
	return st, nil
}
