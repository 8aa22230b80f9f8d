package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookreview/internal/platform/postgres"
)

const bookColumns = `pk, id, title, author, genre, review_ids, created_at, updated_at`

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

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(&b.PK, &b.ID, &b.Title, &b.Author, &b.Genre, &b.Reviews, &b.CreatedAt, &b.UpdatedAt)
	if b.Reviews == nil {
		b.Reviews = []string{}
	}
	return b, err
}

func collectBooks(rows pgx.Rows) ([]Book, error) {
	defer rows.Close()
	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, in NewBook) (Book, error) {
	const query = `
	INSERT INTO books (title, author, genre)
	VALUES ($1, $2, $3)
	RETURNING ` + bookColumns
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, in.Title, in.Author, in.Genre))
	if err != nil {
		if postgres.IsUniqueViolation(err, "books_id_key") {
			return Book{}, ErrDuplicate
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) List(ctx context.Context, f Filter, limit, offset int) ([]Book, int, error) {
	where, args := f.Where(1)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int
	countSQL := "SELECT COUNT(*) FROM books WHERE " + where
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	argn := len(args) + 1
	dataSQL := fmt.Sprintf(`
	SELECT %s FROM books
	WHERE %s
	ORDER BY created_at DESC, id DESC
	LIMIT $%d OFFSET $%d`, bookColumns, where, argn, argn+1)

	rows, err := r.db.Query(timeoutCtx, dataSQL, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	books, err := collectBooks(rows)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *PostgresRepo) Search(ctx context.Context, s Search, limit int) ([]Book, error) {
	where, args := s.Where(1)
	query := fmt.Sprintf(`
	SELECT %s FROM books
	WHERE %s
	ORDER BY created_at DESC, id DESC
	LIMIT $%d`, bookColumns, where, len(args)+1)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, append(args, limit)...)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}
