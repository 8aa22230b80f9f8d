package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookreview/internal/platform/postgres"
)

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

func (r *PostgresRepo) Create(ctx context.Context, user *User) error {
	const query = `
	INSERT INTO users (username, password_hash)
	VALUES ($1, $2)
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, user.Username, user.PasswordHash).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if postgres.IsUniqueViolation(err, "users_username_key") {
		return ErrAlreadyExists
	}
	return err
}

func (r *PostgresRepo) getOne(ctx context.Context, where string, arg any) (User, error) {
	query := `
	SELECT id, username, password_hash, created_at, updated_at
	FROM users
	WHERE ` + where + ` = $1
	LIMIT 1
	`
	var user User
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, arg).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	return r.getOne(ctx, "username", username)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (User, error) {
	return r.getOne(ctx, "id", id)
}
