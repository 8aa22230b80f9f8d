package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookreview/internal/platform/apperr"
	"bookreview/internal/platform/crypto"
	"bookreview/internal/user"
)

// UserStore is the subset of the user service that authentication needs.
type UserStore interface {
	Register(ctx context.Context, username, hashedPassword string) (user.User, error)
	GetByUsername(ctx context.Context, username string) (user.User, error)
	GetByID(ctx context.Context, id string) (user.User, error)
}

type Blacklist interface {
	AddToken(ctx context.Context, jti, userID string, expiresAt time.Time) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	CleanupExpired(ctx context.Context) (int64, error)
}

// Token is an issued access token.
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

type Service struct {
	secret    string
	ttl       time.Duration
	users     UserStore
	blacklist Blacklist
}

func NewService(secret string, ttl time.Duration, users UserStore, blacklist Blacklist) *Service {
	return &Service{
		secret:    secret,
		ttl:       ttl,
		users:     users,
		blacklist: blacklist,
	}
}

func (s *Service) Signup(ctx context.Context, username, password string) (user.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.users.Register(ctx, username, hash)
}

func (s *Service) Login(ctx context.Context, username, password string) (Token, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return Token{}, fmt.Errorf("load user: %w", err)
	}
	if err != nil || !crypto.VerifyPassword(u.PasswordHash, password) {
		return Token{}, apperr.Unauthorized("Invalid username or password")
	}

	value, jti, err := crypto.GenerateToken(s.secret, u.ID, s.ttl)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{Value: value, ID: jti, ExpiresAt: time.Now().Add(s.ttl)}, nil
}

// Logout revokes the token with id jti. No token outlives the configured TTL,
// so the blacklist entry can expire with it.
func (s *Service) Logout(ctx context.Context, jti, userID string) error {
	if jti == "" || userID == "" {
		return apperr.Unauthorized("Access token required")
	}
	if err := s.blacklist.AddToken(ctx, jti, userID, time.Now().Add(s.ttl)); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

func (s *Service) Me(ctx context.Context, userID string) (user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, apperr.Unauthorized("Invalid token")
		}
		return user.User{}, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

// CleanupExpired drops blacklist entries for tokens that have expired anyway.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	return s.blacklist.CleanupExpired(ctx)
}
