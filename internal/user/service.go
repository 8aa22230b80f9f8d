package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bookreview/internal/platform/apperr"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register stores a user whose password is already hashed.
func (s *Service) Register(ctx context.Context, username, hashedPassword string) (User, error) {
	newUser := &User{
		Username:     username,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return User{}, apperr.Conflict("Username already exists")
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return *newUser, nil
}

func (s *Service) GetByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, username)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}
