package repository

import (
	"context"

	"github.com/robocupido/robocupido-backend/internal/domain"
)

type UserRepository interface {
	// Upsert inserts the user on first sign-in and refreshes display name and
	// last-login on subsequent ones. The stored row is written back into user.
	Upsert(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
