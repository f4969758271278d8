package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/robocupido/robocupido-backend/internal/domain"
)

type ProfileRepository interface {
	// CreateSubmission writes the profile, its preferences and its text
	// embeddings in a single transaction. Either all three rows land or none.
	CreateSubmission(ctx context.Context, profile *domain.Profile, prefs *domain.Preferences, embeddings *domain.TextEmbeddings) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetPreferences(ctx context.Context, profileID uuid.UUID) (*domain.Preferences, error)
}
