package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/robocupido/robocupido-backend/internal/domain"
)

// MatchRepository reads the match documents produced by the offline matching
// job. This service never writes them.
type MatchRepository interface {
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*domain.MatchResult, error)
}
