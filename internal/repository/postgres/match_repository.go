package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/robocupido/robocupido-backend/internal/domain"
	"github.com/robocupido/robocupido-backend/internal/repository"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

// GetByProfileID reads the match document written by the offline matching
// job. Category columns are jsonb arrays of {id, score}; a null column means
// the job produced nothing for that category.
func (r *matchRepository) GetByProfileID(ctx context.Context, profileID uuid.UUID) (*domain.MatchResult, error) {
	var pareja, amigos, casual []byte
	query := `SELECT pareja, amigos, casual FROM matches WHERE profile_id = $1`
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(&pareja, &amigos, &casual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchesNotFound
		}
		return nil, err
	}

	result := &domain.MatchResult{ProfileID: profileID}
	for _, col := range []struct {
		name string
		raw  []byte
		dst  *[]domain.MatchEntry
	}{
		{domain.CategoryPareja, pareja, &result.Pareja},
		{domain.CategoryAmigos, amigos, &result.Amigos},
		{domain.CategoryCasual, casual, &result.Casual},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return nil, fmt.Errorf("failed to decode %s matches: %w", col.name, err)
		}
	}
	return result, nil
}
