package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/robocupido/robocupido-backend/internal/domain"
	"github.com/robocupido/robocupido-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// CreateSubmission writes profile, preferences and text embeddings inside one
// transaction so a failure mid-way never leaves orphan rows.
func (r *profileRepository) CreateSubmission(
	ctx context.Context,
	profile *domain.Profile,
	prefs *domain.Preferences,
	embeddings *domain.TextEmbeddings,
) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	profileQuery := `
		INSERT INTO profiles (id, user_email, full_name, age, gender, phone, instagram)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	err = tx.QueryRowContext(
		ctx, profileQuery,
		profile.ID, profile.UserEmail, profile.FullName, profile.Age,
		profile.Gender, profile.Phone, profile.Instagram,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrProfileAlreadyExists
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	prefsQuery := `
		INSERT INTO preferences (
			profile_id, description, match_preferences, looking_for,
			date_older, date_younger, activities, social_preference, hobby_time,
			honesty_importance, loyalty_importance, kindness_importance,
			respect_importance, open_mindedness_importance, independence_importance,
			ambition_importance, creativity_importance, humor_importance,
			authenticity_importance, empathy_importance,
			closeness_ease, conflict_resolution, attention_to_detail,
			stress_level, imagination,
			share_detailed, detailed_description, attractive_traits
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	`
	_, err = tx.ExecContext(
		ctx, prefsQuery,
		prefs.ProfileID, prefs.Description,
		pq.Array(prefs.MatchPreferences), pq.Array(prefs.LookingFor),
		prefs.DateOlder, prefs.DateYounger, pq.Array(prefs.Activities),
		prefs.SocialPreference, prefs.HobbyTime,
		prefs.HonestyImportance, prefs.LoyaltyImportance, prefs.KindnessImportance,
		prefs.RespectImportance, prefs.OpenMindednessImportance, prefs.IndependenceImportance,
		prefs.AmbitionImportance, prefs.CreativityImportance, prefs.HumorImportance,
		prefs.AuthenticityImportance, prefs.EmpathyImportance,
		prefs.ClosenessEase, prefs.ConflictResolution, prefs.AttentionToDetail,
		prefs.StressLevel, prefs.Imagination,
		prefs.ShareDetailed, prefs.DetailedDescription, prefs.AttractiveTraits,
	)
	if err != nil {
		return fmt.Errorf("failed to insert preferences: %w", err)
	}

	embeddingsQuery := `
		INSERT INTO text_embeddings (profile_id, description, detailed_description, attractive_traits)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.ExecContext(
		ctx, embeddingsQuery,
		embeddings.ProfileID,
		pq.Float64Array(embeddings.Description),
		pq.Float64Array(embeddings.DetailedDescription),
		pq.Float64Array(embeddings.AttractiveTraits),
	)
	if err != nil {
		return fmt.Errorf("failed to insert text embeddings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submission: %w", err)
	}
	return nil
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE user_email = $1`
	err := r.db.GetContext(ctx, &profile, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM profiles WHERE user_email = $1)`
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *profileRepository) GetPreferences(ctx context.Context, profileID uuid.UUID) (*domain.Preferences, error) {
	var prefs domain.Preferences
	query := `
		SELECT profile_id, description, match_preferences, looking_for,
		       date_older, date_younger, activities, social_preference, hobby_time,
		       honesty_importance, loyalty_importance, kindness_importance,
		       respect_importance, open_mindedness_importance, independence_importance,
		       ambition_importance, creativity_importance, humor_importance,
		       authenticity_importance, empathy_importance,
		       closeness_ease, conflict_resolution, attention_to_detail,
		       stress_level, imagination,
		       share_detailed, detailed_description, attractive_traits
		FROM preferences WHERE profile_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&prefs.ProfileID, &prefs.Description,
		pq.Array(&prefs.MatchPreferences), pq.Array(&prefs.LookingFor),
		&prefs.DateOlder, &prefs.DateYounger, pq.Array(&prefs.Activities),
		&prefs.SocialPreference, &prefs.HobbyTime,
		&prefs.HonestyImportance, &prefs.LoyaltyImportance, &prefs.KindnessImportance,
		&prefs.RespectImportance, &prefs.OpenMindednessImportance, &prefs.IndependenceImportance,
		&prefs.AmbitionImportance, &prefs.CreativityImportance, &prefs.HumorImportance,
		&prefs.AuthenticityImportance, &prefs.EmpathyImportance,
		&prefs.ClosenessEase, &prefs.ConflictResolution, &prefs.AttentionToDetail,
		&prefs.StressLevel, &prefs.Imagination,
		&prefs.ShareDetailed, &prefs.DetailedDescription, &prefs.AttractiveTraits,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &prefs, nil
}
