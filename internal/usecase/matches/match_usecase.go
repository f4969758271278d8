package matches

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/robocupido/robocupido-backend/internal/domain"
	"github.com/robocupido/robocupido-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type UseCase struct {
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	logger      *zap.Logger
}

func NewUseCase(
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// MatchList is the display-ready three-category response. Slices are always
// non-nil so "no matches yet" renders as empty arrays.
type MatchList struct {
	Pareja []domain.MatchView `json:"pareja"`
	Amigos []domain.MatchView `json:"amigos"`
	Casual []domain.MatchView `json:"casual"`
}

// GetMatchesForEmail resolves the caller's profile and returns their matches.
func (uc *UseCase) GetMatchesForEmail(ctx context.Context, userEmail string) (*MatchList, error) {
	if userEmail == "" {
		return nil, domain.ErrUnauthenticated
	}
	profile, err := uc.profileRepo.GetByEmail(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	return uc.GetMatches(ctx, profile.ID)
}

// GetMatches reads the precomputed match document and hydrates every entry.
// A missing document is the expected pre-reveal state, not an error.
func (uc *UseCase) GetMatches(ctx context.Context, profileID uuid.UUID) (*MatchList, error) {
	list := &MatchList{
		Pareja: []domain.MatchView{},
		Amigos: []domain.MatchView{},
		Casual: []domain.MatchView{},
	}

	result, err := uc.matchRepo.GetByProfileID(ctx, profileID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchesNotFound) {
			return list, nil
		}
		return nil, fmt.Errorf("failed to read matches: %w", err)
	}

	list.Pareja = uc.hydrateCategory(ctx, result.Pareja)
	list.Amigos = uc.hydrateCategory(ctx, result.Amigos)
	list.Casual = uc.hydrateCategory(ctx, result.Casual)
	return list, nil
}

// hydrateCategory joins each entry against its profile and preferences,
// concurrently, preserving the pre-ranked order. Entries whose profile has
// gone missing are skipped rather than failing the category.
func (uc *UseCase) hydrateCategory(ctx context.Context, entries []domain.MatchEntry) []domain.MatchView {
	hydrated := make([]*domain.MatchView, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			view, err := uc.hydrateEntry(gctx, entry)
			if err != nil {
				uc.logger.Warn("skipping match entry",
					zap.String("matched_profile_id", entry.ID.String()),
					zap.Error(err),
				)
				return nil
			}
			hydrated[i] = view
			return nil
		})
	}
	_ = g.Wait()

	views := make([]domain.MatchView, 0, len(entries))
	for _, v := range hydrated {
		if v != nil {
			views = append(views, *v)
		}
	}
	return views
}

func (uc *UseCase) hydrateEntry(ctx context.Context, entry domain.MatchEntry) (*domain.MatchView, error) {
	profile, err := uc.profileRepo.GetByID(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	view := &domain.MatchView{
		ProfileID:     profile.ID,
		Name:          profile.FullName,
		Age:           profile.Age,
		Compatibility: entry.Score,
		Interests:     []string{},
		Instagram:     profile.Instagram,
		Whatsapp:      profile.Phone,
	}

	// Interests come from the activity tags; a missing preferences row only
	// loses the tags, not the whole entry.
	prefs, err := uc.profileRepo.GetPreferences(ctx, profile.ID)
	if err == nil && prefs.Activities != nil {
		view.Interests = prefs.Activities
	}
	return view, nil
}
