package registration

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robocupido/robocupido-backend/internal/domain"
	"github.com/robocupido/robocupido-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Embedder produces an embedding vector for one free-text field.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float64, error)
}

// StatusCache is the optional submission-status cache. Implementations are
// best-effort; a miss just falls through to the database.
type StatusCache interface {
	GetSubmitted(ctx context.Context, email string) (submitted bool, ok bool)
	SetSubmitted(ctx context.Context, email string, submitted bool)
}

type UseCase struct {
	profileRepo  repository.ProfileRepository
	embedder     Embedder
	cache        StatusCache
	embedTimeout time.Duration
	logger       *zap.Logger
}

// NewUseCase wires the registration pipeline. embedder and cache may be nil;
// registration works without enrichment or caching.
func NewUseCase(
	profileRepo repository.ProfileRepository,
	embedder Embedder,
	cache StatusCache,
	embedTimeout time.Duration,
	logger *zap.Logger,
) *UseCase {
	return &UseCase{
		profileRepo:  profileRepo,
		embedder:     embedder,
		cache:        cache,
		embedTimeout: embedTimeout,
		logger:       logger,
	}
}

// Submit runs the one-time registration pipeline: validate, duplicate check,
// best-effort enrichment, then one atomic three-record write.
func (uc *UseCase) Submit(ctx context.Context, userEmail string, form *Submission) (*domain.Profile, error) {
	if userEmail == "" {
		return nil, domain.ErrUnauthenticated
	}

	if err := form.Validate(); err != nil {
		return nil, err
	}

	exists, err := uc.profileRepo.ExistsByEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing submission: %w", err)
	}
	if exists {
		return nil, domain.ErrProfileAlreadyExists
	}

	// One id correlates the three records; they live in separate tables so
	// the matching job can read preferences and embeddings independently.
	profileID := uuid.New()

	profile := &domain.Profile{
		ID:        profileID,
		UserEmail: userEmail,
		FullName:  form.FullName,
		Age:       form.Age,
		Gender:    form.Gender,
		Phone:     form.Phone,
		Instagram: strOrNil(form.Instagram),
	}
	prefs := buildPreferences(profileID, form)
	embeddings := uc.enrich(ctx, profileID, form)

	if err := uc.profileRepo.CreateSubmission(ctx, profile, prefs, embeddings); err != nil {
		if err == domain.ErrProfileAlreadyExists {
			return nil, err
		}
		return nil, fmt.Errorf("failed to persist submission: %w", err)
	}

	if uc.cache != nil {
		uc.cache.SetSubmitted(ctx, userEmail, true)
	}

	uc.logger.Info("registration submitted",
		zap.String("profile_id", profileID.String()),
	)
	return profile, nil
}

// HasSubmitted reports whether the identity already registered. Read-through
// cached; repeated calls are side-effect free.
func (uc *UseCase) HasSubmitted(ctx context.Context, userEmail string) (bool, error) {
	if userEmail == "" {
		return false, domain.ErrUnauthenticated
	}

	if uc.cache != nil {
		if submitted, ok := uc.cache.GetSubmitted(ctx, userEmail); ok {
			return submitted, nil
		}
	}

	exists, err := uc.profileRepo.ExistsByEmail(ctx, userEmail)
	if err != nil {
		return false, fmt.Errorf("failed to check submission status: %w", err)
	}

	if uc.cache != nil {
		uc.cache.SetSubmitted(ctx, userEmail, exists)
	}
	return exists, nil
}

func buildPreferences(profileID uuid.UUID, form *Submission) *domain.Preferences {
	prefs := &domain.Preferences{
		ProfileID:   profileID,
		Description: strOrNil(form.Description),

		MatchPreferences: form.MatchPreferences,
		LookingFor:       form.LookingFor,
		DateOlder:        strOrNil(form.DateOlder),
		DateYounger:      strOrNil(form.DateYounger),
		Activities:       form.Activities,

		SocialPreference: form.SocialPreference,
		HobbyTime:        strOrNil(form.HobbyTime),

		HonestyImportance:        form.HonestyImportance,
		LoyaltyImportance:        form.LoyaltyImportance,
		KindnessImportance:       form.KindnessImportance,
		RespectImportance:        form.RespectImportance,
		OpenMindednessImportance: form.OpenMindednessImportance,
		IndependenceImportance:   form.IndependenceImportance,
		AmbitionImportance:       form.AmbitionImportance,
		CreativityImportance:     form.CreativityImportance,
		HumorImportance:          form.HumorImportance,
		AuthenticityImportance:   form.AuthenticityImportance,
		EmpathyImportance:        form.EmpathyImportance,

		ClosenessEase:      form.ClosenessEase,
		ConflictResolution: strOrNil(form.ConflictResolution),
		AttentionToDetail:  form.AttentionToDetail,
		StressLevel:        form.StressLevel,
		Imagination:        form.Imagination,

		ShareDetailed: form.ShareDetailed,
	}
	if form.ShareDetailed {
		prefs.DetailedDescription = strOrNil(form.DetailedDescription)
		prefs.AttractiveTraits = strOrNil(form.AttractiveTraits)
	}
	return prefs
}

// enrich embeds the eligible free-text fields concurrently. Enrichment is
// best-effort: empty input skips the provider call, provider errors and
// timeouts leave the field nil. It never fails the submission.
func (uc *UseCase) enrich(ctx context.Context, profileID uuid.UUID, form *Submission) *domain.TextEmbeddings {
	embeddings := &domain.TextEmbeddings{ProfileID: profileID}
	if uc.embedder == nil {
		return embeddings
	}

	type embedField struct {
		name string
		text string
		dst  *[]float64
	}
	fields := []embedField{
		{"description", form.Description, &embeddings.Description},
	}
	if form.ShareDetailed {
		fields = append(fields,
			embedField{"detailedDescription", form.DetailedDescription, &embeddings.DetailedDescription},
			embedField{"attractiveTraits", form.AttractiveTraits, &embeddings.AttractiveTraits},
		)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, f := range fields {
		f := f
		if f.text == "" {
			continue
		}
		g.Go(func() error {
			embedCtx, cancel := context.WithTimeout(gctx, uc.embedTimeout)
			defer cancel()

			vector, err := uc.embedder.EmbedText(embedCtx, f.text)
			if err != nil {
				uc.logger.Warn("embedding enrichment failed, storing null",
					zap.String("field", f.name),
					zap.Error(err),
				)
				return nil
			}
			*f.dst = vector
			return nil
		})
	}
	_ = g.Wait()
	return embeddings
}
