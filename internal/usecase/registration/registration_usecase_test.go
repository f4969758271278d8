package registration

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/robocupido/robocupido-backend/internal/domain"
	"go.uber.org/zap"
)

type fakeProfileRepo struct {
	existing    map[string]bool
	createCalls int
	profiles    []*domain.Profile
	prefs       []*domain.Preferences
	embeddings  []*domain.TextEmbeddings
	createErr   error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{existing: map[string]bool{}}
}

func (f *fakeProfileRepo) CreateSubmission(_ context.Context, p *domain.Profile, prefs *domain.Preferences, emb *domain.TextEmbeddings) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.existing[p.UserEmail] = true
	f.profiles = append(f.profiles, p)
	f.prefs = append(f.prefs, prefs)
	f.embeddings = append(f.embeddings, emb)
	return nil
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	for _, p := range f.profiles {
		if p.UserEmail == email {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (f *fakeProfileRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return f.existing[email], nil
}

func (f *fakeProfileRepo) GetPreferences(_ context.Context, profileID uuid.UUID) (*domain.Preferences, error) {
	for _, p := range f.prefs {
		if p.ProfileID == profileID {
			return p, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

type stubEmbedder struct {
	calls  int
	vector []float64
	err    error
}

func (s *stubEmbedder) EmbedText(_ context.Context, _ string) ([]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.vector, nil
}

type fakeCache struct {
	entries map[string]bool
}

func newFakeCache() *fakeCache { return &fakeCache{entries: map[string]bool{}} }

func (c *fakeCache) GetSubmitted(_ context.Context, email string) (bool, bool) {
	v, ok := c.entries[email]
	return v, ok
}

func (c *fakeCache) SetSubmitted(_ context.Context, email string, submitted bool) {
	c.entries[email] = submitted
}

func completeFormValues() url.Values {
	values := url.Values{}
	values.Set("fullName", "Ana Ruiz")
	values.Set("age", "25")
	values.Set("gender", "femenino")
	values.Set("phone", "+5215500000000")
	values.Set("description", "Me gusta leer")
	return values
}

func asValidationError(t *testing.T, err error) (*domain.ValidationError, bool) {
	t.Helper()
	return domain.AsValidationError(err)
}

func newTestUseCase(repo *fakeProfileRepo, embedder Embedder, cache StatusCache) *UseCase {
	return NewUseCase(repo, embedder, cache, time.Second, zap.NewNop())
}

func TestSubmitPersistsOneAtomicSet(t *testing.T) {
	repo := newFakeProfileRepo()
	embedder := &stubEmbedder{vector: []float64{0.1, 0.2}}
	uc := newTestUseCase(repo, embedder, newFakeCache())

	profile, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(completeFormValues()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.FullName != "Ana Ruiz" {
		t.Fatalf("unexpected name: %q", profile.FullName)
	}
	if profile.Age == nil || *profile.Age != 25 {
		t.Fatalf("expected age 25, got %v", profile.Age)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected one write set, got %d", repo.createCalls)
	}

	prefs := repo.prefs[0]
	if prefs.ProfileID != profile.ID {
		t.Fatalf("preferences not correlated with profile")
	}
	if prefs.Description == nil || *prefs.Description != "Me gusta leer" {
		t.Fatalf("unexpected description: %v", prefs.Description)
	}
	if prefs.HonestyImportance != nil {
		t.Fatalf("expected unset ordinal to stay nil")
	}

	emb := repo.embeddings[0]
	if emb.ProfileID != profile.ID {
		t.Fatalf("embeddings not correlated with profile")
	}
	if len(emb.Description) != 2 {
		t.Fatalf("expected description embedding, got %v", emb.Description)
	}
	if embedder.calls != 1 {
		t.Fatalf("expected one embedding call, got %d", embedder.calls)
	}
}

func TestSubmitRejectsDuplicate(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := newTestUseCase(repo, nil, nil)

	if _, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(completeFormValues())); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	_, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(completeFormValues()))
	if !errors.Is(err, domain.ErrProfileAlreadyExists) {
		t.Fatalf("expected duplicate submission error, got %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("second attempt must not write, got %d calls", repo.createCalls)
	}
}

func TestSubmitValidationCausesZeroWrites(t *testing.T) {
	repo := newFakeProfileRepo()
	embedder := &stubEmbedder{vector: []float64{0.5}}
	uc := newTestUseCase(repo, embedder, nil)

	values := completeFormValues()
	values.Del("phone")

	_, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(values))
	ve, ok := asValidationError(t, err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ve.Field != "phone" {
		t.Fatalf("expected phone reported, got %q", ve.Field)
	}
	if repo.createCalls != 0 {
		t.Fatalf("expected zero writes, got %d", repo.createCalls)
	}
	if embedder.calls != 0 {
		t.Fatalf("expected no enrichment before validation, got %d calls", embedder.calls)
	}
}

func TestSubmitRequiresIdentity(t *testing.T) {
	uc := newTestUseCase(newFakeProfileRepo(), nil, nil)
	_, err := uc.Submit(context.Background(), "", DecodeForm(completeFormValues()))
	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestEnrichmentFailureDoesNotBlockSubmission(t *testing.T) {
	repo := newFakeProfileRepo()
	embedder := &stubEmbedder{err: errors.New("provider down")}
	uc := newTestUseCase(repo, embedder, nil)

	_, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(completeFormValues()))
	if err != nil {
		t.Fatalf("enrichment failure must not fail submission: %v", err)
	}
	if repo.embeddings[0].Description != nil {
		t.Fatalf("expected nil vector on provider error")
	}
}

func TestEnrichmentSkipsEmptyFields(t *testing.T) {
	repo := newFakeProfileRepo()
	embedder := &stubEmbedder{vector: []float64{1}}
	uc := newTestUseCase(repo, embedder, nil)

	values := completeFormValues()
	values.Del("description")

	if _, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(values)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if embedder.calls != 0 {
		t.Fatalf("empty text must not hit the provider, got %d calls", embedder.calls)
	}
}

func TestEnrichmentHonorsDetailedOptIn(t *testing.T) {
	repo := newFakeProfileRepo()
	embedder := &stubEmbedder{vector: []float64{1}}
	uc := newTestUseCase(repo, embedder, nil)

	values := completeFormValues()
	values.Set("shareDetailed", "si")
	values.Set("detailedDescription", "mucho texto")
	values.Set("attractiveTraits", "honestidad")

	if _, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(values)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if embedder.calls != 3 {
		t.Fatalf("expected three embedding calls, got %d", embedder.calls)
	}

	// Without the opt-in the detailed fields are ignored entirely.
	repo = newFakeProfileRepo()
	embedder = &stubEmbedder{vector: []float64{1}}
	uc = newTestUseCase(repo, embedder, nil)

	values.Set("shareDetailed", "no")
	if _, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(values)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if embedder.calls != 1 {
		t.Fatalf("expected only the description embedded, got %d calls", embedder.calls)
	}
	if repo.prefs[0].DetailedDescription != nil {
		t.Fatalf("detailed description must not persist without opt-in")
	}
}

func TestHasSubmittedIdempotent(t *testing.T) {
	repo := newFakeProfileRepo()
	cache := newFakeCache()
	uc := newTestUseCase(repo, nil, cache)

	for i := 0; i < 3; i++ {
		submitted, err := uc.HasSubmitted(context.Background(), "ana@tec.mx")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if submitted {
			t.Fatalf("expected false before submission")
		}
	}

	// A failed validation must not flip the status.
	values := completeFormValues()
	values.Del("gender")
	if _, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(values)); err == nil {
		t.Fatalf("expected validation failure")
	}
	if submitted, _ := uc.HasSubmitted(context.Background(), "ana@tec.mx"); submitted {
		t.Fatalf("failed submission must not mark as submitted")
	}

	if _, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(completeFormValues())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		submitted, err := uc.HasSubmitted(context.Background(), "ana@tec.mx")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !submitted {
			t.Fatalf("expected true after submission")
		}
	}
}

func TestHasSubmittedUsesCache(t *testing.T) {
	repo := newFakeProfileRepo()
	cache := newFakeCache()
	cache.SetSubmitted(context.Background(), "ana@tec.mx", true)
	uc := newTestUseCase(repo, nil, cache)

	submitted, err := uc.HasSubmitted(context.Background(), "ana@tec.mx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !submitted {
		t.Fatalf("expected cached value to be served")
	}
}

func TestSubmitPersistenceFailureSurfacesGenericError(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.createErr = errors.New("connection reset")
	uc := newTestUseCase(repo, nil, nil)

	_, err := uc.Submit(context.Background(), "ana@tec.mx", DecodeForm(completeFormValues()))
	if err == nil {
		t.Fatalf("expected persistence error")
	}
	if _, ok := asValidationError(t, err); ok {
		t.Fatalf("persistence failure must not look like validation")
	}
}
