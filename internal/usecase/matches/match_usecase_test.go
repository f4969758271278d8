package matches

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/robocupido/robocupido-backend/internal/domain"
	"go.uber.org/zap"
)

type fakeMatchRepo struct {
	results map[uuid.UUID]*domain.MatchResult
	err     error
}

func (f *fakeMatchRepo) GetByProfileID(_ context.Context, profileID uuid.UUID) (*domain.MatchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	result, ok := f.results[profileID]
	if !ok {
		return nil, domain.ErrMatchesNotFound
	}
	return result, nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*domain.Profile
	prefs    map[uuid.UUID]*domain.Preferences
}

func (f *fakeProfileRepo) CreateSubmission(context.Context, *domain.Profile, *domain.Preferences, *domain.TextEmbeddings) error {
	return errors.New("not implemented")
}

func (f *fakeProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
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
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeProfileRepo) GetPreferences(_ context.Context, profileID uuid.UUID) (*domain.Preferences, error) {
	p, ok := f.prefs[profileID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func TestGetMatchesEmptyWhenNoDocument(t *testing.T) {
	uc := NewUseCase(
		&fakeMatchRepo{results: map[uuid.UUID]*domain.MatchResult{}},
		&fakeProfileRepo{},
		zap.NewNop(),
	)

	list, err := uc.GetMatches(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("no matches yet must not be an error: %v", err)
	}
	if list.Pareja == nil || list.Amigos == nil || list.Casual == nil {
		t.Fatalf("categories must be non-nil empty slices")
	}
	if len(list.Pareja)+len(list.Amigos)+len(list.Casual) != 0 {
		t.Fatalf("expected all categories empty, got %+v", list)
	}
}

func TestGetMatchesHydratesEntries(t *testing.T) {
	p1 := uuid.New()
	p2 := uuid.New()

	matchRepo := &fakeMatchRepo{results: map[uuid.UUID]*domain.MatchResult{
		p1: {
			ProfileID: p1,
			Pareja:    []domain.MatchEntry{{ID: p2, Score: 95}},
		},
	}}
	profileRepo := &fakeProfileRepo{
		profiles: map[uuid.UUID]*domain.Profile{
			p2: {
				ID:        p2,
				UserEmail: "luis@tec.mx",
				FullName:  "Luis",
				Age:       intPtr(30),
				Phone:     "555",
				Instagram: strPtr("@luis"),
			},
		},
		prefs: map[uuid.UUID]*domain.Preferences{
			p2: {ProfileID: p2, Activities: []string{"cine", "viajes"}},
		},
	}

	uc := NewUseCase(matchRepo, profileRepo, zap.NewNop())
	list, err := uc.GetMatches(context.Background(), p1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(list.Pareja) != 1 {
		t.Fatalf("expected one pareja match, got %d", len(list.Pareja))
	}
	view := list.Pareja[0]
	if view.Name != "Luis" {
		t.Fatalf("unexpected name: %q", view.Name)
	}
	if view.Age == nil || *view.Age != 30 {
		t.Fatalf("unexpected age: %v", view.Age)
	}
	if view.Compatibility != 95 {
		t.Fatalf("unexpected compatibility: %d", view.Compatibility)
	}
	if view.Instagram == nil || *view.Instagram != "@luis" {
		t.Fatalf("unexpected instagram: %v", view.Instagram)
	}
	if view.Whatsapp != "555" {
		t.Fatalf("unexpected whatsapp: %q", view.Whatsapp)
	}
	if len(view.Interests) != 2 || view.Interests[0] != "cine" {
		t.Fatalf("unexpected interests: %v", view.Interests)
	}
	if len(list.Amigos) != 0 || len(list.Casual) != 0 {
		t.Fatalf("other categories must stay empty")
	}
}

func TestGetMatchesPreservesOrder(t *testing.T) {
	p1 := uuid.New()
	profiles := map[uuid.UUID]*domain.Profile{}
	var entries []domain.MatchEntry
	names := []string{"Zoe", "Ana", "Mar"}
	scores := []int{91, 88, 70}
	for i, name := range names {
		id := uuid.New()
		profiles[id] = &domain.Profile{ID: id, FullName: name, Phone: "1"}
		entries = append(entries, domain.MatchEntry{ID: id, Score: scores[i]})
	}

	matchRepo := &fakeMatchRepo{results: map[uuid.UUID]*domain.MatchResult{
		p1: {ProfileID: p1, Amigos: entries},
	}}
	uc := NewUseCase(matchRepo, &fakeProfileRepo{profiles: profiles}, zap.NewNop())

	list, err := uc.GetMatches(context.Background(), p1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Amigos) != 3 {
		t.Fatalf("expected three amigos, got %d", len(list.Amigos))
	}
	for i, name := range names {
		if list.Amigos[i].Name != name {
			t.Fatalf("order not preserved at %d: expected %q got %q", i, name, list.Amigos[i].Name)
		}
	}
}

func TestGetMatchesSkipsMissingProfiles(t *testing.T) {
	p1 := uuid.New()
	known := uuid.New()
	gone := uuid.New()

	matchRepo := &fakeMatchRepo{results: map[uuid.UUID]*domain.MatchResult{
		p1: {ProfileID: p1, Casual: []domain.MatchEntry{
			{ID: gone, Score: 80},
			{ID: known, Score: 60},
		}},
	}}
	profileRepo := &fakeProfileRepo{profiles: map[uuid.UUID]*domain.Profile{
		known: {ID: known, FullName: "Eva", Phone: "2"},
	}}

	uc := NewUseCase(matchRepo, profileRepo, zap.NewNop())
	list, err := uc.GetMatches(context.Background(), p1)
	if err != nil {
		t.Fatalf("a missing joined profile must not fail the category: %v", err)
	}
	if len(list.Casual) != 1 || list.Casual[0].Name != "Eva" {
		t.Fatalf("expected only the surviving entry, got %+v", list.Casual)
	}
}

func TestGetMatchesForEmailRequiresProfile(t *testing.T) {
	uc := NewUseCase(
		&fakeMatchRepo{results: map[uuid.UUID]*domain.MatchResult{}},
		&fakeProfileRepo{},
		zap.NewNop(),
	)

	_, err := uc.GetMatchesForEmail(context.Background(), "nadie@tec.mx")
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected profile not found, got %v", err)
	}
}
