package domain

import "github.com/google/uuid"

// Match category names as stored by the matching job.
const (
	CategoryPareja = "pareja"
	CategoryAmigos = "amigos"
	CategoryCasual = "casual"
)

// MatchEntry is one pre-ranked entry inside a category. Order within a
// category is decided by the matching job and must be preserved.
type MatchEntry struct {
	ID    uuid.UUID `json:"id"`
	Score int       `json:"score"`
}

// MatchResult is the externally computed match document for one profile.
// This service only ever reads it.
type MatchResult struct {
	ProfileID uuid.UUID    `json:"profile_id"`
	Pareja    []MatchEntry `json:"pareja"`
	Amigos    []MatchEntry `json:"amigos"`
	Casual    []MatchEntry `json:"casual"`
}

// Category returns the entries for a named category.
func (m *MatchResult) Category(name string) []MatchEntry {
	switch name {
	case CategoryPareja:
		return m.Pareja
	case CategoryAmigos:
		return m.Amigos
	case CategoryCasual:
		return m.Casual
	}
	return nil
}

// MatchView is a display-ready match entry hydrated from the matched
// profile and its preferences.
type MatchView struct {
	ProfileID     uuid.UUID `json:"profile_id"`
	Name          string    `json:"name"`
	Age           *int      `json:"age"`
	Compatibility int       `json:"compatibility"`
	Interests     []string  `json:"interests"`
	Instagram     *string   `json:"instagram"`
	Whatsapp      string    `json:"whatsapp"`
}
