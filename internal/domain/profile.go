package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the one-per-identity registration record. Profiles are created
// once on submission and never updated or deleted by this service.
type Profile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserEmail string    `json:"user_email" db:"user_email"`
	FullName  string    `json:"full_name" db:"full_name"`
	Age       *int      `json:"age" db:"age"`
	Gender    string    `json:"gender" db:"gender"`
	Phone     string    `json:"phone" db:"phone"`
	Instagram *string   `json:"instagram" db:"instagram"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Preferences holds the questionnaire answers, linked 1:1 to a Profile.
// Ordinal ratings are on a 0-6 scale; unanswered ones stay null.
type Preferences struct {
	ProfileID   uuid.UUID `json:"profile_id" db:"profile_id"`
	Description *string   `json:"description" db:"description"`

	MatchPreferences []string `json:"match_preferences" db:"match_preferences"`
	LookingFor       []string `json:"looking_for" db:"looking_for"`
	DateOlder        *string  `json:"date_older" db:"date_older"`
	DateYounger      *string  `json:"date_younger" db:"date_younger"`
	Activities       []string `json:"activities" db:"activities"`

	SocialPreference *int    `json:"social_preference" db:"social_preference"`
	HobbyTime        *string `json:"hobby_time" db:"hobby_time"`

	HonestyImportance        *int `json:"honesty_importance" db:"honesty_importance"`
	LoyaltyImportance        *int `json:"loyalty_importance" db:"loyalty_importance"`
	KindnessImportance       *int `json:"kindness_importance" db:"kindness_importance"`
	RespectImportance        *int `json:"respect_importance" db:"respect_importance"`
	OpenMindednessImportance *int `json:"open_mindedness_importance" db:"open_mindedness_importance"`
	IndependenceImportance   *int `json:"independence_importance" db:"independence_importance"`
	AmbitionImportance       *int `json:"ambition_importance" db:"ambition_importance"`
	CreativityImportance     *int `json:"creativity_importance" db:"creativity_importance"`
	HumorImportance          *int `json:"humor_importance" db:"humor_importance"`
	AuthenticityImportance   *int `json:"authenticity_importance" db:"authenticity_importance"`
	EmpathyImportance        *int `json:"empathy_importance" db:"empathy_importance"`

	ClosenessEase      *int    `json:"closeness_ease" db:"closeness_ease"`
	ConflictResolution *string `json:"conflict_resolution" db:"conflict_resolution"`
	AttentionToDetail  *int    `json:"attention_to_detail" db:"attention_to_detail"`
	StressLevel        *int    `json:"stress_level" db:"stress_level"`
	Imagination        *int    `json:"imagination" db:"imagination"`

	// The two long-form fields are only stored when the user opted in.
	ShareDetailed       bool    `json:"share_detailed" db:"share_detailed"`
	DetailedDescription *string `json:"detailed_description" db:"detailed_description"`
	AttractiveTraits    *string `json:"attractive_traits" db:"attractive_traits"`
}

// TextEmbeddings carries the best-effort embedding vectors for the free-text
// fields. A field the provider could not embed stays nil; the record is still
// written so the matching job sees one row per profile.
type TextEmbeddings struct {
	ProfileID           uuid.UUID `json:"profile_id" db:"profile_id"`
	Description         []float64 `json:"description" db:"description"`
	DetailedDescription []float64 `json:"detailed_description" db:"detailed_description"`
	AttractiveTraits    []float64 `json:"attractive_traits" db:"attractive_traits"`
}
