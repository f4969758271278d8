package registration

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/robocupido/robocupido-backend/internal/domain"
)

// Submission is the typed registration record decoded from the raw form
// payload. Decoding happens once at the boundary; everything past this type
// works with parsed values only.
type Submission struct {
	FullName  string
	AgeRaw    string
	Age       *int
	Gender    string
	Phone     string
	Instagram string

	Description      string
	MatchPreferences []string
	LookingFor       []string
	DateOlder        string
	DateYounger      string
	Activities       []string

	SocialPreference *int
	HobbyTime        string

	HonestyImportance        *int
	LoyaltyImportance        *int
	KindnessImportance       *int
	RespectImportance        *int
	OpenMindednessImportance *int
	IndependenceImportance   *int
	AmbitionImportance       *int
	CreativityImportance     *int
	HumorImportance          *int
	AuthenticityImportance   *int
	EmpathyImportance        *int

	ClosenessEase      *int
	ConflictResolution string
	AttentionToDetail  *int
	StressLevel        *int
	Imagination        *int

	ShareDetailed       bool
	DetailedDescription string
	AttractiveTraits    string
}

// DecodeForm maps the flat multi-value payload onto a Submission. This is the
// single place that knows the form field names. Numeric fields that fail to
// parse become nil, never an error.
func DecodeForm(values url.Values) *Submission {
	return &Submission{
		FullName:  strings.TrimSpace(values.Get("fullName")),
		AgeRaw:    strings.TrimSpace(values.Get("age")),
		Age:       parseIntOrNil(values.Get("age")),
		Gender:    strings.TrimSpace(values.Get("gender")),
		Phone:     strings.TrimSpace(values.Get("phone")),
		Instagram: strings.TrimSpace(values.Get("instagram")),

		Description:      strings.TrimSpace(values.Get("description")),
		MatchPreferences: values["matchPreferences"],
		LookingFor:       values["lookingFor"],
		DateOlder:        values.Get("dateOlder"),
		DateYounger:      values.Get("dateYounger"),
		Activities:       values["activities"],

		SocialPreference: parseIntOrNil(values.Get("socialPreference")),
		HobbyTime:        values.Get("hobbyTime"),

		HonestyImportance:        parseIntOrNil(values.Get("honestyImportance")),
		LoyaltyImportance:        parseIntOrNil(values.Get("loyaltyImportance")),
		KindnessImportance:       parseIntOrNil(values.Get("kindnessImportance")),
		RespectImportance:        parseIntOrNil(values.Get("respectImportance")),
		OpenMindednessImportance: parseIntOrNil(values.Get("openMindednessImportance")),
		IndependenceImportance:   parseIntOrNil(values.Get("independenceImportance")),
		AmbitionImportance:       parseIntOrNil(values.Get("ambitionImportance")),
		CreativityImportance:     parseIntOrNil(values.Get("creativityImportance")),
		HumorImportance:          parseIntOrNil(values.Get("humorImportance")),
		AuthenticityImportance:   parseIntOrNil(values.Get("authenticityImportance")),
		EmpathyImportance:        parseIntOrNil(values.Get("empathyImportance")),

		ClosenessEase:      parseIntOrNil(values.Get("closenessEase")),
		ConflictResolution: values.Get("conflictResolution"),
		AttentionToDetail:  parseIntOrNil(values.Get("attentionToDetail")),
		StressLevel:        parseIntOrNil(values.Get("stressLevel")),
		Imagination:        parseIntOrNil(values.Get("imagination")),

		ShareDetailed:       values.Get("shareDetailed") == "si",
		DetailedDescription: strings.TrimSpace(values.Get("detailedDescription")),
		AttractiveTraits:    strings.TrimSpace(values.Get("attractiveTraits")),
	}
}

// Validate checks the required fields in order and stops at the first
// missing one. Age bounds are only enforced when age parsed to a number.
func (s *Submission) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"fullName", s.FullName},
		{"age", s.AgeRaw},
		{"gender", s.Gender},
		{"phone", s.Phone},
	}
	for _, f := range required {
		if f.value == "" {
			return domain.NewValidationError(f.field, "required")
		}
	}
	if s.Age != nil && (*s.Age < 18 || *s.Age > 100) {
		return domain.NewValidationError("age", "must be between 18 and 100")
	}
	return nil
}

// parseIntOrNil is the parse-or-null helper used for every numeric form
// field: malformed input maps to nil instead of an error.
func parseIntOrNil(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
