package domain

import "errors"

var (
	ErrUnauthenticated       = errors.New("unauthenticated")
	ErrEmailDomainNotAllowed = errors.New("email domain not allowed")
	ErrEmailNotVerified      = errors.New("email not verified")
	ErrSessionNotFound       = errors.New("session not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrProfileAlreadyExists  = errors.New("profile already exists")
	ErrMatchesNotFound       = errors.New("matches not found")
)

// ValidationError reports the first missing or out-of-range form field.
// Field names match the form keys so the client can highlight the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed on field " + e.Field + ": " + e.Reason
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
