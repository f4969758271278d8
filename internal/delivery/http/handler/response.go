package handler

// ErrorResponse is the error body shared by all handlers
type ErrorResponse struct {
	Error string `json:"error"`
}

// SubmissionResponse is the registration endpoint result: a success flag with
// a user-facing message. Failure kinds are reflected in the HTTP status.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
