package loader

// Validation messages surfaced before any network call.
const (
	MsgMissingUserID    = "Cannot save profile: missing user id."
	MsgPasswordTooShort = "Password must be at least 6 characters."
	MsgPasswordMismatch = "New passwords do not match."
	MsgCurrentRequired  = "Current password is required."
)

// ValidationError is a precondition failure caught locally. It is
// terminal for the operation: no network call happens and nothing is
// retried.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "validation: " + e.Message
}

// IsClientError marks validation failures as non-retryable.
func (e *ValidationError) IsClientError() bool {
	return true
}
