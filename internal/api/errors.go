// Package api is the REST client for the AutoCare platform backend.
// The backend owns all business rules; this package only moves JSON and
// classifies failures for the presentation layer.
package api

import (
	"errors"
	"fmt"
)

// User-facing fallback messages for failure categories the server gives
// no message for.
const (
	MsgSessionExpired = "Your session has expired. Please sign in again."
	MsgForbidden      = "You do not have permission to view this."
	MsgGeneric        = "Something went wrong. Please try again."
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// IsAuth reports whether the failure means the session is no longer
// valid and the user must sign in again.
func (e *APIError) IsAuth() bool {
	return e.Status == 401
}

// IsForbidden reports whether the failure is a role/permission denial.
func (e *APIError) IsForbidden() bool {
	return e.Status == 403
}

// IsClientError reports whether the failure is a 4xx. Client errors are
// never retried.
func (e *APIError) IsClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// Classification is the user-facing reading of a request failure.
type Classification struct {
	Message        string
	Retryable      bool
	SessionExpired bool
	Forbidden      bool
}

// Classify maps an error from any client call to its user-facing
// message and retry policy. Session expiry and permission denials are
// not retryable; everything else is, with the server's message when it
// sent one.
func Classify(err error) Classification {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.IsAuth():
			return Classification{Message: MsgSessionExpired, SessionExpired: true}
		case apiErr.IsForbidden():
			return Classification{Message: MsgForbidden, Forbidden: true}
		case apiErr.Message != "":
			return Classification{Message: apiErr.Message, Retryable: !apiErr.IsClientError()}
		default:
			return Classification{Message: MsgGeneric, Retryable: !apiErr.IsClientError()}
		}
	}
	// Transport-level failure: no server message to surface.
	return Classification{Message: MsgGeneric, Retryable: true}
}
