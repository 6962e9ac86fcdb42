package audible

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an Audible API error.
//
// The Error type carries the HTTP status of the failed request together
// with the error code and message from the response body, when the API
// provided one.
type Error struct {
	StatusCode int    // HTTP status of the failed request
	Code       string // Audible error code (e.g. "Unauthorized"), may be empty
	Message    string // Error message from the API
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("audible: %s (%d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("audible: status %d: %s", e.StatusCode, e.Message)
}

// Is checks if the target error is an Audible error with the same code.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Code == t.Code
}

// AuthFailure reports whether the error means the request was rejected for
// authentication reasons (bad login, expired or revoked credential).
func (e *Error) AuthFailure() bool {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return false
}

// Predefined errors for common cases.
var (
	// ErrNoCredential is returned when an operation requires a credential
	// but none has been provided.
	ErrNoCredential = errors.New("audible: credential required")

	// ErrUnknownLocale is returned for a country code with no known marketplace.
	ErrUnknownLocale = errors.New("unknown marketplace locale")
)

// IsAuthError reports whether err represents an authentication failure,
// either an API rejection or a credential that could not be deserialized.
func IsAuthError(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.AuthFailure()
	}
	var credErr *CredentialError
	return errors.As(err, &credErr)
}
