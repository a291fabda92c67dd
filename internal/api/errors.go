package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the API boundary. Callers match them with errors.Is.
var (
	// ErrUnavailable wraps transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized covers bad credentials and invalid or expired tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers stale story ids and unknown users.
	ErrNotFound = errors.New("not found")

	// ErrConflict covers duplicate usernames on signup.
	ErrConflict = errors.New("already exists")
)

// Error carries the server's message for a non-2xx response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known status codes to sentinel errors so that callers
// can use errors.Is without inspecting status codes themselves.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}
	return nil
}
