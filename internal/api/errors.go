package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskpilot/internal/validation"
)

var (
	// ErrUnauthorized matches responses rejected for a missing or stale token.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound matches 404 responses.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable matches throttling and backend-side failures.
	ErrUnavailable = errors.New("service unavailable")
)

// StatusError is a non-2xx backend response. Message holds the text extracted
// from the body, Body the raw payload for callers that need more.
type StatusError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *StatusError) Error() string { return e.Message }

// Is lets errors.Is match a StatusError against the package sentinels.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnavailable:
		return e.Status == http.StatusTooManyRequests || e.Status >= 500
	}
	return false
}

// ValidationError reports a request rejected by pre-flight validation,
// before any network traffic.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	return "invalid request: " + strings.Join(e.Result.Errors, "; ")
}
