// Package apierr normalizes the errors surfaced by backend calls into a
// single closed set of kinds suitable for user-facing reporting.
//
// # Overview
//
// Transport and validation failures arrive in many shapes: sentinel matches
// from the api package, *api.StatusError with a backend payload, *url.Error
// from the HTTP client, context cancellation, or plain wrapped errors.
// Classify folds all of them into *Error with a Kind that callers can switch
// on without inspecting the cause chain themselves.
//
// # Error Handling
//
// Classify is idempotent: feeding it an *Error returns the same value, so it
// is safe to call at every layer boundary. FormatMessage renders an *Error
// for terminal output with a short kind prefix. Boundary and Run wrap a unit
// of work so that panics and errors both surface as classified results
// instead of crashing an interactive session.
//
// See Also
//
// Package api for the transport error types this package consumes.
package apierr
