// Package api is the HTTP client for the taskpilot backend.
//
// # Overview
//
// The package provides:
//  1. A single parameterized request executor (see Client.do) that builds
//     every call: URL resolution, JSON encoding, the bearer header, status
//     interpretation and body decoding live in one place.
//  2. Thin per-resource methods (auth, tasks, conversations, reminders,
//     chat, ChatKit sessions, health) that only declare method, path and
//     payload shapes.
//  3. Pre-flight validation for outbound payloads: a rejected request never
//     reaches the network and surfaces as *ValidationError.
//
// # Error Handling
//
// Transport failures come back as wrapped errors, non-2xx responses as
// *StatusError carrying the status and raw body. Callers can match both
// against the package sentinels with errors.Is: ErrUnauthorized, ErrNotFound,
// ErrUnavailable. A 401 response additionally clears the stored auth pair
// before the error is returned; the session is gone either way.
//
// Concurrency & Contexts
//
// A Client is safe for concurrent use. All operations accept context.Context
// and honor cancellation; no timeout is enforced at this layer.
package api
