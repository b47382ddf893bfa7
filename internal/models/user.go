// Package models defines the client-side mirrors of backend records and the
// request payloads sent to it.
package models

// User is the authenticated account record returned by the backend.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the payload for credential sign-in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the bearer token and account record issued on a
// successful register or login call.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// VerifyResponse reports whether the presented token is still accepted.
type VerifyResponse struct {
	Valid bool `json:"valid"`
	User  User `json:"user"`
}
