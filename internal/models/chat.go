// Package models defines the client-side mirrors of backend records.
package models

import "time"

// ChatRequest is an outbound chat message. UserID routes the request and is
// validated but never serialized into the body.
type ChatRequest struct {
	Message        string         `json:"message"`
	ConversationID string         `json:"conversation_id,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	UserID         string         `json:"-"`
}

// ChatResponse is the assistant reply for a sent message.
type ChatResponse struct {
	ConversationID string    `json:"conversation_id"`
	Reply          string    `json:"reply"`
	CreatedAt      time.Time `json:"created_at"`
}

// ChatKitSession is a short-lived session handle for the embedded chat widget
// backend.
type ChatKitSession struct {
	ClientSecret string    `json:"client_secret"`
	ExpiresAt    time.Time `json:"expires_at"`
}
