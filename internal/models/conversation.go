package models

import "time"

// Conversation is a chat thread record. The same shape is cached locally as
// conversation metadata; the backend copy stays authoritative.
type Conversation struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	LastMessage string    `json:"last_message,omitempty"`
}

// ConversationRequest is the create/rename payload for a conversation.
type ConversationRequest struct {
	Title string `json:"title" validate:"max=200"`
}
