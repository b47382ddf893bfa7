package models

import "time"

// Reminder is a server-owned reminder record.
type Reminder struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes,omitempty"`
	RemindAt  time.Time `json:"remind_at"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// ReminderRequest is the create/update payload for a reminder.
type ReminderRequest struct {
	Title    string    `json:"title" validate:"required,max=200"`
	Notes    string    `json:"notes,omitempty" validate:"max=2000"`
	RemindAt time.Time `json:"remind_at" validate:"required"`
}
