package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/taskpilot/internal/models"
	"github.com/dmitrijs2005/taskpilot/internal/validation"
)

// Reminders lists the user's reminders.
func (c *Client) Reminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	var out []models.Reminder
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/reminders"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReminder schedules a reminder.
func (c *Client) CreateReminder(ctx context.Context, userID string, req models.ReminderRequest) (*models.Reminder, error) {
	if res := validation.ValidateStruct(req); !res.Valid {
		return nil, &ValidationError{Result: res}
	}

	var out models.Reminder
	if err := c.do(ctx, http.MethodPost, userPath(userID, "/reminders"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Reminder fetches a single reminder.
func (c *Client) Reminder(ctx context.Context, userID, id string) (*models.Reminder, error) {
	var out models.Reminder
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/reminders/"+id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateReminder replaces a reminder's fields.
func (c *Client) UpdateReminder(ctx context.Context, userID, id string, req models.ReminderRequest) (*models.Reminder, error) {
	if res := validation.ValidateStruct(req); !res.Valid {
		return nil, &ValidationError{Result: res}
	}

	var out models.Reminder
	if err := c.do(ctx, http.MethodPut, userPath(userID, "/reminders/"+id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteReminder cancels a reminder. No body is decoded on the 204 answer.
func (c *Client) DeleteReminder(ctx context.Context, userID, id string) error {
	return c.do(ctx, http.MethodDelete, userPath(userID, "/reminders/"+id), nil, nil, nil)
}

// CompleteReminder marks a reminder done.
func (c *Client) CompleteReminder(ctx context.Context, userID, id string) (*models.Reminder, error) {
	var out models.Reminder
	if err := c.do(ctx, http.MethodPatch, userPath(userID, "/reminders/"+id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
