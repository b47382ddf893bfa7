package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/taskpilot/internal/models"
	"github.com/dmitrijs2005/taskpilot/internal/validation"
)

// Tasks lists the user's tasks.
func (c *Client) Tasks(ctx context.Context, userID string) ([]models.Task, error) {
	var out []models.Task
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/tasks"), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask adds a task for the user.
func (c *Client) CreateTask(ctx context.Context, userID string, req models.TaskRequest) (*models.Task, error) {
	if res := validation.ValidateStruct(req); !res.Valid {
		return nil, &ValidationError{Result: res}
	}

	var out models.Task
	if err := c.do(ctx, http.MethodPost, userPath(userID, "/tasks"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Task fetches a single task.
func (c *Client) Task(ctx context.Context, userID, id string) (*models.Task, error) {
	var out models.Task
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/tasks/"+id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask replaces a task's fields.
func (c *Client) UpdateTask(ctx context.Context, userID, id string, req models.TaskRequest) (*models.Task, error) {
	if res := validation.ValidateStruct(req); !res.Valid {
		return nil, &ValidationError{Result: res}
	}

	var out models.Task
	if err := c.do(ctx, http.MethodPut, userPath(userID, "/tasks/"+id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task. The backend answers 204, so no body is decoded.
func (c *Client) DeleteTask(ctx context.Context, userID, id string) error {
	return c.do(ctx, http.MethodDelete, userPath(userID, "/tasks/"+id), nil, nil, nil)
}

// ToggleTask flips a task's completion state.
func (c *Client) ToggleTask(ctx context.Context, userID, id string) (*models.Task, error) {
	var out models.Task
	if err := c.do(ctx, http.MethodPatch, userPath(userID, "/tasks/"+id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
