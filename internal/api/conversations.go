package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/taskpilot/internal/models"
)

// ListOptions narrows a conversation listing. Zero values mean "backend
// default".
type ListOptions struct {
	Limit  int
	Offset int
	Sort   string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		q.Set("offset", strconv.Itoa(o.Offset))
	}
	if o.Sort != "" {
		q.Set("sort", o.Sort)
	}
	return q
}

// Conversations lists the user's conversations.
func (c *Client) Conversations(ctx context.Context, userID string, opts ListOptions) ([]models.Conversation, error) {
	var out []models.Conversation
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/conversations"), opts.query(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateConversation opens a new conversation, optionally titled.
func (c *Client) CreateConversation(ctx context.Context, userID, title string) (*models.Conversation, error) {
	var out models.Conversation
	req := models.ConversationRequest{Title: title}
	if err := c.do(ctx, http.MethodPost, userPath(userID, "/conversations"), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Conversation fetches a single conversation.
func (c *Client) Conversation(ctx context.Context, userID, id string) (*models.Conversation, error) {
	var out models.Conversation
	if err := c.do(ctx, http.MethodGet, userPath(userID, "/conversations/"+id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RenameConversation sets a conversation's title.
func (c *Client) RenameConversation(ctx context.Context, userID, id, title string) (*models.Conversation, error) {
	var out models.Conversation
	req := models.ConversationRequest{Title: title}
	if err := c.do(ctx, http.MethodPut, userPath(userID, "/conversations/"+id), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConversation removes a conversation and its history.
func (c *Client) DeleteConversation(ctx context.Context, userID, id string) error {
	return c.do(ctx, http.MethodDelete, userPath(userID, "/conversations/"+id), nil, nil, nil)
}
