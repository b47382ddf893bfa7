package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/taskpilot/internal/models"
	"github.com/dmitrijs2005/taskpilot/internal/validation"
)

// SendMessage validates and sanitizes the outbound message, then posts it to
// the user's chat endpoint. A rejected request surfaces as *ValidationError
// without touching the network.
func (c *Client) SendMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	prepared, res := validation.PrepareChatRequest(req)
	if !res.Valid {
		return nil, &ValidationError{Result: res}
	}

	var out models.ChatResponse
	if err := c.do(ctx, http.MethodPost, userPath(prepared.UserID, "/chat"), nil, prepared, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateChatKitSession opens a widget session for the authenticated user.
func (c *Client) CreateChatKitSession(ctx context.Context) (*models.ChatKitSession, error) {
	var out models.ChatKitSession
	if err := c.do(ctx, http.MethodPost, "/api/chatkit/session", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RefreshChatKitSession exchanges an expiring client secret for a fresh one.
func (c *Client) RefreshChatKitSession(ctx context.Context, clientSecret string) (*models.ChatKitSession, error) {
	in := map[string]string{"client_secret": clientSecret}

	var out models.ChatKitSession
	if err := c.do(ctx, http.MethodPost, "/api/chatkit/refresh", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
