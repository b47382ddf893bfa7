package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/taskpilot/internal/models"
	"github.com/dmitrijs2005/taskpilot/internal/validation"
)

// Register creates an account and persists the issued token and user record.
func (c *Client) Register(ctx context.Context, name, email, password string) (*models.AuthResponse, error) {
	req := models.RegisterRequest{Name: name, Email: email, Password: password}
	if res := validation.ValidateStruct(req); !res.Valid {
		return nil, &ValidationError{Result: res}
	}

	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, req, &out); err != nil {
		return nil, err
	}

	c.persistAuth(ctx, &out)
	return &out, nil
}

// Login exchanges credentials for a token and persists the pair.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	if res := validation.ValidateStruct(req); !res.Valid {
		return nil, &ValidationError{Result: res}
	}

	var out models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, req, &out); err != nil {
		return nil, err
	}

	c.persistAuth(ctx, &out)
	return &out, nil
}

// Verify asks the backend whether the stored token is still accepted.
func (c *Client) Verify(ctx context.Context) (*models.VerifyResponse, error) {
	var out models.VerifyResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/verify", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout drops the locally stored auth pair. The backend keeps no session
// state, so nothing is sent.
func (c *Client) Logout(ctx context.Context) error {
	return c.auth.ClearAuth(ctx)
}

func (c *Client) persistAuth(ctx context.Context, res *models.AuthResponse) {
	if err := c.auth.StoreAuth(ctx, res.Token, &res.User); err != nil {
		c.log.Warn(ctx, "failed to persist auth pair", "error", err)
	}
}
