package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/taskpilot/internal/authstore"
	"github.com/dmitrijs2005/taskpilot/internal/logging"
	"github.com/dmitrijs2005/taskpilot/internal/netx"
)

// Client talks to the taskpilot backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	auth    *authstore.Store
	log     logging.Logger
}

// New builds a client against baseURL, which must already be normalized
// (see netx.NormalizeBaseURL). The auth store supplies the bearer token and
// absorbs the 401 clear side effect.
func New(baseURL string, auth *authstore.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		auth:    auth,
		log:     log,
	}
}

// do is the single unified executor behind every API method. It resolves the
// URL, encodes in as the JSON body, attaches headers, and decodes a 2xx
// response into out. A nil out skips body decoding (no-content endpoints).
// Non-2xx responses come back as *StatusError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, netx.BuildURL(c.baseURL, path, query), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.auth.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(ctx, resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorFromResponse turns a non-2xx response into a *StatusError. A 401 also
// clears the stored auth pair: the token is stale and keeping it would only
// repeat the failure.
func (c *Client) errorFromResponse(ctx context.Context, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.auth.ClearAuth(ctx); err != nil {
			c.log.Warn(ctx, "failed to clear auth after 401", "error", err)
		} else {
			c.log.Info(ctx, "cleared stored auth after 401")
		}
	}

	return &StatusError{
		Status:  resp.StatusCode,
		Message: extractMessage(resp.StatusCode, body),
		Body:    body,
	}
}

// errorBody covers the two message conventions the backend uses.
type errorBody struct {
	Detail string `json:"detail"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// extractMessage pulls a display message out of an error body, treating an
// unparsable body as empty and synthesizing "HTTP <status>: <text>".
func extractMessage(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Detail != "" {
			return eb.Detail
		}
		if eb.Error.Message != "" {
			return eb.Error.Message
		}
	}
	return fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
}

// userPath builds the per-user resource prefix used by most endpoints.
func userPath(userID, suffix string) string {
	return "/api/" + url.PathEscape(userID) + suffix
}
