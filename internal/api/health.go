package api

import (
	"context"
	"net/http"
)

// Health probes the backend liveness endpoint. A nil error means the backend
// answered 2xx.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}
