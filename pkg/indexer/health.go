package indexer

import (
	"context"
	"net/http"
)

const healthPath = "/api/v1/health"

// Health reports the server's status.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var response HealthResponse
	if err := c.requestJSON(ctx, http.MethodGet, healthPath, nil, nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
