package client

import (
	"context"

	"github.com/photoflow/photoflow/internal/models"
)

// Analytics fetches the full snapshot, recomputed server-side on every call.
func (c *Client) Analytics(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	var out models.AnalyticsSnapshot
	if err := c.get(ctx, "/analytics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
