package client

import (
	"context"
	"net/url"
	"time"

	"github.com/ryhoangf/iValuate/internal/engine"
)

// RunRollup triggers the price history rollup. A zero day rolls up the
// server's current day.
func (c *Client) RunRollup(ctx context.Context, day time.Time) (*engine.RollupResult, error) {
	q := url.Values{}
	if !day.IsZero() {
		q.Set("date", day.Format(time.DateOnly))
	}

	var result engine.RollupResult
	if err := c.post(ctx, "/api/v1/jobs/rollup", q, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
