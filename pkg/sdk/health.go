package recodex

import (
	"context"
	"time"

	healthuc "github.com/kailas-cloud/recodex/internal/usecase/health"
)

// HealthStatus represents the aggregated health.
type HealthStatus struct {
	Status string            // "ok", "degraded", "error"
	Checks map[string]string // component → "ok"/"error"
}

// Health checks the dataset and, when configured, the cache.
func (c *Client) Health(ctx context.Context) HealthStatus {
	start := time.Now()
	report := c.healthSvc.Check(ctx)

	var err error
	if report.Status == healthuc.Unhealthy {
		err = ErrDatasetUnavailable
	}
	c.obs.observe(opHealth, start, err, "status", string(report.Status))

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}
