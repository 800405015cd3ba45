package symptomlog

import (
	"context"

	healthuc "github.com/kailas-cloud/symptomlog/internal/usecase/health"
)

// Health checks the word-vector source when it supports health checks.
// Clients built only from local tables always report "ok".
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
