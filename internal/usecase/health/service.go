package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Check names.
const (
	CheckCache       = "cache"
	CheckWordVectors = "word_vectors"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks. Local assets are loaded at startup, so
// only optional remote dependencies are probed.
type Service struct {
	cache       CachePinger
	wordVectors WordVectorChecker
}

// New creates a Service. Both dependencies can be nil.
func New(cache CachePinger, wordVectors WordVectorChecker) *Service {
	return &Service{cache: cache, wordVectors: wordVectors}
}

// Check runs health checks against all configured components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.cache != nil {
		checks[CheckCache] = result(s.cache.Ping(ctx))
	}
	if s.wordVectors != nil {
		checks[CheckWordVectors] = result(s.wordVectors.HealthCheck(ctx))
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}

func result(err error) CheckResult {
	if err != nil {
		return CheckError
	}
	return CheckOK
}
