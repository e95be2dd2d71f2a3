package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the cache is down; recommendations still work uncached.
	Degraded Status = "degraded"
	// Unhealthy indicates the dataset is unavailable and nothing can be served.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names used as Report.Checks keys.
const (
	ComponentDataset = "dataset"
	ComponentCache   = "cache"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	dataset DatasetChecker
	cache   CachePinger
}

// New creates a Service. cache can be nil when caching is disabled.
func New(dataset DatasetChecker, cache CachePinger) *Service {
	return &Service{dataset: dataset, cache: cache}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	status := Healthy

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks[ComponentCache] = CheckError
			status = Degraded
		} else {
			checks[ComponentCache] = CheckOK
		}
	}

	if err := s.dataset.Check(ctx); err != nil {
		checks[ComponentDataset] = CheckError
		status = Unhealthy
	} else {
		checks[ComponentDataset] = CheckOK
	}

	return Report{Status: status, Checks: checks}
}
