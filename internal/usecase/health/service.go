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

// Report aggregates health check results.
type Report struct {
	Status      Status
	ScoringMode string
	Checks      map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	cache   CachePinger
	scoring ScoringChecker
}

// New creates a Service. cache and scoring may each be nil when the
// corresponding component is not configured.
func New(cache CachePinger, scoring ScoringChecker) *Service {
	return &Service{cache: cache, scoring: scoring}
}

// Check runs health checks against the configured components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			checks["cache"] = CheckError
		} else {
			checks["cache"] = CheckOK
		}
	}

	mode := "heuristic"
	if s.scoring != nil {
		mode = "ai"
		if err := s.scoring.HealthCheck(ctx); err != nil {
			checks["scoring"] = CheckError
		} else {
			checks["scoring"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, ScoringMode: mode, Checks: checks}
}
