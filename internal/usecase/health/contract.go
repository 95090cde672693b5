package health

import "context"

// CachePinger checks cache store availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// ScoringChecker checks scoring provider availability.
type ScoringChecker interface {
	HealthCheck(ctx context.Context) error
}
