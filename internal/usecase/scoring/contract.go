package scoring

import "context"

// Entry is one word's scores as returned by an external provider.
// Optional fields are pointers: nil means the provider omitted the
// value and a defined default applies (heuristic rarity, sentiment 0).
type Entry struct {
	Word      string
	Brand     *float64
	Sentiment *float64
	Rarity    *float64
}

// Provider scores one batch of words via an external service.
//
// A transport-level failure must wrap domain.ErrScoringProviderError;
// a response that arrived but failed to parse must wrap
// domain.ErrMalformedScoringResponse. The two are handled differently:
// the former drops the batch, the latter falls back to heuristics.
type Provider interface {
	ScoreBatch(ctx context.Context, words []string) ([]Entry, error)
}
