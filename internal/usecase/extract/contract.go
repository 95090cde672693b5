package extract

import (
	"context"

	"github.com/lexica-cloud/wordrank/internal/domain/word"
)

// Loader produces the deduplicated candidate pool for the requested
// field tags, in insertion order. Unreachable sources are skipped, so
// an empty pool is a valid outcome, not an error.
type Loader interface {
	Load(ctx context.Context, fields []string) ([]string, error)
}

// Scorer produces metrics for the filtered words, preserving input
// order. Words lost to a dropped scoring batch are simply absent.
type Scorer interface {
	Score(ctx context.Context, words []string) []word.Scored
}
