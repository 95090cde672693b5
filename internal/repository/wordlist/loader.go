package wordlist

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lexica-cloud/wordrank/internal/domain/word"
	"github.com/lexica-cloud/wordrank/internal/metrics"
)

// DefaultPoolCap bounds the candidate pool to keep downstream stages cheap.
const DefaultPoolCap = 5000

// Loader builds the deduplicated candidate pool from the sources
// resolved for the requested field tags.
type Loader struct {
	sources *Sources
	fetcher Fetcher
	poolCap int
	logger  *zap.Logger
}

// NewLoader creates a loader. poolCap <= 0 uses DefaultPoolCap.
func NewLoader(sources *Sources, fetcher Fetcher, poolCap int, logger *zap.Logger) *Loader {
	if poolCap <= 0 {
		poolCap = DefaultPoolCap
	}
	return &Loader{sources: sources, fetcher: fetcher, poolCap: poolCap, logger: logger}
}

// Load fetches each field's source sequentially and accumulates an
// insertion-ordered dedup set of valid words, capped at the pool size.
// An unreachable source is logged and skipped; the caller cannot
// distinguish it from an empty one. Load errors only on cancellation.
func (l *Loader) Load(ctx context.Context, fields []string) ([]string, error) {
	pool := make([]string, 0, l.poolCap)
	seen := make(map[string]struct{}, l.poolCap)

	for _, tag := range fields {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load canceled: %w", err)
		}
		if len(pool) >= l.poolCap {
			break
		}

		url := l.sources.Resolve(tag)
		body, err := l.fetcher.Fetch(ctx, url)
		if err != nil {
			metrics.SourceFetchesTotal.WithLabelValues(tag, "error").Inc()
			l.logger.Warn("word list source unavailable",
				zap.String("field", tag), zap.String("url", url), zap.Error(err))
			continue
		}
		metrics.SourceFetchesTotal.WithLabelValues(tag, "ok").Inc()

		pool = l.accumulate(pool, seen, body)
	}

	return pool, nil
}

// accumulate merges one source body into the pool, keeping insertion
// order and uniqueness, stopping at the cap.
func (l *Loader) accumulate(pool []string, seen map[string]struct{}, body []byte) []string {
	for _, line := range strings.Split(string(body), "\n") {
		if len(pool) >= l.poolCap {
			break
		}
		w := word.Normalize(line)
		if !word.IsValid(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		pool = append(pool, w)
	}
	return pool
}
