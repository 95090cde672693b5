// Package extract orchestrates the word extraction pipeline:
// load -> filter -> score -> rank.
package extract

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/lexica-cloud/wordrank/internal/domain/criteria"
	"github.com/lexica-cloud/wordrank/internal/domain/word"
)

// Service runs the extraction pipeline for one request. It holds no
// per-request state; data flows one way through the stages.
type Service struct {
	loader Loader
	scorer Scorer
	logger *zap.Logger
}

// New creates an extraction service.
func New(loader Loader, scorer Scorer, logger *zap.Logger) *Service {
	return &Service{loader: loader, scorer: scorer, logger: logger}
}

// Extract runs the full pipeline and returns at most
// crit.MaxResults() words ordered by descending composite score.
// Ties keep their pre-sort order.
func (s *Service) Extract(ctx context.Context, crit *criteria.Criteria) ([]word.Scored, error) {
	pool, err := s.loader.Load(ctx, crit.Fields())
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	filtered := applyFilters(pool, crit)

	scored := s.scorer.Score(ctx, filtered)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract canceled: %w", err)
	}

	if crit.HasRarityRange() {
		scored = filterByRarity(scored, float64(crit.MinRarity()), float64(crit.MaxRarity()))
	}

	ranked := rank(scored, crit.MaxResults())

	s.logger.Debug("pipeline complete",
		zap.Int("pool", len(pool)),
		zap.Int("filtered", len(filtered)),
		zap.Int("scored", len(scored)),
		zap.Int("returned", len(ranked)),
	)
	return ranked, nil
}

// filterByRarity keeps words whose rarity falls within [min,max]
// inclusive. Applied after scoring since rarity is a scorer output.
func filterByRarity(scored []word.Scored, min, max float64) []word.Scored {
	kept := scored[:0]
	for _, s := range scored {
		r := s.Metrics().Rarity()
		if r >= min && r <= max {
			kept = append(kept, s)
		}
	}
	return kept
}

// rank sorts by composite score descending (stable, so ties preserve
// input order) and truncates to maxResults.
func rank(scored []word.Scored, maxResults int) []word.Scored {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score() > scored[j].Score()
	})
	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}
	return scored
}
