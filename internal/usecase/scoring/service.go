package scoring

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/lexica-cloud/wordrank/internal/domain"
	"github.com/lexica-cloud/wordrank/internal/domain/word"
)

// DefaultBatchSize is the number of words sent per provider request.
const DefaultBatchSize = 30

// Service scores filtered words. Without a provider it runs in pure
// heuristic mode; with one it batches words through the provider and
// degrades per batch: dropped on transport failure, heuristic fallback
// on parse failure.
type Service struct {
	provider  Provider
	batchSize int
	outcomes  *prometheus.CounterVec
	logger    *zap.Logger
}

// New creates a scoring service. provider may be nil (heuristic-only
// mode). outcomes is a counter vec with label "outcome", may be nil.
func New(provider Provider, batchSize int, outcomes *prometheus.CounterVec, logger *zap.Logger) *Service {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Service{
		provider:  provider,
		batchSize: batchSize,
		outcomes:  outcomes,
		logger:    logger,
	}
}

// AIEnabled reports whether an external provider is configured.
func (s *Service) AIEnabled() bool { return s.provider != nil }

// Score produces scored words for the given filtered list, preserving
// input order. In AI mode, words from dropped batches and words the
// provider did not answer for are absent from the result.
func (s *Service) Score(ctx context.Context, words []string) []word.Scored {
	if s.provider == nil {
		return s.scoreHeuristic(words)
	}

	scored := make([]word.Scored, 0, len(words))
	for start := 0; start < len(words); start += s.batchSize {
		end := start + s.batchSize
		if end > len(words) {
			end = len(words)
		}
		scored = append(scored, s.scoreBatch(ctx, words[start:end])...)
	}
	return scored
}

func (s *Service) scoreHeuristic(words []string) []word.Scored {
	scored := make([]word.Scored, 0, len(words))
	for _, w := range words {
		scored = append(scored, word.NewScored(w, HeuristicMetrics(w)))
	}
	return scored
}

func (s *Service) scoreBatch(ctx context.Context, batch []string) []word.Scored {
	entries, err := s.provider.ScoreBatch(ctx, batch)
	switch {
	case err == nil:
		s.countOutcome(BatchScored)
		return s.applyEntries(batch, entries)
	case errors.Is(err, domain.ErrMalformedScoringResponse):
		s.countOutcome(BatchFallback)
		s.logger.Warn("scoring response unparseable, falling back to heuristics",
			zap.Int("batch_size", len(batch)), zap.Error(err))
		return s.scoreHeuristic(batch)
	default:
		// Transport failure: the batch's words are silently lost.
		s.countOutcome(BatchDropped)
		s.logger.Warn("scoring batch dropped",
			zap.Int("batch_size", len(batch)), zap.Error(err))
		return nil
	}
}

// applyEntries matches provider entries to the batch's words in batch
// order. Entries without a brand value or naming an unrequested word
// are ignored; unanswered words yield nothing.
func (s *Service) applyEntries(batch []string, entries []Entry) []word.Scored {
	byWord := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if e.Word == "" || e.Brand == nil {
			continue
		}
		if _, dup := byWord[e.Word]; !dup {
			byWord[e.Word] = e
		}
	}

	scored := make([]word.Scored, 0, len(batch))
	for _, w := range batch {
		e, ok := byWord[w]
		if !ok {
			continue
		}

		rarity := HeuristicRarity(e.Word)
		if e.Rarity != nil {
			rarity = *e.Rarity
		}
		sentiment := 0.0
		if e.Sentiment != nil {
			sentiment = *e.Sentiment
		}

		// Domain metrics are never requested from the provider.
		m := word.NewMetrics(
			*e.Brand, rarity, sentiment,
			HeuristicDomainAvailable(w), HeuristicDomainScore(w),
		)
		scored = append(scored, word.NewScored(w, m))
	}
	return scored
}

func (s *Service) countOutcome(o Outcome) {
	if s.outcomes != nil {
		s.outcomes.WithLabelValues(string(o)).Inc()
	}
}
