package scoring

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/lexica-cloud/wordrank/internal/domain"
)

// --- Mocks ---

type mockProvider struct {
	entries [][]Entry
	errs    []error
	calls   [][]string
}

func (m *mockProvider) ScoreBatch(_ context.Context, words []string) ([]Entry, error) {
	i := len(m.calls)
	m.calls = append(m.calls, append([]string(nil), words...))
	var err error
	if i < len(m.errs) {
		err = m.errs[i]
	}
	var entries []Entry
	if i < len(m.entries) {
		entries = m.entries[i]
	}
	return entries, err
}

func f(v float64) *float64 { return &v }

func entriesFor(words ...string) []Entry {
	out := make([]Entry, len(words))
	for i, w := range words {
		out[i] = Entry{Word: w, Brand: f(7), Sentiment: f(0.2), Rarity: f(2)}
	}
	return out
}

// --- Tests ---

func TestScore_HeuristicMode(t *testing.T) {
	svc := New(nil, 0, nil, zap.NewNop())

	words := []string{"max", "stone", "quiz"}
	scored := svc.Score(context.Background(), words)

	if len(scored) != len(words) {
		t.Fatalf("expected %d results, got %d", len(words), len(scored))
	}
	for i, s := range scored {
		if s.Value() != words[i] {
			t.Errorf("result %d = %q, want %q (input order preserved)", i, s.Value(), words[i])
		}
		want := HeuristicMetrics(words[i])
		if s.Metrics() != want {
			t.Errorf("metrics for %q = %+v, want heuristic %+v", words[i], s.Metrics(), want)
		}
	}
}

func TestScore_BatchPartitioning(t *testing.T) {
	provider := &mockProvider{
		entries: [][]Entry{entriesFor("aaa", "bbb"), entriesFor("ccc", "ddd"), entriesFor("eee")},
	}
	svc := New(provider, 2, nil, zap.NewNop())

	scored := svc.Score(context.Background(), []string{"aaa", "bbb", "ccc", "ddd", "eee"})

	if len(provider.calls) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(provider.calls))
	}
	if len(provider.calls[2]) != 1 || provider.calls[2][0] != "eee" {
		t.Errorf("last batch = %v, want [eee]", provider.calls[2])
	}
	if len(scored) != 5 {
		t.Fatalf("expected 5 results, got %d", len(scored))
	}
	if scored[0].Value() != "aaa" || scored[4].Value() != "eee" {
		t.Errorf("order not preserved across batches: %v, %v", scored[0].Value(), scored[4].Value())
	}
}

func TestScore_TransportFailureDropsBatch(t *testing.T) {
	provider := &mockProvider{
		entries: [][]Entry{nil, entriesFor("ccc", "ddd")},
		errs: []error{
			fmt.Errorf("boom: %w", domain.ErrScoringProviderError),
			nil,
		},
	}
	svc := New(provider, 2, nil, zap.NewNop())

	scored := svc.Score(context.Background(), []string{"aaa", "bbb", "ccc", "ddd"})

	if len(scored) != 2 {
		t.Fatalf("expected 2 results (first batch dropped), got %d", len(scored))
	}
	if scored[0].Value() != "ccc" || scored[1].Value() != "ddd" {
		t.Errorf("unexpected surviving words: %v, %v", scored[0].Value(), scored[1].Value())
	}
}

func TestScore_ParseFailureFallsBackToHeuristics(t *testing.T) {
	provider := &mockProvider{
		errs: []error{fmt.Errorf("bad json: %w", domain.ErrMalformedScoringResponse)},
	}
	svc := New(provider, 10, nil, zap.NewNop())

	words := []string{"max", "quiz"}
	scored := svc.Score(context.Background(), words)

	if len(scored) != 2 {
		t.Fatalf("expected 2 fallback results, got %d", len(scored))
	}
	for i, s := range scored {
		want := HeuristicMetrics(words[i])
		if s.Metrics() != want {
			t.Errorf("fallback metrics for %q = %+v, want heuristic %+v", words[i], s.Metrics(), want)
		}
	}
}

func TestScore_EntryDefaults(t *testing.T) {
	provider := &mockProvider{
		entries: [][]Entry{{
			{Word: "stone", Brand: f(8)},              // rarity+sentiment omitted
			{Word: "ghost", Brand: nil},               // no brand: ignored
			{Word: "unrequested", Brand: f(9)},        // not in batch: ignored
			{Word: "bbb", Brand: f(6), Rarity: f(4.5)}, // sentiment omitted
		}},
	}
	svc := New(provider, 10, nil, zap.NewNop())

	scored := svc.Score(context.Background(), []string{"stone", "ghost", "bbb"})

	if len(scored) != 2 {
		t.Fatalf("expected 2 results, got %d", len(scored))
	}

	first := scored[0]
	if first.Value() != "stone" {
		t.Fatalf("first result = %q, want stone", first.Value())
	}
	m := first.Metrics()
	if m.Brand() != 8 {
		t.Errorf("brand = %v, want provider value 8", m.Brand())
	}
	if m.Rarity() != HeuristicRarity("stone") {
		t.Errorf("rarity = %v, want heuristic default %v", m.Rarity(), HeuristicRarity("stone"))
	}
	if m.Sentiment() != 0 {
		t.Errorf("sentiment = %v, want default 0", m.Sentiment())
	}
	// Domain metrics always come from heuristics, even in AI mode.
	if m.DomainAvailable() != HeuristicDomainAvailable("stone") {
		t.Errorf("domainAvailable = %v, want heuristic value", m.DomainAvailable())
	}
	if m.DomainScore() != HeuristicDomainScore("stone") {
		t.Errorf("domainScore = %v, want heuristic value", m.DomainScore())
	}

	second := scored[1]
	if second.Value() != "bbb" || second.Metrics().Rarity() != 4.5 {
		t.Errorf("second result = %q rarity %v, want bbb with provider rarity 4.5",
			second.Value(), second.Metrics().Rarity())
	}
}

func TestScore_NonSentinelErrorAlsoDrops(t *testing.T) {
	provider := &mockProvider{errs: []error{errors.New("connection reset")}}
	svc := New(provider, 10, nil, zap.NewNop())

	scored := svc.Score(context.Background(), []string{"aaa", "bbb"})
	if len(scored) != 0 {
		t.Fatalf("expected 0 results for dropped batch, got %d", len(scored))
	}
}
