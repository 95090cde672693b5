package wordlist

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// fakeFetcher serves canned bodies by URL.
type fakeFetcher struct {
	bodies map[string]string
	calls  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	body, ok := f.bodies[url]
	if !ok {
		return nil, errors.New("503 service unavailable")
	}
	return []byte(body), nil
}

func testSources() *Sources {
	return NewSources(map[string]string{
		"general": "https://lists.test/general.txt",
		"tech":    "https://lists.test/tech.txt",
		"science": "https://lists.test/science.txt",
	})
}

func TestLoad_NormalizesAndDeduplicates(t *testing.T) {
	fetcher := &fakeFetcher{bodies: map[string]string{
		"https://lists.test/general.txt": "Stone\r\n  BRIGHT \nstone\nab\nnope-word\n\nquest",
	}}
	loader := NewLoader(testSources(), fetcher, 0, zap.NewNop())

	pool, err := loader.Load(context.Background(), []string{"general"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"stone", "bright", "quest"}
	if len(pool) != len(want) {
		t.Fatalf("pool = %v, want %v", pool, want)
	}
	for i := range want {
		if pool[i] != want[i] {
			t.Fatalf("pool = %v, want %v", pool, want)
		}
	}
}

func TestLoad_SkipsFailedSource(t *testing.T) {
	fetcher := &fakeFetcher{bodies: map[string]string{
		"https://lists.test/general.txt": "stone\nquest",
		// tech.txt missing: its fetch fails.
		"https://lists.test/science.txt": "photon\nstone",
	}}
	loader := NewLoader(testSources(), fetcher, 0, zap.NewNop())

	pool, err := loader.Load(context.Background(), []string{"general", "tech", "science"})
	if err != nil {
		t.Fatalf("Load must not fail on a skipped source: %v", err)
	}

	want := []string{"stone", "quest", "photon"}
	if strings.Join(pool, " ") != strings.Join(want, " ") {
		t.Fatalf("pool = %v, want %v", pool, want)
	}
	if len(fetcher.calls) != 3 {
		t.Errorf("expected all 3 sources attempted, got %d calls", len(fetcher.calls))
	}
}

func TestLoad_CapsPool(t *testing.T) {
	var b strings.Builder
	for _, prefix := range []string{"aaa", "bbb", "ccc", "ddd", "eee", "fff", "ggg", "hhh"} {
		b.WriteString(prefix + "word\n")
	}
	fetcher := &fakeFetcher{bodies: map[string]string{
		"https://lists.test/general.txt": b.String(),
		"https://lists.test/tech.txt":    "zzzword\n",
	}}
	loader := NewLoader(testSources(), fetcher, 5, zap.NewNop())

	pool, err := loader.Load(context.Background(), []string{"general", "tech"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(pool) != 5 {
		t.Fatalf("expected pool capped at 5, got %d", len(pool))
	}
	if pool[0] != "aaaword" || pool[4] != "eeeword" {
		t.Errorf("cap must keep the earliest words, got first=%s last=%s", pool[0], pool[4])
	}
	// The cap was reached before the second source; it must not be fetched.
	if len(fetcher.calls) != 1 {
		t.Errorf("expected 1 fetch, got %d", len(fetcher.calls))
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewLoader(testSources(), &fakeFetcher{}, 0, zap.NewNop())
	if _, err := loader.Load(ctx, []string{"general"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
