package word

// Scored is a word paired with its metrics and derived composite score.
type Scored struct {
	value   string
	metrics Metrics
	score   float64
}

// NewScored creates a scored word. The composite score is derived once
// at construction.
func NewScored(value string, m Metrics) Scored {
	return Scored{value: value, metrics: m, score: m.Composite()}
}

// Value returns the word itself.
func (s *Scored) Value() string { return s.value }

// Metrics returns the per-word metrics.
func (s *Scored) Metrics() Metrics { return s.metrics }

// Score returns the composite ranking score.
func (s *Scored) Score() float64 { return s.score }
