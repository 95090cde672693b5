package word

// Composite score weights. Any consumer re-deriving the score from
// metrics must match this formula exactly, so the literals below are
// load-bearing and must not be reordered or refactored.
const (
	brandWeight     = 0.35
	rarityWeight    = 0.20
	sentimentWeight = 0.15
	domainWeight    = 0.30
)

// Metrics holds the four per-word scoring metrics.
// Brand is in [0,10], rarity in [1,5], sentiment in [-1,1] and
// domain score in [0,1] when produced by the heuristic scorer;
// AI-provided values are carried as returned.
type Metrics struct {
	brand           float64
	rarity          float64
	sentiment       float64
	domainAvailable bool
	domainScore     float64
}

// NewMetrics creates a word metrics value.
func NewMetrics(brand, rarity, sentiment float64, domainAvailable bool, domainScore float64) Metrics {
	return Metrics{
		brand:           brand,
		rarity:          rarity,
		sentiment:       sentiment,
		domainAvailable: domainAvailable,
		domainScore:     domainScore,
	}
}

// Brand returns the brandability score.
func (m Metrics) Brand() float64 { return m.brand }

// Rarity returns the rarity score.
func (m Metrics) Rarity() float64 { return m.rarity }

// Sentiment returns the sentiment score.
func (m Metrics) Sentiment() float64 { return m.sentiment }

// DomainAvailable returns the heuristic domain-availability flag.
func (m Metrics) DomainAvailable() bool { return m.domainAvailable }

// DomainScore returns the domain desirability score.
func (m Metrics) DomainScore() float64 { return m.domainScore }

// Composite returns the single weighted ranking score. All metrics are
// first rescaled to a 0..10 band, then weighted.
func (m Metrics) Composite() float64 {
	return m.brand*brandWeight +
		m.rarity*2*rarityWeight +
		(m.sentiment+1)*5*sentimentWeight +
		m.domainScore*10*domainWeight
}
