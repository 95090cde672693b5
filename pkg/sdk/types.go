package sdk

// Criteria is the extraction request payload.
type Criteria struct {
	Fields      []string `json:"fields"`
	LengthRange []int    `json:"lengthRange,omitempty"`
	FirstLetter string   `json:"firstLetter,omitempty"`
	POSType     string   `json:"posType,omitempty"`
	RarityRange []int    `json:"rarityRange,omitempty"`
	BrandMode   bool     `json:"brandMode,omitempty"`
	MaxResults  int      `json:"maxResults,omitempty"`
}

// WordMeta holds the per-word scoring metrics.
type WordMeta struct {
	Brand           float64 `json:"brand"`
	Rarity          float64 `json:"rarity"`
	Sentiment       float64 `json:"sentiment"`
	DomainAvailable bool    `json:"domain_available"`
	DomainScore     float64 `json:"domain_score"`
}

// ScoredWord is one extraction result.
type ScoredWord struct {
	Word string   `json:"word"`
	Meta WordMeta `json:"meta"`
}

// Composite re-derives the server's ranking score from the metrics.
// The formula must stay byte-for-byte identical to the server's; any
// divergence breaks display-side recomputation.
func (s ScoredWord) Composite() float64 {
	return s.Meta.Brand*0.35 +
		s.Meta.Rarity*2*0.20 +
		(s.Meta.Sentiment+1)*5*0.15 +
		s.Meta.DomainScore*10*0.30
}

// HealthReport is the /health response.
type HealthReport struct {
	Status      string            `json:"status"`
	ScoringMode string            `json:"scoring_mode"`
	Checks      map[string]string `json:"checks"`
}
