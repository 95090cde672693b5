package scoring

// Outcome tags what happened to one scoring batch.
type Outcome string

const (
	// BatchScored means the provider response was used.
	BatchScored Outcome = "scored"
	// BatchFallback means the response failed to parse and the whole
	// batch was rescored heuristically.
	BatchFallback Outcome = "fallback"
	// BatchDropped means the request itself failed and the batch's
	// words produce no results.
	BatchDropped Outcome = "dropped"
)
