package scoring

import (
	"strings"

	"github.com/lexica-cloud/wordrank/internal/domain/word"
)

// Heuristic constants. The score formulas are a compatibility surface:
// external consumers reproduce them, so literals must stay as-is.
var (
	positiveFragments = []string{
		"bright", "smart", "pure", "fresh", "vital", "prime", "max", "ultra", "pro",
	}
	commonDomainWords = map[string]struct{}{
		"time": {}, "world": {}, "life": {}, "work": {}, "home": {},
		"shop": {}, "data": {}, "tech": {}, "new": {}, "best": {},
	}
)

const (
	difficultLetters   = "qxz"
	rareLetters        = "jqxzk"
	heuristicSentiment = 0.5
)

// HeuristicMetrics scores a word using only the local formulas.
// Sentiment has no heuristic formula and is fixed at 0.5.
func HeuristicMetrics(w string) word.Metrics {
	return word.NewMetrics(
		HeuristicBrand(w),
		HeuristicRarity(w),
		heuristicSentiment,
		HeuristicDomainAvailable(w),
		HeuristicDomainScore(w),
	)
}

// HeuristicBrand scores brandability in [0,10]: short words and
// positive fragments raise it, hard-to-spell letters lower it.
func HeuristicBrand(w string) float64 {
	score := 5.0

	switch {
	case len(w) <= 6:
		score += 2.0
	case len(w) <= 8:
		score += 1.0
	case len(w) > 10:
		score -= 1.0
	}

	for _, frag := range positiveFragments {
		if strings.Contains(w, frag) {
			score += 1.5
			break
		}
	}

	for i := 0; i < len(w); i++ {
		if strings.IndexByte(difficultLetters, w[i]) >= 0 {
			score -= 0.5
		}
	}

	return clamp(score, 0, 10)
}

// HeuristicRarity scores rarity in [1,5]: longer words and rare
// letters raise it.
func HeuristicRarity(w string) float64 {
	score := 1.0 + float64(len(w))/10.0
	if strings.ContainsAny(w, rareLetters) {
		score += 1.0
	}
	return clamp(score, 1, 5)
}

// HeuristicDomainAvailable guesses whether the word could still be
// registered as a domain. Common dictionary staples are assumed taken;
// mid-length and long words are assumed available.
func HeuristicDomainAvailable(w string) bool {
	if _, ok := commonDomainWords[w]; ok {
		return false
	}
	if len(w) >= 7 && len(w) <= 12 {
		return true
	}
	return len(w) > 8
}

// HeuristicDomainScore scores domain desirability in [0,1].
func HeuristicDomainScore(w string) float64 {
	score := 0.5
	if len(w) <= 8 {
		score += 0.3
	}
	if len(w) > 12 {
		score -= 0.2
	}

	vowels := 0
	for i := 0; i < len(w); i++ {
		if strings.IndexByte("aeiou", w[i]) >= 0 {
			vowels++
		}
	}
	hasConsonant := vowels < len(w)
	if len(w) > 0 && vowels > 0 && hasConsonant &&
		float64(vowels)/float64(len(w)) > 0.25 {
		score += 0.2
	}

	return clamp(score, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
