package extract

import (
	"strings"

	"github.com/lexica-cloud/wordrank/internal/domain/criteria"
)

// FilterCap bounds the filtered working set to keep scoring cost
// predictable.
const FilterCap = 500

// negativeTerms are matched as literal substrings in brand mode.
// Substring matching is intentional and can exclude unrelated words
// sharing the fragment (e.g. "illuminate" contains "ill").
var negativeTerms = []string{"cancer", "disease", "pain", "death", "sick", "ill"}

// applyFilters reduces the candidate pool to the working set,
// preserving insertion order and truncating at FilterCap.
func applyFilters(words []string, crit *criteria.Criteria) []string {
	out := make([]string, 0, FilterCap)
	for _, w := range words {
		if !matches(w, crit) {
			continue
		}
		out = append(out, w)
		if len(out) == FilterCap {
			break
		}
	}
	return out
}

func matches(w string, crit *criteria.Criteria) bool {
	if crit.MinLength() > 0 && len(w) < crit.MinLength() {
		return false
	}
	if crit.MaxLength() > 0 && len(w) > crit.MaxLength() {
		return false
	}
	if l := crit.FirstLetter(); l != 0 && (len(w) == 0 || w[0] != l) {
		return false
	}
	if crit.BrandMode() {
		for _, term := range negativeTerms {
			if strings.Contains(w, term) {
				return false
			}
		}
	}
	return true
}
