// Package wordlist loads candidate words from remote word-list sources.
package wordlist

// DefaultFieldTag is the fallback source for unrecognized field tags.
const DefaultFieldTag = "general"

// builtinSources maps field tags to remote plain-text word lists.
// Several tags share a list; the loader's dedup set absorbs repeats.
var builtinSources = map[string]string{
	"general":  "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt",
	"common":   "https://www.mit.edu/~ecprice/wordlist.10000",
	"tech":     "https://raw.githubusercontent.com/first20hours/google-10000-english/master/google-10000-english-no-swears.txt",
	"business": "https://raw.githubusercontent.com/first20hours/google-10000-english/master/google-10000-english-usa-no-swears-medium.txt",
	"science":  "https://www.mit.edu/~ecprice/wordlist.10000",
	"creative": "https://raw.githubusercontent.com/first20hours/google-10000-english/master/google-10000-english-usa-no-swears-long.txt",
}

// Sources resolves field tags to word-list URLs.
type Sources struct {
	table map[string]string
}

// NewSources builds the tag table: overrides are merged over the
// built-in entries.
func NewSources(overrides map[string]string) *Sources {
	table := make(map[string]string, len(builtinSources)+len(overrides))
	for tag, u := range builtinSources {
		table[tag] = u
	}
	for tag, u := range overrides {
		table[tag] = u
	}
	return &Sources{table: table}
}

// Resolve returns the URL for a field tag, falling back to the
// "general" entry for unknown tags.
func (s *Sources) Resolve(tag string) string {
	if u, ok := s.table[tag]; ok {
		return u
	}
	return s.table[DefaultFieldTag]
}
