package wordlist

import "testing"

func TestSources_Resolve(t *testing.T) {
	s := NewSources(map[string]string{
		"tech":    "https://lists.example.com/tech.txt",
		"medical": "https://lists.example.com/medical.txt",
	})

	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"override wins over builtin", "tech", "https://lists.example.com/tech.txt"},
		{"new tag from overrides", "medical", "https://lists.example.com/medical.txt"},
		{"builtin kept", "common", builtinSources["common"]},
		{"unknown falls back to general", "astrology", builtinSources["general"]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Resolve(tt.tag); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}
