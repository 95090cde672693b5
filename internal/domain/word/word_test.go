package word

import "testing"

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"  Hello \r":  "hello",
		"WORLD":       "world",
		"\tbright\n":  "bright",
		"":            "",
		"  Don't  ":   "don't",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"abc", "bright", "extraordinary", "abcdefghijklmno"}
	for _, w := range valid {
		if !IsValid(w) {
			t.Errorf("IsValid(%q) = false, want true", w)
		}
	}

	invalid := []string{
		"",
		"ab",               // too short
		"abcdefghijklmnop", // 16 chars, too long
		"don't",
		"hello1",
		"Hello",
		"héllo",
		"two words",
	}
	for _, w := range invalid {
		if IsValid(w) {
			t.Errorf("IsValid(%q) = true, want false", w)
		}
	}
}
