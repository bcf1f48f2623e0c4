package catalog

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
		desc  string
	}{
		{"blue moon", "blue moon", "already normalized"},
		{"Blue Moon", "blue moon", "case folding"},
		{"BLUE MOON", "blue moon", "all caps"},
		{"Blue Moon (1934)", "blue moon ", "digits and punctuation dropped"},
		{"99 Luftballons", " luftballons", "leading digits dropped, space kept"},
		{"Désolé", "dsol", "non-ASCII dropped, not substituted"},
		{"...", "", "punctuation only"},
		{"", "", "empty input"},
		{"  ", "  ", "spaces survive"},
	}

	for _, tc := range cases {
		got := Normalize(tc.input, DefaultMaxNameLength)
		if got != tc.want {
			t.Errorf("%s: Normalize(%q) = %q, want %q", tc.desc, tc.input, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Blue Moon", "ONE more TIME!", "99 problems", "ümlaut song"}
	for _, in := range inputs {
		once := Normalize(in, DefaultMaxNameLength)
		twice := Normalize(once, DefaultMaxNameLength)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeTruncates(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "abcdefghij"
	}
	got := Normalize(long, 255)
	if len(got) != 255 {
		t.Fatalf("expected truncation to 255, got %d", len(got))
	}

	// non-letters do not count toward the limit
	got = Normalize("a1b2c3", 3)
	if got != "abc" {
		t.Fatalf("expected %q, got %q", "abc", got)
	}
}
