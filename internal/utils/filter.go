package utils

// HasIndexableLetter reports whether s contains at least one ASCII letter.
// Names without one normalize to an empty letter path and every catalog
// operation on them is a no-op, so interfaces can reject them up front with
// a useful message instead of silently doing nothing.
func HasIndexableLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return true
		}
	}
	return false
}

// IsBlank reports whether s is empty or all spaces/tabs.
func IsBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}
