package catalog

// DefaultMaxNameLength is the longest normalized name the catalog keeps.
// Anything past it is truncated, not rejected.
const DefaultMaxNameLength = 255

// Normalize folds a raw song name down to the catalog alphabet:
// lowercase ASCII letters and spaces. Uppercase letters are folded,
// every other byte (digits, punctuation, non-ASCII) is dropped outright.
// Output is truncated at maxLen. Normalize is idempotent.
func Normalize(raw string, maxLen int) string {
	if raw == "" || maxLen <= 0 {
		return ""
	}
	out := make([]byte, 0, min(len(raw), maxLen))
	for i := 0; i < len(raw) && len(out) < maxLen; i++ {
		c := raw[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if (c >= 'a' && c <= 'z') || c == ' ' {
			out = append(out, c)
		}
	}
	return string(out)
}
