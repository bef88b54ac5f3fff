package textutil

import "unicode/utf8"

// Truncate truncates a string to maxLen runes for table display.
// If the string is longer than maxLen, it appends "..." to indicate
// truncation. Cuts happen on rune boundaries so multibyte text (hi, kn, ne
// message bodies) stays valid UTF-8. Useful for wide free-text columns like
// template bodies and conversation messages.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	n := 0
	for i := range s {
		if n == maxLen {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
