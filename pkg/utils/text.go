// Package utils provides shared text, math, and logging helpers.
package utils

// Truncate shortens s to at most maxLen runes and appends "..." when
// anything was cut. A maxLen of 0 or less returns s unchanged. Rune
// counting keeps multibyte document text from being split mid-character.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
