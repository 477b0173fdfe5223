package rag

import "strings"

const maxKeyPoints = 5

// ExtractKeyPoints pulls bullet lines ("-" or "*") out of a generated
// answer, up to five of them. Answers without bullets yield a single key
// point holding the first 120 characters of the answer.
func ExtractKeyPoints(answer string) []string {
	var points []string
	for _, line := range strings.Split(answer, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") {
			points = append(points, strings.TrimSpace(strings.Trim(trimmed, "-* ")))
			if len(points) == maxKeyPoints {
				break
			}
		}
	}
	if len(points) == 0 {
		return []string{firstChars(answer, 120)}
	}
	return points
}

// firstChars truncates on rune boundaries so multibyte answers stay valid.
func firstChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
