// Package cli provides CLI output formatting for Kotae.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperjump/kotae/internal/models"
)

// OutputFormat is the format for chat output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteChatResponse writes a chat answer to w in the given format.
// Evidence excerpts are included only when showEvidence is set; JSON
// output always carries the full response.
func WriteChatResponse(w io.Writer, response *models.ChatResponse, showEvidence bool, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeChatResponseText(w, response, showEvidence)
		return nil
	}
}

func writeChatResponseText(w io.Writer, response *models.ChatResponse, showEvidence bool) {
	fmt.Fprintln(w, response.Answer)
	// A single key point is just the answer prefix, not worth repeating.
	if len(response.KeyPoints) > 1 {
		fmt.Fprintln(w, "\nKey points:")
		for _, point := range response.KeyPoints {
			fmt.Fprintf(w, "  - %s\n", point)
		}
	}
	if showEvidence && len(response.Evidence) > 0 {
		fmt.Fprintln(w, "\nSources:")
		for _, ev := range response.Evidence {
			fmt.Fprintf(w, "  [%d] (%.2f) %s\n", ev.ExcerptID, ev.Similarity, Truncate(ev.Content, 200))
		}
	}
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
