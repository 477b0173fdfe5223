// Package llm provides the text generation collaborator: an
// OpenAI-compatible chat completions client with typed failure kinds so
// callers can degrade instead of erroring.
package llm

import (
	"context"

	"github.com/hyperjump/kotae/internal/models"
)

// Client generates a chat completion for the given messages. A returned
// error is always a *ServiceError whose Kind distinguishes unavailable,
// timeout, and malformed-response failures; callers pattern-match on it
// to pick a fallback strategy rather than surfacing it.
type Client interface {
	ChatCompletion(ctx context.Context, messages []models.Message, temperature float64, maxTokens int) (string, error)
}
