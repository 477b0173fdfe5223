package rag

import (
	"fmt"
	"strings"

	"github.com/hyperjump/kotae/internal/keyword"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/internal/vector"
)

const systemPrompt = `You are a helpful AI assistant that answers questions based on the provided document context.
Use the document excerpts to provide accurate, relevant answers. If the context doesn't contain enough information, say so.
Be concise and cite relevant parts of the document when possible. When referencing information, mention which excerpt it came from.`

// semanticContext labels each retrieved excerpt with its rank and
// similarity so the model can cite them back.
func semanticContext(scored []vector.Scored) string {
	parts := make([]string, len(scored))
	for i, s := range scored {
		parts[i] = fmt.Sprintf("[Excerpt %d (relevance: %.2f)]:\n%s", i+1, s.Score, s.Chunk)
	}
	return strings.Join(parts, "\n\n")
}

func keywordContext(scored []keyword.Scored) string {
	parts := make([]string, len(scored))
	for i, s := range scored {
		parts[i] = fmt.Sprintf("[Excerpt %d]:\n%s", i+1, s.Chunk)
	}
	return strings.Join(parts, "\n\n")
}

func semanticUserPrompt(context, question, previousAnswer string) string {
	previousContext := ""
	if previousAnswer != "" {
		previousContext = "\n\nPrevious answer shared with the user (for reference, do not repeat verbatim unless needed):\n" + previousAnswer
	}
	return "Based on the following document excerpts, please answer the question.\n\n" +
		context +
		previousContext +
		"\n\nQuestion: " + question + "\n\n" +
		"Please provide a clear, accurate answer based on the excerpts. If the excerpts don't contain enough " +
		"information, say so explicitly and suggest where the user might look in the document."
}

func keywordUserPrompt(context, question, previousAnswer string) string {
	previousAnswerText := ""
	if previousAnswer != "" {
		previousAnswerText = "\n\nPrevious answer: " + previousAnswer
	}
	return "Document context:\n" + context + "\n\nQuestion: " + question + previousAnswerText + "\n\n" +
		"If the context does not answer the question, explain that the document doesn't mention it and suggest " +
		"what the user could do next (e.g., check the cover page, metadata, or another section)."
}

// buildMessages assembles the chat transcript sent to the model: the
// system prompt, the user and assistant turns from the tail of the
// history, and the grounded question. The window is applied to the raw
// history before role filtering, matching how much prior context each
// retrieval path carries.
func buildMessages(history []models.Message, window int, userPrompt string) []models.Message {
	msgs := []models.Message{{Role: models.RoleSystem, Content: systemPrompt}}
	if window > 0 && len(history) > window {
		history = history[len(history)-window:]
	}
	for _, m := range history {
		if m.Role == models.RoleUser || m.Role == models.RoleAssistant {
			msgs = append(msgs, m)
		}
	}
	return append(msgs, models.Message{Role: models.RoleUser, Content: userPrompt})
}
