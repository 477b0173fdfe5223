// Package models defines core data structures for conversations, documents, and chat responses.
package models

// Message roles in a conversation history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single turn in a conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Metrics reports aggregate usage counters for the admin view.
type Metrics struct {
	TotalConversations int    `json:"total_conversations"`
	DocumentsIndexed   int    `json:"documents_indexed"`
	TotalQuestions     int    `json:"total_questions"`
	GeneratedAt        string `json:"generated_at"`
}
