package models

// ChatRequest is a question asked within an existing conversation.
type ChatRequest struct {
	ConversationID string `json:"conversation_id"`
	Question       string `json:"question"`
}

// Evidence is a retrieved document excerpt used to ground an answer.
// Similarity is a cosine score on the semantic path and a normalized
// lexical-overlap score on the keyword path; the two scales are not
// comparable and never appear together in one response.
type Evidence struct {
	ExcerptID  int     `json:"excerpt_id"`
	Content    string  `json:"content"`
	Similarity float64 `json:"similarity"`
}

// ChatResponse is the answer to a question, with the evidence that grounds it.
type ChatResponse struct {
	ConversationID string     `json:"conversation_id"`
	Answer         string     `json:"answer"`
	KeyPoints      []string   `json:"key_points"`
	Evidence       []Evidence `json:"evidence"`
}

// ConversationInitResponse is returned when a new conversation is started.
type ConversationInitResponse struct {
	ConversationID string `json:"conversation_id"`
}
