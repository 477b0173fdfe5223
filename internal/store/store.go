// Package store keeps per-conversation state: message history, the
// uploaded document's chunks, and their embeddings. State lives for the
// process lifetime; there is no persistence layer.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hyperjump/kotae/internal/models"
)

// conversation is the mutable state behind one conversation ID. Its
// mutex serializes mutation so a reader sees either the old or the new
// document, never a half-updated mix.
type conversation struct {
	mu           sync.Mutex
	history      []models.Message
	documentText string
	chunks       []string
	vectors      [][]float32
}

// Store maps conversation IDs to their state. Operations on different
// conversations do not block each other; the store-level lock only
// guards the map itself.
type Store struct {
	mu            sync.RWMutex
	conversations map[string]*conversation

	countersMu       sync.Mutex
	documentsIndexed int
	questions        int
}

// NewStore creates an empty conversation store.
func NewStore() *Store {
	return &Store{conversations: make(map[string]*conversation)}
}

// Start creates a new conversation and returns its identifier.
// Identifiers are opaque and never reused.
func (s *Store) Start() string {
	id := uuid.New().String()
	s.mu.Lock()
	s.conversations[id] = &conversation{}
	s.mu.Unlock()
	return id
}

// Ensure lazily creates the conversation if it does not exist and
// returns the same identifier. Calling it on an existing conversation is
// a no-op.
func (s *Store) Ensure(id string) string {
	s.getOrCreate(id)
	return id
}

// AppendMessage appends a message to the conversation's history,
// creating the conversation if needed. User messages count toward the
// question metric.
func (s *Store) AppendMessage(id, role, content string) {
	c := s.getOrCreate(id)
	c.mu.Lock()
	c.history = append(c.history, models.Message{Role: role, Content: content})
	c.mu.Unlock()
	if role == models.RoleUser {
		s.countersMu.Lock()
		s.questions++
		s.countersMu.Unlock()
	}
}

// History returns a copy of the conversation's message history, oldest
// first. Unknown identifiers yield an empty history, not an error.
func (s *Store) History(id string) []models.Message {
	c := s.get(id)
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Message, len(c.history))
	copy(out, c.history)
	return out
}

// SetDocument replaces the conversation's document text, chunks, and
// chunk vectors in one step. A nil vectors slice records that embedding
// failed or was skipped; such uploads keep their chunks (keyword search
// still works) but do not count as indexed. A non-nil vectors slice must
// align with chunks one-to-one; a mismatch is a programming defect and
// panics rather than being masked.
func (s *Store) SetDocument(id, text string, chunks []string, vectors [][]float32) {
	if vectors != nil && len(vectors) != len(chunks) {
		panic(fmt.Sprintf("store: %d chunk vectors for %d chunks", len(vectors), len(chunks)))
	}
	c := s.getOrCreate(id)
	c.mu.Lock()
	c.documentText = text
	c.chunks = chunks
	c.vectors = vectors
	c.mu.Unlock()
	if vectors != nil && len(chunks) > 0 {
		s.countersMu.Lock()
		s.documentsIndexed++
		s.countersMu.Unlock()
	}
}

// Document returns the conversation's chunks and chunk vectors. Vectors
// are nil when embedding was unavailable for the stored document, which
// callers must treat as "semantic search unavailable", not "empty
// document". Unknown identifiers yield empty results.
func (s *Store) Document(id string) (chunks []string, vectors [][]float32) {
	c := s.get(id)
	if c == nil {
		return nil, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chunks, c.vectors
}

// Stats returns aggregate usage counters: total conversations, documents
// indexed with embeddings, and total user questions.
func (s *Store) Stats() (conversations, documentsIndexed, questions int) {
	s.mu.RLock()
	conversations = len(s.conversations)
	s.mu.RUnlock()
	s.countersMu.Lock()
	documentsIndexed = s.documentsIndexed
	questions = s.questions
	s.countersMu.Unlock()
	return conversations, documentsIndexed, questions
}

func (s *Store) get(id string) *conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conversations[id]
}

func (s *Store) getOrCreate(id string) *conversation {
	s.mu.RLock()
	c := s.conversations[id]
	s.mu.RUnlock()
	if c != nil {
		return c
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if c = s.conversations[id]; c == nil {
		c = &conversation{}
		s.conversations[id] = c
	}
	return c
}
