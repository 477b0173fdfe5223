// Package rag orchestrates retrieval-augmented answering: it picks the
// retrieval path for a question, builds a grounded prompt, and degrades
// to excerpt-only answers when generation is unavailable.
package rag

import (
	"context"
	"strings"

	"github.com/hyperjump/kotae/internal/config"
	"github.com/hyperjump/kotae/internal/embedding"
	"github.com/hyperjump/kotae/internal/keyword"
	"github.com/hyperjump/kotae/internal/llm"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/internal/store"
	"github.com/hyperjump/kotae/internal/vector"
	"go.uber.org/zap"
)

const (
	generationTemperature = 0.3
	semanticMaxTokens     = 1000
	keywordMaxTokens      = 800
)

const (
	noDocumentAnswer      = "No document has been uploaded yet. Please upload a document first."
	noMatchAnswer         = "I couldn't find relevant information in the document related to that question."
	keywordDegradedAnswer = "I found relevant information but couldn't process it. Please check your API configuration."
)

// Engine answers questions against a conversation's indexed document.
type Engine struct {
	store    *store.Store
	embedder embedding.Embedder
	llm      llm.Client
	cfg      *config.RetrievalConfig
	logger   *zap.Logger
}

// NewEngine creates an engine with the given dependencies.
func NewEngine(st *store.Store, emb embedding.Embedder, client llm.Client, cfg *config.RetrievalConfig, logger *zap.Logger) *Engine {
	return &Engine{store: st, embedder: emb, llm: client, cfg: cfg, logger: logger}
}

// Ask records the question, answers it through the best available
// retrieval path, and records the answer. It always produces an answer:
// retrieval and generation failures surface as degraded answers, never
// as errors.
func (e *Engine) Ask(ctx context.Context, conversationID, question string) *models.ChatResponse {
	e.store.AppendMessage(conversationID, models.RoleUser, question)
	history := e.store.History(conversationID)
	previousAnswer := lastAssistantAnswer(history)

	answer, evidence := e.answer(ctx, conversationID, question, history, previousAnswer)

	e.store.AppendMessage(conversationID, models.RoleAssistant, answer)

	return &models.ChatResponse{
		ConversationID: conversationID,
		Answer:         answer,
		KeyPoints:      ExtractKeyPoints(answer),
		Evidence:       evidence,
	}
}

func (e *Engine) answer(ctx context.Context, conversationID, question string, history []models.Message, previousAnswer string) (string, []models.Evidence) {
	chunks, vectors := e.store.Document(conversationID)
	if len(chunks) == 0 {
		return noDocumentAnswer, nil
	}

	if vectors == nil {
		e.logger.Warn("chunk vectors missing, falling back to keyword search",
			zap.String("conversation_id", conversationID))
		return e.keywordAnswer(ctx, question, chunks, history, previousAnswer)
	}

	queryVector, err := e.embedder.Embed(ctx, question)
	if err != nil {
		e.logger.Error("query embedding failed, falling back to keyword search",
			zap.String("conversation_id", conversationID), zap.Error(err))
		return e.keywordAnswer(ctx, question, chunks, history, previousAnswer)
	}

	scored := vector.Search(queryVector, vectors, chunks, e.cfg.TopK, e.cfg.MinSimilarity)
	if len(scored) == 0 {
		e.logger.Info("semantic search returned no chunks, using keyword fallback",
			zap.String("conversation_id", conversationID))
		return e.keywordAnswer(ctx, question, chunks, history, previousAnswer)
	}

	prompt := semanticUserPrompt(semanticContext(scored), question, previousAnswer)
	messages := buildMessages(history, e.cfg.SemanticHistoryWindow, prompt)

	answer, err := e.llm.ChatCompletion(ctx, messages, generationTemperature, semanticMaxTokens)
	if err != nil {
		e.logger.Error("generation failed, answering with raw excerpts",
			zap.String("conversation_id", conversationID),
			zap.String("kind", string(llm.KindOf(err))),
			zap.Error(err))
		answer = degradedSemanticAnswer(scored)
	}
	return answer, semanticEvidence(scored)
}

// keywordAnswer is the lexical fallback path, used whenever vectors are
// missing or semantic search cannot run.
func (e *Engine) keywordAnswer(ctx context.Context, question string, chunks []string, history []models.Message, previousAnswer string) (string, []models.Evidence) {
	scored := keyword.Search(question, chunks, e.cfg.KeywordTopK)
	if len(scored) == 0 {
		if keyword.IsFollowUp(question) {
			recent := previousAnswer
			if recent == "" {
				recent = "I have already shared all the details the document contains so far."
			}
			answer := "I've already shared the available insights from the document. Previous answer:\n" +
				recent +
				"\n\nIf you need something specific, try asking about a particular section or topic."
			return answer, nil
		}
		return noMatchAnswer, nil
	}

	prompt := keywordUserPrompt(keywordContext(scored), question, previousAnswer)
	messages := buildMessages(history, e.cfg.KeywordHistoryWindow, prompt)

	answer, err := e.llm.ChatCompletion(ctx, messages, generationTemperature, keywordMaxTokens)
	if err != nil {
		e.logger.Error("generation failed on keyword path",
			zap.String("kind", string(llm.KindOf(err))), zap.Error(err))
		answer = keywordDegradedAnswer
	}
	return answer, keywordEvidence(scored)
}

// degradedSemanticAnswer surfaces the two most relevant excerpts when
// the model cannot be reached.
func degradedSemanticAnswer(scored []vector.Scored) string {
	top := scored
	if len(top) > 2 {
		top = top[:2]
	}
	parts := make([]string, len(top))
	for i, s := range top {
		parts[i] = s.Chunk
	}
	return "I found relevant information but couldn't process it with AI. " +
		"Here are the most relevant excerpts:\n\n" + strings.Join(parts, "\n\n")
}

func semanticEvidence(scored []vector.Scored) []models.Evidence {
	evidence := make([]models.Evidence, len(scored))
	for i, s := range scored {
		evidence[i] = models.Evidence{ExcerptID: i + 1, Content: s.Chunk, Similarity: s.Score}
	}
	return evidence
}

func keywordEvidence(scored []keyword.Scored) []models.Evidence {
	evidence := make([]models.Evidence, len(scored))
	for i, s := range scored {
		evidence[i] = models.Evidence{ExcerptID: i + 1, Content: s.Chunk, Similarity: s.Score}
	}
	return evidence
}

func lastAssistantAnswer(history []models.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == models.RoleAssistant {
			return history[i].Content
		}
	}
	return ""
}
