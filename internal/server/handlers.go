package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/hyperjump/kotae/internal/extract"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/pkg/utils"
	"go.uber.org/zap"
)

// maxUploadBytes caps how much of a multipart upload is held in memory.
const maxUploadBytes = 32 << 20

func (s *Server) handleInitConversation(w http.ResponseWriter, r *http.Request) {
	id := s.store.Start()
	s.logger.Debug("conversation started", zap.String("conversation_id", id))
	s.respondJSON(w, http.StatusCreated, models.ConversationInitResponse{ConversationID: id})
}

func (s *Server) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read file")
		return
	}

	conversationID := r.FormValue("conversation_id")
	if conversationID == "" {
		conversationID = s.store.Start()
	} else {
		s.store.Ensure(conversationID)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	text, pages, err := s.extractor.ExtractBytes(content, ext)
	if err != nil {
		s.logger.Error("text extraction failed",
			zap.String("filename", header.Filename), zap.Error(err))
		s.respondError(w, http.StatusBadRequest, "failed to extract text from document")
		return
	}

	meta := extract.Metadata(header.Filename, text, pages)
	chunkCount, indexed := s.indexer.IndexDocument(r.Context(), conversationID, text)
	s.logger.Info("document uploaded",
		zap.String("conversation_id", conversationID),
		zap.String("filename", meta.Filename),
		zap.Int("words", meta.WordCount),
		zap.Int("chunks", chunkCount),
		zap.Bool("indexed", indexed))

	s.store.AppendMessage(conversationID, models.RoleSystem,
		fmt.Sprintf("Document '%s' uploaded (%d words). Ready for questions.", meta.Filename, meta.WordCount))

	s.respondJSON(w, http.StatusOK, models.UploadResponse{
		ConversationID: conversationID,
		Message:        fmt.Sprintf("Document '%s' uploaded successfully. You can now ask questions about it.", meta.Filename),
		Metadata:       meta,
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ConversationID == "" {
		s.respondError(w, http.StatusBadRequest, "conversation_id is required")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		s.respondError(w, http.StatusBadRequest, "question is required")
		return
	}
	s.logger.Debug("chat request",
		zap.String("conversation_id", req.ConversationID),
		zap.String("question", utils.Truncate(req.Question, 80)))

	response := s.engine.Ask(r.Context(), req.ConversationID, req.Question)
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	conversations, documents, questions := s.store.Stats()
	s.respondJSON(w, http.StatusOK, models.Metrics{
		TotalConversations: conversations,
		DocumentsIndexed:   documents,
		TotalQuestions:     questions,
		GeneratedAt:        time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "kotae"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
