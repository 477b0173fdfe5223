package e2e

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hyperjump/kotae/internal/chunker"
	"github.com/hyperjump/kotae/internal/config"
	"github.com/hyperjump/kotae/internal/embedding"
	"github.com/hyperjump/kotae/internal/extract"
	"github.com/hyperjump/kotae/internal/indexer"
	"github.com/hyperjump/kotae/internal/llm"
	"github.com/hyperjump/kotae/internal/models"
	"github.com/hyperjump/kotae/internal/rag"
	"github.com/hyperjump/kotae/internal/server"
	"github.com/hyperjump/kotae/internal/store"
	"go.uber.org/zap"
)

const e2eDimensions = 16

// newE2EServer wires the full stack with mock embeddings and the offline
// generation fallback, so the flow runs without external services.
func newE2EServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.Generation.APIKeyEnv = "KOTAE_E2E_NO_KEY"

	st := store.NewStore()
	embedder := embedding.NewCachedEmbedder(embedding.NewMockEmbedder(e2eDimensions), 100)
	ch := chunker.NewChunker(cfg.Retrieval.ChunkSize, cfg.Retrieval.ChunkOverlap)
	idx := indexer.NewIndexer(st, ch, embedder, zap.NewNop())
	client := llm.NewGroqClient(&cfg.Generation, zap.NewNop())
	engine := rag.NewEngine(st, embedder, client, &cfg.Retrieval, zap.NewNop())
	srv := server.NewServer(engine, idx, st, extract.NewExtractor(), &cfg.Server, zap.NewNop())

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func uploadFile(t *testing.T, baseURL, filename string, content []byte, conversationID string) models.UploadResponse {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if conversationID != "" {
		if err := mw.WriteField("conversation_id", conversationID); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(baseURL+"/api/v1/documents", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload status: %d", resp.StatusCode)
	}
	var out models.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func ask(t *testing.T, baseURL, conversationID, question string) models.ChatResponse {
	t.Helper()
	body, _ := json.Marshal(models.ChatRequest{ConversationID: conversationID, Question: question})
	resp, err := http.Post(baseURL+"/api/v1/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("chat status: %d", resp.StatusCode)
	}
	var out models.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestE2E_UploadAndChatFlow(t *testing.T) {
	ts := newE2EServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/conversations", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	var init models.ConversationInitResponse
	if err := json.NewDecoder(resp.Body).Decode(&init); err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if init.ConversationID == "" {
		t.Fatal("empty conversation id")
	}

	doc := "The quarterly report shows revenue growth of ten percent.\n\n" +
		"Hiring slowed in the second half because of budget limits."
	upload := uploadFile(t, ts.URL, "report.txt", []byte(doc), init.ConversationID)
	if upload.ConversationID != init.ConversationID {
		t.Errorf("conversation id changed: %q", upload.ConversationID)
	}
	if upload.Metadata.FileType != "txt" || upload.Metadata.WordCount == 0 {
		t.Errorf("metadata: %+v", upload.Metadata)
	}

	chat := ask(t, ts.URL, init.ConversationID, "What happened to revenue this quarter?")
	if !strings.Contains(chat.Answer, "offline fallback mode") {
		t.Errorf("expected offline generation answer, got %q", chat.Answer)
	}
	if len(chat.Evidence) == 0 {
		t.Error("expected grounding evidence")
	}
	if len(chat.KeyPoints) == 0 {
		t.Error("expected key points")
	}

	var metrics models.Metrics
	mresp, err := http.Get(ts.URL + "/api/v1/metrics")
	if err != nil {
		t.Fatal(err)
	}
	if err := json.NewDecoder(mresp.Body).Decode(&metrics); err != nil {
		t.Fatal(err)
	}
	mresp.Body.Close()
	if metrics.TotalConversations != 1 || metrics.DocumentsIndexed != 1 || metrics.TotalQuestions != 1 {
		t.Errorf("metrics: %+v", metrics)
	}
}

func TestE2E_XlsxUploadStartsConversation(t *testing.T) {
	ts := newE2EServer(t)

	content, err := MinimalXlsx("inventory levels", "supplier contracts")
	if err != nil {
		t.Fatal(err)
	}
	upload := uploadFile(t, ts.URL, "data.xlsx", content, "")
	if upload.ConversationID == "" {
		t.Fatal("upload should start a conversation")
	}
	if upload.Metadata.FileType != "xlsx" {
		t.Errorf("file_type: %q", upload.Metadata.FileType)
	}
	if upload.Metadata.WordCount == 0 {
		t.Error("no words extracted from workbook")
	}

	chat := ask(t, ts.URL, upload.ConversationID, "What do the sheets say about inventory?")
	if len(chat.Evidence) == 0 {
		t.Error("expected evidence from spreadsheet content")
	}
}

func TestE2E_SecondUploadReplacesDocument(t *testing.T) {
	ts := newE2EServer(t)

	first := uploadFile(t, ts.URL, "a.txt", []byte("alpha document about gardening tools"), "")
	id := first.ConversationID
	uploadFile(t, ts.URL, "b.txt", []byte("bravo document about sailing routes"), id)

	chat := ask(t, ts.URL, id, "Tell me about sailing routes in detail")
	for _, ev := range chat.Evidence {
		if strings.Contains(ev.Content, "gardening") {
			t.Errorf("evidence still references the replaced document: %q", ev.Content)
		}
	}

	var metrics models.Metrics
	mresp, err := http.Get(ts.URL + "/api/v1/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer mresp.Body.Close()
	if err := json.NewDecoder(mresp.Body).Decode(&metrics); err != nil {
		t.Fatal(err)
	}
	if metrics.DocumentsIndexed != 2 {
		t.Errorf("documents_indexed: %d", metrics.DocumentsIndexed)
	}
}
