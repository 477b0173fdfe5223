package indexer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hyperjump/kotae/internal/chunker"
	"github.com/hyperjump/kotae/internal/embedding"
	"github.com/hyperjump/kotae/internal/store"
	"go.uber.org/zap"
)

type failingEmbedder struct{}

func (failingEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("embedding service down")
}

func (failingEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errors.New("embedding service down")
}

func TestIndexDocument(t *testing.T) {
	st := store.NewStore()
	idx := NewIndexer(st, chunker.NewChunker(100, 20), embedding.NewMockEmbedder(8), zap.NewNop())
	id := st.Start()

	text := strings.Repeat("alpha bravo charlie delta. ", 20)
	count, indexed := idx.IndexDocument(context.Background(), id, text)
	if count == 0 {
		t.Fatal("expected chunks")
	}
	if !indexed {
		t.Error("expected indexed=true with working embedder")
	}

	chunks, vectors := st.Document(id)
	if len(chunks) != count {
		t.Errorf("stored %d chunks, reported %d", len(chunks), count)
	}
	if len(vectors) != len(chunks) {
		t.Errorf("got %d vectors for %d chunks", len(vectors), len(chunks))
	}

	_, docs, _ := st.Stats()
	if docs != 1 {
		t.Errorf("documents indexed = %d, want 1", docs)
	}
}

func TestIndexDocument_EmbeddingFailure(t *testing.T) {
	st := store.NewStore()
	idx := NewIndexer(st, chunker.NewChunker(100, 20), failingEmbedder{}, zap.NewNop())
	id := st.Start()

	count, indexed := idx.IndexDocument(context.Background(), id, "some document text to chunk")
	if count == 0 {
		t.Fatal("expected chunks even when embedding fails")
	}
	if indexed {
		t.Error("indexed should be false when embedding fails")
	}

	chunks, vectors := st.Document(id)
	if len(chunks) != count {
		t.Errorf("chunks should be stored without vectors, got %d", len(chunks))
	}
	if vectors != nil {
		t.Errorf("vectors should be nil, got %d", len(vectors))
	}

	_, docs, _ := st.Stats()
	if docs != 0 {
		t.Errorf("unembedded document must not count as indexed, got %d", docs)
	}
}

func TestIndexDocument_EmptyText(t *testing.T) {
	st := store.NewStore()
	idx := NewIndexer(st, chunker.NewChunker(100, 20), embedding.NewMockEmbedder(8), zap.NewNop())
	id := st.Start()

	count, indexed := idx.IndexDocument(context.Background(), id, "")
	if count != 0 || indexed {
		t.Errorf("empty text: count=%d indexed=%v", count, indexed)
	}
}

func TestIndexDocument_ReplacesPrevious(t *testing.T) {
	st := store.NewStore()
	idx := NewIndexer(st, chunker.NewChunker(100, 20), embedding.NewMockEmbedder(8), zap.NewNop())
	id := st.Start()

	idx.IndexDocument(context.Background(), id, strings.Repeat("first document. ", 30))
	second := "second document, short enough for one chunk."
	count, _ := idx.IndexDocument(context.Background(), id, second)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	chunks, _ := st.Document(id)
	if len(chunks) != 1 || !strings.Contains(chunks[0], "second document") {
		t.Errorf("old document not replaced: %q", chunks)
	}
}
