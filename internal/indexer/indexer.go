// Package indexer turns extracted document text into the per-conversation
// chunk and vector state the retrieval engine reads.
package indexer

import (
	"context"

	"github.com/hyperjump/kotae/internal/chunker"
	"github.com/hyperjump/kotae/internal/embedding"
	"github.com/hyperjump/kotae/internal/store"
	"go.uber.org/zap"
)

// Indexer chunks document text, embeds the chunks, and installs the result
// on a conversation.
type Indexer struct {
	store    *store.Store
	chunker  *chunker.Chunker
	embedder embedding.Embedder
	logger   *zap.Logger
}

// NewIndexer creates an indexer with the given dependencies.
func NewIndexer(st *store.Store, ch *chunker.Chunker, emb embedding.Embedder, logger *zap.Logger) *Indexer {
	return &Indexer{store: st, chunker: ch, embedder: emb, logger: logger}
}

// IndexDocument replaces the conversation's document with text. It returns
// the number of chunks produced and whether embeddings were computed for
// them. When the embedder fails the chunks are still stored, with no
// vectors, so keyword retrieval keeps working.
//
// Embedding happens before the store is touched, so a slow embedding
// service never blocks readers of the conversation.
func (idx *Indexer) IndexDocument(ctx context.Context, conversationID, text string) (chunkCount int, indexed bool) {
	chunks := idx.chunker.Chunk(text)
	if len(chunks) == 0 {
		idx.store.SetDocument(conversationID, text, nil, nil)
		return 0, false
	}

	vectors, err := idx.embedder.EmbedBatch(ctx, chunks)
	if err != nil {
		idx.logger.Warn("embedding failed, storing document without vectors",
			zap.String("conversation_id", conversationID),
			zap.Int("chunks", len(chunks)),
			zap.Error(err))
		idx.store.SetDocument(conversationID, text, chunks, nil)
		return len(chunks), false
	}

	idx.store.SetDocument(conversationID, text, chunks, vectors)
	idx.logger.Debug("document indexed",
		zap.String("conversation_id", conversationID),
		zap.Int("chunks", len(chunks)))
	return len(chunks), true
}
