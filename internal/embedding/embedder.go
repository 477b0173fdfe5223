// Package embedding provides text embedding via a remote embedding
// service, with caching.
package embedding

import "context"

// Embedder produces vector embeddings for text. Implementations may
// fail (model or service unavailable); callers are expected to catch
// the error and degrade to lexical search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}
