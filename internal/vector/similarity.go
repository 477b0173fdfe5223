// Package vector provides cosine similarity search over chunk embeddings.
package vector

import "math"

// epsilon keeps the cosine denominator nonzero for degenerate zero vectors.
const epsilon = 1e-10

// CosineSimilarity returns the cosine similarity between two vectors.
// Zero vectors score near zero rather than dividing by zero.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + epsilon)
}
