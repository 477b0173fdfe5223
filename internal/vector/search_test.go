package vector

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	if got := CosineSimilarity([]float32{1, 0}, []float32{1, 0}); math.Abs(got-1) > 1e-6 {
		t.Errorf("identical vectors: got %f", got)
	}
	if got := CosineSimilarity([]float32{1, 0}, []float32{0, 1}); math.Abs(got) > 1e-6 {
		t.Errorf("orthogonal vectors: got %f", got)
	}
	if got := CosineSimilarity([]float32{0, 0}, []float32{1, 0}); got != 0 {
		t.Errorf("zero vector should score 0, got %f", got)
	}
	if got := CosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}); got != 0 {
		t.Errorf("mismatched lengths should score 0, got %f", got)
	}
}

func TestSearch_RanksByScore(t *testing.T) {
	vectors := [][]float32{
		{0, 1},
		{1, 0},
		{0.9, 0.1},
	}
	chunks := []string{"orthogonal", "exact", "close"}
	results := Search([]float32{1, 0}, vectors, chunks, 2, 0.2)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Chunk != "exact" || results[1].Chunk != "close" {
		t.Errorf("ranking wrong: %v", results)
	}
	if results[0].Score < results[1].Score {
		t.Errorf("scores not descending: %f < %f", results[0].Score, results[1].Score)
	}
}

func TestSearch_NeverEmptyBelowThreshold(t *testing.T) {
	vectors := [][]float32{{0, 1}, {0.1, 0.9}}
	chunks := []string{"a", "b"}
	// Nothing clears 0.99, but the best-effort fallback still returns results.
	results := Search([]float32{1, 0}, vectors, chunks, 4, 0.99)
	if len(results) != 2 {
		t.Fatalf("expected fallback results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("scores not non-increasing at %d", i)
		}
	}
}

func TestSearch_EmptyVectors(t *testing.T) {
	if results := Search([]float32{1, 0}, nil, []string{"a"}, 3, 0.2); results != nil {
		t.Errorf("nil vectors should return nil, got %v", results)
	}
	if results := Search([]float32{1, 0}, [][]float32{}, []string{"a"}, 3, 0.2); results != nil {
		t.Errorf("empty vectors should return nil, got %v", results)
	}
}

func TestSearch_TruncatesToTopK(t *testing.T) {
	vectors := [][]float32{{1, 0}, {0.9, 0.1}, {0.8, 0.2}, {0.7, 0.3}}
	chunks := []string{"a", "b", "c", "d"}
	results := Search([]float32{1, 0}, vectors, chunks, 2, 0.0)
	if len(results) != 2 {
		t.Errorf("expected topK=2 results, got %d", len(results))
	}
}
