package vector

import "sort"

// Scored is a chunk with its similarity score.
type Scored struct {
	Chunk string
	Score float64
}

// Search scores every chunk vector against the query by cosine similarity
// and returns up to topK chunks with score >= minSimilarity, ordered by
// descending score. When no chunk clears the threshold, the topK
// best-scoring chunks are returned anyway: best-effort grounding beats
// none, so the result is never empty while vectors exist. A nil or empty
// vectors slice returns nil immediately, which callers must read as
// "semantic search unavailable", not "no matches".
func Search(query []float32, vectors [][]float32, chunks []string, topK int, minSimilarity float64) []Scored {
	if len(vectors) == 0 || topK <= 0 {
		return nil
	}

	type scoredIndex struct {
		score float64
		index int
	}
	similarities := make([]float64, len(vectors))
	for i, v := range vectors {
		similarities[i] = CosineSimilarity(query, v)
	}

	scored := make([]scoredIndex, 0, len(vectors))
	for i, sim := range similarities {
		if sim >= minSimilarity {
			scored = append(scored, scoredIndex{score: sim, index: i})
		}
	}
	if len(scored) == 0 {
		for i, sim := range similarities {
			scored = append(scored, scoredIndex{score: sim, index: i})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	if topK > len(scored) {
		topK = len(scored)
	}
	results := make([]Scored, 0, topK)
	for _, s := range scored[:topK] {
		if s.index < len(chunks) {
			results = append(results, Scored{Chunk: chunks[s.index], Score: s.score})
		}
	}
	return results
}
