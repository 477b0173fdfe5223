// Package keyword provides lexical fallback search over document chunks,
// used when semantic search is unavailable or finds nothing.
package keyword

import (
	"sort"
	"strings"
)

// Scored is a chunk with its normalized lexical-overlap score.
type Scored struct {
	Chunk string
	Score float64
}

// Search scores each chunk by how many query words it contains and
// returns up to topK chunks with a positive score, ordered by descending
// raw score. Matching is substring containment on the lower-cased chunk,
// not token-exact: a query word that is a substring of a longer word
// still counts. Returned scores are normalized by the maximum raw score
// over all scored chunks, so they lie in (0, 1].
func Search(question string, chunks []string, topK int) []Scored {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(question)) {
		words[w] = struct{}{}
	}

	type rawScored struct {
		score int
		chunk string
	}
	var scored []rawScored
	for _, chunk := range chunks {
		chunkLower := strings.ToLower(chunk)
		score := 0
		for w := range words {
			if strings.Contains(chunkLower, w) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, rawScored{score: score, chunk: chunk})
		}
	}
	if len(scored) == 0 {
		return nil
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	maxScore := scored[0].score
	if topK > len(scored) {
		topK = len(scored)
	}
	results := make([]Scored, 0, topK)
	for _, s := range scored[:topK] {
		results = append(results, Scored{Chunk: s.chunk, Score: float64(s.score) / float64(maxScore)})
	}
	return results
}
