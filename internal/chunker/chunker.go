// Package chunker splits document text into overlapping, boundary-aware chunks.
package chunker

import "strings"

// Chunker splits text into chunks that respect paragraph and sentence
// boundaries, sized for embedding, with word-aligned overlap between
// adjacent chunks.
type Chunker struct {
	targetSize int
	overlap    int
}

// NewChunker creates a chunker with the given target size and overlap (in characters).
func NewChunker(targetSize, overlap int) *Chunker {
	if targetSize <= 0 {
		targetSize = 500
	}
	if overlap < 0 {
		overlap = 0
	}
	return &Chunker{targetSize: targetSize, overlap: overlap}
}

// Chunk splits text into chunks. Paragraphs (blank-line separated) are
// accumulated greedily while they fit under the target size; a paragraph
// that alone exceeds the target size is split at sentence boundaries.
// Overlap is injected afterwards, so a chunk may end up slightly larger
// than the target size. Returns nil for empty input.
func (c *Chunker) Chunk(text string) []string {
	var paragraphs []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	var chunks []string
	current := ""
	for _, para := range paragraphs {
		if len(current)+len(para) < c.targetSize {
			if current == "" {
				current = para
			} else {
				current += "\n\n" + para
			}
			continue
		}
		if current != "" {
			chunks = append(chunks, strings.TrimSpace(current))
		}
		if len(para) > c.targetSize {
			current = c.splitSentences(para, &chunks)
		} else {
			current = para
		}
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}
	return c.injectOverlap(chunks)
}

// splitSentences greedily accumulates sentences of an oversized paragraph
// into chunks. Completed chunks are appended to chunks; the trailing
// partial chunk is returned so the caller can keep accumulating into it.
func (c *Chunker) splitSentences(para string, chunks *[]string) string {
	sentences := strings.Split(para, ". ")
	current := ""
	for _, sentence := range sentences {
		if len(current)+len(sentence) < c.targetSize {
			if current == "" {
				current = sentence
			} else {
				current += ". " + sentence
			}
			continue
		}
		if current != "" {
			*chunks = append(*chunks, strings.TrimSpace(current)+".")
		}
		current = sentence
	}
	return current
}

// injectOverlap prepends a tail of each chunk's predecessor so adjacent
// chunks share context: the predecessor's last overlap/10 words, or its
// last overlap characters when it has fewer words than that.
func (c *Chunker) injectOverlap(chunks []string) []string {
	if len(chunks) < 2 || c.overlap <= 0 {
		return chunks
	}
	out := make([]string, 0, len(chunks))
	out = append(out, chunks[0])
	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1]
		words := strings.Fields(prev)
		n := c.overlap / 10
		var tail string
		if len(words) > n {
			tail = strings.Join(words[len(words)-n:], " ")
		} else {
			tail = lastChars(prev, c.overlap)
		}
		out = append(out, strings.TrimSpace(tail+" "+chunks[i]))
	}
	return out
}

// lastChars returns the last n characters of s, rune-aligned.
func lastChars(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}
