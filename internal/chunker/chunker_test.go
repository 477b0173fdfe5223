package chunker

import (
	"strings"
	"testing"
)

func TestChunk_ShortInput(t *testing.T) {
	c := NewChunker(500, 100)
	chunks := c.Chunk("  A short document.  ")
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "A short document." {
		t.Errorf("chunk=%q", chunks[0])
	}
}

func TestChunk_Empty(t *testing.T) {
	c := NewChunker(500, 100)
	if chunks := c.Chunk(""); chunks != nil {
		t.Errorf("empty input should return nil, got %v", chunks)
	}
	if chunks := c.Chunk("\n\n  \n\n"); chunks != nil {
		t.Errorf("whitespace input should return nil, got %v", chunks)
	}
}

func TestChunk_ParagraphAccumulation(t *testing.T) {
	paraA := strings.Repeat("alpha ", 10)  // ~60 chars
	paraB := strings.Repeat("bravo ", 10)  // ~60 chars
	paraC := strings.Repeat("charlie ", 20) // ~160 chars, forces a flush at size 130
	c := NewChunker(130, 0)
	chunks := c.Chunk(paraA + "\n\n" + paraB + "\n\n" + paraC)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	if !strings.Contains(chunks[0], "alpha") || !strings.Contains(chunks[0], "bravo") {
		t.Errorf("first chunk should hold both small paragraphs: %q", chunks[0])
	}
}

func TestChunk_SentenceSplit(t *testing.T) {
	// One paragraph well over target size, with sentence boundaries.
	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("This sentence pads the paragraph out to force sentence level splitting. ")
	}
	c := NewChunker(200, 0)
	chunks := c.Chunk(b.String())
	if len(chunks) < 2 {
		t.Fatalf("expected sentence-split chunks, got %d", len(chunks))
	}
	for i, ch := range chunks {
		if strings.TrimSpace(ch) == "" {
			t.Errorf("chunk %d is blank", i)
		}
	}
}

func TestChunk_NoBlankLines(t *testing.T) {
	// A document with no blank lines is one paragraph and falls into
	// sentence splitting when oversized.
	text := strings.Repeat("One fact here. ", 50)
	c := NewChunker(100, 0)
	chunks := c.Chunk(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
}

func TestChunk_OverlapInjection(t *testing.T) {
	paraA := "alpha bravo charlie delta echo foxtrot golf hotel india juliett"
	paraB := "kilo lima mike november oscar papa quebec romeo sierra tango"
	c := NewChunker(65, 30)
	chunks := c.Chunk(paraA + "\n\n" + paraB)
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	// Second chunk starts with the last overlap/10 = 3 words of the first.
	if !strings.HasPrefix(chunks[1], "hotel india juliett") {
		t.Errorf("missing word-aligned overlap prefix: %q", chunks[1])
	}
	if !strings.HasSuffix(chunks[1], "tango") {
		t.Errorf("overlap should prepend, not replace: %q", chunks[1])
	}
}

func TestChunk_OverlapCharFallback(t *testing.T) {
	// Previous chunk has fewer words than overlap/10, so the character
	// tail is used instead.
	c := NewChunker(12, 80)
	chunks := c.Chunk("first\n\nsecond\n\nthird")
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		if !strings.Contains(chunks[i], chunks[i-1][:4]) {
			t.Errorf("chunk %d should carry tail of its predecessor: %q", i, chunks[i])
		}
	}
}

func TestChunk_NoContentDropped(t *testing.T) {
	text := "The first paragraph talks about apples.\n\n" +
		"The second paragraph talks about oranges.\n\n" +
		"The third paragraph talks about pears."
	c := NewChunker(60, 20)
	chunks := c.Chunk(text)
	joined := strings.Join(chunks, " ")
	for _, word := range strings.Fields(text) {
		if !strings.Contains(joined, word) {
			t.Errorf("word %q missing from chunk output", word)
		}
	}
}
