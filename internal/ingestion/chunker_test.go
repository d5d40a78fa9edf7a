package ingestion

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewChunker_Defaults(t *testing.T) {
	c := NewChunker(ChunkerConfig{})

	if c.config.TargetSize != 200 {
		t.Errorf("expected default TargetSize 200, got %d", c.config.TargetSize)
	}
	if c.config.MaxSize != 400 {
		t.Errorf("expected default MaxSize 400, got %d", c.config.MaxSize)
	}
	if c.config.Method != MethodSentence {
		t.Errorf("expected default Method sentence, got %s", c.config.Method)
	}
}

func TestChunker_EmptyContent(t *testing.T) {
	c := NewChunker(ChunkerConfig{Method: MethodFixed})

	if chunks := c.Chunk(""); chunks != nil {
		t.Errorf("expected nil for empty content, got %v", chunks)
	}
	if chunks := c.Chunk("  \n\t "); chunks != nil {
		t.Errorf("expected nil for whitespace content, got %v", chunks)
	}
}

func TestChunker_FixedMethod(t *testing.T) {
	c := NewChunker(ChunkerConfig{Method: MethodFixed, TargetSize: 10, MaxSize: 20, Overlap: 2})

	words := make([]string, 25)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	chunks := c.Chunk(strings.Join(words, " "))

	// Windows start at 0, 8, 16 and the last one reaches the end.
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, ch := range chunks {
		if ch.Index != i {
			t.Errorf("chunk %d has index %d", i, ch.Index)
		}
	}
	if !strings.HasPrefix(chunks[1].Content, "w8 w9 ") {
		t.Errorf("expected overlap of two words, got %q", chunks[1].Content)
	}
	if !strings.HasSuffix(chunks[2].Content, "w24") || chunks[2].WordCount != 9 {
		t.Errorf("unexpected last chunk %+v", chunks[2])
	}
}

func TestChunker_FixedOverlapNotSmallerThanTarget(t *testing.T) {
	c := NewChunker(ChunkerConfig{Method: MethodFixed, TargetSize: 4, Overlap: 4})
	chunks := c.Chunk("a b c d e f")
	if len(chunks) != 2 {
		t.Fatalf("expected step to fall back to half the target, got %d chunks", len(chunks))
	}
}

func TestChunker_SentenceMethod(t *testing.T) {
	c := NewChunker(ChunkerConfig{Method: MethodSentence, TargetSize: 8, MaxSize: 12, Overlap: 0})

	content := "Plants need light. They also need water to grow. " +
		"Roots absorb minerals from the soil. Leaves make food. " +
		"Flowers attract bees."
	chunks := c.Chunk(content)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	var rebuilt []string
	for _, ch := range chunks {
		if ch.WordCount > 12 {
			t.Errorf("chunk %d exceeds max size: %d words", ch.Index, ch.WordCount)
		}
		if !strings.HasSuffix(ch.Content, ".") {
			t.Errorf("chunk %d does not end on a sentence boundary: %q", ch.Index, ch.Content)
		}
		rebuilt = append(rebuilt, ch.Content)
	}
	if strings.Join(rebuilt, " ") != content {
		t.Errorf("without overlap the chunks should rebuild the text\n got %q", strings.Join(rebuilt, " "))
	}
}

func TestChunker_SentenceOverlap(t *testing.T) {
	c := NewChunker(ChunkerConfig{Method: MethodSentence, TargetSize: 6, MaxSize: 20, Overlap: 2})

	chunks := c.Chunk("One two three. Four five six. Seven eight nine. Ten eleven twelve.")
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d: %+v", len(chunks), chunks)
	}
	if !strings.HasPrefix(chunks[1].Content, "Four five six.") {
		t.Errorf("expected chunk 2 to repeat the previous sentence, got %q", chunks[1].Content)
	}
	if strings.Count(chunks[2].Content, "Ten eleven twelve.") != 1 {
		t.Errorf("unexpected last chunk %q", chunks[2].Content)
	}
}

func TestChunker_LongSentenceIsSplit(t *testing.T) {
	c := NewChunker(ChunkerConfig{Method: MethodSentence, TargetSize: 5, MaxSize: 10})

	long := strings.TrimSpace(strings.Repeat("word ", 23)) + "."
	chunks := c.Chunk("Short one. " + long)

	if chunks[0].Content != "Short one." {
		t.Errorf("expected the short sentence flushed first, got %q", chunks[0].Content)
	}
	var split int
	for i, ch := range chunks {
		if ch.Index != i {
			t.Errorf("chunk %d has index %d", i, ch.Index)
		}
		if ch.Split {
			split++
		}
	}
	if split != 5 {
		t.Errorf("expected 5 split chunks, got %d", split)
	}
}

func TestChunker_UnknownMethodFallsBack(t *testing.T) {
	c := NewChunker(ChunkerConfig{Method: "semantic", TargetSize: 3})
	texts := c.Texts("Alpha beta gamma. Delta epsilon zeta.")
	if len(texts) != 2 || texts[1] != "Delta epsilon zeta." {
		t.Fatalf("unexpected texts %q", texts)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("Dr. Smith arrived. Was it late?  Yes!\nIt was 3.5 hours, e.g. long")
	want := []string{"Dr. Smith arrived.", "Was it late?", "Yes!", "It was 3.5 hours, e.g. long"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
