package ingestion

import (
	"strings"
	"unicode"
)

// Chunking methods.
const (
	MethodFixed    = "fixed"
	MethodSentence = "sentence"
)

// ChunkerConfig sizes are counted in words.
type ChunkerConfig struct {
	Method     string
	TargetSize int
	MaxSize    int
	Overlap    int
}

// Chunk is one piece of a document.
type Chunk struct {
	Content   string
	Index     int
	WordCount int
	// Split is set when a single over-long sentence had to be cut by words.
	Split bool
}

// Chunker splits a document into chunks.
type Chunker struct {
	config ChunkerConfig
}

// NewChunker creates a Chunker, filling in defaults for unset fields.
func NewChunker(config ChunkerConfig) *Chunker {
	if config.TargetSize <= 0 {
		config.TargetSize = 200
	}
	if config.MaxSize < config.TargetSize {
		config.MaxSize = config.TargetSize * 2
	}
	if config.Overlap < 0 {
		config.Overlap = 0
	}
	if config.Method == "" {
		config.Method = MethodSentence
	}
	return &Chunker{config: config}
}

// Chunk splits content with the configured method. Unknown methods fall
// back to sentence chunking. Blank content yields nil.
func (c *Chunker) Chunk(content string) []Chunk {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	switch c.config.Method {
	case MethodFixed:
		return c.chunkFixed(content)
	default:
		return c.chunkSentence(content)
	}
}

// Texts returns just the chunk contents, ready for batch processing.
func (c *Chunker) Texts(content string) []string {
	chunks := c.Chunk(content)
	texts := make([]string, len(chunks))
	for i, ch := range chunks {
		texts[i] = ch.Content
	}
	return texts
}

// chunkFixed emits windows of TargetSize words advancing by
// TargetSize-Overlap.
func (c *Chunker) chunkFixed(content string) []Chunk {
	return c.windows(strings.Fields(content), 0, false)
}

// windows cuts words into overlapping fixed windows, numbering from start.
func (c *Chunker) windows(words []string, start int, split bool) []Chunk {
	step := c.config.TargetSize - c.config.Overlap
	if step <= 0 {
		step = max(c.config.TargetSize/2, 1)
	}

	var chunks []Chunk
	for i := 0; i < len(words); i += step {
		end := min(i+c.config.TargetSize, len(words))
		chunks = append(chunks, Chunk{
			Content:   strings.Join(words[i:end], " "),
			Index:     start + len(chunks),
			WordCount: end - i,
			Split:     split,
		})
		if end == len(words) {
			break
		}
	}
	return chunks
}

// chunkSentence groups whole sentences until TargetSize is reached, never
// exceeding MaxSize. The last sentences of a chunk are repeated at the start
// of the next one until Overlap words are covered.
func (c *Chunker) chunkSentence(content string) []Chunk {
	var (
		chunks  []Chunk
		current []string
		words   int
		fresh   bool // current holds sentences not yet emitted
	)

	flush := func() {
		if !fresh {
			return
		}
		text := strings.Join(current, " ")
		chunks = append(chunks, Chunk{
			Content:   text,
			Index:     len(chunks),
			WordCount: len(strings.Fields(text)),
		})
		current, words = c.sentenceOverlap(current)
		fresh = false
	}

	for _, sentence := range splitSentences(content) {
		n := len(strings.Fields(sentence))

		if n > c.config.MaxSize {
			flush()
			current, words = nil, 0
			chunks = append(chunks, c.windows(strings.Fields(sentence), len(chunks), true)...)
			continue
		}

		if words+n > c.config.MaxSize && words > 0 {
			flush()
			// The overlap alone may still leave no room.
			if words+n > c.config.MaxSize {
				current, words = nil, 0
			}
		}

		current = append(current, sentence)
		words += n
		fresh = true

		if words >= c.config.TargetSize {
			flush()
		}
	}
	flush()

	return chunks
}

// sentenceOverlap returns the trailing sentences covering Overlap words.
func (c *Chunker) sentenceOverlap(sentences []string) ([]string, int) {
	if c.config.Overlap <= 0 {
		return nil, 0
	}

	var keep []string
	words := 0
	for i := len(sentences) - 1; i >= 0 && words < c.config.Overlap; i-- {
		keep = append([]string{sentences[i]}, keep...)
		words += len(strings.Fields(sentences[i]))
	}
	// Never carry a whole chunk forward.
	if len(keep) == len(sentences) {
		return nil, 0
	}
	return keep, words
}

// splitSentences splits text on . ! ? followed by whitespace or end of
// text, skipping common abbreviations.
func splitSentences(text string) []string {
	var (
		sentences []string
		current   strings.Builder
	)

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}
		sentence := strings.TrimSpace(current.String())
		if sentence != "" && !isAbbreviation(sentence) {
			sentences = append(sentences, strings.Join(strings.Fields(sentence), " "))
			current.Reset()
		}
	}

	if rest := strings.TrimSpace(current.String()); rest != "" {
		sentences = append(sentences, strings.Join(strings.Fields(rest), " "))
	}
	return sentences
}

var abbreviations = []string{
	"mr.", "mrs.", "ms.", "dr.", "prof.",
	"inc.", "ltd.", "corp.",
	"etc.", "e.g.", "i.e.",
	"vs.", "st.", "no.", "vol.", "fig.",
}

// isAbbreviation reports whether text ends with a known abbreviation.
func isAbbreviation(text string) bool {
	lower := strings.ToLower(text)
	for _, abbr := range abbreviations {
		if strings.HasSuffix(lower, " "+abbr) || lower == abbr {
			return true
		}
	}
	return false
}
