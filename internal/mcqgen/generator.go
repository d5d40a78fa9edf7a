// Package mcqgen turns validated input text into multiple-choice question
// records. The placeholder generator needs no external service; the LLM
// generator asks a provider for structured output and validates it.
package mcqgen

import (
	"context"
	"errors"

	"github.com/abhisek/mcqgen/internal/mcq"
)

// DefaultNumQuestions is the number of questions generated per text when the
// caller does not ask for a specific count.
const DefaultNumQuestions = 5

// ErrNegativeCount is returned when a negative number of questions is requested.
var ErrNegativeCount = errors.New("number of questions must not be negative")

// Generator produces MCQ records for a piece of text.
type Generator interface {
	// Generate returns exactly input.NumQuestions records, each carrying
	// input.Difficulty verbatim. Failures are returned, never swallowed.
	Generate(ctx context.Context, input GenerateInput) ([]mcq.Record, error)
}

// GenerateInput holds all context needed to generate questions.
type GenerateInput struct {
	// Text is the source material the questions are about. Callers are
	// expected to have validated it already.
	Text string

	// NumQuestions is the exact number of records to return.
	NumQuestions int

	// Difficulty is copied onto every record. It is not interpreted.
	Difficulty string

	// PriorQuestions lists questions produced earlier in the same batch.
	// Generators that talk to a model use it to avoid repeats.
	PriorQuestions []string
}

// withDefaults fills in an empty difficulty and rejects negative counts.
func (in GenerateInput) withDefaults() (GenerateInput, error) {
	if in.NumQuestions < 0 {
		return in, ErrNegativeCount
	}
	if in.Difficulty == "" {
		in.Difficulty = mcq.DefaultDifficulty
	}
	return in, nil
}
