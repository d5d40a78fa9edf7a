package mcqgen

import (
	"context"
	"fmt"

	"github.com/abhisek/mcqgen/internal/mcq"
)

// placeholderOptions are the fixed options of every placeholder record.
var placeholderOptions = []string{"Option A", "Option B", "Option C", "Option D"}

// PlaceholderGenerator produces deterministic synthetic questions without
// contacting any model. It stands in wherever a real provider is not
// configured and keeps the rest of the pipeline testable.
type PlaceholderGenerator struct{}

// NewPlaceholder returns a PlaceholderGenerator.
func NewPlaceholder() *PlaceholderGenerator {
	return &PlaceholderGenerator{}
}

// Generate returns records "Sample question 1?" through
// "Sample question N?", each answered by the first option. The text is
// ignored.
func (g *PlaceholderGenerator) Generate(ctx context.Context, input GenerateInput) ([]mcq.Record, error) {
	input, err := input.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]mcq.Record, 0, input.NumQuestions)
	for i := range input.NumQuestions {
		options := make([]string, len(placeholderOptions))
		copy(options, placeholderOptions)
		records = append(records, mcq.Record{
			Question:      fmt.Sprintf("Sample question %d?", i+1),
			Options:       options,
			CorrectAnswer: options[0],
			Difficulty:    input.Difficulty,
		})
	}
	return records, nil
}

// ModelID identifies the placeholder in run records.
func (g *PlaceholderGenerator) ModelID() string {
	return "placeholder"
}
