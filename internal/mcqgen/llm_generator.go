package mcqgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcq"
)

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionSetOutput is the raw LLM response before validation.
type questionSetOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Generate asks the provider for input.NumQuestions questions about
// input.Text. Surplus questions are dropped; a short response is an error.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]mcq.Record, error) {
	input, err := input.withDefaults()
	if err != nil {
		return nil, err
	}
	if input.NumQuestions == 0 {
		return []mcq.Record{}, nil
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.maxTokens(input.NumQuestions),
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	if len(raw.Questions) < input.NumQuestions {
		return nil, &ValidationError{
			Validator: "count",
			Index:     -1,
			Message:   fmt.Sprintf("expected %d questions, got %d", input.NumQuestions, len(raw.Questions)),
			Retryable: true,
		}
	}

	records := make([]mcq.Record, 0, input.NumQuestions)
	seen := make(map[string]bool, input.NumQuestions)
	for i, q := range raw.Questions[:input.NumQuestions] {
		r := mcq.Record{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Difficulty:    input.Difficulty,
		}

		for _, v := range g.config.Validators {
			if verr := v.Validate(r, input); verr != nil {
				verr.Index = i
				return nil, verr
			}
		}

		key := questionKey(r.Question)
		if seen[key] {
			return nil, &ValidationError{
				Validator: "dedup",
				Index:     i,
				Message:   "question repeats an earlier one in the same response",
				Retryable: true,
			}
		}
		seen[key] = true

		records = append(records, r)
	}

	return records, nil
}

// ModelID reports the underlying provider's model.
func (g *LLMGenerator) ModelID() string {
	return g.provider.ModelID()
}
