package mcqgen

import "github.com/abhisek/mcqgen/internal/llm"

// QuestionSetSchema defines the JSON schema for LLM question set responses.
// Every object lists all of its properties as required and forbids extras so
// providers with strict structured output accept it unchanged.
var QuestionSetSchema = &llm.Schema{
	Name:        "mcq-set",
	Description: "A set of multiple-choice questions about a source text",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question stem, answerable from the source text alone",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Answer choices in display order, exactly one of them correct",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The text of the correct option, copied exactly",
						},
					},
					"required":             []any{"question", "options", "correct_answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
