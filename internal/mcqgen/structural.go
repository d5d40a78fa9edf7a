package mcqgen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/mcqgen/internal/mcq"
)

const (
	maxQuestionRunes = 500
	maxOptionRunes   = 200
	minOptions       = 2
)

// StructuralValidator checks that a record has a question, enough distinct
// non-empty options and a correct answer, all within length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(r mcq.Record, _ GenerateInput) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
	}

	if strings.TrimSpace(r.Question) == "" {
		return fail("question is empty")
	}
	if utf8.RuneCountInString(r.Question) > maxQuestionRunes {
		return fail("question exceeds 500 characters")
	}
	if len(r.Options) < minOptions {
		return fail("fewer than 2 options")
	}

	seen := make(map[string]bool, len(r.Options))
	for _, opt := range r.Options {
		key := strings.TrimSpace(opt)
		if key == "" {
			return fail("option is empty")
		}
		if utf8.RuneCountInString(opt) > maxOptionRunes {
			return fail("option exceeds 200 characters")
		}
		if seen[key] {
			return fail(fmt.Sprintf("duplicate option %q", key))
		}
		seen[key] = true
	}

	if strings.TrimSpace(r.CorrectAnswer) == "" {
		return fail("correct_answer is empty")
	}
	return nil
}
