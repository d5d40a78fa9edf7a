package mcqgen

import (
	"fmt"

	"github.com/abhisek/mcqgen/internal/mcq"
)

// AnswerInOptionsValidator requires correct_answer to equal one of the
// options exactly.
type AnswerInOptionsValidator struct{}

func (v *AnswerInOptionsValidator) Name() string { return "answer-in-options" }

func (v *AnswerInOptionsValidator) Validate(r mcq.Record, _ GenerateInput) *ValidationError {
	if r.HasAnswerInOptions() {
		return nil
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("correct_answer %q is not one of the options", r.CorrectAnswer),
		Retryable: true,
	}
}
