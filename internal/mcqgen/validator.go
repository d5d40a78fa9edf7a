package mcqgen

import (
	"fmt"

	"github.com/abhisek/mcqgen/internal/mcq"
)

// Validator checks a generated record.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages and logging,
	// e.g. "structural" or "answer-in-options".
	Name() string

	// Validate returns nil if the record passes.
	Validate(r mcq.Record, input GenerateInput) *ValidationError
}

// ValidationError describes why generated output was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Index     int    // Zero-based record index, -1 for the whole response
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
	}
	return fmt.Sprintf("validator %q: record %d: %s", e.Validator, e.Index+1, e.Message)
}
