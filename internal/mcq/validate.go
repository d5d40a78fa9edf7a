package mcq

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultMinLength is the minimum trimmed input length accepted by ValidateInput.
const DefaultMinLength = 50

// ValidateInput reports whether text is long enough to generate questions
// from. Leading and trailing whitespace is ignored when measuring, and length
// is counted in characters, not bytes. It never fails: an unusable input just
// yields false.
func ValidateInput(log *zap.Logger, text string, minLength int) bool {
	if log == nil {
		log = zap.NewNop()
	}
	if text == "" {
		log.Error("invalid input: text is empty")
		return false
	}

	n := utf8.RuneCountInString(strings.TrimSpace(text))
	if n < minLength {
		log.Error("input text too short",
			zap.Int("length", n),
			zap.Int("min_length", minLength),
		)
		return false
	}

	log.Debug("input validation passed", zap.Int("length", n))
	return true
}
