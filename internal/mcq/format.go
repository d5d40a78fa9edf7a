package mcq

import (
	"fmt"
	"strings"
)

// missing is rendered in place of an empty field.
const missing = "N/A"

// FormatForDisplay renders a record as human-readable text: the question,
// the options lettered from A in order, then the correct answer and the
// difficulty. Empty fields render as "N/A".
func FormatForDisplay(r Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nQuestion: %s\n", orMissing(r.Question))
	for i, opt := range r.Options {
		fmt.Fprintf(&b, "  %c. %s\n", OptionLetter(i), opt)
	}
	fmt.Fprintf(&b, "\nCorrect Answer: %s", orMissing(r.CorrectAnswer))
	fmt.Fprintf(&b, "\nDifficulty: %s\n", orMissing(r.Difficulty))

	return b.String()
}

// OptionLetter returns the display letter for the option at index i (0-based).
func OptionLetter(i int) rune {
	return rune('A' + i)
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}
