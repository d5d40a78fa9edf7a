package mcqgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write multiple-choice questions that test understanding of a source text.

Rules:
- Every question must be answerable from the source text alone. Do not rely on outside knowledge.
- Write exactly the number of questions requested, no more and no fewer.
- Give each question exactly the requested number of options, in the order they should be displayed.
- Exactly one option is correct. Copy its text verbatim into correct_answer.
- Distractors should be plausible misreadings of the text, not obviously wrong or joke answers.
- Do not use "all of the above" or "none of the above".
- Match the requested difficulty: easy questions check facts stated directly, medium questions need connecting two statements, hard questions need inference.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of questions: %d\n", input.NumQuestions)
	fmt.Fprintf(&b, "Options per question: %d\n", cfg.OptionsPerQuestion)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	b.WriteString("\nAlready asked:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	b.WriteString("\n\nSource text:\n")
	b.WriteString(truncateRunes(strings.TrimSpace(input.Text), cfg.MaxTextRunes))

	return b.String()
}

// truncateRunes cuts s to at most max runes. A non-positive max disables it.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
