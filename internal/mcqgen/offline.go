package mcqgen

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/abhisek/mcqgen/internal/llm"
)

var (
	numQuestionsLine = regexp.MustCompile(`(?m)^Number of questions: (\d+)$`)
	numOptionsLine   = regexp.MustCompile(`(?m)^Options per question: (\d+)$`)
)

const sourceTextHeader = "\n\nSource text:\n"

// OfflineResponder answers question-set requests without a model. Paired
// with the "mock" provider it gives the llm generator usable output: each
// question asks which term occurs in the source text, and the correct
// option is a word taken from it.
func OfflineResponder(req llm.Request) (json.RawMessage, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("offline responder: request has no messages")
	}
	prompt := req.Messages[len(req.Messages)-1].Content

	n := promptInt(numQuestionsLine, prompt, DefaultNumQuestions)
	options := max(promptInt(numOptionsLine, prompt, len(placeholderOptions)), minOptions)

	text := prompt
	if i := strings.Index(prompt, sourceTextHeader); i >= 0 {
		text = prompt[i+len(sourceTextHeader):]
	}
	terms := sourceTerms(text)

	out := questionSetOutput{Questions: make([]questionOutput, 0, n)}
	for i := range n {
		term := terms[i%len(terms)]
		// The correct option moves one slot per question.
		opts := make([]string, options)
		for j := range opts {
			opts[j] = fmt.Sprintf("Not in the text %d", j+1)
		}
		opts[i%options] = term

		out.Questions = append(out.Questions, questionOutput{
			Question:      fmt.Sprintf("Question %d: which term appears in the source text?", i+1),
			Options:       opts,
			CorrectAnswer: term,
		})
	}
	return json.Marshal(out)
}

func promptInt(re *regexp.Regexp, prompt string, fallback int) int {
	m := re.FindStringSubmatch(prompt)
	if m == nil {
		return fallback
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return fallback
	}
	return n
}

// sourceTerms returns the distinct words of text with at least four letters,
// in order of first appearance. It never returns an empty slice.
func sourceTerms(text string) []string {
	var terms []string
	seen := map[string]bool{}
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		key := strings.ToLower(w)
		if len([]rune(w)) < 4 || seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, w)
	}
	if len(terms) == 0 {
		return []string{"source"}
	}
	return terms
}
