package mcqgen

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildUserMessage_MinimalContext(t *testing.T) {
	msg := buildUserMessage(GenerateInput{Text: "  Some text.  ", NumQuestions: 3, Difficulty: "easy"}, DefaultConfig())

	for _, want := range []string{
		"Number of questions: 3",
		"Options per question: 4",
		"Difficulty: easy",
		"Already asked:\nNone",
		"Source text:\nSome text.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("missing %q in:\n%s", want, msg)
		}
	}
	if strings.HasSuffix(msg, " ") {
		t.Error("source text should be trimmed")
	}
}

func TestBuildUserMessage_TruncatesText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTextRunes = 10
	msg := buildUserMessage(GenerateInput{Text: strings.Repeat("ü", 50), NumQuestions: 1}, cfg)
	if !strings.HasSuffix(msg, "Source text:\n"+strings.Repeat("ü", 10)) {
		t.Errorf("expected text truncated to 10 runes, got %q", msg[len(msg)-40:])
	}
}

func TestBuildDedup(t *testing.T) {
	if got := buildDedup(nil, 5); got != "None" {
		t.Errorf("expected None, got %q", got)
	}

	var priors []string
	for i := range 10 {
		priors = append(priors, fmt.Sprintf("Q%d", i))
	}
	got := buildDedup(priors, 3)
	if got != "1. Q7\n2. Q8\n3. Q9" {
		t.Errorf("unexpected dedup block %q", got)
	}
}

func TestQuestionKey(t *testing.T) {
	if questionKey("  What IS   this? ") != questionKey("what is this?") {
		t.Error("expected case and whitespace to be ignored")
	}
}
