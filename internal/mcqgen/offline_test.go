package mcqgen

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcq"
)

func TestOfflineResponder_DrivesLLMGenerator(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.Responder = OfflineResponder

	cfg := DefaultConfig()
	cfg.Validators = append(cfg.Validators, &AnswerInOptionsValidator{})
	gen := New(mock, cfg)

	records, err := gen.Generate(context.Background(), GenerateInput{
		Text:         photosynthesis,
		NumQuestions: 3,
		Difficulty:   mcq.DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, r := range records {
		if len(r.Options) != cfg.OptionsPerQuestion {
			t.Errorf("record %d: expected %d options, got %d", i, cfg.OptionsPerQuestion, len(r.Options))
		}
		if !strings.Contains(photosynthesis, r.CorrectAnswer) {
			t.Errorf("record %d: answer %q not taken from the text", i, r.CorrectAnswer)
		}
	}
	if records[0].CorrectAnswer == records[1].CorrectAnswer {
		t.Errorf("expected different terms, both were %q", records[0].CorrectAnswer)
	}
}

func TestOfflineResponder_NoMessages(t *testing.T) {
	if _, err := OfflineResponder(llm.Request{}); err == nil {
		t.Fatal("expected error for empty request")
	}
}

func TestSourceTerms(t *testing.T) {
	got := sourceTerms("The cell, the CELL and a nucleus.")
	if strings.Join(got, ",") != "cell,nucleus" {
		t.Errorf("unexpected terms: %v", got)
	}
	if got := sourceTerms("a b c"); len(got) != 1 || got[0] != "source" {
		t.Errorf("expected fallback term, got %v", got)
	}
}
