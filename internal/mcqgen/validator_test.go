package mcqgen

import (
	"strings"
	"testing"

	"github.com/abhisek/mcqgen/internal/mcq"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "count", Index: -1, Message: "expected 3 questions, got 2"}
	if err.Error() != `validator "count": expected 3 questions, got 2` {
		t.Errorf("unexpected message %q", err.Error())
	}

	err = &ValidationError{Validator: "structural", Index: 2, Message: "question is empty"}
	if err.Error() != `validator "structural": record 3: question is empty` {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 1 || cfg.Validators[0].Name() != "structural" {
		t.Fatalf("unexpected default chain: %v", cfg.Validators)
	}
	if cfg.OptionsPerQuestion != 4 {
		t.Errorf("expected 4 options per question, got %d", cfg.OptionsPerQuestion)
	}
}

func TestStructuralValidator(t *testing.T) {
	valid := mcq.Record{
		Question:      "What gas do plants release?",
		Options:       []string{"Oxygen", "Argon"},
		CorrectAnswer: "Oxygen",
	}

	tests := []struct {
		name    string
		mutate  func(r *mcq.Record)
		wantMsg string
	}{
		{"valid", func(*mcq.Record) {}, ""},
		{"empty question", func(r *mcq.Record) { r.Question = "  " }, "question is empty"},
		{"long question", func(r *mcq.Record) { r.Question = strings.Repeat("é", 501) }, "exceeds 500"},
		{"one option", func(r *mcq.Record) { r.Options = []string{"Oxygen"} }, "fewer than 2"},
		{"blank option", func(r *mcq.Record) { r.Options = []string{"Oxygen", " "} }, "option is empty"},
		{"duplicate option", func(r *mcq.Record) { r.Options = []string{"Oxygen", "Oxygen "} }, "duplicate option"},
		{"long option", func(r *mcq.Record) { r.Options = []string{"Oxygen", strings.Repeat("x", 201)} }, "exceeds 200"},
		{"empty answer", func(r *mcq.Record) { r.CorrectAnswer = "" }, "correct_answer is empty"},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			r.Options = append([]string(nil), valid.Options...)
			tt.mutate(&r)
			err := v.Validate(r, GenerateInput{})
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantMsg)
			}
			if !strings.Contains(err.Message, tt.wantMsg) {
				t.Errorf("expected %q in %q", tt.wantMsg, err.Message)
			}
			if !err.Retryable {
				t.Error("structural failures should be retryable")
			}
		})
	}
}

func TestAnswerInOptionsValidator(t *testing.T) {
	v := &AnswerInOptionsValidator{}
	r := mcq.Record{Question: "Q", Options: []string{"A", "B"}, CorrectAnswer: "B"}
	if err := v.Validate(r, GenerateInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.CorrectAnswer = "b"
	if err := v.Validate(r, GenerateInput{}); err == nil {
		t.Fatal("expected case-sensitive mismatch to fail")
	}
}
