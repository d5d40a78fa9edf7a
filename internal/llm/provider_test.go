package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"testing"
)

func TestMockProvider_ServesQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"questions":[]}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Err: &ErrRateLimit{}},
	)
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"n":3}`)})
	ctx := context.Background()

	first, err := mock.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"questions":[]}` || first.Usage.TotalTokens != 15 || first.StopReason != StopEnd {
		t.Fatalf("unexpected first response: %+v", first)
	}

	var rl *ErrRateLimit
	if _, err := mock.Generate(ctx, Request{}); !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit second, got %T (%v)", err, err)
	}

	third, err := mock.Generate(ctx, Request{})
	if err != nil || string(third.Content) != `{"n":3}` {
		t.Fatalf("expected appended response third, got %v / %v", third, err)
	}

	var unavail *ErrProviderUnavailable
	if _, err := mock.Generate(ctx, Request{}); !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable once drained, got %T", err)
	}

	if mock.CallCount() != 4 {
		t.Fatalf("expected 4 recorded calls, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected first call system prompt recorded, got %q", mock.Calls[0].System)
	}
	if mock.ModelID() != "mock" {
		t.Fatalf("expected default model mock, got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, PurposeQuestionGen)); p != PurposeQuestionGen {
		t.Fatalf("expected %q, got %q", PurposeQuestionGen, p)
	}
}

func TestCheckStructured(t *testing.T) {
	valid := json.RawMessage(`{"questions":[]}`)

	if err := checkStructured(Request{}, StopMaxTokens, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("schema-less request should pass through, got %v", err)
	}
	if err := checkStructured(Request{Schema: mcqSetSchema()}, StopEnd, valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var trunc *ErrMaxTokensExceeded
	err := checkStructured(Request{Schema: mcqSetSchema()}, StopMaxTokens, valid)
	if !errors.As(err, &trunc) || string(trunc.Content) != string(valid) {
		t.Fatalf("expected ErrMaxTokensExceeded carrying content, got %v", err)
	}

	var invalid *ErrInvalidResponse
	if err := checkStructured(Request{Schema: mcqSetSchema()}, StopEnd, json.RawMessage(`[]`)); !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestClassifyStatus(t *testing.T) {
	cause := errors.New("boom")
	isRateLimit := func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }
	isRejected := func(err error) bool { var e *ErrClientRequest; return errors.As(err, &e) }
	isUnavailable := func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }

	tests := []struct {
		status    int
		check     func(error) bool
		retryable bool
	}{
		{http.StatusTooManyRequests, isRateLimit, true},
		{http.StatusBadRequest, isRejected, false},
		{http.StatusUnauthorized, isRejected, false},
		{http.StatusNotFound, isRejected, false},
		{http.StatusRequestTimeout, isUnavailable, true},
		{http.StatusInternalServerError, isUnavailable, true},
		{529, isUnavailable, true},
		{0, isUnavailable, true},
	}
	for _, tt := range tests {
		err := classifyStatus(tt.status, cause)
		if !tt.check(err) {
			t.Errorf("status %d: unexpected error type %T", tt.status, err)
		}
		if IsRetryable(err) != tt.retryable {
			t.Errorf("status %d: IsRetryable = %v, want %v", tt.status, !tt.retryable, tt.retryable)
		}
		if !errors.Is(err, cause) {
			t.Errorf("status %d: cause not wrapped", tt.status)
		}
	}
}

func TestEstimateCost(t *testing.T) {
	tests := []struct {
		model  string
		want   float64
		priced bool
	}{
		{"gpt-4o-mini", 0.75, true},
		{"openai/gpt-4o-mini", 0.75, true},
		{"claude-haiku-4-5", 6, true},
		{"llama3.2", 0, false},
		{"meta-llama/llama-3-8b", 0, false},
	}
	for _, tt := range tests {
		got, ok := EstimateCost(tt.model, 1_000_000, 1_000_000)
		if ok != tt.priced || math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EstimateCost(%q) = %v, %v; want %v, %v", tt.model, got, ok, tt.want, tt.priced)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMockProvider_LastRequestAndModel(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	mock.Model = "mock-large"

	if _, ok := mock.LastRequest(); ok {
		t.Fatal("expected no request before Generate")
	}

	resp, err := mock.Generate(context.Background(), Request{System: "s"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Model != "mock-large" || mock.ModelID() != "mock-large" {
		t.Fatalf("expected model mock-large, got %q / %q", resp.Model, mock.ModelID())
	}
	req, ok := mock.LastRequest()
	if !ok || req.System != "s" {
		t.Fatalf("unexpected last request: %+v", req)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{&ErrMaxTokensExceeded{}, false},
		{&ErrRateLimit{}, true},
		{&ErrInvalidResponse{Err: errors.New("bad")}, true},
		{errors.New("connection reset"), true},
	}
	for _, tt := range tests {
		if got := IsRetryable(tt.err); got != tt.want {
			t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestEstimateCost_LocalUnpriced(t *testing.T) {
	cost, ok := EstimateCost("gpt-4o-mini", 1_000_000, 1_000_000)
	if !ok || math.Abs(cost-0.75) > 1e-9 {
		t.Fatalf("expected 0.75, got %v (%v)", cost, ok)
	}
	if _, ok := EstimateCost("llama3.2", 10, 10); ok {
		t.Fatal("expected local model to be unpriced")
	}
}

func TestNewProvider_MockUsesResponder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	WithMockResponder(func(req Request) (json.RawMessage, error) {
		return json.RawMessage(`{"echo":"` + req.Messages[0].Content + `"}`), nil
	})(&cfg)

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	resp, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `{"echo":"hi"}` {
		t.Fatalf("unexpected content %s", resp.Content)
	}
	if p.ModelID() != "mock" || resp.Usage.TotalTokens == 0 {
		t.Fatalf("unexpected model %q or usage %+v", p.ModelID(), resp.Usage)
	}
}
