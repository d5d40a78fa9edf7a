package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.5-flash"}); err == nil {
		t.Fatal("expected error for empty API key")
	}

	// Vendor-qualified IDs are never rewritten, even when the bare name is
	// one of the OpenAI aliases.
	for _, model := range []string{"google/gemini-2.5-flash", "anthropic/claude-haiku-4-5", "gpt-mini"} {
		p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or-test", Model: model})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ModelID() != model {
			t.Errorf("ModelID() = %q, want %q", p.ModelID(), model)
		}
	}
}

func TestOpenRouterProvider_SendsAttribution(t *testing.T) {
	var got http.Header
	reply := openaiReply(`{"questions":[]}`, "stop")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		reply(w, r)
	}))
	t.Cleanup(server.Close)

	p, err := NewOpenRouterProvider(OpenRouterConfig{
		APIKey:  "sk-or-test",
		Model:   "openai/gpt-4.1-mini",
		BaseURL: server.URL + "/api/v1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "q"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Get("HTTP-Referer") != openRouterReferer || got.Get("X-Title") != openRouterTitle {
		t.Fatalf("missing attribution headers: %v", got)
	}
	if got.Get("Authorization") != "Bearer sk-or-test" {
		t.Fatalf("unexpected auth header %q", got.Get("Authorization"))
	}
}
