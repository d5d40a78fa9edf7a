package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// Responder builds response content for a request. It lets a MockProvider
// answer without a queue of canned responses.
type Responder func(Request) (json.RawMessage, error)

// MockProvider is a deterministic Provider for tests and offline runs.
// Responses are served in FIFO order and every request is recorded.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request

	// Model is reported by ModelID and on each Response. Defaults to "mock".
	Model string

	// Responder, when set, answers requests once the queue is drained.
	Responder Responder
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses, Model: "mock"}
}

// Generate returns the next canned response. Once the queue is drained it
// asks Responder, or fails with ErrProviderUnavailable when there is none.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		if m.Responder == nil {
			return nil, &ErrProviderUnavailable{Err: nil}
		}
		content, err := m.Responder(req)
		if err != nil {
			return nil, err
		}
		return &Response{
			Content:    content,
			Usage:      mockUsage(req, content),
			Model:      m.modelID(),
			StopReason: StopEnd,
		}, nil
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      m.modelID(),
		StopReason: StopEnd,
	}, nil
}

func (m *MockProvider) ModelID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.modelID()
}

func (m *MockProvider) modelID() string {
	if m.Model == "" {
		return "mock"
	}
	return m.Model
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastRequest returns the most recent request, or false if none was made.
func (m *MockProvider) LastRequest() (Request, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return Request{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}

// mockUsage approximates token counts at four bytes per token.
func mockUsage(req Request, content json.RawMessage) Usage {
	in := len(req.System)
	for _, msg := range req.Messages {
		in += len(msg.Content)
	}
	u := Usage{InputTokens: in / 4, OutputTokens: len(content) / 4}
	u.TotalTokens = u.InputTokens + u.OutputTokens
	return u
}
