package schema

import (
	"testing"

	"entgo.io/ent"
	"github.com/stretchr/testify/assert"
)

func fieldNames(fields ...[]ent.Field) []string {
	var names []string
	for _, fs := range fields {
		for _, f := range fs {
			names = append(names, f.Descriptor().Name)
		}
	}
	return names
}

func TestLLMRequestEventColumns(t *testing.T) {
	got := fieldNames(EventMixin{}.Fields(), LLMRequestEvent{}.Fields())
	assert.Equal(t, []string{
		"sequence", "timestamp", "provider", "model", "purpose",
		"input_tokens", "output_tokens", "latency_ms", "success",
		"error_message", "request_body", "response_body",
	}, got)
}

func TestGenerationRunColumns(t *testing.T) {
	got := fieldNames(EventMixin{}.Fields(), GenerationRun{}.Fields())
	assert.Equal(t, []string{
		"sequence", "timestamp", "id", "source", "texts", "accepted_texts",
		"questions_per_text", "difficulty", "records", "output_path",
		"model", "success", "error_message",
	}, got)
}

func TestEventsShareMixin(t *testing.T) {
	for _, s := range []interface{ Mixin() []ent.Mixin }{LLMRequestEvent{}, GenerationRun{}} {
		mixins := s.Mixin()
		if assert.Len(t, mixins, 1) {
			assert.IsType(t, EventMixin{}, mixins[0])
		}
	}
}

func TestEventMixinIndexesTimestamp(t *testing.T) {
	idx := EventMixin{}.Indexes()
	if assert.Len(t, idx, 1) {
		assert.Equal(t, []string{"timestamp"}, idx[0].Descriptor().Fields)
	}
}
