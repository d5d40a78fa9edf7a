package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// GenerationRun records one Generate or BatchProcess invocation.
type GenerationRun struct {
	ent.Schema
}

func (GenerationRun) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GenerationRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable().
			Comment("UUID assigned at insert"),
		field.String("source").
			Comment("Entry point: cli, batch or http"),
		field.Int("texts").
			Comment("Input texts received"),
		field.Int("accepted_texts").
			Comment("Input texts that passed validation"),
		field.Int("questions_per_text"),
		field.String("difficulty"),
		field.Int("records").
			Comment("Records returned to the caller"),
		field.String("output_path").
			Default(""),
		field.String("model").
			Default(""),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
	}
}
