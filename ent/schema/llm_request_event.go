package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records one LLM API call: which provider and model
// served it, what it was for, how long it took, and the full request and
// response bodies for debugging failed generations.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			Comment("anthropic, openai, gemini, or groq"),
		field.String("model").
			Comment("Model ID that actually served the request"),
		field.String("purpose").
			Comment("Call-site label: code-gen, code-regen, code-eval, review-analysis, guidance, comparison-report"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock duration of the call"),
		field.Bool("success"),
		field.String("error_message").
			Default("").
			Comment("Set when success is false"),
		field.Text("request_body").
			Default("").
			Comment("Rendered prompt, kept for debugging"),
		field.Text("response_body").
			Default("").
			Comment("Raw response content"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("provider"),
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
