package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction every LLM-backed component talks to.
// Code generation, code evaluation, review grading and guidance all go
// through Generate.
type Provider interface {
	// Generate sends a prompt to the LLM and returns its output. When the
	// request carries a Schema the provider uses its native structured
	// output mechanism and the response Content is the validated JSON.
	// When Schema is nil the Content is the raw text of the completion.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one LLM call.
type Request struct {
	// System sets the LLM's role and constraints.
	System string

	// Messages is the conversation. Every call in revtrain is single-turn,
	// so this holds one user message in practice.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// Code generation leaves it nil (the snippet is extracted from fenced
	// blocks); evaluation and grading set it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is one entry in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies the schema. Kebab-case, e.g. "code-evaluation".
	// Used as the tool/schema name by providers that need one.
	Name string

	// Description tells the LLM what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the LLM's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, otherwise the raw completion text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as plain text. Some providers wrap a
// schema-less completion as a JSON string; this unwraps it and otherwise
// returns the raw bytes.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}
