// Package codeeval verifies that a generated snippet actually contains the
// defects that were requested. The verdict drives the regeneration loop:
// a snippet with missing defects goes back to the generator with targeted
// feedback until it is complete or the attempt budget runs out.
package codeeval

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"revtrain/internal/errorcatalog"
	"revtrain/internal/llm"
)

// Evaluation is the verdict on one generated snippet.
type Evaluation struct {
	// FoundErrors lists requested defects present in the code, in
	// "CATEGORY - Name" form.
	FoundErrors []string `json:"found_errors"`

	// MissingErrors lists requested defects the code does not contain.
	MissingErrors []string `json:"missing_errors"`

	// Feedback is the model's free-form note about the snippet.
	Feedback string `json:"feedback"`

	// Valid is true when every requested defect was found. Extra defects
	// do not make a snippet invalid.
	Valid bool `json:"valid"`
}

// Config bounds the evaluation call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig uses a low temperature: evaluation is a checking task,
// not a creative one.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// Evaluator checks generated snippets against their requested defect list.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	if cfg.MaxTokens <= 0 {
		cfg = DefaultConfig()
	}
	return &Evaluator{provider: provider, cfg: cfg}
}

const evaluationSystem = `You are a meticulous Java code auditor. You receive annotated Java code and a list of defects it is supposed to contain. For each requested defect decide whether it is genuinely present in the code. Judge the code itself; an "// ERROR:" comment alone does not make a defect present. Report every requested defect exactly once, as found or missing, using its exact label.`

// Evaluate asks the model whether annotated contains every defect in
// requested. The returned Evaluation is normalized: Valid is recomputed
// from MissingErrors regardless of what the model claimed.
func (e *Evaluator) Evaluate(ctx context.Context, annotated string, requested []errorcatalog.ErrorSpec) (*Evaluation, error) {
	ctx = llm.WithPurpose(ctx, "code-eval")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: evaluationSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: evaluationPrompt(annotated, requested)},
		},
		Schema:      evaluationSchema(),
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var ev Evaluation
	if err := json.Unmarshal(resp.Content, &ev); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	ev.Valid = len(ev.MissingErrors) == 0
	return &ev, nil
}

func evaluationPrompt(annotated string, requested []errorcatalog.ErrorSpec) string {
	var b strings.Builder

	b.WriteString("The following annotated Java code was generated to contain these defects:\n\n")
	for i, r := range requested {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, r.Label(), r.Description)
	}
	b.WriteString("\nAnnotated code:\n\n```java\n")
	b.WriteString(annotated)
	b.WriteString("\n```\n\n")
	fmt.Fprintf(&b, "Classify each of the %d requested defects as found or missing. Use the exact labels from the list above.", len(requested))
	return b.String()
}

func evaluationSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "code-evaluation",
		Description: "Verdict on whether generated code contains its requested defects",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"found_errors": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Labels of requested defects present in the code",
				},
				"missing_errors": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Labels of requested defects absent from the code",
				},
				"feedback": map[string]any{
					"type":        "string",
					"description": "Short note on the overall quality of the injection",
				},
				"valid": map[string]any{
					"type":        "boolean",
					"description": "True when no requested defect is missing",
				},
			},
			"required":             []string{"found_errors", "missing_errors", "valid"},
			"additionalProperties": false,
		},
	}
}
