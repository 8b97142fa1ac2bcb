package codeeval

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"revtrain/internal/errorcatalog"
	"revtrain/internal/llm"
)

var requested = []errorcatalog.ErrorSpec{
	{Name: "Off-by-one error", Category: "LogicalErrors", Description: "Loop bound off by one"},
	{Name: "Missing semicolon", Category: "SyntaxErrors", Description: "No terminating semicolon"},
}

func evalResponse(t *testing.T, ev Evaluation) llm.MockResponse {
	t.Helper()
	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal canned evaluation: %v", err)
	}
	return llm.MockResponse{Content: b}
}

func TestEvaluateAllFound(t *testing.T) {
	mock := llm.NewMockProvider(evalResponse(t, Evaluation{
		FoundErrors:   []string{"LogicalErrors - Off-by-one error", "SyntaxErrors - Missing semicolon"},
		MissingErrors: []string{},
		Feedback:      "both defects in place",
	}))

	e := NewEvaluator(mock, DefaultConfig())
	ev, err := e.Evaluate(context.Background(), "class A {}", requested)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !ev.Valid {
		t.Error("expected valid with no missing errors")
	}
	if len(ev.FoundErrors) != 2 {
		t.Errorf("found = %v", ev.FoundErrors)
	}
}

func TestEvaluateMissingOverridesValid(t *testing.T) {
	// Even if the model claims valid, a non-empty missing list wins.
	mock := llm.NewMockProvider(evalResponse(t, Evaluation{
		FoundErrors:   []string{"LogicalErrors - Off-by-one error"},
		MissingErrors: []string{"SyntaxErrors - Missing semicolon"},
		Valid:         true,
	}))

	e := NewEvaluator(mock, DefaultConfig())
	ev, err := e.Evaluate(context.Background(), "class A {}", requested)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if ev.Valid {
		t.Error("valid must be false while errors are missing")
	}
}

func TestEvaluatePromptListsRequested(t *testing.T) {
	mock := llm.NewMockProvider(evalResponse(t, Evaluation{MissingErrors: []string{}}))

	e := NewEvaluator(mock, DefaultConfig())
	if _, err := e.Evaluate(context.Background(), "class A {}", requested); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "code-evaluation" {
		t.Fatalf("expected code-evaluation schema, got %+v", req.Schema)
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"LogicalErrors - Off-by-one error", "SyntaxErrors - Missing semicolon", "2 requested defects"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestEvaluateMalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"not an object"`)})

	e := NewEvaluator(mock, DefaultConfig())
	_, err := e.Evaluate(context.Background(), "class A {}", requested)
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
