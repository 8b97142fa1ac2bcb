package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "code-evaluation",
		Description: "Verdict on generated code",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"found_errors":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"missing_errors": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"valid":          map[string]any{"type": "boolean"},
			},
			"required": []any{"found_errors", "missing_errors", "valid"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"found_errors":["a"],"missing_errors":[],"valid":true}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"found_errors":["a"]}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"found_errors":"a","missing_errors":[],"valid":true}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`anything goes`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema must skip validation, got: %v", err)
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	s := testSchema()
	raw := json.RawMessage(`{"found_errors":[],"missing_errors":[],"valid":true}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(s, raw); err != nil {
			t.Fatalf("iteration %d: %v", i, err)
		}
	}
}
