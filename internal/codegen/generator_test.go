package codegen

import (
	"context"
	"strings"
	"testing"

	"revtrain/internal/errorcatalog"
	"revtrain/internal/llm"
)

func testInput() GenerateInput {
	return GenerateInput{
		Length:     errorcatalog.LengthMedium,
		Difficulty: errorcatalog.DifficultyMedium,
		Domain:     "banking",
		Errors: []errorcatalog.ErrorSpec{
			{
				Type:                "logical",
				Name:                "Off-by-one error",
				Category:            "LogicalErrors",
				Description:         "Loop bound is off by one",
				ImplementationGuide: "Use <= where < is correct",
			},
			{
				Type:        "syntax",
				Name:        "Missing semicolon",
				Category:    "SyntaxErrors",
				Description: "Statement lacks its terminating semicolon",
			},
		},
	}
}

func TestGeneratorGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("```java-annotated\n" +
		"public class Account {\n" +
		"    void pay() {} // ERROR: LOGICAL - Off-by-one error\n" +
		"}\n" +
		"```\n" +
		"```java-clean\n" +
		"public class Account {\n" +
		"    void pay() {}\n" +
		"}\n" +
		"```\n"))

	g := NewGenerator(mock, DefaultConfig())
	versions, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(versions.Annotated, "// ERROR:") {
		t.Errorf("annotated output missing markers: %q", versions.Annotated)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "Off-by-one error") {
		t.Errorf("prompt missing requested defect name:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Use <= where < is correct") {
		t.Errorf("prompt missing implementation guide:\n%s", prompt)
	}
	if !strings.Contains(prompt, "EXACTLY these 2 defects") {
		t.Errorf("prompt missing defect count:\n%s", prompt)
	}
	if !strings.Contains(prompt, "banking") {
		t.Errorf("prompt missing domain:\n%s", prompt)
	}
}

func TestGeneratorRegenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("```java-annotated\nclass X {} // ERROR: SYNTAX - Missing semicolon\n```\n"))

	input := testInput()
	prompt := RegenerationPrompt(
		"public class Account {}",
		input.Domain,
		[]string{"SYNTAX - Missing semicolon"},
		[]string{"LOGICAL - Off-by-one error"},
		input.Errors,
	)
	if !strings.Contains(prompt, "MISSING") {
		t.Fatalf("regeneration prompt missing the MISSING section:\n%s", prompt)
	}
	if !strings.Contains(prompt, "KEEP these exactly") {
		t.Fatalf("regeneration prompt missing the keep section:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Total defects after revision: 2") {
		t.Fatalf("regeneration prompt missing total count:\n%s", prompt)
	}

	g := NewGenerator(mock, DefaultConfig())
	versions, err := g.Regenerate(context.Background(), prompt)
	if err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if versions.Clean == "" {
		t.Error("expected a derived clean version")
	}
}

func TestGenerationPromptComplexity(t *testing.T) {
	cases := []struct {
		length errorcatalog.CodeLength
		want   string
	}{
		{errorcatalog.LengthShort, "15-30 lines"},
		{errorcatalog.LengthMedium, "40-80 lines"},
		{errorcatalog.LengthLong, "100-150 lines"},
	}
	for _, tc := range cases {
		input := testInput()
		input.Length = tc.length
		prompt := GenerationPrompt(input)
		if !strings.Contains(prompt, tc.want) {
			t.Errorf("length %s: prompt missing %q", tc.length, tc.want)
		}
	}
}
