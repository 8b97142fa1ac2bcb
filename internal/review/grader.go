package review

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"revtrain/internal/llm"
)

// Config bounds the grading calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig keeps grading near-deterministic.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// Grader grades student reviews and generates guidance and reports.
// Grading runs on the review provider; guidance and reports run on the
// summary provider when one is set.
type Grader struct {
	provider llm.Provider
	summary  llm.Provider
	cfg      Config
}

func NewGrader(provider llm.Provider, cfg Config) *Grader {
	if cfg.MaxTokens <= 0 {
		cfg = DefaultConfig()
	}
	return &Grader{provider: provider, summary: provider, cfg: cfg}
}

// WithSummaryProvider routes guidance and report generation to a separate
// provider, typically a cheaper or more fluent model.
func (g *Grader) WithSummaryProvider(p llm.Provider) *Grader {
	if p != nil {
		g.summary = p
	}
	return g
}

const gradingSystem = `You are a Java code review instructor grading a student's review of defective code. You know the full list of defects in the code. Match each known defect against the student's comments: a defect counts as identified when the student points at the right line or accurately describes the problem, even in different words. Be generous with phrasing, strict with substance.`

// EvaluateReview grades reviewText against the known defects of the snippet.
// The returned Analysis carries the model's raw classification; the caller
// normalizes it against the session's authoritative defect count. The known
// list handed to the model can be shorter than that count when verification
// never confirmed every requested defect, so normalizing here would grade
// against the wrong total.
func (g *Grader) EvaluateReview(ctx context.Context, code string, knownProblems []string, reviewText string) (*Analysis, error) {
	ctx = llm.WithPurpose(ctx, "review-analysis")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: gradingSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: gradingPrompt(code, knownProblems, reviewText)},
		},
		Schema:      analysisSchema(),
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	var a Analysis
	if err := json.Unmarshal(resp.Content, &a); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &a, nil
}

func gradingPrompt(code string, knownProblems []string, reviewText string) string {
	var b strings.Builder

	b.WriteString("Java code under review:\n\n```java\n")
	b.WriteString(code)
	b.WriteString("\n```\n\nKnown defects in this code:\n\n")
	for i, p := range knownProblems {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	b.WriteString("\nStudent review:\n\n")
	b.WriteString(reviewText)
	fmt.Fprintf(&b, "\n\nClassify each of the %d known defects as identified or missed. Quote the known defect labels verbatim.", len(knownProblems))
	return b.String()
}

func analysisSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "review-analysis",
		Description: "Grading of a student review against known defects",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"identified_problems": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Known defects the student identified",
				},
				"missed_problems": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Known defects the student did not identify",
				},
				"review_sufficient": map[string]any{
					"type":        "boolean",
					"description": "Whether the review demonstrates adequate understanding",
				},
			},
			"required":             []string{"identified_problems", "missed_problems", "review_sufficient"},
			"additionalProperties": false,
		},
	}
}
