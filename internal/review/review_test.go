package review

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"revtrain/internal/llm"
)

func analysisResponse(t *testing.T, a Analysis) llm.MockResponse {
	t.Helper()
	b, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal canned analysis: %v", err)
	}
	return llm.MockResponse{Content: b}
}

func TestValidFormat(t *testing.T) {
	cases := []struct {
		review string
		want   bool
	}{
		{"Line 12: off-by-one in the loop bound", true},
		{"line 3: missing semicolon\nLine 7: null check absent", true},
		{"LINE 4 : magic number", true},
		{"the loop looks wrong and naming is poor", false},
		{"", false},
		{"Line: no number here", false},
	}
	for _, tc := range cases {
		if got := ValidFormat(tc.review); got != tc.want {
			t.Errorf("ValidFormat(%q) = %v, want %v", tc.review, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	a := Analysis{
		IdentifiedProblems: []string{"a", "b", "c"},
		MissedProblems:     []string{"d"},
		// model-reported garbage, must be overwritten
		IdentifiedCount:      99,
		TotalProblems:        99,
		IdentifiedPercentage: 1.0,
	}
	a.Normalize(4)

	if a.IdentifiedCount != 3 || a.TotalProblems != 4 {
		t.Errorf("counts = %d/%d, want 3/4", a.IdentifiedCount, a.TotalProblems)
	}
	if a.IdentifiedPercentage != 75.0 {
		t.Errorf("percentage = %v, want 75", a.IdentifiedPercentage)
	}
	if !a.ReviewSufficient {
		t.Error("75% is above the sufficiency threshold")
	}
}

func TestNormalizeZeroProblems(t *testing.T) {
	var a Analysis
	a.Normalize(0)
	if a.IdentifiedPercentage != 100.0 {
		t.Errorf("percentage = %v, want 100 for zero defects", a.IdentifiedPercentage)
	}
	if !a.ReviewSufficient {
		t.Error("zero defects must grade as sufficient")
	}
}

func TestNormalizeKeepsGraderSufficient(t *testing.T) {
	a := Analysis{
		IdentifiedProblems: []string{"a"},
		MissedProblems:     []string{"b", "c", "d"},
		ReviewSufficient:   true,
	}
	a.Normalize(4)
	if a.IdentifiedPercentage != 25.0 {
		t.Errorf("percentage = %v, want 25", a.IdentifiedPercentage)
	}
	if !a.ReviewSufficient {
		t.Error("grader's sufficient verdict must survive normalization")
	}
}

func TestNormalizeCapsInventedIdentifications(t *testing.T) {
	a := Analysis{
		IdentifiedProblems: []string{"a", "b", "c", "d", "e", "f"},
	}
	a.Normalize(4)
	if a.IdentifiedCount != 4 {
		t.Errorf("count = %d, want capped at 4", a.IdentifiedCount)
	}
	if a.IdentifiedPercentage != 100.0 {
		t.Errorf("percentage = %v, must not exceed 100", a.IdentifiedPercentage)
	}
}

func TestNormalizeBelowThreshold(t *testing.T) {
	a := Analysis{
		IdentifiedProblems: []string{"a"},
		MissedProblems:     []string{"b", "c", "d"},
	}
	a.Normalize(4)
	if a.ReviewSufficient {
		t.Error("25% without a grader verdict is not sufficient")
	}
}

func TestEvaluateReview(t *testing.T) {
	known := []string{"LogicalErrors - Off-by-one error", "SyntaxErrors - Missing semicolon"}
	mock := llm.NewMockProvider(analysisResponse(t, Analysis{
		IdentifiedProblems: []string{"LogicalErrors - Off-by-one error"},
		MissedProblems:     []string{"SyntaxErrors - Missing semicolon"},
	}))

	g := NewGrader(mock, DefaultConfig())
	a, err := g.EvaluateReview(context.Background(), "class A {}", known, "Line 3: loop runs one time too many")
	if err != nil {
		t.Fatalf("EvaluateReview: %v", err)
	}
	if len(a.IdentifiedProblems) != 1 || len(a.MissedProblems) != 1 {
		t.Errorf("classification = %d identified, %d missed, want 1/1",
			len(a.IdentifiedProblems), len(a.MissedProblems))
	}

	// Grading returns the raw classification; the caller normalizes
	// against the session's defect count.
	a.Normalize(2)
	if a.IdentifiedCount != 1 || a.TotalProblems != 2 {
		t.Errorf("counts = %d/%d, want 1/2", a.IdentifiedCount, a.TotalProblems)
	}
	if a.ReviewSufficient {
		t.Error("50% without a grader verdict is not sufficient")
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "review-analysis" {
		t.Fatalf("expected review-analysis schema, got %+v", req.Schema)
	}
	if !strings.Contains(req.Messages[0].Content, "Off-by-one error") {
		t.Error("grading prompt missing known defects")
	}
}

func TestGenerateGuidance(t *testing.T) {
	mock := llm.NewMockProvider(llm.TextResponse("Look again at how the loops terminate."))

	g := NewGrader(mock, DefaultConfig())
	a := &Analysis{
		IdentifiedProblems:   []string{"x"},
		MissedProblems:       []string{"y"},
		IdentifiedCount:      1,
		TotalProblems:        2,
		IdentifiedPercentage: 50,
	}
	hint, err := g.GenerateGuidance(context.Background(), "class A {}", []string{"x", "y"}, "Line 1: x", a, 1, 3)
	if err != nil {
		t.Fatalf("GenerateGuidance: %v", err)
	}
	if hint != "Look again at how the loops terminate." {
		t.Errorf("hint = %q", hint)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "attempt 1 of 3") {
		t.Error("guidance prompt missing iteration context")
	}
}

func TestGenerateReportFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	g := NewGrader(mock, DefaultConfig())
	latest := &Analysis{
		IdentifiedProblems:   []string{"a"},
		MissedProblems:       []string{"b"},
		IdentifiedCount:      1,
		TotalProblems:        2,
		IdentifiedPercentage: 50,
	}
	report, err := g.GenerateReport(context.Background(), []string{"a", "b"}, latest, nil)
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if !strings.Contains(report, "1 of 2 defects") {
		t.Errorf("fallback report missing summary:\n%s", report)
	}
	if !strings.Contains(report, "Defects you missed") {
		t.Errorf("fallback report missing missed section:\n%s", report)
	}
}

func TestFallbackReportAllFound(t *testing.T) {
	latest := &Analysis{
		IdentifiedProblems:   []string{"a", "b"},
		IdentifiedCount:      2,
		TotalProblems:        2,
		IdentifiedPercentage: 100,
		ReviewSufficient:     true,
	}
	report := FallbackReport([]string{"a", "b"}, latest, []AttemptSummary{
		{Iteration: 1, IdentifiedCount: 1, TotalProblems: 2, IdentifiedPercentage: 50},
		{Iteration: 2, IdentifiedCount: 2, TotalProblems: 2, IdentifiedPercentage: 100},
	})
	if !strings.Contains(report, "every defect") {
		t.Errorf("report missing the all-found line:\n%s", report)
	}
	if !strings.Contains(report, "Attempt 2: 2/2") {
		t.Errorf("report missing progression:\n%s", report)
	}
}
