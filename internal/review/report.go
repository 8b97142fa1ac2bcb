package review

import (
	"context"
	"fmt"
	"strings"

	"revtrain/internal/llm"
)

// AttemptSummary is one review iteration condensed for reporting.
type AttemptSummary struct {
	Iteration            int
	IdentifiedCount      int
	TotalProblems        int
	IdentifiedPercentage float64
}

const reportSystem = `You are a Java code review instructor writing a final session report for a student. Summarize what they found, explain what they missed and why each missed defect matters, and give concrete advice for the next session. Use markdown with clear sections. Be constructive; this is training, not a performance review.`

// GenerateReport writes the end-of-session comparison report. When the LLM
// call fails the deterministic FallbackReport is returned instead, so a
// session always ends with a report.
func (g *Grader) GenerateReport(ctx context.Context, foundErrors []string, latest *Analysis, history []AttemptSummary) (string, error) {
	ctx = llm.WithPurpose(ctx, "comparison-report")

	var b strings.Builder
	b.WriteString("Defects that were in the code:\n\n")
	for i, e := range foundErrors {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e)
	}
	b.WriteString("\nFinal review result:\n")
	fmt.Fprintf(&b, "- identified %d of %d (%.1f%%)\n", latest.IdentifiedCount, latest.TotalProblems, latest.IdentifiedPercentage)
	b.WriteString("- identified: " + strings.Join(latest.IdentifiedProblems, "; ") + "\n")
	b.WriteString("- missed: " + strings.Join(latest.MissedProblems, "; ") + "\n")
	if len(history) > 1 {
		b.WriteString("\nProgression across attempts:\n")
		for _, h := range history {
			fmt.Fprintf(&b, "- attempt %d: %d/%d (%.1f%%)\n", h.Iteration, h.IdentifiedCount, h.TotalProblems, h.IdentifiedPercentage)
		}
	}
	b.WriteString("\nWrite the final session report.")

	resp, err := g.summary.Generate(ctx, llm.Request{
		System: reportSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		MaxTokens:   2048,
		Temperature: 0.4,
	})
	if err != nil {
		return FallbackReport(foundErrors, latest, history), nil
	}

	report := strings.TrimSpace(resp.Text())
	if report == "" {
		return FallbackReport(foundErrors, latest, history), nil
	}
	return report, nil
}

// FallbackReport builds the report without an LLM. It states the same facts
// the generated report would, in fixed form.
func FallbackReport(foundErrors []string, latest *Analysis, history []AttemptSummary) string {
	var b strings.Builder

	b.WriteString("# Review Session Report\n\n")
	fmt.Fprintf(&b, "You identified %d of %d defects (%.1f%%).\n\n",
		latest.IdentifiedCount, latest.TotalProblems, latest.IdentifiedPercentage)

	if len(latest.IdentifiedProblems) > 0 {
		b.WriteString("## Defects you found\n\n")
		for _, p := range latest.IdentifiedProblems {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	}

	if len(latest.MissedProblems) > 0 {
		b.WriteString("## Defects you missed\n\n")
		for _, p := range latest.MissedProblems {
			fmt.Fprintf(&b, "- %s\n", p)
		}
		b.WriteString("\n")
	} else {
		b.WriteString("You found every defect in the code. Well done.\n\n")
	}

	if len(history) > 1 {
		b.WriteString("## Progress across attempts\n\n")
		for _, h := range history {
			fmt.Fprintf(&b, "- Attempt %d: %d/%d (%.1f%%)\n",
				h.Iteration, h.IdentifiedCount, h.TotalProblems, h.IdentifiedPercentage)
		}
		b.WriteString("\n")
	}

	b.WriteString("## All defects in this snippet\n\n")
	for i, e := range foundErrors {
		fmt.Fprintf(&b, "%d. %s\n", i+1, e)
	}

	return b.String()
}
