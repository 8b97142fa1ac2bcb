package review

import (
	"context"
	"fmt"
	"strings"

	"revtrain/internal/llm"
)

const guidanceSystem = `You are a patient Java mentor. A student missed some defects in a code review and has remaining attempts. Write short, encouraging guidance that steers them toward the KINDS of problems they missed without revealing the exact defects or their lines. Never name a missed defect outright.`

// GenerateGuidance writes a hint for the next review iteration. It is called
// only while the student has iterations left and the last review was not
// sufficient.
func (g *Grader) GenerateGuidance(ctx context.Context, code string, knownProblems []string, reviewText string, analysis *Analysis, iteration, maxIterations int) (string, error) {
	ctx = llm.WithPurpose(ctx, "guidance")

	var b strings.Builder
	fmt.Fprintf(&b, "The student has completed review attempt %d of %d.\n\n", iteration, maxIterations)
	fmt.Fprintf(&b, "They identified %d of %d defects:\n", analysis.IdentifiedCount, analysis.TotalProblems)
	for _, p := range analysis.IdentifiedProblems {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString("\nThey missed:\n")
	for _, p := range analysis.MissedProblems {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	b.WriteString("\nTheir review:\n\n")
	b.WriteString(reviewText)
	b.WriteString("\n\nCode:\n\n```java\n")
	b.WriteString(code)
	b.WriteString("\n```\n\nWrite 2-4 sentences of guidance. Point at problem categories and code regions, never at specific defects or line numbers of missed defects.")

	resp, err := g.summary.Generate(ctx, llm.Request{
		System: guidanceSystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		MaxTokens:   1024,
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}
