package llm

import "context"

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose tags the context with a label describing what the call is
// for. The logging middleware stores the label alongside the recorded
// request so usage can be broken down per call site. Labels in use:
// code-gen, code-regen, code-eval, review-analysis, guidance,
// comparison-report.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, or "unknown" when none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
