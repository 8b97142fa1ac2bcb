package workflow

// Routing targets returned by the condition functions.
const (
	TargetRegenerate = "regenerate_code"
	TargetReview     = "review_code"
	TargetSummary    = "generate_summary"
)

// ShouldRegenerateOrReview routes after an evaluation. The code goes back
// to regeneration while defects are missing and the attempt budget allows;
// otherwise the session proceeds to review even if the snippet is
// incomplete. A degraded snippet is still reviewable.
func ShouldRegenerateOrReview(s *State) string {
	if s.Evaluation == nil {
		return TargetReview
	}
	if !s.Evaluation.Valid && s.EvaluationAttempts < s.MaxEvaluationAttempts {
		return TargetRegenerate
	}
	return TargetReview
}

// ShouldContinueReview routes after an analysis. The session ends when the
// iteration budget is exhausted, when the last review was sufficient, or
// when the student found every defect. Like ShouldRegenerateOrReview it is
// a pure read of the state; the sufficiency flag itself is maintained by
// AnalyzeReview.
func ShouldContinueReview(s *State) string {
	if s.CurrentIteration > s.MaxIterations {
		return TargetSummary
	}
	if s.ReviewSufficient {
		return TargetSummary
	}
	if latest := s.LatestAnalysis(); latest != nil &&
		latest.TotalProblems > 0 &&
		latest.IdentifiedCount == latest.TotalProblems {
		return TargetSummary
	}
	return TargetReview
}
