// Package workflow orchestrates one practice session: generate defective
// Java code, verify the injection, collect student reviews over several
// iterations, and close with a comparison report.
package workflow

import (
	"revtrain/internal/codeeval"
	"revtrain/internal/errorcatalog"
	"revtrain/internal/review"
)

// Step names the workflow position. It mirrors the node that ran last.
type Step string

const (
	StepGenerate   Step = "generate"
	StepEvaluate   Step = "evaluate"
	StepRegenerate Step = "regenerate"
	StepReview     Step = "review"
	StepAnalyze    Step = "analyze"
	StepComplete   Step = "complete"
)

// CodeSnippet is the generated Java under review.
type CodeSnippet struct {
	// Annotated carries "// ERROR:" markers; never shown to the student.
	Annotated string `json:"annotated"`

	// Clean is what the student reviews.
	Clean string `json:"clean"`

	// RequestedErrors is the defect list the snippet was built from.
	RequestedErrors []errorcatalog.ErrorSpec `json:"requested_errors"`

	// ExpectedErrorCount is how many defects the snippet is supposed
	// to contain after generation settles. It can drop below the
	// original request when the catalog yields fewer errors.
	ExpectedErrorCount int `json:"expected_error_count"`
}

// ReviewAttempt records one student review iteration.
type ReviewAttempt struct {
	IterationNumber  int              `json:"iteration_number"`
	StudentReview    string           `json:"student_review"`
	Analysis         *review.Analysis `json:"analysis,omitempty"`
	TargetedGuidance string           `json:"targeted_guidance,omitempty"`
}

// State is the full mutable state of one practice session. Nodes read and
// write it; the conditions derive routing decisions from it without
// mutating anything except the documented review_sufficient shortcut.
type State struct {
	// Inputs, fixed at session start.
	Length     errorcatalog.CodeLength `json:"code_length"`
	Difficulty errorcatalog.Difficulty `json:"difficulty"`
	Domain     string                  `json:"domain"`
	Selection  errorcatalog.Selection  `json:"-"`

	// Code generation.
	Code               *CodeSnippet `json:"code,omitempty"`
	OriginalErrorCount int          `json:"original_error_count"`

	// Evaluation loop.
	Evaluation            *codeeval.Evaluation `json:"evaluation,omitempty"`
	EvaluationAttempts    int                  `json:"evaluation_attempts"`
	MaxEvaluationAttempts int                  `json:"max_evaluation_attempts"`
	RegenerationFeedback  string               `json:"-"`

	// Review loop. CurrentIteration starts at 1 and is incremented after
	// each graded review, so len(ReviewHistory) == CurrentIteration-1
	// between iterations.
	ReviewHistory    []ReviewAttempt `json:"review_history"`
	CurrentIteration int             `json:"current_iteration"`
	MaxIterations    int             `json:"max_iterations"`
	ReviewSufficient bool            `json:"review_sufficient"`

	// Termination.
	ComparisonReport string `json:"comparison_report,omitempty"`

	CurrentStep Step `json:"current_step"`

	// Error carries a node failure without aborting the session.
	Error string `json:"error,omitempty"`
}

// NewState seeds a session with defaults matching a three-attempt,
// three-iteration practice run.
func NewState(length errorcatalog.CodeLength, difficulty errorcatalog.Difficulty, domain string, sel errorcatalog.Selection) *State {
	return &State{
		Length:                length,
		Difficulty:            difficulty,
		Domain:                domain,
		Selection:             sel,
		MaxEvaluationAttempts: 3,
		CurrentIteration:      1,
		MaxIterations:         3,
		CurrentStep:           StepGenerate,
	}
}

// KnownProblems returns the defect labels the grader matches reviews
// against. They come from the evaluation's found list, which reflects
// what is actually in the code rather than what was requested.
func (s *State) KnownProblems() []string {
	if s.Evaluation != nil && len(s.Evaluation.FoundErrors) > 0 {
		return s.Evaluation.FoundErrors
	}
	if s.Code == nil {
		return nil
	}
	labels := make([]string, len(s.Code.RequestedErrors))
	for i, e := range s.Code.RequestedErrors {
		labels[i] = e.Label()
	}
	return labels
}

// LatestAnalysis returns the analysis of the most recent graded attempt.
func (s *State) LatestAnalysis() *review.Analysis {
	for i := len(s.ReviewHistory) - 1; i >= 0; i-- {
		if s.ReviewHistory[i].Analysis != nil {
			return s.ReviewHistory[i].Analysis
		}
	}
	return nil
}

// AttemptSummaries condenses the review history for reporting.
func (s *State) AttemptSummaries() []review.AttemptSummary {
	var out []review.AttemptSummary
	for _, a := range s.ReviewHistory {
		if a.Analysis == nil {
			continue
		}
		out = append(out, review.AttemptSummary{
			Iteration:            a.IterationNumber,
			IdentifiedCount:      a.Analysis.IdentifiedCount,
			TotalProblems:        a.Analysis.TotalProblems,
			IdentifiedPercentage: a.Analysis.IdentifiedPercentage,
		})
	}
	return out
}
