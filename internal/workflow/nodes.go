package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"revtrain/internal/codeeval"
	"revtrain/internal/codegen"
	"revtrain/internal/errorcatalog"
	"revtrain/internal/review"
)

// Engine runs the workflow nodes against a State. Node failures are
// captured in State.Error instead of aborting: a practice session degrades
// rather than dies.
type Engine struct {
	generator *codegen.Generator
	evaluator *codeeval.Evaluator
	grader    *review.Grader
	catalog   *errorcatalog.Catalog
	log       *slog.Logger
}

func NewEngine(gen *codegen.Generator, eval *codeeval.Evaluator, grader *review.Grader, catalog *errorcatalog.Catalog, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		generator: gen,
		evaluator: eval,
		grader:    grader,
		catalog:   catalog,
		log:       log,
	}
}

// GenerateCode produces the initial snippet. It resets the evaluation loop
// so a fresh generation always starts from attempt zero.
func (e *Engine) GenerateCode(ctx context.Context, s *State) {
	s.EvaluationAttempts = 0
	s.Evaluation = nil
	s.RegenerationFeedback = ""
	s.Error = ""
	s.CurrentStep = StepGenerate

	if s.Domain == "" {
		s.Domain = codegen.Domains[rand.IntN(len(codegen.Domains))]
	}

	required := s.Selection.Count
	if len(s.Selection.Specifics) > 0 {
		required = len(s.Selection.Specifics)
	} else if required <= 0 {
		required = s.Difficulty.BaseErrorCount()
	}

	sel := s.Selection
	sel.Count = required
	sel.Difficulty = s.Difficulty

	selected, _ := e.catalog.ErrorsForLLM(sel)
	if len(selected) == 0 {
		s.Error = "no errors available for the requested selection"
		return
	}
	// The catalog widens its sampling on hard difficulty; the session is
	// injected with and scored against exactly the required count. A
	// short selection is accepted and lowers the count instead.
	if len(selected) > required {
		selected = selected[:required]
	}

	versions, err := e.generator.Generate(ctx, codegen.GenerateInput{
		Length:     s.Length,
		Difficulty: s.Difficulty,
		Domain:     s.Domain,
		Errors:     selected,
	})
	if err != nil {
		s.Error = fmt.Sprintf("code generation failed: %v", err)
		e.log.Error("code generation failed", "error", err, "domain", s.Domain)
		return
	}

	s.Code = &CodeSnippet{
		Annotated:          versions.Annotated,
		Clean:              versions.Clean,
		RequestedErrors:    selected,
		ExpectedErrorCount: len(selected),
	}
	s.OriginalErrorCount = len(selected)
	s.CurrentStep = StepEvaluate

	e.log.Info("code generated",
		"domain", s.Domain,
		"difficulty", s.Difficulty,
		"errors", len(selected))
}

// EvaluateCode verifies the snippet contains every requested defect and
// prepares regeneration feedback when it does not. Each call consumes one
// evaluation attempt.
func (e *Engine) EvaluateCode(ctx context.Context, s *State) {
	if s.Code == nil {
		s.Error = "no code to evaluate"
		return
	}
	s.CurrentStep = StepEvaluate
	s.EvaluationAttempts++

	ev, err := e.evaluator.Evaluate(ctx, s.Code.Annotated, s.Code.RequestedErrors)
	if err != nil {
		s.Error = fmt.Sprintf("code evaluation failed: %v", err)
		e.log.Error("code evaluation failed", "error", err, "attempt", s.EvaluationAttempts)
		return
	}

	s.Evaluation = ev
	s.Error = ""

	if !ev.Valid {
		s.RegenerationFeedback = codegen.RegenerationPrompt(
			s.Code.Annotated, s.Domain, ev.MissingErrors, ev.FoundErrors, s.Code.RequestedErrors)
	}

	e.log.Info("code evaluated",
		"attempt", s.EvaluationAttempts,
		"valid", ev.Valid,
		"found", len(ev.FoundErrors),
		"missing", len(ev.MissingErrors))
}

// RegenerateCode repairs the snippet using the feedback prompt built by the
// last evaluation.
func (e *Engine) RegenerateCode(ctx context.Context, s *State) {
	if s.RegenerationFeedback == "" {
		s.Error = "regeneration requested without feedback"
		return
	}
	s.CurrentStep = StepRegenerate

	versions, err := e.generator.Regenerate(ctx, s.RegenerationFeedback)
	if err != nil {
		s.Error = fmt.Sprintf("code regeneration failed: %v", err)
		e.log.Error("code regeneration failed", "error", err, "attempt", s.EvaluationAttempts)
		return
	}

	s.Code.Annotated = versions.Annotated
	s.Code.Clean = versions.Clean
	s.Error = ""
	s.CurrentStep = StepEvaluate
}

// AnalyzeReview grades the newest review attempt, attaches guidance when
// the student has iterations left, and advances the iteration counter.
// Grading failures leave the iteration counter untouched so the attempt
// can be resubmitted without penalty.
func (e *Engine) AnalyzeReview(ctx context.Context, s *State) {
	if len(s.ReviewHistory) == 0 {
		s.Error = "no review to analyze"
		return
	}
	s.CurrentStep = StepAnalyze

	attempt := &s.ReviewHistory[len(s.ReviewHistory)-1]
	known := s.KnownProblems()

	analysis, err := e.grader.EvaluateReview(ctx, s.Code.Clean, known, attempt.StudentReview)
	if err != nil {
		s.Error = fmt.Sprintf("review analysis failed: %v", err)
		s.ReviewHistory = s.ReviewHistory[:len(s.ReviewHistory)-1]
		e.log.Error("review analysis failed", "error", err, "iteration", s.CurrentIteration)
		return
	}

	// Grade against the session's authoritative defect count, not the
	// length of whatever list the evaluator produced.
	analysis.Normalize(s.OriginalErrorCount)
	attempt.Analysis = analysis
	s.Error = ""

	if analysis.ReviewSufficient {
		s.ReviewSufficient = true
	}

	if !analysis.ReviewSufficient && s.CurrentIteration < s.MaxIterations {
		hint, err := e.grader.GenerateGuidance(ctx, s.Code.Clean, known, attempt.StudentReview,
			analysis, s.CurrentIteration, s.MaxIterations)
		if err != nil {
			e.log.Warn("guidance generation failed", "error", err, "iteration", s.CurrentIteration)
		} else {
			attempt.TargetedGuidance = hint
		}
	}

	s.CurrentIteration++

	e.log.Info("review analyzed",
		"iteration", attempt.IterationNumber,
		"identified", analysis.IdentifiedCount,
		"total", analysis.TotalProblems,
		"sufficient", analysis.ReviewSufficient)
}
