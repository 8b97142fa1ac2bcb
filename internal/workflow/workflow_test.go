package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"revtrain/internal/badges"
	"revtrain/internal/codeeval"
	"revtrain/internal/codegen"
	"revtrain/internal/errorcatalog"
	"revtrain/internal/llm"
	"revtrain/internal/review"
	"revtrain/internal/store"
)

// fakeEvents records appended events and serves empty aggregates.
type fakeEvents struct {
	store.EventRepo
	practices []store.PracticeEventData
	reviews   []store.ReviewEventData
	badges    []store.BadgeEventData
}

func (f *fakeEvents) AppendPractice(_ context.Context, d store.PracticeEventData) error {
	f.practices = append(f.practices, d)
	return nil
}

func (f *fakeEvents) AppendReview(_ context.Context, d store.ReviewEventData) error {
	f.reviews = append(f.reviews, d)
	return nil
}

func (f *fakeEvents) AppendBadge(_ context.Context, d store.BadgeEventData) error {
	f.badges = append(f.badges, d)
	return nil
}

func (f *fakeEvents) StatsFor(_ context.Context, userID string) (*store.UserStats, error) {
	return &store.UserStats{UserID: userID}, nil
}

func (f *fakeEvents) HasBadge(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

var specifics = []errorcatalog.ErrorSpec{
	{Name: "Off-by-one error", Category: "LogicalErrors", Description: "Loop bound off by one"},
	{Name: "Missing semicolon", Category: "SyntaxErrors", Description: "No terminating semicolon"},
}

func codeResponse() llm.MockResponse {
	return llm.TextResponse("```java-annotated\n" +
		"public class Cart {\n" +
		"    int total; // ERROR: LOGICAL - Off-by-one error\n" +
		"}\n" +
		"```\n" +
		"```java-clean\n" +
		"public class Cart {\n" +
		"    int total;\n" +
		"}\n" +
		"```\n")
}

func evalResponse(t *testing.T, ev codeeval.Evaluation) llm.MockResponse {
	t.Helper()
	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatal(err)
	}
	return llm.MockResponse{Content: b}
}

func analysisResponse(t *testing.T, a review.Analysis) llm.MockResponse {
	t.Helper()
	b, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	return llm.MockResponse{Content: b}
}

func validEval(t *testing.T) llm.MockResponse {
	return evalResponse(t, codeeval.Evaluation{
		FoundErrors:   []string{"LogicalErrors - Off-by-one error", "SyntaxErrors - Missing semicolon"},
		MissingErrors: []string{},
	})
}

type fixture struct {
	genMock    *llm.MockProvider
	evalMock   *llm.MockProvider
	graderMock *llm.MockProvider
	events     *fakeEvents
	manager    *Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	catalog, err := errorcatalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	f := &fixture{
		genMock:    llm.NewMockProvider(),
		evalMock:   llm.NewMockProvider(),
		graderMock: llm.NewMockProvider(),
		events:     &fakeEvents{},
	}
	engine := NewEngine(
		codegen.NewGenerator(f.genMock, codegen.DefaultConfig()),
		codeeval.NewEvaluator(f.evalMock, codeeval.DefaultConfig()),
		review.NewGrader(f.graderMock, review.DefaultConfig()),
		catalog,
		nil,
	)
	f.manager = NewManager(engine, f.events, badges.NewService(f.events, nil), nil)
	return f
}

func (f *fixture) newSession(t *testing.T) *Session {
	t.Helper()
	sess, err := f.manager.NewSession(context.Background(), SessionParams{
		UserID:    "alice",
		Specifics: specifics,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return sess
}

func TestNewSessionHappyPath(t *testing.T) {
	f := newFixture(t)
	f.genMock.AddResponse(codeResponse())
	f.evalMock.AddResponse(validEval(t))

	sess := f.newSession(t)
	state := sess.State

	if state.CurrentStep != StepReview {
		t.Errorf("step = %s, want review", state.CurrentStep)
	}
	if state.EvaluationAttempts != 1 {
		t.Errorf("evaluation attempts = %d, want 1", state.EvaluationAttempts)
	}
	if state.OriginalErrorCount != 2 {
		t.Errorf("original error count = %d, want 2", state.OriginalErrorCount)
	}
	if state.CurrentIteration != 1 {
		t.Errorf("iteration = %d, want 1", state.CurrentIteration)
	}
	if strings.Contains(state.Code.Clean, "ERROR") {
		t.Error("clean code leaked a marker")
	}
	if state.Domain == "" {
		t.Error("domain not assigned")
	}
}

func TestNewSessionRegeneratesUntilValid(t *testing.T) {
	f := newFixture(t)
	f.genMock.AddResponse(codeResponse()) // initial
	f.genMock.AddResponse(codeResponse()) // regeneration
	f.evalMock.AddResponse(evalResponse(t, codeeval.Evaluation{
		FoundErrors:   []string{"LogicalErrors - Off-by-one error"},
		MissingErrors: []string{"SyntaxErrors - Missing semicolon"},
	}))
	f.evalMock.AddResponse(validEval(t))

	sess := f.newSession(t)

	if sess.State.EvaluationAttempts != 2 {
		t.Errorf("evaluation attempts = %d, want 2", sess.State.EvaluationAttempts)
	}
	if f.genMock.CallCount() != 2 {
		t.Errorf("generator calls = %d, want 2 (initial + regeneration)", f.genMock.CallCount())
	}
	if sess.State.CurrentStep != StepReview {
		t.Errorf("step = %s, want review", sess.State.CurrentStep)
	}
}

func TestNewSessionDegradesAfterMaxAttempts(t *testing.T) {
	f := newFixture(t)
	incomplete := func() llm.MockResponse {
		return evalResponse(t, codeeval.Evaluation{
			FoundErrors:   []string{"LogicalErrors - Off-by-one error"},
			MissingErrors: []string{"SyntaxErrors - Missing semicolon"},
		})
	}
	f.genMock.AddResponse(codeResponse())
	f.genMock.AddResponse(codeResponse())
	f.genMock.AddResponse(codeResponse())
	f.evalMock.AddResponse(incomplete())
	f.evalMock.AddResponse(incomplete())
	f.evalMock.AddResponse(incomplete())

	sess := f.newSession(t)
	state := sess.State

	if state.CurrentStep != StepReview {
		t.Fatalf("degraded session must still reach review, got %s", state.CurrentStep)
	}
	if state.EvaluationAttempts != 3 {
		t.Errorf("evaluation attempts = %d, want 3", state.EvaluationAttempts)
	}
	// Requested count is kept even though the snippet is incomplete.
	if state.OriginalErrorCount != 2 {
		t.Errorf("original error count = %d, want 2", state.OriginalErrorCount)
	}
}

func TestSubmitReviewRejectsMissingLineRefs(t *testing.T) {
	f := newFixture(t)
	f.genMock.AddResponse(codeResponse())
	f.evalMock.AddResponse(validEval(t))
	sess := f.newSession(t)

	_, err := f.manager.SubmitReview(context.Background(), sess, "this code looks buggy to me")
	if !errors.Is(err, ErrInvalidReviewFormat) {
		t.Fatalf("err = %v, want ErrInvalidReviewFormat", err)
	}
	if len(sess.State.ReviewHistory) != 0 {
		t.Error("rejected submission must not enter history")
	}
	if sess.State.CurrentIteration != 1 {
		t.Error("rejected submission must not consume an iteration")
	}
}

func TestSubmitReviewInsufficientGetsGuidance(t *testing.T) {
	f := newFixture(t)
	f.genMock.AddResponse(codeResponse())
	f.evalMock.AddResponse(validEval(t))
	sess := f.newSession(t)

	f.graderMock.AddResponse(analysisResponse(t, review.Analysis{
		IdentifiedProblems: []string{"LogicalErrors - Off-by-one error"},
		MissedProblems:     []string{"SyntaxErrors - Missing semicolon"},
	}))
	f.graderMock.AddResponse(llm.TextResponse("Check the statement endings."))

	result, err := f.manager.SubmitReview(context.Background(), sess, "Line 2: off by one in total")
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if result.Completed {
		t.Fatal("50% must not complete the session")
	}
	if result.Attempt.TargetedGuidance != "Check the statement endings." {
		t.Errorf("guidance = %q", result.Attempt.TargetedGuidance)
	}
	if result.IterationsRemaining != 2 {
		t.Errorf("iterations remaining = %d, want 2", result.IterationsRemaining)
	}

	state := sess.State
	if state.CurrentIteration != 2 {
		t.Errorf("iteration = %d, want 2", state.CurrentIteration)
	}
	if len(state.ReviewHistory) != state.CurrentIteration-1 {
		t.Errorf("history length %d != iteration-1 %d", len(state.ReviewHistory), state.CurrentIteration-1)
	}
	if len(f.events.reviews) != 1 {
		t.Errorf("review events = %d, want 1", len(f.events.reviews))
	}
}

func TestSubmitReviewSufficientCompletes(t *testing.T) {
	f := newFixture(t)
	f.genMock.AddResponse(codeResponse())
	f.evalMock.AddResponse(validEval(t))
	sess := f.newSession(t)

	f.graderMock.AddResponse(analysisResponse(t, review.Analysis{
		IdentifiedProblems: []string{"LogicalErrors - Off-by-one error", "SyntaxErrors - Missing semicolon"},
		MissedProblems:     []string{},
	}))
	f.graderMock.AddResponse(llm.TextResponse("# Report\nFlawless."))

	result, err := f.manager.SubmitReview(context.Background(), sess, "Line 2: off by one\nLine 3: missing semicolon")
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}
	if !result.Completed {
		t.Fatal("full identification must complete the session")
	}
	if result.Report == "" {
		t.Error("completed session must carry a report")
	}
	if sess.State.CurrentStep != StepComplete {
		t.Errorf("step = %s, want complete", sess.State.CurrentStep)
	}

	if len(f.events.practices) != 1 {
		t.Fatalf("practice events = %d, want 1", len(f.events.practices))
	}
	p := f.events.practices[0]
	if p.IdentifiedCount != 2 || p.ErrorCount != 2 || !p.Sufficient {
		t.Errorf("practice event = %+v", p)
	}

	var pointEvents int
	for _, b := range f.events.badges {
		if b.Kind == "points" {
			pointEvents++
		}
	}
	if pointEvents != 1 {
		t.Errorf("point events = %d, want 1", pointEvents)
	}

	if _, err := f.manager.SubmitReview(context.Background(), sess, "Line 1: anything"); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("post-completion submission err = %v, want ErrSessionComplete", err)
	}
}

func TestSubmitReviewExhaustsIterations(t *testing.T) {
	f := newFixture(t)
	f.genMock.AddResponse(codeResponse())
	f.evalMock.AddResponse(validEval(t))
	sess := f.newSession(t)

	weak := func() llm.MockResponse {
		return analysisResponse(t, review.Analysis{
			IdentifiedProblems: []string{},
			MissedProblems:     []string{"LogicalErrors - Off-by-one error", "SyntaxErrors - Missing semicolon"},
		})
	}

	// Attempts 1 and 2: analysis + guidance.
	f.graderMock.AddResponse(weak())
	f.graderMock.AddResponse(llm.TextResponse("hint 1"))
	f.graderMock.AddResponse(weak())
	f.graderMock.AddResponse(llm.TextResponse("hint 2"))
	// Attempt 3: analysis + report, no guidance on the last iteration.
	f.graderMock.AddResponse(weak())
	f.graderMock.AddResponse(llm.TextResponse("# Report"))

	var result *SubmitResult
	var err error
	for i := 1; i <= 3; i++ {
		result, err = f.manager.SubmitReview(context.Background(), sess, "Line 1: something vague")
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if i < 3 && result.Completed {
			t.Fatalf("session completed early at attempt %d", i)
		}
	}

	if !result.Completed {
		t.Fatal("third attempt must complete the session")
	}
	if sess.State.ReviewSufficient {
		t.Error("0% identification is not sufficient")
	}
	if len(sess.State.ReviewHistory) != 3 {
		t.Errorf("history length = %d, want 3", len(sess.State.ReviewHistory))
	}
	last := sess.State.ReviewHistory[2]
	if last.TargetedGuidance != "" {
		t.Error("no guidance after the final iteration")
	}
	if f.events.practices[0].Sufficient {
		t.Error("practice event must record an insufficient session")
	}
}

func TestSubmitReviewGradingFailureKeepsIteration(t *testing.T) {
	f := newFixture(t)
	f.genMock.AddResponse(codeResponse())
	f.evalMock.AddResponse(validEval(t))
	sess := f.newSession(t)

	f.graderMock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})

	if _, err := f.manager.SubmitReview(context.Background(), sess, "Line 2: off by one"); err == nil {
		t.Fatal("expected grading failure to surface")
	}
	if len(sess.State.ReviewHistory) != 0 {
		t.Error("failed grading must not leave the attempt in history")
	}
	if sess.State.CurrentIteration != 1 {
		t.Error("failed grading must not consume an iteration")
	}

	// Resubmission works once the grader recovers.
	f.graderMock.AddResponse(analysisResponse(t, review.Analysis{
		IdentifiedProblems: []string{"LogicalErrors - Off-by-one error", "SyntaxErrors - Missing semicolon"},
	}))
	f.graderMock.AddResponse(llm.TextResponse("# Report"))

	result, err := f.manager.SubmitReview(context.Background(), sess, "Line 2: off by one\nLine 3: semicolon")
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if !result.Completed {
		t.Error("recovered submission must grade normally")
	}
}

func TestShouldRegenerateOrReview(t *testing.T) {
	s := &State{MaxEvaluationAttempts: 3}

	if got := ShouldRegenerateOrReview(s); got != TargetReview {
		t.Errorf("nil evaluation: %s, want review", got)
	}

	s.Evaluation = &codeeval.Evaluation{Valid: false}
	s.EvaluationAttempts = 1
	if got := ShouldRegenerateOrReview(s); got != TargetRegenerate {
		t.Errorf("invalid with budget: %s, want regenerate", got)
	}

	s.EvaluationAttempts = 3
	if got := ShouldRegenerateOrReview(s); got != TargetReview {
		t.Errorf("invalid without budget: %s, want review", got)
	}

	s.Evaluation.Valid = true
	s.EvaluationAttempts = 1
	if got := ShouldRegenerateOrReview(s); got != TargetReview {
		t.Errorf("valid: %s, want review", got)
	}
}

func TestShouldContinueReview(t *testing.T) {
	s := &State{CurrentIteration: 2, MaxIterations: 3}
	s.ReviewHistory = []ReviewAttempt{{
		IterationNumber: 1,
		Analysis: &review.Analysis{
			IdentifiedProblems:   []string{"a"},
			IdentifiedCount:      1,
			TotalProblems:        4,
			IdentifiedPercentage: 25,
		},
	}}
	if got := ShouldContinueReview(s); got != TargetReview {
		t.Errorf("insufficient mid-budget: %s, want review", got)
	}

	s.CurrentIteration = 4
	if got := ShouldContinueReview(s); got != TargetSummary {
		t.Errorf("budget exhausted: %s, want summary", got)
	}

	s.CurrentIteration = 2
	s.ReviewSufficient = true
	if got := ShouldContinueReview(s); got != TargetSummary {
		t.Errorf("sufficient: %s, want summary", got)
	}

	s.ReviewSufficient = false
	s.ReviewHistory[0].Analysis.IdentifiedCount = 4
	s.ReviewHistory[0].Analysis.TotalProblems = 4
	if got := ShouldContinueReview(s); got != TargetSummary {
		t.Errorf("all identified: %s, want summary", got)
	}
	if s.ReviewSufficient {
		t.Error("condition functions must not mutate state")
	}
	if got := ShouldContinueReview(s); got != TargetSummary {
		t.Errorf("repeated call: %s, want summary", got)
	}
}

func TestNewSessionHardDifficultyCapsDefectCount(t *testing.T) {
	f := newFixture(t)
	allCategories := []string{
		"LogicalErrors", "SyntaxErrors", "CodeQualityErrors",
		"StandardViolation", "JavaSpecificErrors",
	}

	// Category sampling is random; repeat to cover pools larger than the
	// difficulty-derived count.
	for i := 0; i < 30; i++ {
		f.genMock.AddResponse(codeResponse())
		f.evalMock.AddResponse(validEval(t))

		sess, err := f.manager.NewSession(context.Background(), SessionParams{
			UserID:     "alice",
			Difficulty: errorcatalog.DifficultyHard,
			Categories: allCategories,
		})
		if err != nil {
			t.Fatalf("NewSession: %v", err)
		}
		state := sess.State

		if state.OriginalErrorCount > 6 {
			t.Fatalf("original error count = %d, hard difficulty injects at most 6", state.OriginalErrorCount)
		}
		if got := len(state.Code.RequestedErrors); got != state.OriginalErrorCount {
			t.Fatalf("requested errors = %d, original count = %d, must match", got, state.OriginalErrorCount)
		}
		if state.Code.ExpectedErrorCount != state.OriginalErrorCount {
			t.Fatalf("expected count = %d, original count = %d, must match",
				state.Code.ExpectedErrorCount, state.OriginalErrorCount)
		}
	}
}

func TestSubmitReviewDegradedSessionScoresAgainstRequestedCount(t *testing.T) {
	f := newFixture(t)

	four := []errorcatalog.ErrorSpec{
		{Name: "Off-by-one error", Category: "LogicalErrors"},
		{Name: "Missing semicolon", Category: "SyntaxErrors"},
		{Name: "Magic numbers", Category: "CodeQualityErrors"},
		{Name: "Unclosed resource", Category: "JavaSpecificErrors"},
	}
	// Verification only ever confirms two of the four requested defects.
	partial := func() llm.MockResponse {
		return evalResponse(t, codeeval.Evaluation{
			FoundErrors: []string{
				"LogicalErrors - Off-by-one error",
				"SyntaxErrors - Missing semicolon",
			},
			MissingErrors: []string{
				"CodeQualityErrors - Magic numbers",
				"JavaSpecificErrors - Unclosed resource",
			},
		})
	}
	for i := 0; i < 3; i++ {
		f.genMock.AddResponse(codeResponse())
		f.evalMock.AddResponse(partial())
	}

	sess, err := f.manager.NewSession(context.Background(), SessionParams{
		UserID:    "alice",
		Specifics: four,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if sess.State.OriginalErrorCount != 4 {
		t.Fatalf("original error count = %d, want 4", sess.State.OriginalErrorCount)
	}

	// The student finds both defects the grader knows about. That is still
	// only half of what the session asked for.
	f.graderMock.AddResponse(analysisResponse(t, review.Analysis{
		IdentifiedProblems: []string{
			"LogicalErrors - Off-by-one error",
			"SyntaxErrors - Missing semicolon",
		},
		MissedProblems: []string{},
	}))
	f.graderMock.AddResponse(llm.TextResponse("Two more defects are hiding."))

	result, err := f.manager.SubmitReview(context.Background(), sess, "Line 2: off by one\nLine 3: semicolon")
	if err != nil {
		t.Fatalf("SubmitReview: %v", err)
	}

	a := result.Attempt.Analysis
	if a.IdentifiedCount != 2 || a.TotalProblems != 4 {
		t.Errorf("counts = %d/%d, want 2/4", a.IdentifiedCount, a.TotalProblems)
	}
	if a.IdentifiedPercentage != 50.0 {
		t.Errorf("percentage = %v, want 50", a.IdentifiedPercentage)
	}
	if a.ReviewSufficient {
		t.Error("50% is below the sufficiency threshold")
	}
	if result.Completed {
		t.Error("half the requested defects must not complete the session")
	}
	if result.Attempt.TargetedGuidance == "" {
		t.Error("insufficient review must carry guidance")
	}
}
