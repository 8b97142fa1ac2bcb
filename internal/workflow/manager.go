package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"revtrain/internal/badges"
	"revtrain/internal/errorcatalog"
	"revtrain/internal/review"
	"revtrain/internal/store"
)

var (
	// ErrInvalidReviewFormat is returned when a review has no "Line N:"
	// references. The submission consumes nothing.
	ErrInvalidReviewFormat = errors.New("review must reference specific lines, e.g. \"Line 12: ...\"")

	// ErrSessionComplete is returned for submissions after termination.
	ErrSessionComplete = errors.New("practice session already completed")

	// ErrGenerationFailed is returned when no reviewable code could be
	// produced at session start.
	ErrGenerationFailed = errors.New("code generation failed")
)

// SessionParams configures a new practice session. Zero values fall back
// to a medium four-defect session with a random domain.
type SessionParams struct {
	UserID     string
	Length     errorcatalog.CodeLength
	Difficulty errorcatalog.Difficulty
	Domain     string
	Categories []string
	Specifics  []errorcatalog.ErrorSpec
	ErrorCount int
}

// Session pairs a workflow state with its identity.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	State     *State    `json:"state"`
}

// SubmitResult is what a student gets back for one review submission.
type SubmitResult struct {
	Attempt   ReviewAttempt  `json:"attempt"`
	Completed bool           `json:"completed"`
	Report    string         `json:"report,omitempty"`
	Awards    []badges.Award `json:"awards,omitempty"`

	// IterationsRemaining counts submissions still available after this
	// one. Zero once the session is complete.
	IterationsRemaining int `json:"iterations_remaining"`
}

// Manager drives sessions through the workflow and persists their outcomes.
type Manager struct {
	engine *Engine
	events store.EventRepo
	badges *badges.Service
	log    *slog.Logger
}

func NewManager(engine *Engine, events store.EventRepo, badgeSvc *badges.Service, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		engine: engine,
		events: events,
		badges: badgeSvc,
		log:    log,
	}
}

// NewSession generates a snippet and runs the evaluate/regenerate loop
// until the code is ready for review. The session that comes back is
// always in the review step; generation failures abort session creation.
func (m *Manager) NewSession(ctx context.Context, params SessionParams) (*Session, error) {
	if params.Length == "" {
		params.Length = errorcatalog.LengthMedium
	}
	if params.Difficulty == "" {
		params.Difficulty = errorcatalog.DifficultyMedium
	}

	sel := errorcatalog.Selection{
		Categories: params.Categories,
		Specifics:  params.Specifics,
		Count:      params.ErrorCount,
		Difficulty: params.Difficulty,
	}
	state := NewState(params.Length, params.Difficulty, params.Domain, sel)

	m.engine.GenerateCode(ctx, state)
	if state.Code == nil {
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, state.Error)
	}

	for {
		m.engine.EvaluateCode(ctx, state)
		if state.Evaluation == nil {
			// Evaluation itself failed. The snippet is unverified but
			// present, so the session proceeds to review as-is.
			m.log.Warn("proceeding with unverified code", "error", state.Error)
			break
		}
		if ShouldRegenerateOrReview(state) == TargetReview {
			break
		}
		m.engine.RegenerateCode(ctx, state)
		if state.CurrentStep != StepEvaluate {
			// Regeneration failed. Keep the previous snippet.
			m.log.Warn("regeneration failed, keeping previous code", "error", state.Error)
			break
		}
	}

	state.Error = ""
	state.CurrentStep = StepReview

	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    params.UserID,
		CreatedAt: time.Now().UTC(),
		State:     state,
	}
	m.log.Info("session created",
		"session", sess.ID,
		"user", sess.UserID,
		"difficulty", state.Difficulty,
		"errors", state.OriginalErrorCount,
		"eval_attempts", state.EvaluationAttempts)
	return sess, nil
}

// SubmitReview grades one student review. An unparseable review is
// rejected before any grading and does not consume an iteration; the same
// holds when grading itself fails.
func (m *Manager) SubmitReview(ctx context.Context, sess *Session, reviewText string) (*SubmitResult, error) {
	state := sess.State
	if state.CurrentStep == StepComplete {
		return nil, ErrSessionComplete
	}
	if !review.ValidFormat(reviewText) {
		return nil, ErrInvalidReviewFormat
	}

	state.ReviewHistory = append(state.ReviewHistory, ReviewAttempt{
		IterationNumber: state.CurrentIteration,
		StudentReview:   reviewText,
	})

	m.engine.AnalyzeReview(ctx, state)
	if state.Error != "" {
		err := errors.New(state.Error)
		state.Error = ""
		return nil, err
	}

	attempt := state.ReviewHistory[len(state.ReviewHistory)-1]
	analysis := attempt.Analysis

	if err := m.events.AppendReview(ctx, store.ReviewEventData{
		SessionID:            sess.ID,
		UserID:               sess.UserID,
		Iteration:            attempt.IterationNumber,
		IdentifiedCount:      analysis.IdentifiedCount,
		TotalProblems:        analysis.TotalProblems,
		IdentifiedPercentage: analysis.IdentifiedPercentage,
		Sufficient:           analysis.ReviewSufficient,
	}); err != nil {
		m.log.Warn("failed to record review event", "error", err)
	}

	result := &SubmitResult{Attempt: attempt}

	if ShouldContinueReview(state) == TargetSummary {
		if err := m.finish(ctx, sess, result); err != nil {
			return nil, err
		}
		return result, nil
	}

	state.CurrentStep = StepReview
	result.IterationsRemaining = state.MaxIterations - state.CurrentIteration + 1
	return result, nil
}

// finish closes the session: comparison report, practice event, awards.
func (m *Manager) finish(ctx context.Context, sess *Session, result *SubmitResult) error {
	state := sess.State
	analysis := state.LatestAnalysis()

	report, err := m.engine.grader.GenerateReport(ctx, state.KnownProblems(), analysis, state.AttemptSummaries())
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	state.ComparisonReport = report
	state.CurrentStep = StepComplete

	iterationsUsed := len(state.ReviewHistory)

	if err := m.events.AppendPractice(ctx, store.PracticeEventData{
		SessionID:       sess.ID,
		UserID:          sess.UserID,
		Difficulty:      string(state.Difficulty),
		ErrorCount:      state.OriginalErrorCount,
		IdentifiedCount: analysis.IdentifiedCount,
		Accuracy:        analysis.IdentifiedPercentage,
		IterationsUsed:  iterationsUsed,
		Sufficient:      state.ReviewSufficient,
	}); err != nil {
		m.log.Warn("failed to record practice event", "error", err)
	}

	awards, err := m.badges.ProcessSessionResults(ctx, badges.SessionResult{
		SessionID:       sess.ID,
		UserID:          sess.UserID,
		Difficulty:      string(state.Difficulty),
		ErrorCount:      state.OriginalErrorCount,
		IdentifiedCount: analysis.IdentifiedCount,
		Accuracy:        analysis.IdentifiedPercentage,
		IterationsUsed:  iterationsUsed,
		Sufficient:      state.ReviewSufficient,
		Identified:      analysis.IdentifiedProblems,
		Missed:          analysis.MissedProblems,
	})
	if err != nil {
		m.log.Warn("failed to process awards", "error", err)
	}

	result.Completed = true
	result.Report = report
	result.Awards = awards

	m.log.Info("session completed",
		"session", sess.ID,
		"user", sess.UserID,
		"identified", analysis.IdentifiedCount,
		"total", analysis.TotalProblems,
		"sufficient", state.ReviewSufficient,
		"iterations", iterationsUsed)
	return nil
}
