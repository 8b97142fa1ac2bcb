package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// PracticeEventData records one completed practice session.
type PracticeEventData struct {
	SessionID       string
	UserID          string
	Difficulty      string
	ErrorCount      int
	IdentifiedCount int
	Accuracy        float64
	IterationsUsed  int
	Sufficient      bool
}

// ReviewEventData records one graded review iteration.
type ReviewEventData struct {
	SessionID            string
	UserID               string
	Iteration            int
	IdentifiedCount      int
	TotalProblems        int
	IdentifiedPercentage float64
	Sufficient           bool
}

// BadgeEventData records a point award or badge grant.
type BadgeEventData struct {
	UserID   string
	Kind     string // "points" or "badge"
	Points   int
	BadgeID  string
	Reason   string
	Category string
}

// LLMUsage aggregates token consumption per purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LeaderboardRow is one entry of the points leaderboard.
type LeaderboardRow struct {
	UserID   string
	Points   int
	Sessions int
	Badges   int
}

// UserStats aggregates one student's history.
type UserStats struct {
	UserID        string
	Points        int
	Sessions      int
	ReviewsGraded int
	BestAccuracy  float64
	Badges        []string
}

// CategoryStat aggregates per-category encounter/identification counts.
type CategoryStat struct {
	Category    string
	Encountered int
	Identified  int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendPractice records a completed practice session.
	AppendPractice(ctx context.Context, data PracticeEventData) error

	// AppendReview records a graded review iteration.
	AppendReview(ctx context.Context, data ReviewEventData) error

	// AppendBadge records a point award or badge grant.
	AppendBadge(ctx context.Context, data BadgeEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one LLM request event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// Leaderboard returns the top users by total points.
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error)

	// StatsFor aggregates one user's points, sessions and badges.
	StatsFor(ctx context.Context, userID string) (*UserStats, error)

	// CategoryStatsFor aggregates per-category identification counts.
	CategoryStatsFor(ctx context.Context, userID string) ([]CategoryStat, error)

	// HasBadge reports whether the user has already been granted a badge.
	HasBadge(ctx context.Context, userID, badgeID string) (bool, error)
}
