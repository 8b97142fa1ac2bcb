// Package badges awards points and badges for completed practice sessions
// and serves the leaderboard. Every award is an appended event; totals are
// aggregates over the event log, never a mutable counter.
package badges

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"revtrain/internal/store"
)

// SessionResult is everything the award rules need from a finished session.
type SessionResult struct {
	SessionID       string
	UserID          string
	Difficulty      string
	ErrorCount      int
	IdentifiedCount int
	Accuracy        float64
	IterationsUsed  int
	Sufficient      bool

	// Identified and Missed carry "Category - Name" defect labels. The
	// category prefix feeds the per-category statistics.
	Identified []string
	Missed     []string
}

// Award is one badge or point grant produced by a session.
type Award struct {
	Kind    string `json:"kind"` // "points" or "badge"
	BadgeID string `json:"badge_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Points  int    `json:"points"`
	Reason  string `json:"reason"`
}

// Badge definitions. All IDs are stable; granting is idempotent per user.
var badgeNames = map[string]string{
	"first-review":    "First Review",
	"perfect-review":  "Bug Hunter",
	"reviews-5":       "Getting Serious",
	"reviews-25":      "Review Veteran",
	"points-100":      "Centurion",
	"points-500":      "Point Collector",
	"hard-difficulty": "No Training Wheels",
}

// Service applies the award rules. It has no state of its own; everything
// is derived from and written to the event repo.
type Service struct {
	events store.EventRepo
	log    *slog.Logger
}

func NewService(events store.EventRepo, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{events: events, log: log}
}

// basePoints scores a session: 10 points per identified defect, doubled on
// hard difficulty, plus a bonus when the review was sufficient.
func basePoints(r SessionResult) (int, string) {
	points := r.IdentifiedCount * 10
	if r.Difficulty == "hard" {
		points *= 2
	}
	reason := fmt.Sprintf("identified %d of %d defects", r.IdentifiedCount, r.ErrorCount)
	if r.Sufficient {
		points += 25
		reason += ", review sufficient"
	}
	return points, reason
}

// ProcessSessionResults records the session's points, per-category stats
// and any newly earned badges, and returns the awards for display.
func (s *Service) ProcessSessionResults(ctx context.Context, r SessionResult) ([]Award, error) {
	var awards []Award

	points, reason := basePoints(r)
	if points > 0 {
		if err := s.events.AppendBadge(ctx, store.BadgeEventData{
			UserID: r.UserID,
			Kind:   "points",
			Points: points,
			Reason: reason,
		}); err != nil {
			return nil, fmt.Errorf("record points: %w", err)
		}
		awards = append(awards, Award{Kind: "points", Points: points, Reason: reason})
	}

	if err := s.recordCategoryStats(ctx, r); err != nil {
		return nil, err
	}

	badgeAwards, err := s.grantBadges(ctx, r)
	if err != nil {
		return nil, err
	}
	awards = append(awards, badgeAwards...)

	s.log.Info("session results processed",
		"user", r.UserID,
		"points", points,
		"badges", len(badgeAwards))
	return awards, nil
}

// recordCategoryStats appends one category event per defect, so accuracy
// per category can be aggregated later.
func (s *Service) recordCategoryStats(ctx context.Context, r SessionResult) error {
	record := func(label, outcome string) error {
		return s.events.AppendBadge(ctx, store.BadgeEventData{
			UserID:   r.UserID,
			Kind:     "category",
			Reason:   outcome,
			Category: categoryOf(label),
		})
	}
	for _, label := range r.Identified {
		if err := record(label, "identified"); err != nil {
			return fmt.Errorf("record category stat: %w", err)
		}
	}
	for _, label := range r.Missed {
		if err := record(label, "missed"); err != nil {
			return fmt.Errorf("record category stat: %w", err)
		}
	}
	return nil
}

func (s *Service) grantBadges(ctx context.Context, r SessionResult) ([]Award, error) {
	stats, err := s.events.StatsFor(ctx, r.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user stats: %w", err)
	}

	var candidates []struct {
		id     string
		reason string
	}
	add := func(id, reason string) {
		candidates = append(candidates, struct {
			id     string
			reason string
		}{id, reason})
	}

	add("first-review", "completed a first practice session")
	if r.ErrorCount > 0 && r.IdentifiedCount == r.ErrorCount {
		add("perfect-review", "identified every defect in a session")
	}
	if r.Difficulty == "hard" && r.Sufficient {
		add("hard-difficulty", "passed a hard-difficulty session")
	}
	if stats.Sessions >= 5 {
		add("reviews-5", "completed 5 practice sessions")
	}
	if stats.Sessions >= 25 {
		add("reviews-25", "completed 25 practice sessions")
	}
	if stats.Points >= 100 {
		add("points-100", "reached 100 points")
	}
	if stats.Points >= 500 {
		add("points-500", "reached 500 points")
	}

	var awards []Award
	for _, c := range candidates {
		has, err := s.events.HasBadge(ctx, r.UserID, c.id)
		if err != nil {
			return nil, fmt.Errorf("check badge %s: %w", c.id, err)
		}
		if has {
			continue
		}
		if err := s.events.AppendBadge(ctx, store.BadgeEventData{
			UserID:  r.UserID,
			Kind:    "badge",
			BadgeID: c.id,
			Reason:  c.reason,
		}); err != nil {
			return nil, fmt.Errorf("grant badge %s: %w", c.id, err)
		}
		awards = append(awards, Award{
			Kind:    "badge",
			BadgeID: c.id,
			Name:    badgeNames[c.id],
			Reason:  c.reason,
		})
	}
	return awards, nil
}

// Leaderboard returns the top users by points.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]store.LeaderboardRow, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.events.Leaderboard(ctx, limit)
}

// StatsFor returns one user's aggregated profile.
func (s *Service) StatsFor(ctx context.Context, userID string) (*store.UserStats, error) {
	return s.events.StatsFor(ctx, userID)
}

// CategoryStatsFor returns per-category identification rates.
func (s *Service) CategoryStatsFor(ctx context.Context, userID string) ([]store.CategoryStat, error) {
	return s.events.CategoryStatsFor(ctx, userID)
}

// BadgeName resolves a badge ID to its display name.
func BadgeName(id string) string {
	if name, ok := badgeNames[id]; ok {
		return name
	}
	return id
}

func categoryOf(label string) string {
	if i := strings.Index(label, " - "); i > 0 {
		return label[:i]
	}
	return "Unknown"
}
