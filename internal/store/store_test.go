package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked only with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence not monotonic: %d after %d", n, prev)
		}
		prev = n
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "groq",
		Model:        "llama-3.3-70b-versatile",
		Purpose:      "code-gen",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "{}",
		ResponseBody: "{}",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.Purpose != "code-gen" || e.Model != "llama-3.3-70b-versatile" {
		t.Errorf("event = %+v", e)
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != e.ID {
		t.Fatalf("get returned %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown event ID")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"code-gen", "code-gen", "review-analysis"} {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "groq", Model: "m", Purpose: purpose,
			InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("usage groups = %d, want 2", len(usage))
	}
	for _, u := range usage {
		if u.Purpose == "code-gen" && u.Calls != 2 {
			t.Errorf("code-gen calls = %d, want 2", u.Calls)
		}
	}
}

func TestBadgeAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appendBadge := func(d BadgeEventData) {
		t.Helper()
		if err := repo.AppendBadge(ctx, d); err != nil {
			t.Fatalf("append badge: %v", err)
		}
	}

	appendBadge(BadgeEventData{UserID: "alice", Kind: "points", Points: 55, Reason: "session"})
	appendBadge(BadgeEventData{UserID: "alice", Kind: "badge", BadgeID: "first-review", Reason: "first"})
	appendBadge(BadgeEventData{UserID: "alice", Kind: "category", Reason: "identified", Category: "LogicalErrors"})
	appendBadge(BadgeEventData{UserID: "alice", Kind: "category", Reason: "missed", Category: "LogicalErrors"})
	appendBadge(BadgeEventData{UserID: "bob", Kind: "points", Points: 30, Reason: "session"})

	if err := repo.AppendPractice(ctx, PracticeEventData{
		SessionID: "s1", UserID: "alice", Difficulty: "medium",
		ErrorCount: 4, IdentifiedCount: 3, Accuracy: 75, IterationsUsed: 2, Sufficient: true,
	}); err != nil {
		t.Fatalf("append practice: %v", err)
	}
	if err := repo.AppendReview(ctx, ReviewEventData{
		SessionID: "s1", UserID: "alice", Iteration: 1,
		IdentifiedCount: 3, TotalProblems: 4, IdentifiedPercentage: 75, Sufficient: true,
	}); err != nil {
		t.Fatalf("append review: %v", err)
	}

	rows, err := repo.Leaderboard(ctx, 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("leaderboard rows = %d, want 2", len(rows))
	}
	if rows[0].UserID != "alice" || rows[0].Points != 55 {
		t.Errorf("top row = %+v", rows[0])
	}
	if rows[0].Sessions != 1 || rows[0].Badges != 1 {
		t.Errorf("alice aggregates = %+v", rows[0])
	}

	stats, err := repo.StatsFor(ctx, "alice")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Points != 55 || stats.Sessions != 1 || stats.ReviewsGraded != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.BestAccuracy != 75 {
		t.Errorf("best accuracy = %v, want 75", stats.BestAccuracy)
	}
	if len(stats.Badges) != 1 || stats.Badges[0] != "first-review" {
		t.Errorf("badges = %v", stats.Badges)
	}

	cats, err := repo.CategoryStatsFor(ctx, "alice")
	if err != nil {
		t.Fatalf("category stats: %v", err)
	}
	if len(cats) != 1 || cats[0].Encountered != 2 || cats[0].Identified != 1 {
		t.Errorf("category stats = %+v", cats)
	}

	has, err := repo.HasBadge(ctx, "alice", "first-review")
	if err != nil {
		t.Fatalf("has badge: %v", err)
	}
	if !has {
		t.Error("alice must have first-review")
	}
	has, err = repo.HasBadge(ctx, "bob", "first-review")
	if err != nil {
		t.Fatalf("has badge: %v", err)
	}
	if has {
		t.Error("bob must not have first-review")
	}
}
