package badges

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revtrain/internal/store"
)

// fakeRepo implements the subset of store.EventRepo the award rules touch.
type fakeRepo struct {
	store.EventRepo
	badges  []store.BadgeEventData
	stats   store.UserStats
	granted map[string]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{granted: map[string]bool{}}
}

func (f *fakeRepo) AppendBadge(_ context.Context, data store.BadgeEventData) error {
	f.badges = append(f.badges, data)
	if data.Kind == "badge" {
		f.granted[data.BadgeID] = true
	}
	return nil
}

func (f *fakeRepo) StatsFor(_ context.Context, _ string) (*store.UserStats, error) {
	stats := f.stats
	return &stats, nil
}

func (f *fakeRepo) HasBadge(_ context.Context, _, badgeID string) (bool, error) {
	return f.granted[badgeID], nil
}

func result() SessionResult {
	return SessionResult{
		SessionID:       "s1",
		UserID:          "alice",
		Difficulty:      "medium",
		ErrorCount:      4,
		IdentifiedCount: 3,
		Accuracy:        75,
		IterationsUsed:  2,
		Sufficient:      true,
		Identified:      []string{"LogicalErrors - Off-by-one error", "SyntaxErrors - Missing semicolon", "LogicalErrors - Null check"},
		Missed:          []string{"CodeQualityErrors - Magic numbers"},
	}
}

func TestBasePoints(t *testing.T) {
	r := result()
	points, _ := basePoints(r)
	assert.Equal(t, 3*10+25, points)

	r.Difficulty = "hard"
	points, _ = basePoints(r)
	assert.Equal(t, 3*10*2+25, points, "hard difficulty doubles defect points")

	r.Sufficient = false
	r.Difficulty = "easy"
	points, _ = basePoints(r)
	assert.Equal(t, 30, points, "insufficient review loses the completion bonus")
}

func TestProcessSessionResults(t *testing.T) {
	repo := newFakeRepo()
	repo.stats = store.UserStats{Sessions: 1}
	svc := NewService(repo, nil)

	awards, err := svc.ProcessSessionResults(context.Background(), result())
	require.NoError(t, err)

	var points int
	for _, a := range awards {
		if a.Kind == "points" {
			points += a.Points
		}
	}
	assert.Equal(t, 55, points)
	assert.True(t, repo.granted["first-review"], "first session must grant first-review")
	assert.False(t, repo.granted["perfect-review"], "3/4 identified must not grant perfect-review")

	var categories int
	for _, b := range repo.badges {
		if b.Kind == "category" {
			categories++
			assert.NotEmpty(t, b.Category, "category event missing category")
		}
	}
	assert.Equal(t, 4, categories, "3 identified + 1 missed")
}

func TestPerfectReviewBadge(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	r := result()
	r.IdentifiedCount = 4
	r.Missed = nil

	_, err := svc.ProcessSessionResults(context.Background(), r)
	require.NoError(t, err)
	assert.True(t, repo.granted["perfect-review"], "4/4 identified must grant perfect-review")
}

func TestBadgeIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	_, err := svc.ProcessSessionResults(context.Background(), result())
	require.NoError(t, err)

	awards, err := svc.ProcessSessionResults(context.Background(), result())
	require.NoError(t, err)
	for _, a := range awards {
		assert.NotEqual(t, "first-review", a.BadgeID, "first-review granted twice")
	}
}

func TestMilestoneBadges(t *testing.T) {
	repo := newFakeRepo()
	repo.stats = store.UserStats{Sessions: 5, Points: 120}
	svc := NewService(repo, nil)

	_, err := svc.ProcessSessionResults(context.Background(), result())
	require.NoError(t, err)

	assert.True(t, repo.granted["reviews-5"])
	assert.True(t, repo.granted["points-100"])
	assert.False(t, repo.granted["reviews-25"], "higher milestone granted too early")
	assert.False(t, repo.granted["points-500"], "higher milestone granted too early")
}
