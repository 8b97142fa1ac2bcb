package store

import (
	"context"
	"database/sql"
	"fmt"

	"revtrain/ent"
	"revtrain/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter. Aggregate queries go through raw SQL; ent's generated API has
// no GROUP BY support worth fighting for here.
type eventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendPractice(ctx context.Context, data PracticeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PracticeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetDifficulty(data.Difficulty).
		SetErrorCount(data.ErrorCount).
		SetIdentifiedCount(data.IdentifiedCount).
		SetAccuracy(data.Accuracy).
		SetIterationsUsed(data.IterationsUsed).
		SetSufficient(data.Sufficient).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save practice event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendReview(ctx context.Context, data ReviewEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ReviewEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetIteration(data.Iteration).
		SetIdentifiedCount(data.IdentifiedCount).
		SetTotalProblems(data.TotalProblems).
		SetIdentifiedPercentage(data.IdentifiedPercentage).
		SetSufficient(data.Sufficient).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save review event: %w", err)
	}

	return nil
}

func (r *eventRepo) AppendBadge(ctx context.Context, data BadgeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.BadgeEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetKind(data.Kind).
		SetPoints(data.Points).
		SetBadgeID(data.BadgeID).
		SetReason(data.Reason).
		SetCategory(data.Category).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save badge event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMRequestEvent, len(rows))
	for i, e := range rows {
		out[i] = LLMRequestEvent{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LLMRequestEventData: LLMRequestEventData{
				Provider:     e.Provider,
				Model:        e.Model,
				Purpose:      e.Purpose,
				InputTokens:  e.InputTokens,
				OutputTokens: e.OutputTokens,
				LatencyMs:    e.LatencyMs,
				Success:      e.Success,
				ErrorMessage: e.ErrorMessage,
				RequestBody:  e.RequestBody,
				ResponseBody: e.ResponseBody,
			},
		}
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}

	return &LLMRequestEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT purpose,
		       COUNT(*) AS calls,
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       COALESCE(CAST(AVG(latency_ms) AS INTEGER), 0)
		FROM llm_request_events
		GROUP BY purpose
		ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var u LLMUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *eventRepo) Leaderboard(ctx context.Context, limit int) ([]LeaderboardRow, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT b.user_id,
		       COALESCE(SUM(b.points), 0) AS points,
		       (SELECT COUNT(*) FROM practice_events p WHERE p.user_id = b.user_id) AS sessions,
		       (SELECT COUNT(*) FROM badge_events g WHERE g.user_id = b.user_id AND g.kind = 'badge') AS badges
		FROM badge_events b
		GROUP BY b.user_id
		ORDER BY points DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var out []LeaderboardRow
	for rows.Next() {
		var row LeaderboardRow
		if err := rows.Scan(&row.UserID, &row.Points, &row.Sessions, &row.Badges); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *eventRepo) StatsFor(ctx context.Context, userID string) (*UserStats, error) {
	stats := &UserStats{UserID: userID}

	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(points), 0) FROM badge_events WHERE user_id = ?`, userID).
		Scan(&stats.Points)
	if err != nil {
		return nil, fmt.Errorf("sum points: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(MAX(accuracy), 0) FROM practice_events WHERE user_id = ?`, userID).
		Scan(&stats.Sessions, &stats.BestAccuracy)
	if err != nil {
		return nil, fmt.Errorf("count sessions: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM review_events WHERE user_id = ?`, userID).
		Scan(&stats.ReviewsGraded)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT badge_id FROM badge_events
		WHERE user_id = ? AND kind = 'badge'
		ORDER BY sequence`, userID)
	if err != nil {
		return nil, fmt.Errorf("query badges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		stats.Badges = append(stats.Badges, id)
	}
	return stats, rows.Err()
}

func (r *eventRepo) CategoryStatsFor(ctx context.Context, userID string) ([]CategoryStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category,
		       COUNT(*) AS encountered,
		       COALESCE(SUM(CASE WHEN reason = 'identified' THEN 1 ELSE 0 END), 0) AS identified
		FROM badge_events
		WHERE user_id = ? AND kind = 'category' AND category != ''
		GROUP BY category
		ORDER BY category`, userID)
	if err != nil {
		return nil, fmt.Errorf("query category stats: %w", err)
	}
	defer rows.Close()

	var out []CategoryStat
	for rows.Next() {
		var cs CategoryStat
		if err := rows.Scan(&cs.Category, &cs.Encountered, &cs.Identified); err != nil {
			return nil, fmt.Errorf("scan category stat: %w", err)
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

func (r *eventRepo) HasBadge(ctx context.Context, userID, badgeID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM badge_events
		WHERE user_id = ? AND kind = 'badge' AND badge_id = ?`, userID, badgeID).
		Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check badge: %w", err)
	}
	return n > 0, nil
}
