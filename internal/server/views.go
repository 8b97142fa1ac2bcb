package server

import (
	"github.com/gin-gonic/gin"

	"revtrain/internal/badges"
	"revtrain/internal/store"
	"revtrain/internal/workflow"
)

// sessionView renders a session for the student. The annotated code, the
// defect list and per-attempt analyses of an unfinished session never
// leave the server; only guidance and progress counters do.
func sessionView(sess *workflow.Session) gin.H {
	state := sess.State

	attempts := make([]gin.H, 0, len(state.ReviewHistory))
	for _, a := range state.ReviewHistory {
		av := gin.H{
			"iteration": a.IterationNumber,
			"review":    a.StudentReview,
		}
		if a.TargetedGuidance != "" {
			av["guidance"] = a.TargetedGuidance
		}
		if a.Analysis != nil {
			av["identified_count"] = a.Analysis.IdentifiedCount
			av["total_problems"] = a.Analysis.TotalProblems
			av["identified_percentage"] = a.Analysis.IdentifiedPercentage
		}
		attempts = append(attempts, av)
	}

	v := gin.H{
		"id":                sess.ID,
		"created_at":        sess.CreatedAt,
		"difficulty":        state.Difficulty,
		"code_length":       state.Length,
		"domain":            state.Domain,
		"code":              state.Code.Clean,
		"error_count":       state.OriginalErrorCount,
		"current_iteration": state.CurrentIteration,
		"max_iterations":    state.MaxIterations,
		"completed":         state.CurrentStep == workflow.StepComplete,
		"attempts":          attempts,
	}
	if state.CurrentStep == workflow.StepComplete {
		v["report"] = state.ComparisonReport
	}
	return v
}

func resultView(result *workflow.SubmitResult) gin.H {
	a := result.Attempt.Analysis
	v := gin.H{
		"iteration":             result.Attempt.IterationNumber,
		"identified_count":      a.IdentifiedCount,
		"total_problems":        a.TotalProblems,
		"identified_percentage": a.IdentifiedPercentage,
		"sufficient":            a.ReviewSufficient,
		"completed":             result.Completed,
		"iterations_remaining":  result.IterationsRemaining,
	}
	if result.Attempt.TargetedGuidance != "" {
		v["guidance"] = result.Attempt.TargetedGuidance
	}
	if result.Completed {
		v["report"] = result.Report
		v["identified_problems"] = a.IdentifiedProblems
		v["missed_problems"] = a.MissedProblems
		if len(result.Awards) > 0 {
			v["awards"] = result.Awards
		}
	}
	return v
}

func profileView(stats *store.UserStats, categories []store.CategoryStat) gin.H {
	badgeList := make([]gin.H, 0, len(stats.Badges))
	for _, id := range stats.Badges {
		badgeList = append(badgeList, gin.H{"id": id, "name": badges.BadgeName(id)})
	}
	return gin.H{
		"user_id":        stats.UserID,
		"points":         stats.Points,
		"sessions":       stats.Sessions,
		"reviews_graded": stats.ReviewsGraded,
		"best_accuracy":  stats.BestAccuracy,
		"badges":         badgeList,
		"categories":     categories,
	}
}
