// Package review grades student code reviews against the known defects of a
// snippet, produces targeted guidance between iterations, and writes the
// final comparison report when a practice session ends.
package review

import "regexp"

// MinIdentifiedPercentage is the accuracy a review must reach to be
// considered sufficient on its own.
const MinIdentifiedPercentage = 60.0

// Analysis is the graded result of one review iteration.
type Analysis struct {
	// IdentifiedProblems are known defects the student found.
	IdentifiedProblems []string `json:"identified_problems"`

	// MissedProblems are known defects the student did not mention.
	MissedProblems []string `json:"missed_problems"`

	// IdentifiedCount is len(IdentifiedProblems), capped at TotalProblems.
	IdentifiedCount int `json:"identified_count"`

	// TotalProblems is the number of defects actually in the snippet.
	TotalProblems int `json:"total_problems"`

	// IdentifiedPercentage is IdentifiedCount / TotalProblems * 100.
	// A snippet with zero defects grades as 100.
	IdentifiedPercentage float64 `json:"identified_percentage"`

	// ReviewSufficient is true when the review is good enough to end
	// the session.
	ReviewSufficient bool `json:"review_sufficient"`
}

// Normalize recomputes the derived fields against the authoritative defect
// count. The model's own counting is not trusted: the identified count is
// recomputed from the list and capped at the total, so stray entries the
// model invents cannot push the percentage past 100 or fake an all-found
// result.
func (a *Analysis) Normalize(totalProblems int) {
	a.IdentifiedCount = len(a.IdentifiedProblems)
	if totalProblems > 0 && a.IdentifiedCount > totalProblems {
		a.IdentifiedCount = totalProblems
	}
	a.TotalProblems = totalProblems
	if totalProblems == 0 {
		a.IdentifiedPercentage = 100.0
	} else {
		a.IdentifiedPercentage = float64(a.IdentifiedCount) / float64(totalProblems) * 100.0
	}
	if a.IdentifiedPercentage >= MinIdentifiedPercentage {
		a.ReviewSufficient = true
	}
	if a.IdentifiedCount == totalProblems {
		a.ReviewSufficient = true
	}
}

var lineRef = regexp.MustCompile(`(?i)line\s+\d+\s*:`)

// ValidFormat reports whether a student review references at least one
// specific line ("Line N: ..."). Reviews without line references cannot be
// graded and are rejected before any LLM call.
func ValidFormat(reviewText string) bool {
	return lineRef.MatchString(reviewText)
}
