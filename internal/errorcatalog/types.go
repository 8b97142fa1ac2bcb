package errorcatalog

// ErrorSpec describes one deliberately injectable Java defect.
type ErrorSpec struct {
	Type                string `json:"type"`
	Name                string `json:"name"`
	Category            string `json:"category"`
	Description         string `json:"description"`
	ImplementationGuide string `json:"implementation_guide"`
}

// Label renders the canonical "CATEGORY - Name" form used in prompts and
// in evaluation results. Matching between requested and found errors is
// done on this label.
func (e ErrorSpec) Label() string {
	return e.Category + " - " + e.Name
}

// Difficulty controls how many defects are injected and how well they
// are hidden.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// BaseErrorCount returns the defect count for a difficulty level.
func (d Difficulty) BaseErrorCount() int {
	switch d {
	case DifficultyEasy:
		return 2
	case DifficultyHard:
		return 6
	default:
		return 4
	}
}

// CodeLength controls the size of the generated snippet.
type CodeLength string

const (
	LengthShort  CodeLength = "short"
	LengthMedium CodeLength = "medium"
	LengthLong   CodeLength = "long"
)
