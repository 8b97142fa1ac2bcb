package codegen

import "revtrain/internal/errorcatalog"

// GenerateInput holds all context needed to generate one code snippet.
type GenerateInput struct {
	// Length controls snippet size: short, medium, long.
	Length errorcatalog.CodeLength

	// Difficulty controls how well defects are hidden.
	Difficulty errorcatalog.Difficulty

	// Domain is the business context the code pretends to come from,
	// e.g. "banking" or "inventory_system".
	Domain string

	// Errors is the exact set of defects the snippet must contain.
	Errors []errorcatalog.ErrorSpec
}

// CodeVersions holds the two renderings of a generated snippet.
type CodeVersions struct {
	// Annotated carries an inline "// ERROR: ..." marker at each
	// injected defect.
	Annotated string

	// Clean is the identical program with the markers stripped.
	// This is what the student reviews.
	Clean string
}

// Domains is the pool of business contexts a snippet can be set in.
// One is picked at random when the caller doesn't choose.
var Domains = []string{
	"user_management",
	"file_processing",
	"data_validation",
	"calculation",
	"inventory_system",
	"notification_service",
	"logging",
	"banking",
	"e-commerce",
	"student_management",
}
