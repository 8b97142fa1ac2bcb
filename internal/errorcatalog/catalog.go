package errorcatalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

//go:embed data/java_errors.json
var dataFS embed.FS

// rawError mirrors the on-disk catalog entry shape.
type rawError struct {
	ErrorName           string `json:"error_name"`
	Description         string `json:"description"`
	ImplementationGuide string `json:"implementation_guide"`
}

// Catalog is a read-only provider of categorized Java defect definitions.
// It is loaded once and safe for concurrent reads.
type Catalog struct {
	byCategory map[string][]ErrorSpec
	categories []string
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/java_errors.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded catalog: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Catalog, error) {
	var parsed map[string][]rawError
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse error catalog: %w", err)
	}

	c := &Catalog{byCategory: make(map[string][]ErrorSpec, len(parsed))}
	for category, entries := range parsed {
		specs := make([]ErrorSpec, 0, len(entries))
		for _, e := range entries {
			specs = append(specs, ErrorSpec{
				Type:                "java_error",
				Name:                e.ErrorName,
				Category:            category,
				Description:         e.Description,
				ImplementationGuide: e.ImplementationGuide,
			})
		}
		c.byCategory[category] = specs
		c.categories = append(c.categories, category)
	}
	sort.Strings(c.categories)
	return c, nil
}

// Categories returns all category names, sorted.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryErrors returns the errors in one category, or nil if unknown.
func (c *Catalog) CategoryErrors(category string) []ErrorSpec {
	specs := c.byCategory[category]
	out := make([]ErrorSpec, len(specs))
	copy(out, specs)
	return out
}

// ByName finds an error by category and name.
func (c *Catalog) ByName(category, name string) (ErrorSpec, bool) {
	for _, e := range c.byCategory[category] {
		if e.Name == name {
			return e, true
		}
	}
	return ErrorSpec{}, false
}

// Search returns every error whose name or description contains the term,
// case-insensitively.
func (c *Catalog) Search(term string) []ErrorSpec {
	term = strings.ToLower(term)
	var out []ErrorSpec
	for _, cat := range c.categories {
		for _, e := range c.byCategory[cat] {
			if strings.Contains(strings.ToLower(e.Name), term) ||
				strings.Contains(strings.ToLower(e.Description), term) {
				out = append(out, e)
			}
		}
	}
	return out
}

// Selection describes which errors to pick for a generation round.
// Specifics wins when non-empty; otherwise errors are sampled from
// Categories.
type Selection struct {
	Categories []string
	Specifics  []ErrorSpec
	Count      int
	Difficulty Difficulty
}

// ErrorsForLLM selects the errors for one generation round and returns
// them alongside human-readable problem descriptions.
//
// With specific errors the list is passed through (enriched with the
// catalog's implementation guides). With categories, 1-2 errors are
// sampled per category and the total is trimmed to the difficulty-adjusted
// count: easy lowers the requested count by 2 (floor 2), hard raises it
// by 2. Fewer errors than requested is not an error; the caller lowers
// its expected count to match.
func (c *Catalog) ErrorsForLLM(sel Selection) ([]ErrorSpec, []string) {
	count := sel.Count
	if count <= 0 {
		count = 4
	}
	switch sel.Difficulty {
	case DifficultyEasy:
		count = max(2, count-2)
	case DifficultyHard:
		count = count + 2
	}

	if len(sel.Specifics) > 0 {
		selected := make([]ErrorSpec, 0, len(sel.Specifics))
		for _, e := range sel.Specifics {
			if e.ImplementationGuide == "" {
				if full, ok := c.ByName(e.Category, e.Name); ok {
					e.ImplementationGuide = full.ImplementationGuide
				}
			}
			if e.Type == "" {
				e.Type = "java_error"
			}
			selected = append(selected, e)
		}
		return selected, describe(selected)
	}

	categories := sel.Categories
	if len(categories) == 0 {
		categories = []string{"LogicalErrors", "SyntaxErrors", "CodeQualityErrors"}
	}

	var pool []ErrorSpec
	for _, cat := range categories {
		errs := c.byCategory[cat]
		if len(errs) == 0 {
			continue
		}
		n := min(len(errs), 1+rand.IntN(2))
		for _, idx := range rand.Perm(len(errs))[:n] {
			pool = append(pool, errs[idx])
		}
	}

	if len(pool) > count {
		picked := make([]ErrorSpec, 0, count)
		for _, idx := range rand.Perm(len(pool))[:count] {
			picked = append(picked, pool[idx])
		}
		pool = picked
	}

	return pool, describe(pool)
}

func describe(specs []ErrorSpec) []string {
	out := make([]string, len(specs))
	for i, e := range specs {
		out[i] = fmt.Sprintf("Java Error - %s: %s (Category: %s)", e.Name, e.Description, e.Category)
	}
	return out
}
