package errorcatalog

import (
	"testing"
)

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestLoadCategories(t *testing.T) {
	c := loadCatalog(t)

	cats := c.Categories()
	if len(cats) == 0 {
		t.Fatal("no categories loaded")
	}
	for _, want := range []string{"LogicalErrors", "SyntaxErrors", "CodeQualityErrors", "StandardViolation", "JavaSpecificErrors"} {
		found := false
		for _, got := range cats {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing category %q", want)
		}
	}

	for _, cat := range cats {
		errs := c.CategoryErrors(cat)
		if len(errs) == 0 {
			t.Errorf("category %q has no errors", cat)
		}
		for _, e := range errs {
			if e.Name == "" || e.Description == "" {
				t.Errorf("incomplete error in %q: %+v", cat, e)
			}
			if e.Category != cat {
				t.Errorf("error %q carries category %q, want %q", e.Name, e.Category, cat)
			}
		}
	}
}

func TestByName(t *testing.T) {
	c := loadCatalog(t)

	errs := c.CategoryErrors("LogicalErrors")
	first := errs[0]

	got, ok := c.ByName("LogicalErrors", first.Name)
	if !ok {
		t.Fatalf("ByName did not find %q", first.Name)
	}
	if got.Description != first.Description {
		t.Errorf("ByName returned wrong entry: %+v", got)
	}

	if _, ok := c.ByName("LogicalErrors", "No Such Error"); ok {
		t.Error("ByName found a nonexistent error")
	}
}

func TestSearch(t *testing.T) {
	c := loadCatalog(t)

	if len(c.Search("null")) == 0 {
		t.Error("search for 'null' found nothing")
	}
	if len(c.Search("zzzznotathing")) != 0 {
		t.Error("search for nonsense returned results")
	}
}

func TestErrorsForLLMSpecificsPassThrough(t *testing.T) {
	c := loadCatalog(t)

	known := c.CategoryErrors("LogicalErrors")[0]
	sel := Selection{
		Specifics: []ErrorSpec{
			{Name: known.Name, Category: known.Category},
			{Name: "Custom defect", Category: "LogicalErrors", Description: "made up"},
		},
		Count:      1, // ignored with specifics
		Difficulty: DifficultyHard,
	}

	selected, problems := c.ErrorsForLLM(sel)
	if len(selected) != 2 {
		t.Fatalf("selected = %d, want 2 (specifics pass through)", len(selected))
	}
	if selected[0].ImplementationGuide == "" {
		t.Error("catalog entry not enriched with its implementation guide")
	}
	if len(problems) != 2 {
		t.Errorf("problem descriptions = %d, want 2", len(problems))
	}
}

func TestErrorsForLLMDifficultyAdjustment(t *testing.T) {
	c := loadCatalog(t)
	allCats := c.Categories()

	cases := []struct {
		difficulty Difficulty
		count      int
		maxWant    int
	}{
		{DifficultyEasy, 4, 2},
		{DifficultyMedium, 4, 4},
		{DifficultyHard, 4, 6},
	}
	for _, tc := range cases {
		sel := Selection{Categories: allCats, Count: tc.count, Difficulty: tc.difficulty}
		selected, _ := c.ErrorsForLLM(sel)
		if len(selected) == 0 {
			t.Fatalf("%s: no errors selected", tc.difficulty)
		}
		if len(selected) > tc.maxWant {
			t.Errorf("%s: selected %d, want at most %d", tc.difficulty, len(selected), tc.maxWant)
		}
	}
}

func TestErrorsForLLMUnknownCategory(t *testing.T) {
	c := loadCatalog(t)

	selected, _ := c.ErrorsForLLM(Selection{Categories: []string{"NoSuchCategory"}, Count: 4})
	if len(selected) != 0 {
		t.Errorf("unknown category yielded %d errors", len(selected))
	}
}

func TestLabel(t *testing.T) {
	e := ErrorSpec{Name: "Off-by-one error", Category: "LogicalErrors"}
	if e.Label() != "LogicalErrors - Off-by-one error" {
		t.Errorf("label = %q", e.Label())
	}
}

func TestBaseErrorCount(t *testing.T) {
	cases := map[Difficulty]int{
		DifficultyEasy:   2,
		DifficultyMedium: 4,
		DifficultyHard:   6,
	}
	for d, want := range cases {
		if got := d.BaseErrorCount(); got != want {
			t.Errorf("%s base count = %d, want %d", d, got, want)
		}
	}
}
