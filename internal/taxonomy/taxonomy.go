// Package taxonomy holds the static skill table the extractor scans with:
// an ordered list of categories, each an ordered list of (pattern, display
// name) pairs. The table is plain data so it can be validated and unit-tested
// independently of extraction, and optionally replaced from a YAML file.
package taxonomy

import (
	"fmt"
	"regexp"
)

// Pattern is one skill matcher: a case-insensitive regular expression and the
// display name recorded when it matches. Display defaults to the raw pattern
// text when the two are identical (e.g. "React").
type Pattern struct {
	Expr    *regexp.Regexp
	Display string
}

// Category is one ordered group of skill patterns.
type Category struct {
	Name     string
	Patterns []Pattern
}

// Taxonomy is the full ordered skill table.
type Taxonomy struct {
	Categories []Category
}

// entry is a raw (pattern, display) pair before compilation.
type entry struct {
	pattern string
	display string // empty means same as pattern
}

// defaultTable drives Default(). Pattern order within a category and category
// order in this table fix the extraction output ordering.
var defaultTable = []struct {
	name    string
	entries []entry
}{
	{"Core CS", []entry{
		{"DSA", ""}, {"OOP", ""}, {"DBMS", ""}, {"OS", ""}, {"Networks", ""},
	}},
	{"Languages", []entry{
		{"Java", ""}, {"Python", ""}, {"JavaScript", ""}, {"TypeScript", ""},
		{`C\+\+`, "C++"}, {"C#", ""}, {`\bGo\b`, "Go"}, {`\bC\b`, "C"},
	}},
	{"Web", []entry{
		{"React", ""}, {`Next\.js`, "Next.js"}, {`Node\.js`, "Node.js"},
		{"Express", ""}, {"REST", ""}, {"GraphQL", ""},
	}},
	{"Data", []entry{
		{"SQL", ""}, {"MongoDB", ""}, {"PostgreSQL", ""}, {"MySQL", ""}, {"Redis", ""},
	}},
	{"Cloud/DevOps", []entry{
		{"AWS", ""}, {"Azure", ""}, {"GCP", ""}, {"Docker", ""},
		{"Kubernetes", ""}, {"CI/CD", ""}, {"Linux", ""},
	}},
	{"Testing", []entry{
		{"Selenium", ""}, {"Cypress", ""}, {"Playwright", ""}, {"JUnit", ""}, {"PyTest", ""},
	}},
}

// Default returns the built-in skill table. Patterns are compiled once per call;
// callers should reuse the returned value.
func Default() *Taxonomy {
	t := &Taxonomy{}
	for _, c := range defaultTable {
		cat := Category{Name: c.name}
		for _, e := range c.entries {
			display := e.display
			if display == "" {
				display = e.pattern
			}
			cat.Patterns = append(cat.Patterns, Pattern{
				Expr:    regexp.MustCompile("(?i)" + e.pattern),
				Display: display,
			})
		}
		t.Categories = append(t.Categories, cat)
	}
	return t
}

// compile builds a Taxonomy from raw (name, pattern, display) data, validating
// as it goes. Shared by Load.
func compile(cats []rawCategory) (*Taxonomy, error) {
	if len(cats) == 0 {
		return nil, fmt.Errorf("taxonomy has no categories")
	}
	t := &Taxonomy{}
	for _, rc := range cats {
		if rc.Name == "" {
			return nil, fmt.Errorf("taxonomy category with empty name")
		}
		if len(rc.Skills) == 0 {
			return nil, fmt.Errorf("taxonomy category %q has no skills", rc.Name)
		}
		cat := Category{Name: rc.Name}
		seen := make(map[string]bool)
		for _, rs := range rc.Skills {
			if rs.Pattern == "" {
				return nil, fmt.Errorf("taxonomy category %q has a skill with empty pattern", rc.Name)
			}
			expr, err := regexp.Compile("(?i)" + rs.Pattern)
			if err != nil {
				return nil, fmt.Errorf("compile pattern %q in category %q: %w", rs.Pattern, rc.Name, err)
			}
			display := rs.Display
			if display == "" {
				display = rs.Pattern
			}
			if seen[display] {
				return nil, fmt.Errorf("duplicate skill %q in category %q", display, rc.Name)
			}
			seen[display] = true
			cat.Patterns = append(cat.Patterns, Pattern{Expr: expr, Display: display})
		}
		t.Categories = append(t.Categories, cat)
	}
	return t, nil
}
