// Package extract scans free-form JD text against the skill taxonomy.
package extract

import (
	"github.com/prepscope/prepscope/internal/model"
	"github.com/prepscope/prepscope/internal/taxonomy"
)

// Extractor matches JD text against a fixed skill table. It is pure: identical
// input text yields byte-identical output ordering (category order = table
// order, within-category order = pattern order).
type Extractor struct {
	table *taxonomy.Taxonomy
}

// New returns an extractor over the given table.
func New(table *taxonomy.Taxonomy) *Extractor {
	return &Extractor{table: table}
}

// Extract returns the categorized skills found in text. A category is included
// only if at least one of its patterns matched; patterns within a category are
// independent, so several can match. An empty result is returned as-is — the
// "Other" fallback is the workflow's responsibility.
func (e *Extractor) Extract(text string) model.ExtractedSkills {
	var result model.ExtractedSkills
	for _, cat := range e.table.Categories {
		var found []string
		for _, p := range cat.Patterns {
			if p.Expr.MatchString(text) {
				found = append(found, p.Display)
			}
		}
		if len(found) > 0 {
			result = append(result, model.SkillCategory{Name: cat.Name, Skills: found})
		}
	}
	return result
}
