// Package report renders analysis entries as plain-text export blocks. The
// output is display-only: it is copied or saved to a file, never parsed back.
package report

import (
	"fmt"
	"strings"

	"github.com/prepscope/prepscope/internal/model"
)

// PlanText renders the 7-day plan as one block, a day per section with
// bulleted tasks.
func PlanText(entry model.AnalysisEntry) string {
	sections := make([]string, 0, len(entry.Plan7Days))
	for _, d := range entry.Plan7Days {
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %s", d.Day, d.Title)
		for _, t := range d.Tasks {
			fmt.Fprintf(&b, "\n  • %s", t)
		}
		sections = append(sections, b.String())
	}
	return strings.Join(sections, "\n\n")
}

// ChecklistText renders the round-wise checklist with unchecked boxes.
func ChecklistText(entry model.AnalysisEntry) string {
	sections := make([]string, 0, len(entry.Checklist))
	for _, r := range entry.Checklist {
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %s", r.Round, r.Title)
		for _, item := range r.Items {
			fmt.Fprintf(&b, "\n  ☐ %s", item)
		}
		sections = append(sections, b.String())
	}
	return strings.Join(sections, "\n\n")
}

// QuestionsText renders the interview questions as a numbered list.
func QuestionsText(entry model.AnalysisEntry) string {
	lines := make([]string, 0, len(entry.Questions))
	for i, q := range entry.Questions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, q))
	}
	return strings.Join(lines, "\n")
}

// Text renders the combined analysis report: header, live score, skills by
// category, then the plan, checklist, and question blocks.
func Text(entry model.AnalysisEntry) string {
	company := entry.Company
	if company == "" {
		company = "Company"
	}
	role := entry.Role
	if role == "" {
		role = "Role"
	}

	sections := []string{
		fmt.Sprintf("=== Analysis: %s — %s ===", company, role),
		fmt.Sprintf("Readiness Score: %d/100\n", entry.FinalScore),
		"--- Key Skills ---",
	}
	for _, cat := range entry.ExtractedSkills {
		sections = append(sections, fmt.Sprintf("%s: %s", cat.Name, strings.Join(cat.Skills, ", ")))
	}
	sections = append(sections, "", "--- 7-Day Plan ---", PlanText(entry))
	sections = append(sections, "", "--- Round-wise Checklist ---", ChecklistText(entry))
	sections = append(sections, "", "--- 10 Interview Questions ---", QuestionsText(entry))
	return strings.Join(sections, "\n")
}
