package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepscope/prepscope/internal/model"
)

func sampleEntry() model.AnalysisEntry {
	return model.AnalysisEntry{
		Company: "Acme",
		Role:    "Backend Engineer",
		ExtractedSkills: model.ExtractedSkills{
			{Name: "Core CS", Skills: []string{"DSA", "OOP"}},
			{Name: "Data", Skills: []string{"SQL"}},
		},
		Plan7Days: []model.DayPlan{
			{Day: "Day 1", Title: "Core CS Fundamentals", Tasks: []string{"Review OOP principles", "Revise OS concepts"}},
			{Day: "Day 2", Title: "Basics & Aptitude", Tasks: []string{"Review networking basics"}},
		},
		Checklist: []model.ChecklistRound{
			{Round: "Round 1", Title: "Aptitude & Basics", Items: []string{"Practice puzzles"}},
		},
		Questions:  []string{"What are ACID properties?", "Explain indexing."},
		FinalScore: 63,
	}
}

func TestPlanText(t *testing.T) {
	got := PlanText(sampleEntry())

	want := "Day 1: Core CS Fundamentals\n" +
		"  • Review OOP principles\n" +
		"  • Revise OS concepts\n" +
		"\n" +
		"Day 2: Basics & Aptitude\n" +
		"  • Review networking basics"
	assert.Equal(t, want, got)
}

func TestChecklistText(t *testing.T) {
	got := ChecklistText(sampleEntry())

	assert.Equal(t, "Round 1: Aptitude & Basics\n  ☐ Practice puzzles", got)
}

func TestQuestionsText(t *testing.T) {
	got := QuestionsText(sampleEntry())

	assert.Equal(t, "1. What are ACID properties?\n2. Explain indexing.", got)
}

func TestText_CombinedReport(t *testing.T) {
	got := Text(sampleEntry())

	assert.True(t, strings.HasPrefix(got, "=== Analysis: Acme — Backend Engineer ==="))
	assert.Contains(t, got, "Readiness Score: 63/100")
	assert.Contains(t, got, "Core CS: DSA, OOP")
	assert.Contains(t, got, "Data: SQL")
	assert.Contains(t, got, "--- 7-Day Plan ---")
	assert.Contains(t, got, "--- Round-wise Checklist ---")
	assert.Contains(t, got, "--- 10 Interview Questions ---")
}

func TestText_BlankNamesFallBack(t *testing.T) {
	entry := sampleEntry()
	entry.Company = ""
	entry.Role = ""

	got := Text(entry)
	assert.True(t, strings.HasPrefix(got, "=== Analysis: Company — Role ==="))
}

func TestTextEmptySections(t *testing.T) {
	got := Text(model.AnalysisEntry{})

	assert.Contains(t, got, "--- Key Skills ---")
	assert.Contains(t, got, "--- 10 Interview Questions ---")
}
