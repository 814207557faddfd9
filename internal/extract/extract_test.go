package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepscope/prepscope/internal/taxonomy"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(taxonomy.Default())
}

func TestExtract_GroupsIntoCategories(t *testing.T) {
	e := newExtractor(t)

	skills := e.Extract("We use React on the frontend, Java services, and PostgreSQL for storage.")

	require.True(t, skills.Has("Web"))
	require.True(t, skills.Has("Languages"))
	require.True(t, skills.Has("Data"))

	assert.Contains(t, skills.Flatten(), "React")
	assert.Contains(t, skills.Flatten(), "Java")
	assert.Contains(t, skills.Flatten(), "PostgreSQL")
}

func TestExtract_CategoryAndPatternOrder(t *testing.T) {
	e := newExtractor(t)

	// Mention Data before Web in the text; output order still follows the table.
	skills := e.Extract("MySQL and Redis knowledge, plus React and Node.js")

	require.Len(t, skills, 2)
	assert.Equal(t, "Web", skills[0].Name)
	assert.Equal(t, []string{"React", "Node.js"}, skills[0].Skills)
	assert.Equal(t, "Data", skills[1].Name)
	assert.Equal(t, []string{"SQL", "MySQL", "Redis"}, skills[1].Skills)
}

func TestExtract_Deterministic(t *testing.T) {
	e := newExtractor(t)
	text := "Java, Python, React, AWS, Docker, SQL, Selenium and DSA fundamentals"

	first := e.Extract(text)
	second := e.Extract(text)

	assert.Equal(t, first, second)
}

func TestExtract_CaseInsensitive(t *testing.T) {
	e := newExtractor(t)

	skills := e.Extract("experience with KUBERNETES and mongodb")

	assert.True(t, skills.HasSkill("Kubernetes"))
	assert.True(t, skills.HasSkill("MongoDB"))
}

func TestExtract_WordBoundaryPatterns(t *testing.T) {
	e := newExtractor(t)

	// "Golang" must not match the \bGo\b pattern; a standalone "Go" must.
	assert.False(t, e.Extract("Golang developer wanted").HasSkill("Go"))
	assert.True(t, e.Extract("We write Go services").HasSkill("Go"))

	// "C" must not fire inside other words.
	assert.False(t, e.Extract("Customer focus").HasSkill("C"))
	assert.True(t, e.Extract("systems programming in C required").HasSkill("C"))
}

func TestExtract_EscapedPatternsUseDisplayNames(t *testing.T) {
	e := newExtractor(t)

	skills := e.Extract("C++ and Next.js experience")

	assert.True(t, skills.HasSkill("C++"))
	assert.True(t, skills.HasSkill("Next.js"))
}

func TestExtract_NoMatchesReturnsEmpty(t *testing.T) {
	e := newExtractor(t)

	skills := e.Extract("we are looking for a motivated fresher")

	assert.Empty(t, skills)
}

func TestExtract_MultipleMatchesWithinCategory(t *testing.T) {
	e := newExtractor(t)

	skills := e.Extract("DSA, OOP, DBMS and OS knowledge expected")

	require.True(t, skills.Has("Core CS"))
	assert.Equal(t, []string{"DSA", "OOP", "DBMS", "OS"}, skills[0].Skills)
}
