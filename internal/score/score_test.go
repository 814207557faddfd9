package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepscope/prepscope/internal/model"
)

func categories(n int) model.ExtractedSkills {
	names := []string{"Core CS", "Languages", "Web", "Data", "Cloud/DevOps", "Testing", "Other"}
	var skills model.ExtractedSkills
	for i := 0; i < n; i++ {
		skills = append(skills, model.SkillCategory{Name: names[i], Skills: []string{"x"}})
	}
	return skills
}

func TestBase(t *testing.T) {
	longJD := strings.Repeat("a", 801)

	tests := []struct {
		name    string
		skills  model.ExtractedSkills
		company string
		role    string
		jdText  string
		want    int
	}{
		{"floor only", nil, "", "", "short", 35},
		{"one category", categories(1), "", "", "short", 40},
		{"category bonus capped at 30", categories(7), "", "", "short", 65},
		{"company bonus", categories(1), "Acme", "", "short", 50},
		{"whitespace company ignored", categories(1), "   ", "", "short", 40},
		{"role bonus", categories(1), "", "SDE", "short", 50},
		{"long JD bonus", categories(1), "", "", longJD, 50},
		{"everything", categories(6), "Acme", "SDE", longJD, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Base(tt.skills, tt.company, tt.role, tt.jdText)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestBase_ExactBoundary(t *testing.T) {
	// 800 characters is not "long"; 801 is.
	assert.Equal(t, 35, Base(nil, "", "", strings.Repeat("a", 800)))
	assert.Equal(t, 45, Base(nil, "", "", strings.Repeat("a", 801)))
}

func TestFinal_Deltas(t *testing.T) {
	conf := map[string]model.Confidence{
		"React": model.ConfidenceKnow,
		"Java":  model.ConfidenceKnow,
		"SQL":   model.ConfidencePractice,
	}
	// 50 + 2 + 2 - 2
	assert.Equal(t, 52, Final(50, conf))
}

func TestFinal_EmptyMapKeepsBase(t *testing.T) {
	assert.Equal(t, 70, Final(70, nil))
	assert.Equal(t, 70, Final(70, map[string]model.Confidence{}))
}

func TestFinal_ClampsToBounds(t *testing.T) {
	many := make(map[string]model.Confidence)
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		many[s] = model.ConfidencePractice
	}
	assert.Equal(t, 0, Final(5, many))

	for s := range many {
		many[s] = model.ConfidenceKnow
	}
	assert.Equal(t, 100, Final(95, many))
}
