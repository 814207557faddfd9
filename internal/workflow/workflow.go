// Package workflow orchestrates one JD analysis end to end: extraction, the
// empty-skill fallback, scoring, content generation, company intel, and the
// confidence-toggle recompute. It produces entries but never persists them —
// saving is an explicit caller step.
package workflow

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prepscope/prepscope/internal/extract"
	"github.com/prepscope/prepscope/internal/intel"
	"github.com/prepscope/prepscope/internal/model"
	"github.com/prepscope/prepscope/internal/prep"
	"github.com/prepscope/prepscope/internal/score"
)

// ErrEmptyJD is returned when the JD text is blank or whitespace-only.
// Analysis is refused before any computation occurs.
var ErrEmptyJD = errors.New("job description text is empty")

// fallbackSkills is the synthetic "Other" category injected when no taxonomy
// pattern matched anything.
var fallbackSkills = []string{"Communication", "Problem solving", "Basic coding", "Projects"}

// Workflow runs analyses over a fixed extractor. Construct once and reuse.
type Workflow struct {
	extractor *extract.Extractor
	now       func() time.Time
	newID     func() string
}

// New returns a workflow over the given extractor.
func New(extractor *extract.Extractor) *Workflow {
	return &Workflow{
		extractor: extractor,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

// Analyze converts (company, role, jdText) into a fully populated entry.
// Aside from id and timestamps, identical inputs yield identical output.
//
// Every extracted skill starts at "practice", so a fresh entry's finalScore is
// baseScore minus 2 per skill (clamped) — not baseScore. Downstream display
// code relies on this, so it must not be "fixed".
func (w *Workflow) Analyze(company, role, jdText string) (model.AnalysisEntry, error) {
	if strings.TrimSpace(jdText) == "" {
		return model.AnalysisEntry{}, ErrEmptyJD
	}

	skills := w.extractor.Extract(jdText)
	if len(skills) == 0 {
		skills = model.ExtractedSkills{{Name: "Other", Skills: fallbackSkills}}
	}

	baseScore := score.Base(skills, company, role, jdText)

	confidence := make(map[string]model.Confidence)
	for _, skill := range skills.Flatten() {
		confidence[skill] = model.ConfidencePractice
	}

	now := w.now().UTC().Format(time.RFC3339)
	entry := model.AnalysisEntry{
		ID:                 w.newID(),
		CreatedAt:          now,
		UpdatedAt:          now,
		Company:            company,
		Role:               role,
		JDText:             jdText,
		ExtractedSkills:    skills,
		Plan7Days:          prep.Plan(skills),
		Checklist:          prep.Checklist(skills),
		Questions:          prep.Questions(skills),
		BaseScore:          baseScore,
		SkillConfidenceMap: confidence,
		CompanyIntel:       intel.Infer(company, jdText, skills),
	}
	entry.FinalScore = score.Final(entry.BaseScore, entry.SkillConfidenceMap)

	return entry, nil
}

// ToggleConfidence flips one skill between practice and know, stamps
// updatedAt, and recomputes finalScore. The input entry is not mutated; the
// caller persists the returned copy. A skill absent from the map is treated
// as "practice", so its first toggle yields "know".
func (w *Workflow) ToggleConfidence(entry model.AnalysisEntry, skill string) model.AnalysisEntry {
	confidence := make(map[string]model.Confidence, len(entry.SkillConfidenceMap))
	for k, v := range entry.SkillConfidenceMap {
		confidence[k] = v
	}

	if confidence[skill] == model.ConfidenceKnow {
		confidence[skill] = model.ConfidencePractice
	} else {
		confidence[skill] = model.ConfidenceKnow
	}

	entry.SkillConfidenceMap = confidence
	entry.UpdatedAt = w.now().UTC().Format(time.RFC3339)
	entry.FinalScore = score.Final(entry.BaseScore, confidence)
	return entry
}
