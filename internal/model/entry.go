package model

// Confidence is the user's self-assessment for one extracted skill.
type Confidence string

const (
	ConfidenceKnow     Confidence = "know"
	ConfidencePractice Confidence = "practice"
)

// DayPlan is one day of the 7-day study plan.
type DayPlan struct {
	Day   string   `json:"day"`
	Title string   `json:"title"`
	Tasks []string `json:"tasks"`
}

// ChecklistRound is one interview round with its preparation items.
type ChecklistRound struct {
	Round string   `json:"round"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// AnalysisEntry is the aggregate record produced by one JD analysis.
// Timestamps are RFC3339 strings. BaseScore is fixed at creation; FinalScore
// is recomputed on every confidence edit and never drifts from
// clamp(baseScore + 2*know - 2*practice, 0, 100).
type AnalysisEntry struct {
	ID                 string                `json:"id"`
	CreatedAt          string                `json:"createdAt"`
	UpdatedAt          string                `json:"updatedAt"`
	Company            string                `json:"company"`
	Role               string                `json:"role"`
	JDText             string                `json:"jdText"`
	ExtractedSkills    ExtractedSkills       `json:"extractedSkills"`
	Plan7Days          []DayPlan             `json:"plan7Days"`
	Checklist          []ChecklistRound      `json:"checklist"`
	Questions          []string              `json:"questions"`
	BaseScore          int                   `json:"baseScore"`
	FinalScore         int                   `json:"finalScore"`
	SkillConfidenceMap map[string]Confidence `json:"skillConfidenceMap"`
	CompanyIntel       *CompanyIntel         `json:"companyIntel,omitempty"`
}

// History is the result of loading the persisted entry collection. Corrupted
// counts records that failed shape validation on this read; it is recomputed
// every load and never persisted.
type History struct {
	Entries   []AnalysisEntry
	Corrupted int
}
