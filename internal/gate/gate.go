// Package gate derives the submission state: milestone step statuses, link
// validation, and the single "shipped" boolean. Nothing here is stored — every
// status is a pure projection recomputed from the persisted checklist state
// and links on each read.
package gate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/prepscope/prepscope/internal/checklist"
	"github.com/prepscope/prepscope/internal/model"
)

// StepStatus is one milestone with its derived completion state.
type StepStatus struct {
	Label     string
	Completed bool
}

// stepLabels are the seven build milestones. They describe engine features
// that ship with the binary, so they are complete by construction; only the
// checklist step carries a real runtime check.
var stepLabels = []string{
	"JD Analyzer built",
	"Skill extraction engine",
	"Round mapping engine",
	"7-day prep plan generator",
	"Interactive readiness scoring",
	"History persistence",
	"Company intel layer",
}

const checklistStepLabel = "Test checklist passed"

// Gate projects the submission state from the persisted checklist and links.
type Gate struct {
	checklist *ChecklistSource
	validate  *validator.Validate
}

// ChecklistSource narrows the gate's dependency to the one read it needs.
type ChecklistSource struct {
	Checked func() (map[string]bool, error)
}

// New returns a gate reading checklist state through src.
func New(src *ChecklistSource) *Gate {
	return &Gate{
		checklist: src,
		validate:  validator.New(),
	}
}

// StepStatuses returns all eight milestone statuses in order.
func (g *Gate) StepStatuses() ([]StepStatus, error) {
	state, err := g.checklist.Checked()
	if err != nil {
		return nil, err
	}

	statuses := make([]StepStatus, 0, len(stepLabels)+1)
	for _, label := range stepLabels {
		statuses = append(statuses, StepStatus{Label: label, Completed: true})
	}
	statuses = append(statuses, StepStatus{
		Label:     checklistStepLabel,
		Completed: checklist.AllPassed(state),
	})
	return statuses, nil
}

// AllStepsCompleted reports whether every milestone, including the checklist
// step, is complete.
func (g *Gate) AllStepsCompleted() (bool, error) {
	statuses, err := g.StepStatuses()
	if err != nil {
		return false, err
	}
	for _, s := range statuses {
		if !s.Completed {
			return false, nil
		}
	}
	return true, nil
}

// ValidateLinks checks each URL field independently and returns a message per
// failed field, keyed by the JSON field name. An empty map means all fields
// are valid. Field failures are values, not errors.
func (g *Gate) ValidateLinks(links model.SubmissionLinks) map[string]string {
	problems := make(map[string]string)

	err := g.validate.Struct(links)
	if err == nil {
		return problems
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		problems["links"] = err.Error()
		return problems
	}
	for _, fe := range fieldErrs {
		field := jsonFieldName(fe.Field())
		if fe.Tag() == "required" {
			problems[field] = "Required"
		} else {
			problems[field] = "Must be a valid URL"
		}
	}
	return problems
}

// jsonFieldName lowers the first rune of a struct field name to match the
// persisted JSON keys (LovableLink -> lovableLink).
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

// AllLinksProvided reports whether the given links pass structural validation.
func (g *Gate) AllLinksProvided(links model.SubmissionLinks) bool {
	return len(g.ValidateLinks(links)) == 0
}

// IsShipped is the terminal projection: every step complete, every checklist
// item passed, and all three links valid.
func (g *Gate) IsShipped(links model.SubmissionLinks) (bool, error) {
	steps, err := g.AllStepsCompleted()
	if err != nil {
		return false, err
	}
	state, err := g.checklist.Checked()
	if err != nil {
		return false, err
	}
	return steps && checklist.AllPassed(state) && g.AllLinksProvided(links), nil
}

// SubmissionText renders the final submission block for copy-paste.
func SubmissionText(links model.SubmissionLinks) string {
	return fmt.Sprintf(`------------------------------------------
PrepScope — Final Submission

Lovable Project: %s
GitHub Repository: %s
Live Deployment: %s

Core Capabilities:
- JD skill extraction (deterministic)
- Round mapping engine
- 7-day prep plan
- Interactive readiness scoring
- History persistence
------------------------------------------`, links.LovableLink, links.GithubLink, links.DeployedLink)
}
