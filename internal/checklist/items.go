// Package checklist defines the manual verification checklist: ten fixed
// checks the user walks through before declaring the build shipped.
package checklist

// Item is one manual test with a hint describing how to verify it.
type Item struct {
	ID    string
	Label string
	Hint  string
}

// Items is the fixed checklist. IDs are the persisted keys and must not change.
var Items = []Item{
	{
		ID:    "jd-required",
		Label: "JD required validation works",
		Hint:  "Run analyze with an empty JD — the command must refuse with an error.",
	},
	{
		ID:    "short-jd-warning",
		Label: "Short JD warning shows for <200 chars",
		Hint:  "Analyze a few words of JD text — a short-input warning should be logged.",
	},
	{
		ID:    "skills-extraction",
		Label: "Skills extraction groups correctly",
		Hint:  "Analyze a JD mentioning React, Java, SQL — verify they land in Web, Languages, Data.",
	},
	{
		ID:    "round-mapping",
		Label: "Round mapping changes based on company + skills",
		Hint:  "Analyze with 'Amazon' vs an unknown name — the round timelines should differ.",
	},
	{
		ID:    "score-deterministic",
		Label: "Score calculation is deterministic",
		Hint:  "Analyze the same JD twice — the base score must be identical.",
	},
	{
		ID:    "skill-toggles",
		Label: "Skill toggles update score live",
		Hint:  "Toggle a skill on an entry — the final score should move by exactly 2.",
	},
	{
		ID:    "persist-refresh",
		Label: "Changes persist after restart",
		Hint:  "Toggle a skill, re-run history show — the change should still be there.",
	},
	{
		ID:    "history-saves",
		Label: "History saves and loads correctly",
		Hint:  "Analyze a JD, then run history — the entry should appear at the top of the list.",
	},
	{
		ID:    "export-buttons",
		Label: "Exports produce the correct content",
		Hint:  "Run export plan and compare against the entry shown by history show.",
	},
	{
		ID:    "no-console-errors",
		Label: "No errors on core commands",
		Hint:  "Run analyze, history, export, ship in sequence — all must exit zero.",
	},
}

// PassedCount returns how many checklist items are checked in state.
func PassedCount(state map[string]bool) int {
	n := 0
	for _, item := range Items {
		if state[item.ID] {
			n++
		}
	}
	return n
}

// AllPassed reports whether every checklist item is checked.
func AllPassed(state map[string]bool) bool {
	return PassedCount(state) == len(Items)
}
