// Package prep builds the deterministic study content for an analysis: the
// round-wise checklist, the 7-day plan, and the interview question list. Each
// generator starts from fixed base lists and conditionally appends
// category-triggered items, so identical skills always produce identical output.
package prep

import "github.com/prepscope/prepscope/internal/model"

// round3Cap bounds the technical-interview round after conditional appends.
const round3Cap = 8

// Checklist builds the 4-round preparation checklist from the extracted
// skills. Round 3 is truncated to its first 8 items, preserving insertion
// order, no matter how many conditional categories fired.
func Checklist(skills model.ExtractedSkills) []model.ChecklistRound {
	round1 := []string{
		"Review quantitative aptitude basics",
		"Practice logical reasoning puzzles",
		"Brush up on verbal ability",
		"Solve 2 previous year aptitude papers",
		"Review basic probability and statistics",
	}
	if skills.Has("Core CS") {
		round1 = append(round1,
			"Revise OS process scheduling concepts",
			"Review DBMS normalization forms",
			"Practice networking MCQs (TCP/IP, OSI)",
		)
	}

	round2 := []string{
		"Solve 5 easy array/string problems",
		"Practice 3 medium tree/graph problems",
		"Review time & space complexity analysis",
		"Implement sorting algorithms from scratch",
		"Practice dynamic programming patterns",
	}
	if skills.HasSkill("DSA") {
		round2 = append(round2,
			"Solve 3 hard DP problems",
			"Practice sliding window & two pointer",
			"Review greedy algorithm strategies",
		)
	}

	round3 := []string{
		"Prepare 2-minute project walkthrough",
		"Review system design fundamentals",
		"Practice explaining technical decisions",
		"Prepare answers for 'Why this technology?'",
		"Review your resume projects in depth",
	}
	if skills.Has("Web") {
		round3 = append(round3,
			"Explain React component lifecycle or hooks",
			"Discuss REST vs GraphQL tradeoffs",
			"Review frontend performance optimization",
		)
	}
	if skills.Has("Data") {
		round3 = append(round3,
			"Practice SQL query optimization",
			"Explain database indexing strategies",
		)
	}
	if skills.Has("Cloud/DevOps") {
		round3 = append(round3,
			"Review CI/CD pipeline concepts",
			"Explain containerization benefits",
		)
	}

	round4 := []string{
		"Prepare 'Tell me about yourself' (2 min)",
		"Practice 'Why do you want to join us?'",
		"Prepare examples of teamwork & leadership",
		"Review company values and recent news",
		"Practice salary/expectations discussion",
		"Prepare thoughtful questions for interviewer",
	}

	// General-fresher fallback category adds soft-skill items.
	if skills.Has("Other") {
		round1 = append(round1, "Practice communication exercises")
		round2 = append(round2, "Solve basic coding problems (FizzBuzz, palindrome)")
		round3 = append(round3, "Prepare project presentation for non-technical audience")
	}

	if len(round3) > round3Cap {
		round3 = round3[:round3Cap]
	}

	return []model.ChecklistRound{
		{Round: "Round 1", Title: "Aptitude & Basics", Items: round1},
		{Round: "Round 2", Title: "DSA + Core CS", Items: round2},
		{Round: "Round 3", Title: "Technical Interview", Items: round3},
		{Round: "Round 4", Title: "Managerial / HR", Items: round4},
	}
}
