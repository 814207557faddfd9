package prep

import "github.com/prepscope/prepscope/internal/model"

// Plan builds the 7-day study plan. Day titles and base tasks are fixed;
// detected categories append their day-specific extras.
func Plan(skills model.ExtractedSkills) []model.DayPlan {
	day1 := []string{
		"Review OOP principles (SOLID, design patterns)",
		"Revise OS concepts (deadlocks, memory management)",
		"Brush up on DBMS (ACID, normalization, joins)",
	}
	if skills.Has("Core CS") {
		day1 = append(day1, "Practice 10 Core CS MCQs")
	}
	if skills.Has("Other") {
		day1 = append(day1, "Review basic programming concepts")
	}

	day2 := []string{
		"Review networking basics (HTTP, DNS, TCP)",
		"Study computer architecture fundamentals",
		"Practice aptitude questions (30 min)",
	}
	if skills.Has("Languages") {
		day2 = append(day2, "Revise language-specific features & gotchas")
	}

	day3 := []string{
		"Solve 5 easy DSA problems (arrays, strings)",
		"Practice linked list & stack problems",
		"Review recursion & backtracking patterns",
	}
	if skills.Has("Data") {
		day3 = append(day3, "Write complex SQL queries (joins, subqueries, window functions)")
	}
	if skills.Has("Other") {
		day3 = append(day3, "Practice basic coding problems (loops, conditionals)")
	}

	day4 := []string{
		"Solve 3 medium DSA problems (trees, graphs)",
		"Practice dynamic programming (2 problems)",
		"Review sorting & searching algorithms",
	}
	if skills.Has("Web") {
		day4 = append(day4, "Build a small React component from scratch")
	}

	day5 := []string{
		"Align resume with JD keywords",
		"Prepare 2-min walkthrough for each project",
		"Review and update GitHub/portfolio",
	}
	if skills.Has("Cloud/DevOps") {
		day5 = append(day5, "Review deployment & DevOps practices for projects")
	}
	if skills.Has("Testing") {
		day5 = append(day5, "Add testing examples to project discussions")
	}

	day6 := []string{
		"Practice behavioral interview questions (STAR method)",
		"Do a mock technical interview (45 min)",
		"Practice 'Tell me about yourself' variations",
		"Review common HR questions and prepare answers",
	}

	day7 := []string{
		"Revisit weak areas identified during the week",
		"Solve 3 random difficulty problems",
		"Review all notes and key concepts",
		"Get proper rest before the interview",
	}

	return []model.DayPlan{
		{Day: "Day 1", Title: "Core CS Fundamentals", Tasks: day1},
		{Day: "Day 2", Title: "Basics & Aptitude", Tasks: day2},
		{Day: "Day 3", Title: "DSA – Easy Level", Tasks: day3},
		{Day: "Day 4", Title: "DSA – Medium + Coding", Tasks: day4},
		{Day: "Day 5", Title: "Projects & Resume", Tasks: day5},
		{Day: "Day 6", Title: "Mock Interviews", Tasks: day6},
		{Day: "Day 7", Title: "Revision & Rest", Tasks: day7},
	}
}
