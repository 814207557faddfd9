package intel

import (
	"fmt"

	"github.com/prepscope/prepscope/internal/model"
)

// generateRounds predicts the interview sequence for a size bucket. Branching
// keys on three signals from the extracted skills: a DSA/Core-CS signal, the
// Web category, and the Data category.
func generateRounds(size model.CompanySize, skills model.ExtractedSkills) []model.RoundMapping {
	hasDSA := skills.Has("Core CS") || skills.HasSkill("DSA")
	hasWeb := skills.Has("Web")
	hasData := skills.Has("Data")

	if size == model.SizeEnterprise {
		technical := "Technical (Coding + Fundamentals)"
		if hasDSA {
			technical = "Technical (DSA + Core CS)"
		}
		return []model.RoundMapping{
			{
				Round: "Round 1",
				Title: "Online Test (DSA + Aptitude)",
				Why:   "Filters candidates at scale using standardized coding and aptitude assessments. Focus on time-bound problem solving.",
			},
			{
				Round: "Round 2",
				Title: technical,
				Why:   "Deep-dives into data structures, algorithms, and CS fundamentals. Expect whiteboard-style problem solving.",
			},
			{
				Round: "Round 3",
				Title: "Tech + Projects Discussion",
				Why:   "Evaluates how you apply knowledge in real projects. Be ready to explain architecture decisions and tradeoffs.",
			},
			{
				Round: "Round 4",
				Title: "HR / Managerial",
				Why:   "Assesses cultural fit, communication skills, and long-term career alignment with the organization.",
			},
		}
	}

	if size == model.SizeMidSize {
		technical := "Technical (DSA + System Basics)"
		if hasWeb {
			technical = "Technical (Stack + Problem Solving)"
		}
		rounds := []model.RoundMapping{
			{
				Round: "Round 1",
				Title: "Online Assessment",
				Why:   "Tests coding ability and logical thinking. Usually a mix of MCQs and coding problems.",
			},
			{
				Round: "Round 2",
				Title: technical,
				Why:   "Evaluates practical coding skills and understanding of the technology stack mentioned in the JD.",
			},
			{
				Round: "Round 3",
				Title: "Project Deep-dive + System Design",
				Why:   "Explores your project experience and ability to think about systems at a higher level.",
			},
		}
		if hasData {
			rounds = append(rounds, model.RoundMapping{
				Round: "Round 4",
				Title: "Database & Backend Discussion",
				Why:   "Probes your understanding of data modeling, query optimization, and backend architecture.",
			})
		}
		rounds = append(rounds, model.RoundMapping{
			Round: fmt.Sprintf("Round %d", len(rounds)+1),
			Title: "HR / Culture Fit",
			Why:   "Checks alignment with company values, team dynamics, and growth mindset.",
		})
		return rounds
	}

	// Startup
	first := "Take-home / Coding Challenge"
	if hasWeb {
		first = "Practical Coding (Live)"
	}
	return []model.RoundMapping{
		{
			Round: "Round 1",
			Title: first,
			Why:   "Startups value builders. This round tests if you can write real, working code under practical constraints.",
		},
		{
			Round: "Round 2",
			Title: "System Discussion + Architecture",
			Why:   "Evaluates how you think about building products end-to-end. Expect questions on tradeoffs and scalability.",
		},
		{
			Round: "Round 3",
			Title: "Culture Fit + Founder Chat",
			Why:   "Startups hire for mindset. This checks if you're adaptable, self-driven, and aligned with the mission.",
		},
	}
}
