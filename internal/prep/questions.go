package prep

import "github.com/prepscope/prepscope/internal/model"

// maxQuestions caps the generated interview question list.
const maxQuestions = 10

// questionBank maps a skill display name to its likely interview questions.
// Lookup order follows the flattened extraction order, so the bank itself can
// be an unordered map without breaking determinism.
var questionBank = map[string][]string{
	"DSA": {
		"How would you optimize search in a sorted rotated array?",
		"Explain the difference between BFS and DFS with use cases.",
		"How would you detect a cycle in a linked list?",
	},
	"OOP": {
		"Explain SOLID principles with real-world examples.",
		"What is the difference between composition and inheritance?",
	},
	"DBMS": {
		"Explain normalization up to 3NF with examples.",
		"What are ACID properties and why do they matter?",
	},
	"OS": {
		"Explain deadlock conditions and how to prevent them.",
		"What is the difference between a process and a thread?",
	},
	"SQL": {
		"Explain indexing and when it helps query performance.",
		"Write a query using window functions to rank employees by salary.",
	},
	"React": {
		"Explain state management options in React (useState, Context, Redux).",
		"What are React hooks and why were they introduced?",
	},
	"Next.js": {
		"Explain the difference between SSR, SSG, and ISR in Next.js.",
	},
	"Node.js": {
		"Explain the event loop in Node.js.",
		"How does middleware work in Express?",
	},
	"Python": {
		"Explain decorators in Python with an example.",
		"What is the GIL and how does it affect multithreading?",
	},
	"Java": {
		"Explain the difference between HashMap and ConcurrentHashMap.",
		"What is the Java Memory Model?",
	},
	"JavaScript": {
		"Explain closures and their practical applications.",
		"What is the difference between == and === in JavaScript?",
	},
	"TypeScript": {
		"Explain generics in TypeScript with a practical example.",
	},
	"MongoDB": {
		"When would you choose MongoDB over a relational database?",
	},
	"Docker": {
		"Explain the difference between a Docker image and container.",
	},
	"Kubernetes": {
		"What problem does Kubernetes solve in microservices?",
	},
	"AWS": {
		"Explain the difference between EC2, Lambda, and ECS.",
	},
	"GraphQL": {
		"Compare GraphQL vs REST – when would you pick each?",
	},
	"Redis": {
		"What are common use cases for Redis in production?",
	},
	"CI/CD": {
		"Describe a CI/CD pipeline you would set up for a web app.",
	},
	"PostgreSQL": {
		"Explain MVCC in PostgreSQL.",
	},
}

// generalQuestions pads the list front-to-back when the bank hits fall short
// of maxQuestions. Never repeated.
var generalQuestions = []string{
	"Walk me through a project you're most proud of.",
	"How do you approach debugging a complex issue?",
	"Explain a time you had to learn a new technology quickly.",
	"What is your approach to writing clean, maintainable code?",
	"How do you handle disagreements in a team?",
}

// Questions builds the ranked interview question list: every bank hit for the
// flattened skills in extraction order, padded with general questions up to
// ten, then truncated to ten.
func Questions(skills model.ExtractedSkills) []string {
	var questions []string
	for _, skill := range skills.Flatten() {
		questions = append(questions, questionBank[skill]...)
	}

	for _, g := range generalQuestions {
		if len(questions) >= maxQuestions {
			break
		}
		questions = append(questions, g)
	}

	if len(questions) > maxQuestions {
		questions = questions[:maxQuestions]
	}
	return questions
}
