// Package score computes the readiness score for an analysis.
package score

import (
	"strings"

	"github.com/prepscope/prepscope/internal/model"
)

// longJDThreshold is the JD length (in bytes) above which the completeness
// bonus applies.
const longJDThreshold = 800

// Base computes the base readiness score from extraction breadth and input
// completeness: 35 points floor, +5 per distinct category (capped at 30),
// +10 each for a non-blank company, a non-blank role, and a JD longer than
// 800 characters. Clamped to 100 and monotonic in every input.
func Base(skills model.ExtractedSkills, company, role, jdText string) int {
	s := 35
	s += min(5*len(skills), 30)
	if strings.TrimSpace(company) != "" {
		s += 10
	}
	if strings.TrimSpace(role) != "" {
		s += 10
	}
	if len(jdText) > longJDThreshold {
		s += 10
	}
	return min(s, 100)
}

// Final applies the confidence deltas to a base score: +2 per "know", -2 per
// "practice", clamped to [0, 100]. Every entry in the map contributes.
func Final(base int, confidence map[string]model.Confidence) int {
	delta := 0
	for _, c := range confidence {
		if c == model.ConfidenceKnow {
			delta += 2
		} else {
			delta -= 2
		}
	}
	return clamp(base+delta, 0, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
