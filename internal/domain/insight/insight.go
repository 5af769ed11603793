// Package insight derives human-readable diagnostics from the matcher
// outputs: per-candidate strengths, concerns, hiring recommendations, and
// risk assessments. Everything here is rule-based, not scored.
package insight

import (
	"fmt"
	"strings"

	"github.com/gigboard/matchengine/internal/domain/model"
)

// strengthThreshold promotes a sub-score into the strengths list.
const strengthThreshold = 80.0

// Generator derives strengths, concerns, and a coarse recommendation from a
// candidate's matcher outputs.
type Generator struct{}

// NewGenerator creates an insight generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate fills the insight fields on the candidate match in place. The
// match is still under construction at this point; callers must not share it
// until the evaluation completes.
func (g *Generator) Generate(m *model.CandidateMatch) {
	m.Strengths = strengths(m)
	m.Concerns = concerns(m)
	m.Recommendation = recommendation(len(m.Strengths))
}

func strengths(m *model.CandidateMatch) []string {
	var out []string
	if m.Skills.Score >= strengthThreshold {
		out = append(out, "Excellent skill coverage for the project requirements")
	}
	if m.Location.Score >= strengthThreshold {
		out = append(out, "Strong geographic and work-arrangement fit")
	}
	if m.Reputation.Score >= strengthThreshold {
		out = append(out, "Outstanding reputation and client feedback")
	}
	if m.Experience.Score >= strengthThreshold {
		out = append(out, "Deep, directly relevant experience")
	}
	return out
}

func concerns(m *model.CandidateMatch) []string {
	var out []string
	if len(m.Skills.MissingRequired) > 0 {
		out = append(out, fmt.Sprintf("Missing required skills: %s", strings.Join(m.Skills.MissingRequired, ", ")))
	}
	if !m.Budget.IsWithinBudget {
		out = append(out, "Quoted rate falls outside the project budget")
	}
	if !m.Availability.CanStartOnTime {
		out = append(out, "Cannot start by the project start date")
	}
	return out
}

// recommendation buckets the hiring advice by strength count.
func recommendation(strengthCount int) string {
	switch {
	case strengthCount >= 3:
		return "Highly recommended: standout fit across multiple criteria"
	case strengthCount == 2:
		return "Strong candidate: worth prioritizing for an interview"
	case strengthCount == 1:
		return "Viable candidate: review the flagged concerns before proceeding"
	default:
		return "Weak fit: consider only if the pool is shallow"
	}
}
