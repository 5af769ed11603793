package insight

import "github.com/gigboard/matchengine/internal/domain/model"

// Overall risk banding and the per-factor confidence penalty.
const (
	lowRiskFloor      = 75.0
	mediumRiskFloor   = 55.0
	confidencePenalty = 10.0
	successRateFloor  = 80.0
)

// Assessor derives an overall risk tier and mitigation suggestions for one
// scored candidate.
type Assessor struct{}

// NewAssessor creates a risk assessor.
func NewAssessor() *Assessor {
	return &Assessor{}
}

// Assess derives the risk assessment from the overall score and specific
// risk signals on the profile and matcher outputs.
func (a *Assessor) Assess(talent *model.TalentProfile, m *model.CandidateMatch) model.RiskAssessment {
	assessment := model.RiskAssessment{}

	switch {
	case m.OverallScore >= lowRiskFloor:
		assessment.Overall = model.RiskLow
	case m.OverallScore >= mediumRiskFloor:
		assessment.Overall = model.RiskMedium
	default:
		assessment.Overall = model.RiskHigh
	}

	if !talent.Verification.Identity {
		assessment.Factors = append(assessment.Factors, model.RiskFactor{
			Description: "Identity has not been verified",
			Mitigation:  "Require identity verification before signing a contract",
		})
	}
	if talent.Experience.SuccessRate < successRateFloor {
		assessment.Factors = append(assessment.Factors, model.RiskFactor{
			Description: "Project success rate is below 80%",
			Mitigation:  "Start with a small milestone to validate delivery quality",
		})
	}
	if m.Budget.IsOverBudget {
		assessment.Factors = append(assessment.Factors, model.RiskFactor{
			Description: "Quoted rate exceeds the project budget",
			Mitigation:  "Negotiate scope or rate before committing to the full timeline",
		})
	}

	assessment.ConfidenceLevel = model.ClampScore(m.OverallScore - confidencePenalty*float64(len(assessment.Factors)))
	return assessment
}
