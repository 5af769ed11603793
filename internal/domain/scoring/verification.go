package scoring

import "github.com/gigboard/matchengine/internal/domain/model"

// Fixed point values per verification check.
const (
	identityPoints   = 30.0
	skillsPoints     = 25.0
	backgroundPoints = 25.0
	referencesPoints = 20.0
)

// Risk thresholds over the summed verification score.
const (
	verificationLowRisk    = 75.0
	verificationMediumRisk = 50.0
)

// VerificationScorer scores identity and credential verification state.
type VerificationScorer struct{}

// NewVerificationScorer creates a verification scorer.
func NewVerificationScorer() *VerificationScorer {
	return &VerificationScorer{}
}

// Score sums the fixed check values and derives the verification risk tier.
func (s *VerificationScorer) Score(talent *model.TalentProfile) model.VerificationResult {
	v := talent.Verification

	var score float64
	if v.Identity {
		score += identityPoints
	}
	if v.Skills {
		score += skillsPoints
	}
	if v.Background {
		score += backgroundPoints
	}
	if v.References {
		score += referencesPoints
	}

	result := model.VerificationResult{Score: model.ClampScore(score)}
	switch {
	case score >= verificationLowRisk:
		result.Risk = model.RiskLow
	case score >= verificationMediumRisk:
		result.Risk = model.RiskMedium
	default:
		result.Risk = model.RiskHigh
	}

	if !v.Identity {
		result.Recommendations = append(result.Recommendations,
			"Identity is unverified; complete identity verification before contracting")
	}
	if !v.References {
		result.Recommendations = append(result.Recommendations,
			"No verified references on file")
	}

	return result
}
