package scoring

import (
	"fmt"

	"github.com/gigboard/matchengine/internal/domain/model"
)

// Budget alignment bands for over-budget candidates, by percentage overage.
const (
	overageMinorPct      = 20.0
	overageModeratePct   = 50.0
	alignmentWithin      = 100.0
	alignmentMinorOver   = 70.0
	alignmentModerate    = 40.0
	alignmentSevere      = 20.0
	alignmentUnderBudget = 80.0
)

// Cost-efficiency bands comparing average rate to average budget.
const (
	efficiencyBargainRatio = 0.8
	efficiencyStretchRatio = 1.2
	efficiencyBargain      = 90.0
	efficiencyFair         = 75.0
	efficiencyStretch      = 50.0
	efficiencyPoor         = 30.0
)

// Value multiplier caps.
const (
	experienceYearsPerUnit = 5.0
	experienceMultCap      = 2.0
	ratingScale            = 5.0
)

// BudgetMatcher scores rate-vs-budget alignment and overall value.
type BudgetMatcher struct{}

// NewBudgetMatcher creates a budget matcher.
func NewBudgetMatcher() *BudgetMatcher {
	return &BudgetMatcher{}
}

// Match evaluates the talent's rate range against the project budget.
// The returned Score is the value score fed into the overall weighted sum.
func (m *BudgetMatcher) Match(talent *model.TalentProfile, project *model.ProjectRequirements) model.BudgetResult {
	rate := talent.HourlyRate
	budget := project.Budget

	result := model.BudgetResult{
		IsWithinBudget: rate.Min <= budget.Max && rate.Max >= budget.Min,
	}

	switch {
	case result.IsWithinBudget:
		result.BudgetAlignment = alignmentWithin
	case rate.Min > budget.Max:
		// Talent above budget: degrade by percentage overage of the
		// average quoted rate over the budget ceiling.
		result.IsOverBudget = true
		overage := overagePct(rate.Average(), budget.Max)
		switch {
		case overage <= overageMinorPct:
			result.BudgetAlignment = alignmentMinorOver
		case overage <= overageModeratePct:
			result.BudgetAlignment = alignmentModerate
		default:
			result.BudgetAlignment = alignmentSevere
		}
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Rate exceeds the project budget by %.0f%%; consider negotiating scope or rate", overage))
	default:
		// Talent below budget: a value opportunity, not a mismatch.
		result.BudgetAlignment = alignmentUnderBudget
		result.Recommendations = append(result.Recommendations,
			"Rate is below the project budget; strong value opportunity")
	}

	result.CostEfficiency = costEfficiency(rate.Average(), budget.Average())

	// Blend cost efficiency with experience and reputation multipliers.
	expMult := talent.Experience.TotalYears / experienceYearsPerUnit
	if expMult > experienceMultCap {
		expMult = experienceMultCap
	}
	repMult := talent.Reputation.Rating / ratingScale
	result.Score = model.ClampScore(result.CostEfficiency * (expMult + repMult) / 2)

	return result
}

// costEfficiency bands the ratio of average talent rate to average budget.
func costEfficiency(avgRate, avgBudget float64) float64 {
	if avgBudget <= 0 {
		return efficiencyPoor
	}
	ratio := avgRate / avgBudget
	switch {
	case ratio <= efficiencyBargainRatio:
		return efficiencyBargain
	case ratio <= 1.0:
		return efficiencyFair
	case ratio <= efficiencyStretchRatio:
		return efficiencyStretch
	default:
		return efficiencyPoor
	}
}

func overagePct(rate, budgetMax float64) float64 {
	if budgetMax <= 0 {
		return 100
	}
	return (rate - budgetMax) / budgetMax * 100
}
