package scoring

import (
	"fmt"

	"github.com/gigboard/matchengine/internal/domain/model"
)

// Seniority tier comparison on the common 1-4 scale.
const (
	tierBasePoints      = 40.0
	tierBonusPerExtra   = 5.0
	tierPenaltyPerGap   = 15.0
	complexityPerYear   = 2.0
	relevantYearsStrong = 3.0
	relevantYearsSome   = 1.0
)

// ExperienceMatcher scores seniority and track-record fit.
type ExperienceMatcher struct {
	tierFromYears func(years float64) model.ExperienceTier
}

// ExperienceOption applies a configuration option to the matcher.
type ExperienceOption func(*ExperienceMatcher)

// WithTierMapping substitutes the years-to-tier heuristic. The default
// ceil(years/2) mapping is approximate, not a guaranteed equivalence with
// the proficiency enum.
func WithTierMapping(fn func(years float64) model.ExperienceTier) ExperienceOption {
	return func(m *ExperienceMatcher) {
		if fn != nil {
			m.tierFromYears = fn
		}
	}
}

// NewExperienceMatcher creates an experience matcher.
func NewExperienceMatcher(opts ...ExperienceOption) *ExperienceMatcher {
	m := &ExperienceMatcher{
		tierFromYears: model.TierFromYears,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Match evaluates the talent's experience against the required tier.
func (m *ExperienceMatcher) Match(talent *model.TalentProfile, project *model.ProjectRequirements) model.ExperienceResult {
	exp := talent.Experience
	required := project.RequiredExperience
	if required < model.TierEntry {
		required = model.TierEntry
	}
	talentTier := m.tierFromYears(exp.TotalYears)

	result := model.ExperienceResult{
		TierMet: talentTier >= required,
	}

	var score float64
	if result.TierMet {
		score += tierBasePoints + tierBonusPerExtra*float64(talentTier-required)
	} else {
		gap := float64(required - talentTier)
		score += tierBasePoints - tierPenaltyPerGap*gap
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Seniority is %d tier(s) below the project requirement", required-talentTier))
	}

	switch {
	case exp.RelevantYears >= relevantYearsStrong:
		score += 25
	case exp.RelevantYears >= relevantYearsSome:
		score += 15
	default:
		score += 5
	}

	switch {
	case exp.CompletedProjects >= 20:
		score += 20
	case exp.CompletedProjects >= 10:
		score += 15
	case exp.CompletedProjects >= 5:
		score += 10
	default:
		score += 5
	}

	switch {
	case exp.SuccessRate >= 95:
		score += 15
	case exp.SuccessRate >= 85:
		score += 10
	case exp.SuccessRate >= 75:
		score += 5
	}

	result.Score = model.ClampScore(score)
	result.ProjectComplexityFit = model.ClampScore(result.Score + exp.TotalYears*complexityPerYear)
	return result
}
