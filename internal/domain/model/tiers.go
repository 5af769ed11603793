// Package model contains the domain entities exchanged between the matchers
// and the ranker: talent profiles, project requirements, and match results.
package model

import "math"

// maxScore bounds every sub-score and the overall score.
const maxScore = 100

// WorkArrangement describes where the work happens.
type WorkArrangement string

// Work arrangement values.
const (
	ArrangementRemote WorkArrangement = "remote"
	ArrangementHybrid WorkArrangement = "hybrid"
	ArrangementOnsite WorkArrangement = "onsite"
)

// Importance classifies a project skill requirement.
type Importance string

// Importance tiers in descending weight order.
const (
	ImportanceRequired   Importance = "required"
	ImportancePreferred  Importance = "preferred"
	ImportanceNiceToHave Importance = "nice_to_have"
)

// Weight returns the aggregation weight of the importance tier.
func (i Importance) Weight() float64 {
	switch i {
	case ImportanceRequired:
		return 1.0
	case ImportancePreferred:
		return 0.7
	case ImportanceNiceToHave:
		return 0.3
	default:
		return 0.3
	}
}

// Proficiency is a talent's self-reported skill level.
type Proficiency string

// Proficiency tiers in ascending order.
const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Level maps a proficiency tier onto the common 1-4 scale.
// Unknown values map to 0 so they never satisfy a requirement by accident.
func (p Proficiency) Level() int {
	switch p {
	case ProficiencyBeginner:
		return 1
	case ProficiencyIntermediate:
		return 2
	case ProficiencyAdvanced:
		return 3
	case ProficiencyExpert:
		return 4
	default:
		return 0
	}
}

// ExperienceTier is the 1-4 seniority scale projects require.
type ExperienceTier int

// Experience tiers.
const (
	TierEntry  ExperienceTier = 1
	TierMid    ExperienceTier = 2
	TierSenior ExperienceTier = 3
	TierExpert ExperienceTier = 4
)

// TierFromYears maps raw years of experience onto the 1-4 tier scale.
// The ceil(years/2) mapping is a heuristic, not a guaranteed equivalence
// with the proficiency enum; the ranker accepts a substitute mapping.
func TierFromYears(years float64) ExperienceTier {
	if years <= 0 {
		return TierEntry
	}
	t := ExperienceTier(math.Ceil(years / 2))
	if t > TierExpert {
		return TierExpert
	}
	if t < TierEntry {
		return TierEntry
	}
	return t
}

// FitTier is the coarse bucket derived from the overall score.
type FitTier string

// Fit tiers.
const (
	FitExcellent FitTier = "excellent"
	FitGood      FitTier = "good"
	FitFair      FitTier = "fair"
	FitPoor      FitTier = "poor"
)

// RiskTier classifies hiring risk.
type RiskTier string

// Risk tiers.
const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// ClampScore bounds a score to the [0,100] range.
func ClampScore(v float64) float64 {
	return math.Max(0, math.Min(maxScore, v))
}
