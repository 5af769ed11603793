package model

// SkillMatch is the scored outcome for a single requirement.
type SkillMatch struct {
	Name       string     `json:"name"`
	Importance Importance `json:"importance"`
	Score      float64    `json:"score"`
	Matched    bool       `json:"matched"`
}

// SkillsSummary aggregates all requirement matches for one candidate.
type SkillsSummary struct {
	Score            float64      `json:"score"`
	RequiredMatch    float64      `json:"required_match"`
	PreferredMatch   float64      `json:"preferred_match"`
	Matches          []SkillMatch `json:"matches"`
	MissingRequired  []string     `json:"missing_required,omitempty"`
	MissingPreferred []string     `json:"missing_preferred,omitempty"`
	BonusSkills      []string     `json:"bonus_skills,omitempty"`
	Recommendations  []string     `json:"recommendations,omitempty"`
}

// LocationResult is the geographic compatibility outcome.
type LocationResult struct {
	Score                 float64  `json:"score"`
	Resolved              bool     `json:"resolved"`
	DistanceKm            float64  `json:"distance_km"`
	SameCity              bool     `json:"same_city"`
	WithinRadius          bool     `json:"within_radius"`
	ArrangementCompatible bool     `json:"arrangement_compatible"`
	TravelMode            string   `json:"travel_mode,omitempty"`
	TravelMinutes         float64  `json:"travel_minutes,omitempty"`
	Recommendations       []string `json:"recommendations,omitempty"`
}

// BudgetResult is the rate-vs-budget outcome. Score is the value score that
// feeds the overall weighted sum.
type BudgetResult struct {
	Score           float64  `json:"score"`
	IsWithinBudget  bool     `json:"is_within_budget"`
	IsOverBudget    bool     `json:"is_over_budget"`
	BudgetAlignment float64  `json:"budget_alignment"`
	CostEfficiency  float64  `json:"cost_efficiency"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// AvailabilityResult is the start-date and capacity outcome.
type AvailabilityResult struct {
	Score                 float64  `json:"score"`
	CanStartOnTime        bool     `json:"can_start_on_time"`
	HasCapacity           bool     `json:"has_capacity"`
	ScheduleAlignment     float64  `json:"schedule_alignment"`
	TimelineCompatibility float64  `json:"timeline_compatibility"`
	Recommendations       []string `json:"recommendations,omitempty"`
}

// ExperienceResult is the seniority fit outcome.
type ExperienceResult struct {
	Score                float64  `json:"score"`
	TierMet              bool     `json:"tier_met"`
	ProjectComplexityFit float64  `json:"project_complexity_fit"`
	Recommendations      []string `json:"recommendations,omitempty"`
}

// ReputationResult is the rating/reliability/responsiveness outcome.
type ReputationResult struct {
	Score           float64  `json:"score"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// VerificationResult is the identity/credential check outcome.
type VerificationResult struct {
	Score           float64  `json:"score"`
	Risk            RiskTier `json:"risk"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// PortfolioResult is the past-work relevance outcome.
type PortfolioResult struct {
	Score           float64  `json:"score"`
	Relevance       float64  `json:"relevance"`
	Quality         float64  `json:"quality"`
	Diversity       float64  `json:"diversity"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// RiskFactor pairs a specific concern with its mitigation.
type RiskFactor struct {
	Description string `json:"description"`
	Mitigation  string `json:"mitigation"`
}

// RiskAssessment is the derived hiring risk for one candidate.
type RiskAssessment struct {
	Overall         RiskTier     `json:"overall"`
	Factors         []RiskFactor `json:"factors,omitempty"`
	ConfidenceLevel float64      `json:"confidence_level"`
}

// CandidateMatch is the complete scored result for one candidate.
// Created fresh per ranking run and never mutated after construction;
// Ranking is assigned only after the full pool has been scored.
type CandidateMatch struct {
	TalentID       string             `json:"talent_id"`
	OverallScore   float64            `json:"overall_score"`
	Ranking        int                `json:"ranking"`
	Fit            FitTier            `json:"fit"`
	Skills         SkillsSummary      `json:"skills"`
	Location       LocationResult     `json:"location"`
	Budget         BudgetResult       `json:"budget"`
	Availability   AvailabilityResult `json:"availability"`
	Experience     ExperienceResult   `json:"experience"`
	Reputation     ReputationResult   `json:"reputation"`
	Verification   VerificationResult `json:"verification"`
	Portfolio      PortfolioResult    `json:"portfolio"`
	Risk           RiskAssessment     `json:"risk"`
	Strengths      []string           `json:"strengths,omitempty"`
	Concerns       []string           `json:"concerns,omitempty"`
	Recommendation string             `json:"recommendation,omitempty"`
}
