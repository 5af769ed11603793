package model

import "time"

// SkillRequirement is one skill the project asks for. MinProficiency and
// MinYears are optional; zero values mean the requirement has no floor.
type SkillRequirement struct {
	Name           string      `json:"name" validate:"required"`
	Importance     Importance  `json:"importance"`
	MinProficiency Proficiency `json:"min_proficiency,omitempty"`
	MinYears       float64     `json:"min_years,omitempty" validate:"gte=0"`
}

// BudgetType distinguishes hourly from fixed-price budgets.
type BudgetType string

// Budget types.
const (
	BudgetHourly BudgetType = "hourly"
	BudgetFixed  BudgetType = "fixed"
)

// Budget is the project's budget band.
type Budget struct {
	Min  float64    `json:"min" validate:"gte=0"`
	Max  float64    `json:"max" validate:"gte=0,gtefield=Min"`
	Type BudgetType `json:"type,omitempty"`
}

// Average returns the midpoint of the band.
func (b Budget) Average() float64 {
	return (b.Min + b.Max) / 2
}

// Timeline captures when the project starts and how long it runs.
type Timeline struct {
	StartDate     time.Time  `json:"start_date"`
	DurationWeeks int        `json:"duration_weeks" validate:"gte=0"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Urgent        bool       `json:"urgent"`
}

// ProjectRequirements is the demand side of a ranking run.
type ProjectRequirements struct {
	ID                 string             `json:"id" validate:"required"`
	Version            string             `json:"version,omitempty"`
	Title              string             `json:"title,omitempty"`
	Skills             []SkillRequirement `json:"skills" validate:"min=1,dive"`
	Location           Location           `json:"location"`
	LocationPreference LocationPreference `json:"location_preference"`
	Budget             Budget             `json:"budget"`
	Timeline           Timeline           `json:"timeline"`
	RequiredExperience ExperienceTier     `json:"required_experience" validate:"gte=0,lte=4"`
	Arrangement        WorkArrangement    `json:"arrangement"`
	IndustryTags       []string           `json:"industry_tags,omitempty"`
	ClientType         string             `json:"client_type,omitempty"`
}
