package model

import "time"

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// Location identifies where a talent lives or a project is based.
// Coordinates are optional; a name-keyed resolver fills the gap.
type Location struct {
	City        string       `json:"city"`
	Country     string       `json:"country,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// TalentSkill is one skill on a talent profile.
type TalentSkill struct {
	Name         string      `json:"name" validate:"required"`
	Proficiency  Proficiency `json:"proficiency"`
	Years        float64     `json:"years" validate:"gte=0"`
	Verified     bool        `json:"verified"`
	Endorsements int         `json:"endorsements" validate:"gte=0"`
	LastUsed     time.Time   `json:"last_used,omitempty"`
}

// RateRange is the hourly rate band a talent quotes.
type RateRange struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gte=0,gtefield=Min"`
}

// Average returns the midpoint of the range.
func (r RateRange) Average() float64 {
	return (r.Min + r.Max) / 2
}

// Availability captures when and how much a talent can work.
type Availability struct {
	HoursPerWeek   int             `json:"hours_per_week" validate:"gte=0,lte=168"`
	EarliestStart  time.Time       `json:"earliest_start"`
	Arrangement    WorkArrangement `json:"arrangement"`
	TravelRadiusKm float64         `json:"travel_radius_km,omitempty" validate:"gte=0"`
}

// Experience summarizes a talent's track record.
type Experience struct {
	TotalYears        float64 `json:"total_years" validate:"gte=0"`
	RelevantYears     float64 `json:"relevant_years" validate:"gte=0"`
	CompletedProjects int     `json:"completed_projects" validate:"gte=0"`
	SuccessRate       float64 `json:"success_rate" validate:"gte=0,lte=100"`
}

// Reputation summarizes ratings and responsiveness.
type Reputation struct {
	Rating           float64       `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount      int           `json:"review_count" validate:"gte=0"`
	AvgResponseTime  time.Duration `json:"avg_response_time"`
	ReliabilityIndex float64       `json:"reliability_index" validate:"gte=0,lte=100"`
}

// Portfolio summarizes past work relevant to matching.
type Portfolio struct {
	ProjectCount         int  `json:"project_count" validate:"gte=0"`
	RelevantProjectCount int  `json:"relevant_project_count" validate:"gte=0"`
	HasRelevantWork      bool `json:"has_relevant_work"`
}

// Verification holds the identity and credential check flags.
type Verification struct {
	Identity   bool `json:"identity"`
	Skills     bool `json:"skills"`
	Background bool `json:"background"`
	References bool `json:"references"`
}

// LocationPreference expresses geographic constraints for either side.
type LocationPreference struct {
	MaxRadiusKm       float64         `json:"max_radius_km,omitempty" validate:"gte=0"`
	PreferredCities   []string        `json:"preferred_cities,omitempty"`
	Arrangement       WorkArrangement `json:"arrangement,omitempty"`
	HybridPercent     int             `json:"hybrid_percent,omitempty" validate:"gte=0,lte=100"`
	TravelWillingness bool            `json:"travel_willingness,omitempty"`
}

// TalentProfile is an immutable candidate snapshot fed into a ranking run.
type TalentProfile struct {
	ID                 string              `json:"id" validate:"required"`
	Version            string              `json:"version,omitempty"`
	Name               string              `json:"name,omitempty"`
	Location           Location            `json:"location"`
	Skills             []TalentSkill       `json:"skills" validate:"min=1,dive"`
	HourlyRate         RateRange           `json:"hourly_rate"`
	Availability       Availability        `json:"availability"`
	Experience         Experience          `json:"experience"`
	Reputation         Reputation          `json:"reputation"`
	Portfolio          Portfolio           `json:"portfolio"`
	Verification       Verification        `json:"verification"`
	LocationPreference *LocationPreference `json:"location_preference,omitempty"`
}
