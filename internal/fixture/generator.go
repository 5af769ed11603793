// Package fixture generates randomized talent pools and project requirements
// for the demo driver and integration tests. Generation is seedable so runs
// can be reproduced exactly.
package fixture

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/gigboard/matchengine/internal/domain/model"
)

// Archetype shapes how strong a generated candidate is.
type Archetype int

// Candidate archetypes cycled across a generated pool.
const (
	ArchetypeStrong Archetype = iota
	ArchetypeAverage
	ArchetypeWeak
	ArchetypeRemoteOnly
	archetypeCount
)

// Core skill and city tables the generator draws from. The cities line up
// with the default resolver table in the config package.
var (
	skillNames = []string{"React", "Go", "PostgreSQL", "TypeScript", "Kubernetes", "GraphQL", "Python"}
	cityNames  = []string{"Berlin", "Hamburg", "Munich", "Amsterdam", "London", "Paris", "New York", "Toronto"}
)

// Generator produces deterministic random fixtures from a seed.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeed fixes the random source for reproducible pools.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic fixtures, not security
	}
}

// WithBaseTime fixes the reference time for dates.
func WithBaseTime(now time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates a fixture generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // deterministic fixtures, not security
		now: time.Now(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Project generates a demo project based in the first city with a mixed
// importance requirement list.
func (g *Generator) Project() *model.ProjectRequirements {
	start := g.now.AddDate(0, 0, 14)
	return &model.ProjectRequirements{
		ID:      uuid.New().String(),
		Version: "1",
		Title:   "Marketplace platform rebuild",
		Skills: []model.SkillRequirement{
			{Name: "React", Importance: model.ImportanceRequired, MinProficiency: model.ProficiencyIntermediate, MinYears: 2},
			{Name: "Go", Importance: model.ImportanceRequired, MinProficiency: model.ProficiencyAdvanced, MinYears: 3},
			{Name: "PostgreSQL", Importance: model.ImportancePreferred, MinYears: 1},
			{Name: "Kubernetes", Importance: model.ImportanceNiceToHave},
		},
		Location: model.Location{City: cityNames[0]},
		LocationPreference: model.LocationPreference{
			MaxRadiusKm: 100,
			Arrangement: model.ArrangementHybrid,
		},
		Budget:             model.Budget{Min: 50, Max: 95, Type: model.BudgetHourly},
		Timeline:           model.Timeline{StartDate: start, DurationWeeks: 12},
		RequiredExperience: model.TierSenior,
		Arrangement:        model.ArrangementHybrid,
		ClientType:         "startup",
	}
}

// Pool generates n candidate profiles cycling through the archetypes.
func (g *Generator) Pool(n int) []*model.TalentProfile {
	pool := make([]*model.TalentProfile, n)
	for i := 0; i < n; i++ {
		pool[i] = g.Profile(Archetype(i % int(archetypeCount)))
	}
	return pool
}

// Profile generates one candidate of the given archetype.
func (g *Generator) Profile(a Archetype) *model.TalentProfile {
	city := cityNames[g.rng.Intn(len(cityNames))]
	p := &model.TalentProfile{
		ID:       uuid.New().String(),
		Version:  "1",
		Name:     fmt.Sprintf("candidate-%04d", g.rng.Intn(10000)),
		Location: model.Location{City: city},
	}

	switch a {
	case ArchetypeStrong:
		p.Skills = g.skills(5, model.ProficiencyExpert, 5, true)
		p.HourlyRate = model.RateRange{Min: 60, Max: 85}
		p.Availability = model.Availability{
			HoursPerWeek:  40,
			EarliestStart: g.now.AddDate(0, 0, 7),
			Arrangement:   model.ArrangementHybrid,
		}
		p.Experience = model.Experience{TotalYears: 9, RelevantYears: 6, CompletedProjects: 34, SuccessRate: 97}
		p.Reputation = model.Reputation{Rating: 4.9, ReviewCount: 61, AvgResponseTime: time.Hour, ReliabilityIndex: 95}
		p.Portfolio = model.Portfolio{ProjectCount: 28, RelevantProjectCount: 19, HasRelevantWork: true}
		p.Verification = model.Verification{Identity: true, Skills: true, Background: true, References: true}
	case ArchetypeAverage:
		p.Skills = g.skills(4, model.ProficiencyIntermediate, 3, false)
		p.HourlyRate = model.RateRange{Min: 45, Max: 70}
		p.Availability = model.Availability{
			HoursPerWeek:  30,
			EarliestStart: g.now.AddDate(0, 0, 20),
			Arrangement:   model.ArrangementHybrid,
		}
		p.Experience = model.Experience{TotalYears: 4, RelevantYears: 2, CompletedProjects: 11, SuccessRate: 88}
		p.Reputation = model.Reputation{Rating: 4.2, ReviewCount: 18, AvgResponseTime: 6 * time.Hour, ReliabilityIndex: 78}
		p.Portfolio = model.Portfolio{ProjectCount: 9, RelevantProjectCount: 4, HasRelevantWork: true}
		p.Verification = model.Verification{Identity: true, Skills: true}
	case ArchetypeWeak:
		p.Skills = g.skills(2, model.ProficiencyBeginner, 1, false)
		p.HourlyRate = model.RateRange{Min: 100, Max: 140}
		p.Availability = model.Availability{
			HoursPerWeek:  15,
			EarliestStart: g.now.AddDate(0, 1, 0),
			Arrangement:   model.ArrangementOnsite,
		}
		p.Experience = model.Experience{TotalYears: 1, RelevantYears: 0.5, CompletedProjects: 2, SuccessRate: 70}
		p.Reputation = model.Reputation{Rating: 3.4, ReviewCount: 3, AvgResponseTime: 30 * time.Hour, ReliabilityIndex: 55}
		p.Portfolio = model.Portfolio{ProjectCount: 2, RelevantProjectCount: 0}
		p.Verification = model.Verification{}
	case ArchetypeRemoteOnly:
		p.Skills = g.skills(4, model.ProficiencyAdvanced, 4, true)
		p.HourlyRate = model.RateRange{Min: 55, Max: 80}
		p.Availability = model.Availability{
			HoursPerWeek:  40,
			EarliestStart: g.now.AddDate(0, 0, 3),
			Arrangement:   model.ArrangementRemote,
		}
		p.Experience = model.Experience{TotalYears: 6, RelevantYears: 4, CompletedProjects: 17, SuccessRate: 92}
		p.Reputation = model.Reputation{Rating: 4.6, ReviewCount: 27, AvgResponseTime: 2 * time.Hour, ReliabilityIndex: 86}
		p.Portfolio = model.Portfolio{ProjectCount: 14, RelevantProjectCount: 8, HasRelevantWork: true}
		p.Verification = model.Verification{Identity: true, Skills: true, References: true}
		p.LocationPreference = &model.LocationPreference{Arrangement: model.ArrangementRemote}
	}

	return p
}

// skills draws count skills from the core table with the given shape.
func (g *Generator) skills(count int, proficiency model.Proficiency, years float64, verified bool) []model.TalentSkill {
	if count > len(skillNames) {
		count = len(skillNames)
	}
	start := g.rng.Intn(len(skillNames))
	out := make([]model.TalentSkill, 0, count)
	for i := 0; i < count; i++ {
		name := skillNames[(start+i)%len(skillNames)]
		out = append(out, model.TalentSkill{
			Name:         name,
			Proficiency:  proficiency,
			Years:        years,
			Verified:     verified,
			Endorsements: g.rng.Intn(8),
			LastUsed:     g.now.AddDate(0, -g.rng.Intn(10), 0),
		})
	}
	return out
}
