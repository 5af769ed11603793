// Package skills scores how well a talent's skill set satisfies a project's
// skill requirements. Matching is case-insensitive by skill name; an absent
// skill earns zero credit and lands on the appropriate missing list.
package skills

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gigboard/matchengine/internal/domain/model"
)

// Per-skill scoring constants. A present skill starts from the possession
// base and accumulates proficiency, years, verification, endorsement, and
// recency credit before clamping to [0,100].
const (
	possessionBase = 40

	proficiencyFull           = 30
	proficiencyBonusPerTier   = 5
	proficiencyPenaltyPerTier = 10

	yearsFull           = 20
	yearsOvershootBonus = 10
	yearsOvershootRatio = 1.5
	yearsPenaltyPerYear = 5

	verifiedBonus = 10

	endorsementPoints = 2
	endorsementCap    = 10

	recentUseBonus  = 5
	staleUseBonus   = 2
	recentUseMonths = 6
	staleUseMonths  = 12

	// tierMatchThreshold is the per-skill score that counts toward the
	// required/preferred match percentages.
	tierMatchThreshold = 70
)

// Matcher scores skill-requirement satisfaction for one candidate.
// It is pure and safe for concurrent use.
type Matcher struct {
	taxonomy Taxonomy
	now      func() time.Time
}

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithTaxonomy wires a skills taxonomy used to suggest same-category
// substitutes for missing skills. Suggestions never affect scores.
func WithTaxonomy(t Taxonomy) Option {
	return func(m *Matcher) {
		if t != nil {
			m.taxonomy = t
		}
	}
}

// WithClock overrides the recency reference clock.
func WithClock(now func() time.Time) Option {
	return func(m *Matcher) {
		if now != nil {
			m.now = now
		}
	}
}

// New creates a skills matcher with the provided options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		now: time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Match scores every requirement against the talent's skills and aggregates
// them into a summary weighted by importance tier.
func (m *Matcher) Match(ctx context.Context, talentSkills []model.TalentSkill, reqs []model.SkillRequirement) model.SkillsSummary {
	byName := make(map[string]model.TalentSkill, len(talentSkills))
	for _, s := range talentSkills {
		byName[normalizeName(s.Name)] = s
	}

	summary := model.SkillsSummary{
		Matches: make([]model.SkillMatch, 0, len(reqs)),
	}

	var weightedSum, weightTotal float64
	var requiredTotal, requiredHit, preferredTotal, preferredHit int
	requested := make(map[string]struct{}, len(reqs))

	for _, req := range reqs {
		key := normalizeName(req.Name)
		requested[key] = struct{}{}
		weight := req.Importance.Weight()
		weightTotal += weight

		switch req.Importance {
		case model.ImportanceRequired:
			requiredTotal++
		case model.ImportancePreferred:
			preferredTotal++
		}

		talent, ok := byName[key]
		if !ok {
			// No partial credit for absent skills.
			summary.Matches = append(summary.Matches, model.SkillMatch{
				Name:       req.Name,
				Importance: req.Importance,
				Score:      0,
				Matched:    false,
			})
			switch req.Importance {
			case model.ImportanceRequired:
				summary.MissingRequired = append(summary.MissingRequired, req.Name)
			case model.ImportancePreferred:
				summary.MissingPreferred = append(summary.MissingPreferred, req.Name)
			}
			if recs := m.substituteSuggestions(ctx, req.Name, talentSkills); len(recs) > 0 {
				summary.Recommendations = append(summary.Recommendations, recs...)
			}
			continue
		}

		score := m.scoreSkill(talent, req)
		weightedSum += score * weight

		summary.Matches = append(summary.Matches, model.SkillMatch{
			Name:       req.Name,
			Importance: req.Importance,
			Score:      score,
			Matched:    true,
		})

		if score >= tierMatchThreshold {
			switch req.Importance {
			case model.ImportanceRequired:
				requiredHit++
			case model.ImportancePreferred:
				preferredHit++
			}
		}
	}

	if weightTotal > 0 {
		summary.Score = model.ClampScore(weightedSum / weightTotal)
	}
	summary.RequiredMatch = tierPercentage(requiredHit, requiredTotal)
	summary.PreferredMatch = tierPercentage(preferredHit, preferredTotal)
	summary.BonusSkills = bonusSkills(talentSkills, requested)

	return summary
}

// scoreSkill scores a present skill against one requirement on the 0-100
// scale described in the summary doc above.
func (m *Matcher) scoreSkill(talent model.TalentSkill, req model.SkillRequirement) float64 {
	score := float64(possessionBase)

	// Proficiency tier comparison. A requirement without a proficiency
	// floor grants full credit without the overshoot bonus.
	reqLevel := req.MinProficiency.Level()
	haveLevel := talent.Proficiency.Level()
	switch {
	case reqLevel == 0:
		score += proficiencyFull
	case haveLevel >= reqLevel:
		score += proficiencyFull + float64(proficiencyBonusPerTier*(haveLevel-reqLevel))
	default:
		score += proficiencyFull - float64(proficiencyPenaltyPerTier*(reqLevel-haveLevel))
	}

	// Years of experience with the same over/under-shoot pattern.
	switch {
	case req.MinYears == 0:
		score += yearsFull
	case talent.Years >= req.MinYears*yearsOvershootRatio:
		score += yearsFull + yearsOvershootBonus
	case talent.Years >= req.MinYears:
		score += yearsFull
	default:
		score += yearsFull - yearsPenaltyPerYear*(req.MinYears-talent.Years)
	}

	if talent.Verified {
		score += verifiedBonus
	}

	endorsement := float64(talent.Endorsements * endorsementPoints)
	if endorsement > endorsementCap {
		endorsement = endorsementCap
	}
	score += endorsement

	if !talent.LastUsed.IsZero() {
		now := m.now()
		switch {
		case talent.LastUsed.After(now.AddDate(0, -recentUseMonths, 0)):
			score += recentUseBonus
		case talent.LastUsed.After(now.AddDate(0, -staleUseMonths, 0)):
			score += staleUseBonus
		}
	}

	return model.ClampScore(score)
}

// substituteSuggestions returns recommendation strings naming talent skills
// in the same taxonomy category as a missing requirement.
func (m *Matcher) substituteSuggestions(ctx context.Context, missing string, talentSkills []model.TalentSkill) []string {
	if m.taxonomy == nil {
		return nil
	}
	category, ok := m.taxonomy.CategoryOf(ctx, missing)
	if !ok {
		return nil
	}

	var recs []string
	for _, s := range talentSkills {
		got, ok := m.taxonomy.CategoryOf(ctx, s.Name)
		if ok && got == category && !strings.EqualFold(s.Name, missing) {
			recs = append(recs, fmt.Sprintf("Missing %s, but %s is in the same category (%s)", missing, s.Name, category))
		}
	}
	return recs
}

// bonusSkills lists talent skills the project did not ask for, sorted for
// deterministic output.
func bonusSkills(talentSkills []model.TalentSkill, requested map[string]struct{}) []string {
	var bonus []string
	for _, s := range talentSkills {
		if _, ok := requested[normalizeName(s.Name)]; !ok {
			bonus = append(bonus, s.Name)
		}
	}
	sort.Strings(bonus)
	return bonus
}

// tierPercentage reports hits over total as a percentage. A tier with no
// requirements is trivially satisfied.
func tierPercentage(hit, total int) float64 {
	if total == 0 {
		return 100
	}
	return float64(hit) / float64(total) * 100
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
