package scoring

import (
	"context"

	"github.com/gigboard/matchengine/internal/domain/model"
	"github.com/gigboard/matchengine/internal/domain/skills"
)

// Portfolio blend weights; relevance dominates.
const (
	relevanceWeight = 0.5
	qualityWeight   = 0.25
	diversityWeight = 0.25
)

// diversityCategoryFloor is the number of distinct taxonomy categories a
// talent's skills must span to earn the diversity boost.
const (
	diversityCategoryFloor = 3
	diversityCategoryBoost = 10.0
)

// PortfolioMatcher scores relevance, quality, and diversity of past work.
type PortfolioMatcher struct {
	taxonomy skills.Taxonomy
}

// PortfolioOption applies a configuration option to the matcher.
type PortfolioOption func(*PortfolioMatcher)

// WithPortfolioTaxonomy wires a skills taxonomy into the diversity score.
func WithPortfolioTaxonomy(t skills.Taxonomy) PortfolioOption {
	return func(m *PortfolioMatcher) {
		if t != nil {
			m.taxonomy = t
		}
	}
}

// NewPortfolioMatcher creates a portfolio matcher.
func NewPortfolioMatcher(opts ...PortfolioOption) *PortfolioMatcher {
	m := &PortfolioMatcher{}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Match evaluates the talent's portfolio summary.
func (m *PortfolioMatcher) Match(ctx context.Context, talent *model.TalentProfile) model.PortfolioResult {
	p := talent.Portfolio

	var result model.PortfolioResult

	if p.ProjectCount > 0 {
		result.Relevance = float64(p.RelevantProjectCount) / float64(p.ProjectCount) * 100
	}
	result.Quality = qualityScore(p.ProjectCount)
	result.Diversity = diversityScore(p.ProjectCount)

	if m.taxonomy != nil {
		names := make([]string, 0, len(talent.Skills))
		for _, s := range talent.Skills {
			names = append(names, s.Name)
		}
		if skills.DistinctCategories(ctx, m.taxonomy, names) >= diversityCategoryFloor {
			result.Diversity = model.ClampScore(result.Diversity + diversityCategoryBoost)
		}
	}

	result.Score = model.ClampScore(
		relevanceWeight*result.Relevance +
			qualityWeight*result.Quality +
			diversityWeight*result.Diversity,
	)

	if !p.HasRelevantWork {
		result.Recommendations = append(result.Recommendations,
			"No directly relevant portfolio work; ask for comparable samples")
	}

	return result
}

func qualityScore(projects int) float64 {
	switch {
	case projects >= 20:
		return 90
	case projects >= 10:
		return 75
	case projects >= 5:
		return 60
	default:
		return 40
	}
}

func diversityScore(projects int) float64 {
	switch {
	case projects >= 20:
		return 85
	case projects >= 10:
		return 70
	case projects >= 5:
		return 55
	default:
		return 35
	}
}
