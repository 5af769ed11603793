package app

import (
	"github.com/gigboard/matchengine/internal/domain/location"
	"github.com/gigboard/matchengine/internal/domain/model"
	"github.com/gigboard/matchengine/internal/domain/scoring"
	"github.com/gigboard/matchengine/internal/domain/skills"
	"github.com/gigboard/matchengine/pkg/logger"
)

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithWeights substitutes the aggregation weights. The sum invariant is
// checked in New.
func WithWeights(w Weights) Option {
	return func(r *Ranker) {
		r.weights = w
	}
}

// WithFitThresholds substitutes the fit-tier cutoffs.
func WithFitThresholds(t FitThresholds) Option {
	return func(r *Ranker) {
		r.fit = t
	}
}

// WithWorkerCount bounds the evaluation fan-out for batch ranking.
func WithWorkerCount(count int) Option {
	return func(r *Ranker) {
		if count > 0 {
			r.workerCount = count
		}
	}
}

// WithLogger sets a custom logger for the ranker.
func WithLogger(l logger.Logger) Option {
	return func(r *Ranker) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSkillsMatcher substitutes the skills matcher.
func WithSkillsMatcher(m *skills.Matcher) Option {
	return func(r *Ranker) {
		if m != nil {
			r.skills = m
		}
	}
}

// WithLocationMatcher substitutes the location matcher.
func WithLocationMatcher(m *location.Matcher) Option {
	return func(r *Ranker) {
		if m != nil {
			r.location = m
		}
	}
}

// WithAvailabilityMatcher substitutes the availability matcher.
func WithAvailabilityMatcher(m *scoring.AvailabilityMatcher) Option {
	return func(r *Ranker) {
		if m != nil {
			r.availability = m
		}
	}
}

// WithExperienceMatcher substitutes the experience matcher, e.g. to change
// the years-to-tier mapping.
func WithExperienceMatcher(m *scoring.ExperienceMatcher) Option {
	return func(r *Ranker) {
		if m != nil {
			r.experience = m
		}
	}
}

// WithPortfolioMatcher substitutes the portfolio matcher.
func WithPortfolioMatcher(m *scoring.PortfolioMatcher) Option {
	return func(r *Ranker) {
		if m != nil {
			r.portfolio = m
		}
	}
}

// WithTierMapping overrides the years-to-tier heuristic on the default
// experience matcher.
func WithTierMapping(fn func(years float64) model.ExperienceTier) Option {
	return func(r *Ranker) {
		if fn != nil {
			r.experience = scoring.NewExperienceMatcher(scoring.WithTierMapping(fn))
		}
	}
}
