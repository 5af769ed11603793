// Package app provides the composition root of the ranking engine: the
// Ranker wires the eight matchers together, validates inputs at the
// boundary, fans batch evaluation out over a bounded worker pool, and
// produces the final sorted, ranked candidate list.
package app

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gigboard/matchengine/internal/domain/insight"
	"github.com/gigboard/matchengine/internal/domain/location"
	"github.com/gigboard/matchengine/internal/domain/model"
	"github.com/gigboard/matchengine/internal/domain/scoring"
	"github.com/gigboard/matchengine/internal/domain/skills"
	"github.com/gigboard/matchengine/pkg/logger"
	"github.com/gigboard/matchengine/pkg/metrics"
)

// Ranker is the scoring orchestrator. It holds no state between calls;
// every evaluation depends only on its inputs and the fixed configuration
// captured at construction time.
type Ranker struct {
	weights     Weights
	fit         FitThresholds
	workerCount int

	skills       *skills.Matcher
	location     *location.Matcher
	budget       *scoring.BudgetMatcher
	availability *scoring.AvailabilityMatcher
	experience   *scoring.ExperienceMatcher
	reputation   *scoring.ReputationScorer
	verification *scoring.VerificationScorer
	portfolio    *scoring.PortfolioMatcher
	insights     *insight.Generator
	risk         *insight.Assessor

	validate *validator.Validate
	logger   logger.Logger
}

// New constructs a Ranker. It fails when the configured weights violate the
// sum-to-one invariant.
func New(opts ...Option) (*Ranker, error) {
	r := &Ranker{
		weights:      DefaultWeights(),
		fit:          DefaultFitThresholds(),
		workerCount:  runtime.NumCPU(),
		skills:       skills.New(),
		location:     location.New(),
		budget:       scoring.NewBudgetMatcher(),
		availability: scoring.NewAvailabilityMatcher(),
		experience:   scoring.NewExperienceMatcher(),
		reputation:   scoring.NewReputationScorer(),
		verification: scoring.NewVerificationScorer(),
		portfolio:    scoring.NewPortfolioMatcher(),
		insights:     insight.NewGenerator(),
		risk:         insight.NewAssessor(),
		validate:     validator.New(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if !r.weights.Valid() {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidWeights, r.weights.Sum())
	}

	if r.logger == nil {
		r.logger = logger.Get().Named("ranker")
	}

	return r, nil
}

// Evaluate scores a single candidate against the project. Validation
// failures reject the call before any scoring begins; a valid call always
// produces a complete CandidateMatch with every sub-result populated.
func (r *Ranker) Evaluate(ctx context.Context, talent *model.TalentProfile, project *model.ProjectRequirements) (model.CandidateMatch, error) {
	if err := r.validateProject(project); err != nil {
		return model.CandidateMatch{}, err
	}
	if err := r.validateTalent(talent); err != nil {
		return model.CandidateMatch{}, err
	}
	return r.evaluate(ctx, talent, project), nil
}

// evaluate runs the eight matchers and aggregation for pre-validated inputs.
func (r *Ranker) evaluate(ctx context.Context, talent *model.TalentProfile, project *model.ProjectRequirements) model.CandidateMatch {
	start := time.Now()
	defer func() {
		metrics.ObserveEvaluationLatency(float64(time.Since(start).Microseconds()) / 1000)
		metrics.RecordEvaluation()
	}()

	m := model.CandidateMatch{TalentID: talent.ID}

	m.Skills = r.skills.Match(ctx, talent.Skills, project.Skills)
	m.Location = r.location.Match(ctx, talent.Location, project.Location, project.LocationPreference, talent.LocationPreference)
	m.Budget = r.budget.Match(talent, project)
	m.Availability = r.availability.Match(talent, project)
	m.Experience = r.experience.Match(talent, project)
	m.Reputation = r.reputation.Score(talent)
	m.Verification = r.verification.Score(talent)
	m.Portfolio = r.portfolio.Match(ctx, talent)

	m.OverallScore = model.ClampScore(
		r.weights.Skills*m.Skills.Score +
			r.weights.Location*m.Location.Score +
			r.weights.Budget*m.Budget.Score +
			r.weights.Experience*m.Experience.Score +
			r.weights.Reputation*m.Reputation.Score +
			r.weights.Availability*m.Availability.Score +
			r.weights.Verification*m.Verification.Score +
			r.weights.Portfolio*m.Portfolio.Score,
	)
	m.Fit = r.fitTier(m.OverallScore)

	r.insights.Generate(&m)
	m.Risk = r.risk.Assess(talent, &m)

	return m
}

// Rank scores the whole pool against the project, fanning evaluation out
// over the worker pool, then sorts descending by overall score (ties keep
// input order) and assigns 1-based rankings. One malformed candidate does
// not abort the rest of the pool; it is logged and skipped.
func (r *Ranker) Rank(ctx context.Context, pool []*model.TalentProfile, project *model.ProjectRequirements) ([]model.CandidateMatch, error) {
	if err := r.validateProject(project); err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	start := time.Now()
	metrics.UpdatePoolSize(len(pool))

	type slot struct {
		match model.CandidateMatch
		ok    bool
	}
	slots := make([]slot, len(pool))

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := r.workerCount
	if workers > len(pool) {
		workers = len(pool)
	}
	metrics.UpdateWorkerCount(workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				talent := pool[i]
				if err := r.validateTalent(talent); err != nil {
					metrics.RecordCandidateSkipped()
					r.logger.Warn(ctx, "skipping malformed candidate",
						logger.String("talentID", safeID(talent)),
						logger.Error(err),
					)
					continue
				}
				slots[i] = slot{match: r.evaluate(ctx, talent, project), ok: true}
			}
		}()
	}

feed:
	for i := range pool {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ranking aborted: %w", err)
	}

	// Barrier step: single-threaded sort and rank assignment.
	matches := make([]model.CandidateMatch, 0, len(pool))
	for i := range slots {
		if slots[i].ok {
			matches = append(matches, slots[i].match)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].OverallScore > matches[j].OverallScore
	})
	for i := range matches {
		matches[i].Ranking = i + 1
	}

	metrics.RecordRankingRun()
	metrics.ObserveRankingLatency(float64(time.Since(start).Microseconds()) / 1000)

	r.logger.Info(ctx, "ranking run complete",
		logger.String("projectID", project.ID),
		logger.Int("pool", len(pool)),
		logger.Int("ranked", len(matches)),
		logger.Int("skipped", len(pool)-len(matches)),
		logger.Duration("elapsed", time.Since(start)),
	)

	return matches, nil
}

// Weights returns the aggregation weights in effect.
func (r *Ranker) Weights() Weights {
	return r.weights
}

func (r *Ranker) fitTier(score float64) model.FitTier {
	switch {
	case score >= r.fit.Excellent:
		return model.FitExcellent
	case score >= r.fit.Good:
		return model.FitGood
	case score >= r.fit.Fair:
		return model.FitFair
	default:
		return model.FitPoor
	}
}

func (r *Ranker) validateTalent(talent *model.TalentProfile) error {
	if talent == nil {
		return fmt.Errorf("%w: nil profile", ErrInvalidTalent)
	}
	if err := r.validate.Struct(talent); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTalent, err)
	}
	return nil
}

func (r *Ranker) validateProject(project *model.ProjectRequirements) error {
	if project == nil {
		return fmt.Errorf("%w: nil requirements", ErrInvalidProject)
	}
	if err := r.validate.Struct(project); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}
	return nil
}

func safeID(talent *model.TalentProfile) string {
	if talent == nil {
		return "<nil>"
	}
	return talent.ID
}
