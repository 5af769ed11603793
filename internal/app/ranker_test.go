package app_test

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/gigboard/matchengine/internal/app"
	"github.com/gigboard/matchengine/internal/domain/geo"
	"github.com/gigboard/matchengine/internal/domain/location"
	"github.com/gigboard/matchengine/internal/domain/model"
	"github.com/gigboard/matchengine/internal/fixture"
	"github.com/gigboard/matchengine/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func newRanker(opts ...app.Option) *app.Ranker {
	resolver := geo.NewStaticResolver(
		geo.WithCity("Berlin", 52.52, 13.405),
		geo.WithCity("Hamburg", 53.5511, 9.9937),
		geo.WithCity("Munich", 48.1351, 11.582),
		geo.WithCity("Amsterdam", 52.3676, 4.9041),
		geo.WithCity("London", 51.5074, -0.1278),
	)
	opts = append([]app.Option{
		app.WithLocationMatcher(location.New(location.WithResolver(resolver))),
	}, opts...)

	r, err := app.New(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func TestNew(t *testing.T) {
	Convey("Given ranker construction", t, func() {
		Convey("When built with defaults", func() {
			r, err := app.New()

			Convey("Then the default weights are in effect and sum to one", func() {
				So(err, ShouldBeNil)
				So(r.Weights(), ShouldResemble, app.DefaultWeights())
				So(r.Weights().Valid(), ShouldBeTrue)
			})
		})

		Convey("When the weights do not sum to one", func() {
			bad := app.DefaultWeights()
			bad.Skills = 0.5
			_, err := app.New(app.WithWeights(bad))

			Convey("Then construction fails with the weights sentinel", func() {
				So(err, ShouldNotBeNil)
				So(err, ShouldWrap, app.ErrInvalidWeights)
			})
		})
	})
}

func TestEvaluate(t *testing.T) {
	Convey("Given a ranker and generated fixtures", t, func() {
		ctx := context.Background()
		r := newRanker()
		gen := fixture.New(fixture.WithSeed(7))
		project := gen.Project()

		Convey("When evaluating a strong candidate", func() {
			talent := gen.Profile(fixture.ArchetypeStrong)
			m, err := r.Evaluate(ctx, talent, project)

			Convey("Then every sub-result is populated and bounded", func() {
				So(err, ShouldBeNil)
				So(m.TalentID, ShouldEqual, talent.ID)
				for _, score := range []float64{
					m.OverallScore, m.Skills.Score, m.Location.Score, m.Budget.Score,
					m.Availability.Score, m.Experience.Score, m.Reputation.Score,
					m.Verification.Score, m.Portfolio.Score,
				} {
					So(score, ShouldBeBetweenOrEqual, 0, 100)
				}
				So(m.Fit, ShouldNotBeEmpty)
				So(m.Recommendation, ShouldNotBeEmpty)
				So(m.Risk.ConfidenceLevel, ShouldBeBetweenOrEqual, 0, 100)
			})

			Convey("And evaluation is deterministic for identical inputs", func() {
				again, err := r.Evaluate(ctx, talent, project)
				So(err, ShouldBeNil)
				So(again, ShouldResemble, m)
			})
		})

		Convey("When the talent is nil", func() {
			_, err := r.Evaluate(ctx, nil, project)
			So(err, ShouldWrap, app.ErrInvalidTalent)
		})

		Convey("When the talent has no skills", func() {
			talent := gen.Profile(fixture.ArchetypeAverage)
			talent.Skills = nil
			_, err := r.Evaluate(ctx, talent, project)
			So(err, ShouldWrap, app.ErrInvalidTalent)
		})

		Convey("When the project is nil", func() {
			_, err := r.Evaluate(ctx, gen.Profile(fixture.ArchetypeStrong), nil)
			So(err, ShouldWrap, app.ErrInvalidProject)
		})
	})
}

func TestRank(t *testing.T) {
	Convey("Given a ranker and a generated pool", t, func() {
		ctx := context.Background()
		r := newRanker()
		gen := fixture.New(fixture.WithSeed(42))
		project := gen.Project()
		pool := gen.Pool(12)

		Convey("When ranking the pool", func() {
			matches, err := r.Rank(ctx, pool, project)

			Convey("Then every candidate is ranked", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, len(pool))
			})

			Convey("And scores are non-increasing with contiguous rankings", func() {
				for i := range matches {
					So(matches[i].Ranking, ShouldEqual, i+1)
					if i > 0 {
						So(matches[i].OverallScore, ShouldBeLessThanOrEqualTo, matches[i-1].OverallScore)
					}
				}
			})

			Convey("And the output is a permutation of the input pool", func() {
				seen := make(map[string]bool, len(matches))
				for _, m := range matches {
					seen[m.TalentID] = true
				}
				for _, talent := range pool {
					So(seen[talent.ID], ShouldBeTrue)
				}
			})

			Convey("And ranking again yields the same order", func() {
				again, err := r.Rank(ctx, pool, project)
				So(err, ShouldBeNil)
				So(again, ShouldResemble, matches)
			})
		})

		Convey("When one candidate in the pool is malformed", func() {
			pool[3] = &model.TalentProfile{ID: "broken"}
			matches, err := r.Rank(ctx, pool, project)

			Convey("Then it is skipped and the rest are still ranked", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, len(pool)-1)
				for _, m := range matches {
					So(m.TalentID, ShouldNotEqual, "broken")
				}
			})
		})

		Convey("When the pool is empty", func() {
			_, err := r.Rank(ctx, nil, project)
			So(err, ShouldEqual, app.ErrEmptyPool)
		})

		Convey("When the context is already canceled", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := r.Rank(canceled, pool, project)
			So(err, ShouldWrap, context.Canceled)
		})

		Convey("When running with a single worker", func() {
			serial := newRanker(app.WithWorkerCount(1))
			concurrent := newRanker(app.WithWorkerCount(8))

			Convey("Then worker count does not change the result", func() {
				a, err := serial.Rank(ctx, pool, project)
				So(err, ShouldBeNil)
				b, err := concurrent.Rank(ctx, pool, project)
				So(err, ShouldBeNil)
				So(a, ShouldResemble, b)
			})
		})
	})
}

func TestFitTiers(t *testing.T) {
	Convey("Given custom fit thresholds", t, func() {
		ctx := context.Background()
		r := newRanker(app.WithFitThresholds(app.FitThresholds{Excellent: 10, Good: 5, Fair: 1}))
		gen := fixture.New(fixture.WithSeed(7))

		Convey("Then the tier follows the configured cutoffs", func() {
			m, err := r.Evaluate(ctx, gen.Profile(fixture.ArchetypeStrong), gen.Project())
			So(err, ShouldBeNil)
			So(m.Fit, ShouldEqual, model.FitExcellent)
		})
	})
}

func TestWeightOverride(t *testing.T) {
	Convey("Given a skills-only weighting", t, func() {
		ctx := context.Background()
		r := newRanker(app.WithWeights(app.Weights{Skills: 1}))
		gen := fixture.New(fixture.WithSeed(7))
		project := gen.Project()

		Convey("Then the overall score equals the skills sub-score", func() {
			m, err := r.Evaluate(ctx, gen.Profile(fixture.ArchetypeStrong), project)
			So(err, ShouldBeNil)
			So(m.OverallScore, ShouldAlmostEqual, m.Skills.Score, 1e-9)
		})
	})
}
