package scoring_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/gigboard/matchengine/internal/domain/model"
	"github.com/gigboard/matchengine/internal/domain/scoring"
)

func repTalent(rating float64, reviews int, response time.Duration, reliability float64) *model.TalentProfile {
	return &model.TalentProfile{
		ID: "t-rep",
		Reputation: model.Reputation{
			Rating:           rating,
			ReviewCount:      reviews,
			AvgResponseTime:  response,
			ReliabilityIndex: reliability,
		},
	}
}

func TestReputationScore(t *testing.T) {
	Convey("Given the reputation scorer", t, func() {
		scorer := scoring.NewReputationScorer()

		Convey("When every signal is at its ceiling", func() {
			result := scorer.Score(repTalent(5, 60, 30*time.Minute, 100))

			Convey("Then the blend reaches 100 with no advisories", func() {
				So(result.Score, ShouldEqual, 100)
				So(result.Recommendations, ShouldBeEmpty)
			})
		})

		Convey("When the profile is mid-range", func() {
			result := scorer.Score(repTalent(4, 25, 3*time.Hour, 80))

			Convey("Then the blend follows the component weights", func() {
				// 0.4*80 + 0.3*80 + 0.2*80 + 0.1*80.
				So(result.Score, ShouldEqual, 80)
			})
		})

		Convey("When the review history is thin and responses are slow", func() {
			result := scorer.Score(repTalent(4.5, 2, 30*time.Hour, 70))

			Convey("Then both advisories are raised", func() {
				So(result.Recommendations, ShouldContain,
					"Thin review history; request references before contracting")
				So(result.Recommendations, ShouldContain,
					"Slow average response time; set communication expectations up front")
			})
		})

		Convey("Then a higher rating never lowers the score", func() {
			lower := scorer.Score(repTalent(3, 25, 3*time.Hour, 80))
			higher := scorer.Score(repTalent(4.5, 25, 3*time.Hour, 80))
			So(higher.Score, ShouldBeGreaterThan, lower.Score)
		})
	})
}
