package scoring_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/gigboard/matchengine/internal/domain/model"
	"github.com/gigboard/matchengine/internal/domain/scoring"
)

func budgetTalent(rateMin, rateMax float64) *model.TalentProfile {
	return &model.TalentProfile{
		ID:         "t-budget",
		HourlyRate: model.RateRange{Min: rateMin, Max: rateMax},
		Experience: model.Experience{TotalYears: 5},
		Reputation: model.Reputation{Rating: 5},
	}
}

func budgetProject(min, max float64) *model.ProjectRequirements {
	return &model.ProjectRequirements{
		ID:     "p-budget",
		Budget: model.Budget{Min: min, Max: max, Type: model.BudgetHourly},
	}
}

func TestBudgetMatch(t *testing.T) {
	Convey("Given the budget matcher", t, func() {
		matcher := scoring.NewBudgetMatcher()

		Convey("When the rate band overlaps the budget", func() {
			result := matcher.Match(budgetTalent(50, 70), budgetProject(50, 70))

			Convey("Then the candidate is within budget at full alignment", func() {
				So(result.IsWithinBudget, ShouldBeTrue)
				So(result.BudgetAlignment, ShouldEqual, 100)
			})

			Convey("And an exact-fit rate is fair cost efficiency", func() {
				So(result.CostEfficiency, ShouldEqual, 75)
				So(result.Score, ShouldEqual, 75)
			})
		})

		Convey("When the rate sits at 80-100 against a 50-70 budget", func() {
			result := matcher.Match(budgetTalent(80, 100), budgetProject(50, 70))

			Convey("Then the candidate is over budget in the moderate band", func() {
				So(result.IsWithinBudget, ShouldBeFalse)
				So(result.IsOverBudget, ShouldBeTrue)
				So(result.BudgetAlignment, ShouldEqual, 40)
				So(result.Recommendations, ShouldContain,
					"Rate exceeds the project budget by 29%; consider negotiating scope or rate")
			})
		})

		Convey("When the rate is slightly above the budget ceiling", func() {
			result := matcher.Match(budgetTalent(72, 80), budgetProject(50, 70))

			Convey("Then the minor-overage band applies", func() {
				So(result.IsWithinBudget, ShouldBeFalse)
				So(result.BudgetAlignment, ShouldEqual, 70)
			})
		})

		Convey("When the rate is entirely below the budget", func() {
			result := matcher.Match(budgetTalent(20, 40), budgetProject(50, 70))

			Convey("Then it is flagged as a value opportunity, not an overage", func() {
				So(result.IsWithinBudget, ShouldBeFalse)
				So(result.IsOverBudget, ShouldBeFalse)
				So(result.BudgetAlignment, ShouldEqual, 80)
				So(result.CostEfficiency, ShouldEqual, 90)
				So(result.Recommendations, ShouldContain,
					"Rate is below the project budget; strong value opportunity")
			})
		})

		Convey("When experience and reputation are both minimal", func() {
			talent := budgetTalent(40, 50)
			talent.Experience.TotalYears = 0
			talent.Reputation.Rating = 0
			result := matcher.Match(talent, budgetProject(50, 70))

			Convey("Then the value score collapses to zero", func() {
				So(result.Score, ShouldEqual, 0)
			})
		})

		Convey("When experience exceeds the ten-year cap", func() {
			capped := budgetTalent(50, 70)
			capped.Experience.TotalYears = 10
			beyond := budgetTalent(50, 70)
			beyond.Experience.TotalYears = 30

			Convey("Then extra years add no further value credit", func() {
				So(matcher.Match(beyond, budgetProject(50, 70)).Score,
					ShouldEqual, matcher.Match(capped, budgetProject(50, 70)).Score)
			})
		})
	})
}
