package scoring

import (
	"time"

	"github.com/gigboard/matchengine/internal/domain/model"
)

// Reputation blend weights; they sum to 1.0.
const (
	ratingWeight      = 0.4
	reliabilityWeight = 0.3
	responseWeight    = 0.2
	trackWeight       = 0.1
)

// Response-time and review-count bands.
const (
	responseFast     = 1 * time.Hour
	responseGood     = 4 * time.Hour
	responseModerate = 12 * time.Hour
	responseSlow     = 24 * time.Hour
)

// ReputationScorer scores rating, reliability, responsiveness, and history
// depth as a single blended value.
type ReputationScorer struct{}

// NewReputationScorer creates a reputation scorer.
func NewReputationScorer() *ReputationScorer {
	return &ReputationScorer{}
}

// Score blends the four reputation signals into one 0-100 value.
func (s *ReputationScorer) Score(talent *model.TalentProfile) model.ReputationResult {
	rep := talent.Reputation

	rating := rep.Rating / 5 * 100
	reliability := rep.ReliabilityIndex
	response := responseScore(rep.AvgResponseTime)
	track := trackRecordScore(rep.ReviewCount)

	result := model.ReputationResult{
		Score: model.ClampScore(
			ratingWeight*rating +
				reliabilityWeight*reliability +
				responseWeight*response +
				trackWeight*track,
		),
	}

	if rep.ReviewCount < 5 {
		result.Recommendations = append(result.Recommendations,
			"Thin review history; request references before contracting")
	}
	if response <= 40 {
		result.Recommendations = append(result.Recommendations,
			"Slow average response time; set communication expectations up front")
	}

	return result
}

func responseScore(avg time.Duration) float64 {
	switch {
	case avg <= responseFast:
		return 100
	case avg <= responseGood:
		return 80
	case avg <= responseModerate:
		return 60
	case avg <= responseSlow:
		return 40
	default:
		return 20
	}
}

func trackRecordScore(reviews int) float64 {
	switch {
	case reviews >= 50:
		return 100
	case reviews >= 20:
		return 80
	case reviews >= 10:
		return 60
	case reviews >= 5:
		return 40
	default:
		return 20
	}
}
