package scoring

import (
	"fmt"
	"time"

	"github.com/gigboard/matchengine/internal/domain/model"
)

// Schedule alignment components: start timing (up to 50), capacity (up to
// 30), and work-arrangement fit (up to 20) sum to at most 100.
const (
	startOnTimePoints   = 50.0
	startDelayWeek      = 40.0
	startDelayFortnight = 25.0
	startDelayLonger    = 10.0
	delayWeekDays       = 7
	delayFortnightDays  = 14

	capacityPoints = 30.0

	arrangementExact    = 20.0
	arrangementPartial  = 15.0
	arrangementMismatch = 5.0
)

// Timeline compatibility values driven by urgency and responsiveness.
const (
	timelineDefault        = 80.0
	timelineUrgentFast     = 90.0
	timelineUrgentModerate = 70.0
	timelineUrgentSlow     = 40.0
	urgentFastResponse     = 2 * time.Hour
	urgentModerateResponse = 8 * time.Hour
)

// Blend of schedule alignment and timeline compatibility into the match score.
const (
	scheduleWeight = 0.7
	timelineWeight = 0.3
)

// defaultFullTimeHours is the assumed full-time baseline. The project's
// declared workload does not feed this; see the matcher option.
const defaultFullTimeHours = 40

// AvailabilityMatcher scores start-date and capacity fit.
type AvailabilityMatcher struct {
	fullTimeHours int
}

// AvailabilityOption applies a configuration option to the matcher.
type AvailabilityOption func(*AvailabilityMatcher)

// WithFullTimeHours overrides the assumed full-time baseline.
func WithFullTimeHours(hours int) AvailabilityOption {
	return func(m *AvailabilityMatcher) {
		if hours > 0 {
			m.fullTimeHours = hours
		}
	}
}

// NewAvailabilityMatcher creates an availability matcher.
func NewAvailabilityMatcher(opts ...AvailabilityOption) *AvailabilityMatcher {
	m := &AvailabilityMatcher{
		fullTimeHours: defaultFullTimeHours,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Match evaluates the talent's availability against the project timeline.
func (m *AvailabilityMatcher) Match(talent *model.TalentProfile, project *model.ProjectRequirements) model.AvailabilityResult {
	avail := talent.Availability
	timeline := project.Timeline

	result := model.AvailabilityResult{
		CanStartOnTime: !avail.EarliestStart.After(timeline.StartDate),
		HasCapacity:    avail.HoursPerWeek >= m.fullTimeHours,
	}

	var schedule float64

	if result.CanStartOnTime {
		schedule += startOnTimePoints
	} else {
		delayDays := int(avail.EarliestStart.Sub(timeline.StartDate).Hours() / 24)
		switch {
		case delayDays <= delayWeekDays:
			schedule += startDelayWeek
		case delayDays <= delayFortnightDays:
			schedule += startDelayFortnight
		default:
			schedule += startDelayLonger
		}
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Earliest start is %d days after the project start date", delayDays))
	}

	if result.HasCapacity {
		schedule += capacityPoints
	} else {
		schedule += capacityPoints * float64(avail.HoursPerWeek) / float64(m.fullTimeHours)
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Offers %d hours/week against an assumed %d-hour full-time baseline", avail.HoursPerWeek, m.fullTimeHours))
	}

	switch {
	case avail.Arrangement == project.Arrangement || project.Arrangement == "":
		schedule += arrangementExact
	case avail.Arrangement == model.ArrangementRemote || avail.Arrangement == model.ArrangementHybrid:
		schedule += arrangementPartial
	default:
		schedule += arrangementMismatch
	}

	result.ScheduleAlignment = model.ClampScore(schedule)

	if timeline.Urgent {
		switch {
		case talent.Reputation.AvgResponseTime <= urgentFastResponse:
			result.TimelineCompatibility = timelineUrgentFast
		case talent.Reputation.AvgResponseTime <= urgentModerateResponse:
			result.TimelineCompatibility = timelineUrgentModerate
		default:
			result.TimelineCompatibility = timelineUrgentSlow
			result.Recommendations = append(result.Recommendations,
				"Slow average response time for an urgent project")
		}
	} else {
		result.TimelineCompatibility = timelineDefault
	}

	result.Score = model.ClampScore(scheduleWeight*result.ScheduleAlignment + timelineWeight*result.TimelineCompatibility)
	return result
}
