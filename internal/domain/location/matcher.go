// Package location scores geographic and work-arrangement compatibility
// between a talent and a project. Coordinates come from the location records
// themselves or from an injected geo.Resolver; an unresolvable location is a
// zero-scored result with an explanatory recommendation, never an error.
package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/gigboard/matchengine/internal/domain/geo"
	"github.com/gigboard/matchengine/internal/domain/model"
)

// Score components. Distance banding contributes up to 40 points, radius
// compliance 25, arrangement compatibility 25, travel time 10, and the
// same-city and regional-hub bonuses 5 each before the final clamp.
const (
	radiusFullPoints      = 25
	arrangementPoints     = 25
	sameCityBonus         = 5
	regionalClusterBonus  = 5
	crossArrangementMaxKm = 50.0
	walkingMaxKm          = 2.0
	transitMaxKm          = 50.0
	walkingSpeedKmh       = 5.0
	transitSpeedKmh       = 30.0
	drivingSpeedKmh       = 60.0
	minutesPerHour        = 60.0
)

// distanceBand maps a distance ceiling to points and a recommendation.
type distanceBand struct {
	maxKm  float64
	points float64
	note   string
}

// Eight distance bands, 0 km down to >200 km.
var distanceBands = []distanceBand{
	{0, 40, "Same location as the project"},
	{5, 35, "Within easy commuting distance"},
	{15, 30, "Short commute to the project location"},
	{30, 25, "Moderate commute to the project location"},
	{50, 20, "Longer commute; check on-site expectations"},
	{100, 15, "Significant travel distance to the project"},
	{200, 10, "Long-distance collaboration; mostly-remote setup advised"},
	{-1, 5, "Remote-first collaboration strongly advised"},
}

// Matcher scores location compatibility. It is pure and safe for
// concurrent use once constructed.
type Matcher struct {
	resolver    geo.Resolver
	transitHubs map[string]struct{}
	clusterOf   map[string]string
}

// Option applies a configuration option to the Matcher.
type Option func(*Matcher)

// WithResolver injects the name-to-coordinates resolver.
func WithResolver(r geo.Resolver) Option {
	return func(m *Matcher) {
		if r != nil {
			m.resolver = r
		}
	}
}

// WithTransitHubs marks cities with usable public-transit networks; travel
// between two hubs under the transit distance ceiling is scored as transit.
func WithTransitHubs(cities ...string) Option {
	return func(m *Matcher) {
		for _, c := range cities {
			m.transitHubs[normalizeCity(c)] = struct{}{}
		}
	}
}

// WithRegionalCluster groups cities into a recognized regional cluster;
// talent and project in the same cluster earn the cluster bonus.
func WithRegionalCluster(name string, cities ...string) Option {
	return func(m *Matcher) {
		for _, c := range cities {
			m.clusterOf[normalizeCity(c)] = name
		}
	}
}

// New creates a location matcher with the provided options.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		transitHubs: make(map[string]struct{}),
		clusterOf:   make(map[string]string),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Match scores geographic compatibility between the talent and the project.
func (m *Matcher) Match(ctx context.Context, talentLoc, projectLoc model.Location, projectPrefs model.LocationPreference, talentPrefs *model.LocationPreference) model.LocationResult {
	talentCoords, ok := m.coordinates(ctx, talentLoc)
	if !ok {
		return unresolvable(talentLoc)
	}
	projectCoords, ok := m.coordinates(ctx, projectLoc)
	if !ok {
		return unresolvable(projectLoc)
	}

	result := model.LocationResult{Resolved: true}
	result.DistanceKm = geo.DistanceKm(
		talentCoords.Latitude, talentCoords.Longitude,
		projectCoords.Latitude, projectCoords.Longitude,
	)
	result.SameCity = sameCity(talentLoc, projectLoc)
	if result.SameCity {
		result.DistanceKm = 0
	}

	var score float64

	points, note := distancePoints(result.DistanceKm)
	score += points
	result.Recommendations = append(result.Recommendations, note)

	radiusPts, withinRadius, radiusNote := radiusPoints(result.DistanceKm, projectPrefs.MaxRadiusKm)
	score += radiusPts
	result.WithinRadius = withinRadius
	if radiusNote != "" {
		result.Recommendations = append(result.Recommendations, radiusNote)
	}

	talentArrangement := arrangementOf(talentPrefs)
	result.ArrangementCompatible = arrangementsCompatible(projectPrefs.Arrangement, talentArrangement, result.DistanceKm)
	if result.ArrangementCompatible {
		score += arrangementPoints
	} else {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Work arrangement mismatch: project expects %s, talent offers %s", projectPrefs.Arrangement, talentArrangement))
	}

	travelPts, mode, minutes := m.travelPoints(talentLoc, projectLoc, result.DistanceKm)
	score += travelPts
	result.TravelMode = mode
	result.TravelMinutes = minutes
	if result.DistanceKm > 0 {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Estimated %s travel time: %.0f minutes", mode, minutes))
	}

	if result.SameCity {
		score += sameCityBonus
	}
	if m.sameCluster(talentLoc, projectLoc) {
		score += regionalClusterBonus
		result.Recommendations = append(result.Recommendations, "Both parties are in the same regional cluster")
	}

	result.Score = model.ClampScore(score)
	return result
}

// coordinates resolves a location's coordinates, preferring explicit values
// over the resolver lookup.
func (m *Matcher) coordinates(ctx context.Context, loc model.Location) (model.Coordinates, bool) {
	if loc.Coordinates != nil {
		return *loc.Coordinates, true
	}
	if m.resolver == nil || loc.City == "" {
		return model.Coordinates{}, false
	}
	return m.resolver.Resolve(ctx, loc.City)
}

func unresolvable(loc model.Location) model.LocationResult {
	name := loc.City
	if name == "" {
		name = "unknown location"
	}
	return model.LocationResult{
		Score:    0,
		Resolved: false,
		Recommendations: []string{
			fmt.Sprintf("Unable to resolve coordinates for %q; location compatibility could not be assessed", name),
		},
	}
}

// distancePoints returns the band points and recommendation for a distance.
func distancePoints(km float64) (float64, string) {
	for _, b := range distanceBands {
		if b.maxKm < 0 || km <= b.maxKm {
			return b.points, b.note
		}
	}
	last := distanceBands[len(distanceBands)-1]
	return last.points, last.note
}

// radiusPoints scores radius compliance. A zero max radius means the project
// imposes no radius constraint. Outside the radius, credit degrades in three
// bands based on percentage overage.
func radiusPoints(km, maxRadiusKm float64) (points float64, within bool, note string) {
	if maxRadiusKm <= 0 || km <= maxRadiusKm {
		return radiusFullPoints, true, ""
	}

	overage := (km - maxRadiusKm) / maxRadiusKm * 100
	switch {
	case overage <= 20:
		points = 15
	case overage <= 50:
		points = 10
	default:
		points = 5
	}
	return points, false, fmt.Sprintf("Candidate is %.0f%% outside the project's preferred radius", overage)
}

// arrangementsCompatible reports work-arrangement compatibility: exact match,
// a remote talent fits anywhere, and hybrid/onsite cross over when the talent
// is close enough to come in.
func arrangementsCompatible(project, talent model.WorkArrangement, km float64) bool {
	if project == "" || talent == "" {
		return true
	}
	if project == talent {
		return true
	}
	if talent == model.ArrangementRemote || project == model.ArrangementRemote {
		return true
	}
	crossed := (project == model.ArrangementOnsite && talent == model.ArrangementHybrid) ||
		(project == model.ArrangementHybrid && talent == model.ArrangementOnsite)
	return crossed && km <= crossArrangementMaxKm
}

// travelPoints infers a transport mode from distance and the hub table, then
// bands the resulting travel time into up to 10 points.
func (m *Matcher) travelPoints(talentLoc, projectLoc model.Location, km float64) (points float64, mode string, minutes float64) {
	var speed float64
	switch {
	case km < walkingMaxKm:
		mode, speed = "walking", walkingSpeedKmh
	case km < transitMaxKm && m.isTransitHub(talentLoc) && m.isTransitHub(projectLoc):
		mode, speed = "transit", transitSpeedKmh
	default:
		mode, speed = "driving", drivingSpeedKmh
	}

	minutes = km / speed * minutesPerHour
	switch {
	case minutes <= 15:
		points = 10
	case minutes <= 30:
		points = 8
	case minutes <= 60:
		points = 5
	case minutes <= 120:
		points = 3
	default:
		points = 1
	}
	return points, mode, minutes
}

func (m *Matcher) isTransitHub(loc model.Location) bool {
	_, ok := m.transitHubs[normalizeCity(loc.City)]
	return ok
}

func (m *Matcher) sameCluster(a, b model.Location) bool {
	ca, ok := m.clusterOf[normalizeCity(a.City)]
	if !ok {
		return false
	}
	cb, ok := m.clusterOf[normalizeCity(b.City)]
	return ok && ca == cb
}

func sameCity(a, b model.Location) bool {
	return a.City != "" && strings.EqualFold(strings.TrimSpace(a.City), strings.TrimSpace(b.City))
}

// arrangementOf prefers the talent's stated location preference and falls
// back to no constraint when absent.
func arrangementOf(prefs *model.LocationPreference) model.WorkArrangement {
	if prefs == nil {
		return ""
	}
	return prefs.Arrangement
}

func normalizeCity(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
