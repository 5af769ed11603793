package app

import "math"

// weightSumTolerance absorbs float error when checking the sum invariant.
const weightSumTolerance = 1e-9

// Weights is the fixed convex combination applied to the eight matcher
// sub-scores. The eight values must sum to exactly 1.0; New rejects any
// other configuration.
type Weights struct {
	Skills       float64 `koanf:"skills" json:"skills"`
	Location     float64 `koanf:"location" json:"location"`
	Budget       float64 `koanf:"budget" json:"budget"`
	Experience   float64 `koanf:"experience" json:"experience"`
	Reputation   float64 `koanf:"reputation" json:"reputation"`
	Availability float64 `koanf:"availability" json:"availability"`
	Verification float64 `koanf:"verification" json:"verification"`
	Portfolio    float64 `koanf:"portfolio" json:"portfolio"`
}

// DefaultWeights returns the production weighting.
func DefaultWeights() Weights {
	return Weights{
		Skills:       0.30,
		Location:     0.20,
		Budget:       0.15,
		Experience:   0.12,
		Reputation:   0.10,
		Availability: 0.08,
		Verification: 0.03,
		Portfolio:    0.02,
	}
}

// Sum returns the total of all eight weights.
func (w Weights) Sum() float64 {
	return w.Skills + w.Location + w.Budget + w.Experience +
		w.Reputation + w.Availability + w.Verification + w.Portfolio
}

// Valid reports whether the weights sum to 1.0 within float tolerance.
func (w Weights) Valid() bool {
	return math.Abs(w.Sum()-1.0) <= weightSumTolerance
}

// FitThresholds map the overall score onto fit tiers.
type FitThresholds struct {
	Excellent float64 `koanf:"excellent" json:"excellent"`
	Good      float64 `koanf:"good" json:"good"`
	Fair      float64 `koanf:"fair" json:"fair"`
}

// DefaultFitThresholds returns the production tier cutoffs.
func DefaultFitThresholds() FitThresholds {
	return FitThresholds{
		Excellent: 85,
		Good:      70,
		Fair:      55,
	}
}
