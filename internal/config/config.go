// Package config defines engine configuration structures and loading hooks.
//
// Conventions follow the rest of the module: defaults come from New, Load
// layers an optional YAML file and environment variables on top, and
// external errors are wrapped via this package's sentinel kinds.
package config

import (
	"runtime"

	"github.com/gigboard/matchengine/internal/app"
)

// Config contains process configuration for the ranking engine.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MetricsAddr configures the optional Prometheus listen address,
	// e.g. ":9090". Empty disables the metrics endpoint.
	MetricsAddr string `koanf:"metrics_addr"`

	// WorkerCount bounds the evaluation fan-out for batch ranking.
	WorkerCount int `koanf:"worker_count"`

	// Weights are the eight aggregation weights; they must sum to 1.0.
	Weights app.Weights `koanf:"weights"`

	// FitThresholds map the overall score onto fit tiers.
	FitThresholds app.FitThresholds `koanf:"fit_thresholds"`

	// FullTimeHours is the assumed full-time baseline for capacity scoring.
	FullTimeHours int `koanf:"full_time_hours"`

	// Cities maps city names to [latitude, longitude] pairs for the
	// static location resolver.
	Cities map[string][]float64 `koanf:"cities"`

	// TransitHubs lists cities with usable public-transit networks.
	TransitHubs []string `koanf:"transit_hubs"`

	// Clusters groups cities into recognized regional clusters.
	Clusters map[string][]string `koanf:"clusters"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:      "info",
		MetricsAddr:   "",
		WorkerCount:   runtime.NumCPU(),
		Weights:       app.DefaultWeights(),
		FitThresholds: app.DefaultFitThresholds(),
		FullTimeHours: 40,
		Cities: map[string][]float64{
			"berlin":        {52.5200, 13.4050},
			"hamburg":       {53.5511, 9.9937},
			"munich":        {48.1351, 11.5820},
			"amsterdam":     {52.3676, 4.9041},
			"london":        {51.5074, -0.1278},
			"paris":         {48.8566, 2.3522},
			"new york":      {40.7128, -74.0060},
			"san francisco": {37.7749, -122.4194},
			"austin":        {30.2672, -97.7431},
			"toronto":       {43.6532, -79.3832},
		},
		TransitHubs: []string{"berlin", "hamburg", "munich", "amsterdam", "london", "paris", "new york", "toronto"},
		Clusters: map[string][]string{
			"dach":      {"berlin", "hamburg", "munich"},
			"benelux":   {"amsterdam"},
			"us-coasts": {"new york", "san francisco"},
		},
	}
}
