// Package geo provides coordinate resolution and great-circle distance for
// the location matcher. The engine carries no compiled-in geographic data;
// callers inject a Resolver, and StaticResolver is the default collaborator.
package geo

import (
	"context"
	"strings"

	"github.com/gigboard/matchengine/internal/domain/model"
)

// Resolver looks up coordinates for a named city. The second return value
// reports whether the name was known; an unknown name is a defined failure
// mode for the location matcher, not an error.
type Resolver interface {
	Resolve(ctx context.Context, name string) (model.Coordinates, bool)
}

// Option applies a configuration option to the StaticResolver.
type Option func(*StaticResolver)

// WithCity adds or replaces a single city entry.
func WithCity(name string, lat, lng float64) Option {
	return func(r *StaticResolver) {
		r.cities[normalize(name)] = model.Coordinates{Latitude: lat, Longitude: lng}
	}
}

// WithCities merges a whole city table into the resolver.
func WithCities(cities map[string]model.Coordinates) Option {
	return func(r *StaticResolver) {
		for name, c := range cities {
			r.cities[normalize(name)] = c
		}
	}
}

// StaticResolver implements Resolver over an in-memory city table.
// Lookups are case-insensitive and whitespace-tolerant.
type StaticResolver struct {
	cities map[string]model.Coordinates
}

// NewStaticResolver creates a resolver from the provided options.
// Without options the table is empty and every lookup misses.
func NewStaticResolver(opts ...Option) *StaticResolver {
	r := &StaticResolver{
		cities: make(map[string]model.Coordinates),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the coordinates for a city name, if known.
func (r *StaticResolver) Resolve(_ context.Context, name string) (model.Coordinates, bool) {
	c, ok := r.cities[normalize(name)]
	return c, ok
}

// Len returns the number of cities in the table.
func (r *StaticResolver) Len() int {
	return len(r.cities)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
