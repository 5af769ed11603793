package skills

import (
	"context"
	"sort"
	"strings"
)

// Taxonomy supplies category membership for skill names. The taxonomy
// content is an external collaborator concern; the engine only consumes
// this lookup interface.
type Taxonomy interface {
	// CategoryOf returns the category a skill belongs to, if known.
	CategoryOf(ctx context.Context, skill string) (string, bool)

	// SkillsIn returns the known skills in a category, sorted.
	SkillsIn(ctx context.Context, category string) []string
}

// TaxonomyOption applies a configuration option to the StaticTaxonomy.
type TaxonomyOption func(*StaticTaxonomy)

// WithCategory registers a category and its member skills.
func WithCategory(category string, members ...string) TaxonomyOption {
	return func(t *StaticTaxonomy) {
		for _, m := range members {
			t.categoryBySkill[normalizeName(m)] = category
			t.skillsByCategory[category] = append(t.skillsByCategory[category], m)
		}
	}
}

// StaticTaxonomy implements Taxonomy over an in-memory table. It ships as
// the default collaborator for tests and the demo driver.
type StaticTaxonomy struct {
	categoryBySkill  map[string]string
	skillsByCategory map[string][]string
}

// NewStaticTaxonomy creates a taxonomy from the provided options.
func NewStaticTaxonomy(opts ...TaxonomyOption) *StaticTaxonomy {
	t := &StaticTaxonomy{
		categoryBySkill:  make(map[string]string),
		skillsByCategory: make(map[string][]string),
	}

	for _, opt := range opts {
		opt(t)
	}

	for _, members := range t.skillsByCategory {
		sort.Strings(members)
	}

	return t
}

// CategoryOf returns the category a skill belongs to, if known.
func (t *StaticTaxonomy) CategoryOf(_ context.Context, skill string) (string, bool) {
	c, ok := t.categoryBySkill[normalizeName(skill)]
	return c, ok
}

// SkillsIn returns the known skills in a category.
func (t *StaticTaxonomy) SkillsIn(_ context.Context, category string) []string {
	members := t.skillsByCategory[category]
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// DistinctCategories counts the distinct categories covered by the given
// skill names. Unknown skills are ignored.
func DistinctCategories(ctx context.Context, t Taxonomy, names []string) int {
	if t == nil {
		return 0
	}
	seen := make(map[string]struct{})
	for _, n := range names {
		if c, ok := t.CategoryOf(ctx, n); ok {
			seen[strings.ToLower(c)] = struct{}{}
		}
	}
	return len(seen)
}
