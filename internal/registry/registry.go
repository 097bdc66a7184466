// Package registry holds the static catalog of external data sources.
// The catalog is loaded once at process start and never mutated; every
// analysis run reads the same shared definitions.
package registry

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/intel-cli/internal/model"
)

// placeholders lists the template placeholder kinds, in the fixed
// precedence order used when expanding (slug > name > domain > handle).
var placeholders = []string{"{slug}", "{name}", "{domain}", "{handle}"}

// Registry is an immutable, validated source catalog.
type Registry struct {
	defs []model.SourceDefinition
}

// New validates the definitions and builds a Registry. Names must be
// unique, categories and priorities known, and each URL template may
// contain at most one placeholder kind.
func New(defs []model.SourceDefinition) (*Registry, error) {
	seen := make(map[string]bool, len(defs))
	known := make(map[model.Category]bool)
	for _, c := range model.KnownCategories() {
		known[c] = true
	}

	for _, def := range defs {
		if strings.TrimSpace(def.Name) == "" {
			return nil, eris.New("registry: source with empty name")
		}
		if seen[def.Name] {
			return nil, eris.Errorf("registry: duplicate source %q", def.Name)
		}
		seen[def.Name] = true

		if strings.TrimSpace(def.URLTemplate) == "" {
			return nil, eris.Errorf("registry: source %q has empty url template", def.Name)
		}
		if !known[def.Category] {
			return nil, eris.Errorf("registry: source %q has unknown category %q", def.Name, def.Category)
		}
		if def.Priority.Rank() > model.PriorityLow.Rank() {
			return nil, eris.Errorf("registry: source %q has unknown priority %q", def.Name, def.Priority)
		}

		kinds := 0
		for _, ph := range placeholders {
			if strings.Contains(def.URLTemplate, ph) {
				kinds++
			}
		}
		if kinds > 1 {
			return nil, eris.Errorf("registry: source %q template mixes placeholder kinds", def.Name)
		}
	}

	copied := make([]model.SourceDefinition, len(defs))
	copy(copied, defs)
	return &Registry{defs: copied}, nil
}

// Len returns the number of catalog entries.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Definitions returns the catalog entries in insertion order.
func (r *Registry) Definitions() []model.SourceDefinition {
	out := make([]model.SourceDefinition, len(r.defs))
	copy(out, r.defs)
	return out
}

// Ordered returns the catalog entries sorted by priority tier
// (critical, high, medium, low), keeping insertion order within a tier.
func (r *Registry) Ordered() []model.SourceDefinition {
	out := r.Definitions()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}
