// Package urlgen expands the source registry into concrete URLs for a
// specific company identity.
package urlgen

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/intel-cli/internal/model"
	"github.com/sells-group/intel-cli/internal/registry"
)

// ErrInvalidIdentity fails a run before any fetch is attempted.
var ErrInvalidIdentity = eris.New("urlgen: company identity has no name")

// PrimarySourceName is the synthetic source added for the company's
// canonical website.
const PrimarySourceName = "main_website"

// Resolve derives all slug variants for the identity and expands every
// registry template into a ResolvedSource. Sources whose placeholder
// cannot be satisfied (e.g. {domain} with no canonical URL) are skipped
// with a log line; they never abort generation. When the identity has a
// canonical URL, a synthetic critical-priority primary source is added.
// Results are ordered by priority tier, then registry insertion order.
func Resolve(id model.CompanyIdentity, reg *registry.Registry) ([]model.ResolvedSource, error) {
	if !id.Valid() {
		return nil, ErrInvalidIdentity
	}

	slugs := model.DeriveSlugs(id)
	var resolved []model.ResolvedSource

	for _, def := range reg.Definitions() {
		url, ok := expand(def.URLTemplate, slugs)
		if !ok {
			zap.L().Debug("urlgen: skipping source",
				zap.String("source", def.Name),
				zap.String("template", def.URLTemplate),
			)
			continue
		}
		resolved = append(resolved, model.ResolvedSource{
			Name:     def.Name,
			URL:      url,
			Category: def.Category,
			Priority: def.Priority,
		})
	}

	if strings.TrimSpace(id.URL) != "" {
		resolved = append(resolved, model.ResolvedSource{
			Name:     PrimarySourceName,
			URL:      id.URL,
			Category: model.CategoryPrimary,
			Priority: model.PriorityCritical,
		})
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Priority.Rank() < resolved[j].Priority.Rank()
	})

	return resolved, nil
}

// expand substitutes the template's placeholder from the slug set.
// Placeholders are checked in a fixed precedence order (slug > name >
// domain > handle); templates contain at most one kind, so the order
// only matters as a deterministic fallback. Returns false when the
// placeholder's value is empty for this identity.
func expand(template string, slugs model.Slugs) (string, bool) {
	switch {
	case strings.Contains(template, "{slug}"):
		return substitute(template, "{slug}", slugs.Slug)
	case strings.Contains(template, "{name}"):
		return substitute(template, "{name}", slugs.Encoded)
	case strings.Contains(template, "{domain}"):
		return substitute(template, "{domain}", slugs.Domain)
	case strings.Contains(template, "{handle}"):
		return substitute(template, "{handle}", slugs.Handle)
	default:
		return template, true
	}
}

func substitute(template, placeholder, value string) (string, bool) {
	if value == "" {
		return "", false
	}
	return strings.ReplaceAll(template, placeholder, value), true
}
