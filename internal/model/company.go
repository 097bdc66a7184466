package model

import (
	"net/url"
	"strings"
)

// CompanyIdentity is the immutable input for an analysis run.
type CompanyIdentity struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"` // canonical website, optional
}

// Valid reports whether the identity can drive URL generation.
func (c CompanyIdentity) Valid() bool {
	return strings.TrimSpace(c.Name) != ""
}

// Domain returns the bare domain of the canonical URL, stripped of
// scheme, "www." prefix, and path. Empty when no URL is set.
func (c CompanyIdentity) Domain() string {
	raw := strings.TrimSpace(c.URL)
	if raw == "" {
		return ""
	}
	raw = strings.TrimPrefix(raw, "https://")
	raw = strings.TrimPrefix(raw, "http://")
	raw = strings.TrimPrefix(raw, "www.")
	if idx := strings.IndexByte(raw, '/'); idx != -1 {
		raw = raw[:idx]
	}
	return raw
}

// Slugs holds every identifier form derived from a company identity.
// Derived once per run and reused for all template expansions.
type Slugs struct {
	Slug       string // lowercase, spaces → hyphens, "."/"," stripped
	Underscore string // lowercase, spaces → underscores, "."/"," stripped
	Encoded    string // url-encoded full name
	Domain     string // bare domain without scheme/www/path
	Handle     string // no separators, truncated for handle-length limits
}

// handleMaxLen matches the strictest identifier limit among the
// services in the default registry (Twitter handles).
const handleMaxLen = 15

// DeriveSlugs computes all slug variants for the identity.
func DeriveSlugs(id CompanyIdentity) Slugs {
	base := foldName(id.Name)

	handle := strings.ReplaceAll(base, " ", "")
	if len(handle) > handleMaxLen {
		handle = handle[:handleMaxLen]
	}

	return Slugs{
		Slug:       strings.ReplaceAll(base, " ", "-"),
		Underscore: strings.ReplaceAll(base, " ", "_"),
		Encoded:    url.QueryEscape(strings.TrimSpace(id.Name)),
		Domain:     id.Domain(),
		Handle:     handle,
	}
}

// foldName lowercases the name, folds diacritics to ASCII, strips
// periods and commas, and collapses runs of whitespace.
func foldName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = asciiFold(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.Join(strings.Fields(s), " ")
}
