// Package fetch provides the page-fetching capability used by the
// dispatcher. Implementations render a URL and return its title and
// visible text; navigation failures, HTTP errors, and timeouts come
// back as typed errors, never panics.
package fetch

import "context"

// Page is a rendered page: title, visible text, and the HTTP status
// observed (0 when the transport does not expose one).
type Page struct {
	URL        string
	Title      string
	Text       string
	StatusCode int
}

// Fetcher renders a single URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
	Name() string
}
