package fetch

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// RateLimited wraps a Fetcher with a global request pacer, keeping the
// fan-out polite to external sites beyond the worker-pool bound.
type RateLimited struct {
	inner   Fetcher
	limiter *rate.Limiter
}

// NewRateLimited allows up to rps fetches per second with the given
// burst. rps <= 0 disables pacing and returns the inner fetcher as-is.
func NewRateLimited(inner Fetcher, rps float64, burst int) Fetcher {
	if rps <= 0 {
		return inner
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimited) Name() string { return r.inner.Name() }

// Fetch waits for a token, then delegates.
func (r *RateLimited) Fetch(ctx context.Context, url string) (*Page, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "fetch: rate limit wait")
	}
	return r.inner.Fetch(ctx, url)
}
