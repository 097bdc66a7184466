// Package dispatch fans out fetch+extract work across a bounded worker
// pool. Every requested source yields exactly one outcome; no single
// source's failure affects any other source or the batch's completion.
package dispatch

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/intel-cli/internal/extract"
	"github.com/sells-group/intel-cli/internal/fetch"
	"github.com/sells-group/intel-cli/internal/model"
)

const (
	defaultConcurrency  = 10
	defaultFetchTimeout = 15 * time.Second
)

// Config bounds the fan-out.
type Config struct {
	Concurrency  int           // max in-flight fetches (K)
	FetchTimeout time.Duration // per-source budget to first content
}

// Dispatcher runs fetch+extract for batches of resolved sources.
type Dispatcher struct {
	fetcher fetch.Fetcher
	cfg     Config
}

// New creates a Dispatcher, filling config defaults.
func New(fetcher fetch.Fetcher, cfg Config) *Dispatcher {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = defaultFetchTimeout
	}
	return &Dispatcher{fetcher: fetcher, cfg: cfg}
}

// Run fetches every source and returns one FetchOutcome per source
// name. Sources are started in the given order (callers pass them
// priority-ordered); completion order is unspecified. Each worker
// writes its own key exactly once, so the map needs no merging logic
// beyond the mutex.
func (d *Dispatcher) Run(ctx context.Context, sources []model.ResolvedSource) map[string]model.FetchOutcome {
	results := make(map[string]model.FetchOutcome, len(sources))
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(d.cfg.Concurrency)

	for _, src := range sources {
		g.Go(func() error {
			outcome := d.fetchOne(ctx, src)
			mu.Lock()
			results[src.Name] = outcome
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; failures live in the outcomes.
	_ = g.Wait()

	success := 0
	for _, o := range results {
		if o.Status == model.OutcomeSuccess {
			success++
		}
	}
	zap.L().Info("dispatch: batch complete",
		zap.Int("sources", len(sources)),
		zap.Int("succeeded", success),
	)

	return results
}

// fetchOne performs a single fetch+extract unit of work.
func (d *Dispatcher) fetchOne(ctx context.Context, src model.ResolvedSource) model.FetchOutcome {
	outcome := model.FetchOutcome{
		SourceName: src.Name,
		URL:        src.URL,
		Category:   src.Category,
	}

	fetchCtx, cancel := context.WithTimeout(ctx, d.cfg.FetchTimeout)
	defer cancel()

	page, err := d.fetcher.Fetch(fetchCtx, src.URL)
	if err != nil {
		outcome.Status = model.OutcomeError
		outcome.Err = failureReason(err)
		zap.L().Warn("dispatch: fetch failed",
			zap.String("source", src.Name),
			zap.String("url", src.URL),
			zap.Error(err),
		)
		return outcome
	}

	if notFound(page) {
		outcome.Status = model.OutcomeNotFound
		outcome.Title = page.Title
		zap.L().Debug("dispatch: page not found",
			zap.String("source", src.Name),
			zap.String("title", page.Title),
		)
		return outcome
	}

	record := extract.Run(src.Category, src.Name, page.Title, page.Text)

	outcome.Status = model.OutcomeSuccess
	outcome.Title = page.Title
	outcome.Record = &record
	zap.L().Debug("dispatch: source scraped",
		zap.String("source", src.Name),
		zap.Int("fields", record.Fields.Len()),
	)
	return outcome
}

// notFound classifies pages that loaded but carry no profile: an empty
// title, an HTTP error status, or a not-found marker in the title.
// These must not reach extraction.
func notFound(page *fetch.Page) bool {
	if page.StatusCode >= 400 {
		return true
	}
	if strings.TrimSpace(page.Title) == "" {
		return true
	}
	lower := strings.ToLower(page.Title)
	return strings.Contains(lower, "404") || strings.Contains(lower, "not found")
}

// failureReason prefixes timeouts so callers can tell them apart from
// transport errors without parsing messages.
func failureReason(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout: " + err.Error()
	}
	return err.Error()
}
