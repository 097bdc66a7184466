package dispatch

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/intel-cli/internal/fetch"
	"github.com/sells-group/intel-cli/internal/model"
)

// instrumentedFetcher counts concurrent entries and serves canned pages
// or errors keyed by URL.
type instrumentedFetcher struct {
	mu         sync.Mutex
	inFlight   int
	maxSeen    int
	delay      time.Duration
	pages      map[string]*fetch.Page
	errs       map[string]error
	totalCalls int
}

func (f *instrumentedFetcher) Name() string { return "instrumented" }

func (f *instrumentedFetcher) Fetch(ctx context.Context, url string) (*fetch.Page, error) {
	f.mu.Lock()
	f.inFlight++
	f.totalCalls++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}

	if err, ok := f.errs[url]; ok {
		return nil, err
	}
	if page, ok := f.pages[url]; ok {
		return page, nil
	}
	return &fetch.Page{URL: url, Title: "Generic Page", Text: "some text"}, nil
}

func sourcesN(n int) []model.ResolvedSource {
	out := make([]model.ResolvedSource, n)
	for i := range out {
		out[i] = model.ResolvedSource{
			Name:     fmt.Sprintf("source_%02d", i),
			URL:      fmt.Sprintf("https://s%02d.example/acme", i),
			Category: model.CategoryNews,
			Priority: model.PriorityMedium,
		}
	}
	return out
}

func TestRun_CoverageInvariant(t *testing.T) {
	f := &instrumentedFetcher{
		errs: map[string]error{
			"https://s01.example/acme": fmt.Errorf("connection refused"),
			"https://s03.example/acme": fmt.Errorf("tls handshake failed"),
		},
	}
	d := New(f, Config{Concurrency: 4})

	sources := sourcesN(8)
	results := d.Run(context.Background(), sources)

	require.Len(t, results, len(sources))
	for _, src := range sources {
		_, ok := results[src.Name]
		assert.True(t, ok, "missing outcome for %s", src.Name)
	}
	assert.Equal(t, model.OutcomeError, results["source_01"].Status)
	assert.Equal(t, model.OutcomeError, results["source_03"].Status)
	assert.Equal(t, model.OutcomeSuccess, results["source_00"].Status)
}

func TestRun_ConcurrencyNeverExceedsLimit(t *testing.T) {
	f := &instrumentedFetcher{delay: 20 * time.Millisecond}
	d := New(f, Config{Concurrency: 3})

	d.Run(context.Background(), sourcesN(12))

	assert.LessOrEqual(t, f.maxSeen, 3)
	assert.Equal(t, 12, f.totalCalls)
}

func TestRun_TimeoutBecomesErrorOutcome(t *testing.T) {
	f := &instrumentedFetcher{delay: 500 * time.Millisecond}
	d := New(f, Config{Concurrency: 2, FetchTimeout: 30 * time.Millisecond})

	results := d.Run(context.Background(), sourcesN(2))

	for name, outcome := range results {
		assert.Equal(t, model.OutcomeError, outcome.Status, name)
		assert.Contains(t, outcome.Err, "timeout:")
	}
}

func TestRun_NotFoundClassification(t *testing.T) {
	f := &instrumentedFetcher{
		pages: map[string]*fetch.Page{
			"https://s00.example/acme": {Title: "", Text: "body"},
			"https://s01.example/acme": {Title: "404 Error", Text: "body"},
			"https://s02.example/acme": {Title: "Page Not Found | Site", Text: "body"},
			"https://s03.example/acme": {Title: "Acme Corp", Text: "body", StatusCode: 503},
		},
	}
	d := New(f, Config{})

	results := d.Run(context.Background(), sourcesN(4))
	for name, outcome := range results {
		assert.Equal(t, model.OutcomeNotFound, outcome.Status, name)
		assert.Nil(t, outcome.Record, name)
	}
}

func TestRun_SuccessCarriesRecord(t *testing.T) {
	f := &instrumentedFetcher{
		pages: map[string]*fetch.Page{
			"https://fin.example": {Title: "Acme - Funding", Text: "Total Funding: $5M"},
		},
	}
	d := New(f, Config{})

	results := d.Run(context.Background(), []model.ResolvedSource{{
		Name:     "crunchbase",
		URL:      "https://fin.example",
		Category: model.CategoryFinancial,
		Priority: model.PriorityHigh,
	}})

	outcome := results["crunchbase"]
	require.Equal(t, model.OutcomeSuccess, outcome.Status)
	require.NotNil(t, outcome.Record)
	v, ok := outcome.Record.Fields.Get("funding_total")
	require.True(t, ok)
	assert.Equal(t, "$5M", v)
	assert.Equal(t, model.CategoryFinancial, outcome.Record.Category)
}

func TestRun_EmptyBatch(t *testing.T) {
	d := New(&instrumentedFetcher{}, Config{})
	results := d.Run(context.Background(), nil)
	assert.Empty(t, results)
}

func TestRun_AllTimeoutsStillComplete(t *testing.T) {
	f := &instrumentedFetcher{delay: time.Second}
	d := New(f, Config{Concurrency: 10, FetchTimeout: 10 * time.Millisecond})

	results := d.Run(context.Background(), sourcesN(10))
	assert.Len(t, results, 10)
	for _, o := range results {
		assert.Equal(t, model.OutcomeError, o.Status)
	}
}
