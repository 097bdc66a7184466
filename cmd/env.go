package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/intel-cli/internal/dispatch"
	"github.com/sells-group/intel-cli/internal/fetch"
	"github.com/sells-group/intel-cli/internal/pipeline"
	"github.com/sells-group/intel-cli/internal/registry"
	"github.com/sells-group/intel-cli/internal/store"
	"github.com/sells-group/intel-cli/internal/summarize"
	"github.com/sells-group/intel-cli/pkg/anthropic"
)

// env bundles the wired pipeline and its closable resources.
type env struct {
	Analyzer *pipeline.Analyzer
	Store    store.Store
	closers  []func() error
}

func (e *env) Close() {
	for _, c := range e.closers {
		_ = c()
	}
}

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "intel.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func initFetcher() (fetch.Fetcher, func() error) {
	var fetcher fetch.Fetcher
	var closer func() error

	switch cfg.Fetch.Mode {
	case "http":
		fetcher = fetch.NewHTTP()
		closer = func() error { return nil }
	default:
		opts := []fetch.BrowserOption{
			fetch.WithSettleDelay(cfg.Fetch.SettleDelay()),
			fetch.WithHeadless(cfg.Fetch.Headless),
		}
		if cfg.Fetch.BrowserBin != "" {
			opts = append(opts, fetch.WithBin(cfg.Fetch.BrowserBin))
		}
		browser := fetch.NewBrowser(opts...)
		fetcher = browser
		closer = browser.Close
	}

	return fetch.NewRateLimited(fetcher, cfg.Fetch.RequestsPerSec, 1), closer
}

// initPipeline wires the full analyzer from config.
func initPipeline(ctx context.Context) (*env, error) {
	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	reg, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		st.Close()
		return nil, eris.Wrap(err, "load source registry")
	}

	fetcher, closeFetcher := initFetcher()

	dispatcher := dispatch.New(fetcher, dispatch.Config{
		Concurrency:  cfg.Dispatch.Concurrency,
		FetchTimeout: cfg.Dispatch.FetchTimeout(),
	})

	summarizer := summarize.NewAnthropic(
		anthropic.NewClient(cfg.Anthropic.Key),
		summarize.WithModel(cfg.Anthropic.Model),
		summarize.WithMaxTokens(cfg.Anthropic.MaxTokens),
	)

	return &env{
		Analyzer: pipeline.New(reg, dispatcher, summarizer, st),
		Store:    st,
		closers:  []func() error{closeFetcher, st.Close},
	}, nil
}
