// Package pipeline orchestrates a full analysis run: resolve sources,
// dispatch fetches, aggregate outcomes, summarize, persist.
package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/intel-cli/internal/aggregate"
	"github.com/sells-group/intel-cli/internal/dispatch"
	"github.com/sells-group/intel-cli/internal/model"
	"github.com/sells-group/intel-cli/internal/registry"
	"github.com/sells-group/intel-cli/internal/store"
	"github.com/sells-group/intel-cli/internal/summarize"
	"github.com/sells-group/intel-cli/internal/urlgen"
)

// Analyzer runs the intelligence pipeline for single companies.
type Analyzer struct {
	registry   *registry.Registry
	dispatcher *dispatch.Dispatcher
	summarizer summarize.Summarizer
	store      store.Store
}

// New creates an Analyzer with all dependencies.
func New(reg *registry.Registry, d *dispatch.Dispatcher, s summarize.Summarizer, st store.Store) *Analyzer {
	return &Analyzer{
		registry:   reg,
		dispatcher: d,
		summarizer: s,
		store:      st,
	}
}

// Result is the outcome of one completed analysis run.
type Result struct {
	RunID    string         `json:"run_id"`
	Profile  *model.Profile `json:"profile"`
	Duration time.Duration  `json:"duration"`
}

// Run creates a run record and executes the full pipeline for one
// company. Individual source failures never fail a run; only an invalid
// identity or a summarizer error does.
func (a *Analyzer) Run(ctx context.Context, company model.CompanyIdentity) (*Result, error) {
	run, err := a.store.CreateRun(ctx, company)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: create run")
	}
	return a.Execute(ctx, run)
}

// Execute runs the pipeline for an already-created run. The server uses
// this to answer with the run ID before the work starts.
func (a *Analyzer) Execute(ctx context.Context, run *model.Run) (*Result, error) {
	company := run.Company
	log := zap.L().With(
		zap.String("company", company.Name),
		zap.String("url", company.URL),
		zap.String("run_id", run.ID),
	)
	start := time.Now()
	log.Info("pipeline: starting analysis")

	setStatus := func(status model.RunStatus) {
		if statusErr := a.store.UpdateRunStatus(ctx, run.ID, status); statusErr != nil {
			log.Warn("pipeline: failed to update status", zap.Error(statusErr))
		}
	}
	fail := func(reason string, cause error) (*Result, error) {
		if failErr := a.store.FailRun(ctx, run.ID, reason); failErr != nil {
			log.Warn("pipeline: failed to record failure", zap.Error(failErr))
		}
		log.Error("pipeline: run failed", zap.String("reason", reason))
		return nil, cause
	}

	sources, err := urlgen.Resolve(company, a.registry)
	if err != nil {
		return fail(err.Error(), eris.Wrap(err, "pipeline: resolve sources"))
	}
	log.Info("pipeline: sources resolved", zap.Int("count", len(sources)))

	setStatus(model.RunStatusDispatching)
	outcomes := a.dispatcher.Run(ctx, sources)

	setStatus(model.RunStatusAggregating)
	report := aggregate.Build(outcomes)
	log.Info("pipeline: aggregation complete",
		zap.Float64("quality_score", report.QualityScore),
		zap.Int("successful_sources", len(report.SuccessfulSources)),
		zap.Int("diagnostics", len(report.Diagnostics)),
	)

	payload := aggregate.Payload(company, report.Dataset)
	analysis, err := a.summarizer.Summarize(ctx, payload, company.URL)
	if err != nil {
		return fail("summarizer: "+err.Error(), eris.Wrap(err, "pipeline: summarize"))
	}

	profile := &model.Profile{
		Company:           company,
		Dataset:           report.Dataset,
		QualityScore:      report.QualityScore,
		SuccessfulSources: report.SuccessfulSources,
		Diagnostics:       report.Diagnostics,
		Analysis:          *analysis,
	}
	if err := a.store.UpsertProfile(ctx, profile); err != nil {
		// Persistence is at-least-once; the analysis itself succeeded.
		log.Warn("pipeline: profile upsert failed", zap.Error(err))
	}

	setStatus(model.RunStatusComplete)

	duration := time.Since(start)
	log.Info("pipeline: analysis complete", zap.Duration("duration", duration))

	return &Result{
		RunID:    run.ID,
		Profile:  profile,
		Duration: duration,
	}, nil
}
