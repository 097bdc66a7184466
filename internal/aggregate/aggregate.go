// Package aggregate merges a completed fetch batch into the combined
// intelligence dataset. Everything here is a pure function of the
// outcome map: aggregating the same batch twice yields identical
// results.
package aggregate

import (
	"math"
	"sort"

	"github.com/sells-group/intel-cli/internal/model"
)

// Report is the merged result of one fetch batch.
type Report struct {
	Dataset           model.CategorizedDataset `json:"dataset"`
	QualityScore      float64                  `json:"quality_score"`
	SuccessfulSources []string                 `json:"successful_sources"`
	Diagnostics       []model.Diagnostic       `json:"diagnostics"`
}

// Build groups successful outcomes by category and source, records
// failures as diagnostics, and scores coverage. NotFound and Error
// outcomes never enter the dataset or the score.
func Build(outcomes map[string]model.FetchOutcome) Report {
	dataset := make(model.CategorizedDataset)
	var successful []string
	var diagnostics []model.Diagnostic

	for _, outcome := range outcomes {
		switch outcome.Status {
		case model.OutcomeSuccess:
			successful = append(successful, outcome.SourceName)
			bySource, ok := dataset[outcome.Category]
			if !ok {
				bySource = make(map[string]model.Fields)
				dataset[outcome.Category] = bySource
			}
			var fields model.Fields
			if outcome.Record != nil {
				fields = outcome.Record.Fields
			}
			bySource[outcome.SourceName] = fields

		case model.OutcomeNotFound:
			diagnostics = append(diagnostics, model.Diagnostic{
				SourceName: outcome.SourceName,
				Category:   outcome.Category,
				Reason:     "not found",
			})

		case model.OutcomeError:
			diagnostics = append(diagnostics, model.Diagnostic{
				SourceName: outcome.SourceName,
				Category:   outcome.Category,
				Reason:     outcome.Err,
			})
		}
	}

	sort.Strings(successful)
	sort.Slice(diagnostics, func(i, j int) bool {
		return diagnostics[i].SourceName < diagnostics[j].SourceName
	})

	return Report{
		Dataset:           dataset,
		QualityScore:      Score(dataset),
		SuccessfulSources: successful,
		Diagnostics:       diagnostics,
	}
}

// Score computes the weighted data-quality score in [0, 100]. Each
// category present contributes min(sources × 0.2, 1.0) × weight; the
// total is normalized by the weights of the categories actually present
// and scaled to 100. An empty dataset scores 0.0.
func Score(dataset model.CategorizedDataset) float64 {
	var weighted, maxPossible float64

	for category, sources := range dataset {
		weight := category.Weight()
		maxPossible += weight
		weighted += math.Min(float64(len(sources))*0.2, 1.0) * weight
	}

	if maxPossible == 0 {
		return 0.0
	}
	return math.Round(weighted/maxPossible*100*100) / 100
}
