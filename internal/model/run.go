package model

import "time"

// RunStatus tracks an analysis run through its state machine:
// pending → dispatching → aggregating → complete, or failed when the
// identity is invalid or the summarizer errors. Individual source
// failures never move a run to failed.
type RunStatus string

const (
	RunStatusPending     RunStatus = "pending"
	RunStatusDispatching RunStatus = "dispatching"
	RunStatusAggregating RunStatus = "aggregating"
	RunStatusComplete    RunStatus = "complete"
	RunStatusFailed      RunStatus = "failed"
)

// Terminal reports whether the status is an end state.
func (s RunStatus) Terminal() bool {
	return s == RunStatusComplete || s == RunStatusFailed
}

// Run is one analysis job tracked by the store.
type Run struct {
	ID        string          `json:"id"`
	Company   CompanyIdentity `json:"company"`
	Status    RunStatus       `json:"status"`
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Analysis is the structured output of the summarizer.
type Analysis struct {
	Summary          string   `json:"summary"`
	Mission          string   `json:"mission"`
	ValueProposition string   `json:"value_proposition"`
	BusinessModel    string   `json:"business_model"`
	KeyInsights      []string `json:"key_insights"`
}

// Profile is the persisted intelligence report for a company, keyed by
// canonical URL with upsert semantics.
type Profile struct {
	Company           CompanyIdentity    `json:"company"`
	Dataset           CategorizedDataset `json:"dataset"`
	QualityScore      float64            `json:"quality_score"`
	SuccessfulSources []string           `json:"successful_sources"`
	Diagnostics       []Diagnostic       `json:"diagnostics,omitempty"`
	Analysis          Analysis           `json:"analysis"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}
