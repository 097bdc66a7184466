// Package store persists analysis runs and company profiles. Two
// backends implement the same interface: SQLite for local single-binary
// use and Postgres for shared deployments.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/intel-cli/internal/model"
)

// ErrNotFound is returned when a run or profile does not exist.
var ErrNotFound = eris.New("store: not found")

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status     model.RunStatus `json:"status,omitempty"`
	CompanyURL string          `json:"company_url,omitempty"`
	Limit      int             `json:"limit,omitempty"`
	Offset     int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for the intelligence pipeline.
type Store interface {
	// Runs
	CreateRun(ctx context.Context, company model.CompanyIdentity) (*model.Run, error)
	UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error
	FailRun(ctx context.Context, runID string, reason string) error
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	// Profiles, keyed by canonical company URL. Upserting the same URL
	// replaces the stored profile and preserves its original created_at.
	UpsertProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, companyURL string) (*model.Profile, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// profileKey derives the upsert key for a profile. Companies without a
// URL fall back to the name so repeated runs still converge on one row.
func profileKey(p *model.Profile) string {
	if p.Company.URL != "" {
		return p.Company.URL
	}
	return p.Company.Name
}
