package model

// Category classifies what kind of information a source provides. The
// category drives which extractor runs against a fetched page.
type Category string

const (
	CategoryFinancial    Category = "financial"
	CategoryProfessional Category = "professional"
	CategorySocial       Category = "social"
	CategoryEmployment   Category = "employment"
	CategoryReviews      Category = "reviews"
	CategoryTechnology   Category = "technology"
	CategoryNews         Category = "news"
	CategoryProducts     Category = "products"
	CategoryAnalytics    Category = "analytics"
	CategoryPrimary      Category = "primary"
)

// KnownCategories returns every category the registry may use.
func KnownCategories() []Category {
	return []Category{
		CategoryFinancial,
		CategoryProfessional,
		CategorySocial,
		CategoryEmployment,
		CategoryReviews,
		CategoryTechnology,
		CategoryNews,
		CategoryProducts,
		CategoryAnalytics,
		CategoryPrimary,
	}
}

// Weight returns the category's importance weight for quality scoring.
// Unlisted categories carry a default weight of 0.2.
func (c Category) Weight() float64 {
	switch c {
	case CategoryPrimary:
		return 1.0
	case CategoryFinancial:
		return 0.9
	case CategoryProfessional:
		return 0.8
	case CategoryEmployment:
		return 0.7
	case CategoryReviews:
		return 0.6
	case CategoryTechnology:
		return 0.5
	case CategoryNews:
		return 0.4
	case CategorySocial:
		return 0.3
	default:
		return 0.2
	}
}

// Priority orders sources within a batch: critical sources dispatch
// first, low last. Within a tier, registry insertion order is kept.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Rank returns the sort rank of the priority; lower runs first.
// Unknown priorities sort after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// SourceDefinition is one registry entry. The URL template contains at
// most one placeholder: {slug}, {name}, {domain}, or {handle}.
type SourceDefinition struct {
	Name        string   `json:"name" yaml:"name"`
	URLTemplate string   `json:"url_template" yaml:"url_template"`
	Category    Category `json:"category" yaml:"category"`
	Priority    Priority `json:"priority" yaml:"priority"`
}

// ResolvedSource is a SourceDefinition with its template expanded for a
// specific company. One per definition per analysis run.
type ResolvedSource struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
}

// OutcomeStatus tags the result of a single source fetch.
type OutcomeStatus string

const (
	OutcomeSuccess  OutcomeStatus = "success"
	OutcomeNotFound OutcomeStatus = "not_found"
	OutcomeError    OutcomeStatus = "error"
)

// FetchOutcome is produced exactly once per resolved source. A source
// that fails is recorded here and never retried within the run.
type FetchOutcome struct {
	SourceName string        `json:"source_name"`
	URL        string        `json:"url"`
	Category   Category      `json:"category"`
	Status     OutcomeStatus `json:"status"`
	Title      string        `json:"title,omitempty"`
	Err        string        `json:"error,omitempty"`
	Record     *ExtractedRecord `json:"record,omitempty"` // set only on success
}

// ExtractedRecord holds the structured fields pulled from one
// successfully fetched page.
type ExtractedRecord struct {
	SourceName string   `json:"source_name"`
	Category   Category `json:"category"`
	Fields     Fields   `json:"fields"`
}

// CategorizedDataset groups extracted fields by category, then by
// source name. Read-only once a batch finishes.
type CategorizedDataset map[Category]map[string]Fields

// Diagnostic records a per-source failure excluded from the dataset.
type Diagnostic struct {
	SourceName string   `json:"source_name"`
	Category   Category `json:"category"`
	Reason     string   `json:"reason"`
}
