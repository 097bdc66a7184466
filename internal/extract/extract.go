// Package extract pulls structured fields out of fetched page text.
// Each category has an ordered list of field probes; when every probe
// misses, a generic keyword scan keeps whatever looks relevant. Unknown
// categories fall through to a fully generic extractor.
package extract

import "github.com/sells-group/intel-cli/internal/model"

// Func is the common extractor signature: page title and visible text
// in, ordered field set out. Extraction is pure computation and never
// touches the network.
type Func func(title, text string) (model.Fields, error)

// table maps categories to their extractors. Immutable after init.
var table = map[model.Category]Func{
	model.CategoryFinancial:    financialSet.extract,
	model.CategoryProfessional: professionalSet.extract,
	model.CategoryEmployment:   employmentSet.extract,
	model.CategoryReviews:      reviewsSet.extract,
	model.CategoryTechnology:   technologySet.extract,
	model.CategoryNews:         newsSet.extract,
	model.CategorySocial:       socialSet.extract,
}

// For returns the extractor for a category. Categories without a
// dedicated extractor (primary, products, analytics, anything
// unregistered) get the generic one.
func For(category model.Category) Func {
	if fn, ok := table[category]; ok {
		return fn
	}
	return Generic
}

// Run applies the category's extractor and degrades to the generic
// extractor when it fails. The record always exists for a successful
// fetch, even when no fields were found.
func Run(category model.Category, sourceName, title, text string) model.ExtractedRecord {
	fields, err := For(category)(title, text)
	if err != nil {
		fields, _ = Generic(title, text)
	}
	return model.ExtractedRecord{
		SourceName: sourceName,
		Category:   category,
		Fields:     fields,
	}
}
