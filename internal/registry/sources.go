package registry

import "github.com/sells-group/intel-cli/internal/model"

// defaultDefs is the built-in source catalog. Templates carry exactly
// one placeholder kind; the urlgen package substitutes whichever is
// present.
var defaultDefs = []model.SourceDefinition{
	// Financial & investment
	{Name: "crunchbase", URLTemplate: "https://www.crunchbase.com/organization/{slug}", Category: model.CategoryFinancial, Priority: model.PriorityHigh},
	{Name: "pitchbook", URLTemplate: "https://pitchbook.com/profiles/company/{slug}", Category: model.CategoryFinancial, Priority: model.PriorityHigh},
	{Name: "angellist", URLTemplate: "https://angel.co/company/{slug}", Category: model.CategoryFinancial, Priority: model.PriorityMedium},

	// Professional & social
	{Name: "linkedin_company", URLTemplate: "https://www.linkedin.com/company/{slug}", Category: model.CategoryProfessional, Priority: model.PriorityHigh},
	{Name: "twitter", URLTemplate: "https://twitter.com/{handle}", Category: model.CategorySocial, Priority: model.PriorityMedium},
	{Name: "facebook", URLTemplate: "https://www.facebook.com/{slug}", Category: model.CategorySocial, Priority: model.PriorityLow},

	// Employment & culture
	{Name: "glassdoor", URLTemplate: "https://www.glassdoor.com/Overview/Working-at-{slug}", Category: model.CategoryEmployment, Priority: model.PriorityHigh},
	{Name: "indeed", URLTemplate: "https://www.indeed.com/cmp/{slug}", Category: model.CategoryEmployment, Priority: model.PriorityMedium},

	// Business & reviews
	{Name: "google_business", URLTemplate: "https://www.google.com/search?q={name}+business+reviews", Category: model.CategoryReviews, Priority: model.PriorityMedium},
	{Name: "yelp", URLTemplate: "https://www.yelp.com/biz/{slug}", Category: model.CategoryReviews, Priority: model.PriorityMedium},
	{Name: "trustpilot", URLTemplate: "https://www.trustpilot.com/review/{domain}", Category: model.CategoryReviews, Priority: model.PriorityMedium},

	// Technology & web
	{Name: "builtwith", URLTemplate: "https://builtwith.com/{domain}", Category: model.CategoryTechnology, Priority: model.PriorityHigh},
	{Name: "similarweb", URLTemplate: "https://www.similarweb.com/website/{domain}", Category: model.CategoryAnalytics, Priority: model.PriorityHigh},

	// News & media
	{Name: "google_news", URLTemplate: "https://news.google.com/search?q={name}", Category: model.CategoryNews, Priority: model.PriorityHigh},
	{Name: "techcrunch", URLTemplate: "https://techcrunch.com/tag/{slug}", Category: model.CategoryNews, Priority: model.PriorityMedium},

	// Products & e-commerce
	{Name: "product_hunt", URLTemplate: "https://www.producthunt.com/@{slug}", Category: model.CategoryProducts, Priority: model.PriorityMedium},
	{Name: "app_store", URLTemplate: "https://apps.apple.com/search?term={name}", Category: model.CategoryProducts, Priority: model.PriorityMedium},

	// Developer footprint
	{Name: "github", URLTemplate: "https://github.com/{slug}", Category: model.CategoryTechnology, Priority: model.PriorityMedium},
	{Name: "stackoverflow", URLTemplate: "https://stackoverflow.com/search?q={name}", Category: model.CategoryTechnology, Priority: model.PriorityLow},
}

// Default returns the built-in catalog.
func Default() *Registry {
	r, err := New(defaultDefs)
	if err != nil {
		// The built-in catalog is validated by tests; a failure here is
		// a programming error.
		panic(err)
	}
	return r
}
