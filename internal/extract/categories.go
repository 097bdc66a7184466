package extract

import "regexp"

// Per-category extraction policies. Probe order within a field is the
// attempt order; the first non-empty match wins.

var financialSet = probeSet{
	probes: []fieldProbe{
		{field: "funding_total", patterns: []*regexp.Regexp{
			labeled(`total funding(?: amount)?`),
			labeled(`funding raised`),
			regexp.MustCompile(`(?i)raised\s+(\$[\d.,]+\s*(?:million|billion|[mbk]))`),
		}},
		{field: "valuation", patterns: []*regexp.Regexp{
			labeled(`valuation`),
			regexp.MustCompile(`(?i)valued at\s+(\$[\d.,]+\s*(?:million|billion|[mb]))`),
		}},
		{field: "founded_date", patterns: []*regexp.Regexp{
			labeled(`founded(?: date)?`),
			regexp.MustCompile(`(?i)founded in\s+(\d{4})`),
		}},
		{field: "employees", patterns: []*regexp.Regexp{
			labeled(`employees`),
			labeled(`(?:employee count|team size)`),
		}},
		{field: "stage", patterns: []*regexp.Regexp{
			labeled(`(?:funding stage|company stage|stage)`),
			regexp.MustCompile(`(?i)\b(series [a-f])\b`),
		}},
		{field: "investors", patterns: []*regexp.Regexp{
			labeled(`(?:lead )?investors?`),
		}},
	},
	keywords:    []string{"funding", "valuation", "investor", "series", "million", "billion"},
	mentionsKey: "financial_mentions",
}

var professionalSet = probeSet{
	probes: []fieldProbe{
		{field: "description", patterns: []*regexp.Regexp{
			labeled(`(?:about(?: us)?|overview|description)`),
		}},
		{field: "industry", patterns: []*regexp.Regexp{
			labeled(`(?:industry|sector)`),
		}},
		{field: "headquarters", patterns: []*regexp.Regexp{
			labeled(`(?:headquarters|hq|location)`),
		}},
		{field: "employee_count", patterns: []*regexp.Regexp{
			labeled(`(?:company size|employees)`),
			regexp.MustCompile(`(?i)([\d,]+(?:-[\d,]+)?\+?)\s+employees`),
		}},
		{field: "followers", patterns: []*regexp.Regexp{
			labeled(`followers`),
			regexp.MustCompile(`(?i)([\d,.]+[km]?)\s+followers`),
		}},
	},
	keywords:    []string{"industry", "employees", "headquarters", "founded", "specialties"},
	mentionsKey: "professional_mentions",
}

var employmentSet = probeSet{
	probes: []fieldProbe{
		{field: "rating", patterns: []*regexp.Regexp{
			labeled(`(?:overall )?rating`),
			regexp.MustCompile(`(?i)(\d\.\d)\s*(?:out of 5|★|stars)`),
		}},
		{field: "company_size", patterns: []*regexp.Regexp{
			labeled(`(?:company size|size)`),
		}},
		{field: "recommend_pct", patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\d{1,3}%)\s+(?:of employees )?would recommend`),
		}},
	},
	keywords:    []string{"rating", "salary", "benefits", "culture", "interview", "recommend"},
	mentionsKey: "employment_mentions",
}

var reviewsSet = probeSet{
	probes: []fieldProbe{
		{field: "rating", patterns: []*regexp.Regexp{
			labeled(`(?:trustscore|rating)`),
			regexp.MustCompile(`(?i)(\d\.\d)\s*(?:out of 5|stars)`),
		}},
		{field: "review_count", patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)([\d,]+)\s+(?:total )?reviews`),
		}},
	},
	keywords:    []string{"review", "rating", "stars", "customer", "complaint"},
	mentionsKey: "review_mentions",
}

var technologySet = probeSet{
	probes: []fieldProbe{
		{field: "technologies", patterns: []*regexp.Regexp{
			labeled(`(?:technology profile|technologies|tech stack)`),
		}},
		{field: "languages", patterns: []*regexp.Regexp{
			labeled(`(?:programming )?languages?`),
		}},
		{field: "repositories", patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)([\d,]+)\s+repositor(?:y|ies)`),
		}},
	},
	keywords:    []string{"framework", "analytics", "javascript", "hosting", "cdn", "repository"},
	mentionsKey: "technology_mentions",
}

var newsSet = probeSet{
	probes: []fieldProbe{
		{field: "latest_headline", patterns: []*regexp.Regexp{
			labeled(`(?:top stories|latest)`),
		}},
	},
	keywords:    []string{"announce", "launch", "acquire", "partnership", "raise", "expand"},
	mentionsKey: "news_mentions",
}

var socialSet = probeSet{
	probes: []fieldProbe{
		{field: "followers", patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)([\d,.]+[km]?)\s+followers`),
		}},
		{field: "bio", patterns: []*regexp.Regexp{
			labeled(`(?:bio|about)`),
		}},
	},
	keywords:    []string{"followers", "posts", "likes", "community", "tweet"},
	mentionsKey: "social_mentions",
}
