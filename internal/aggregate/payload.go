package aggregate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/intel-cli/internal/model"
)

// maxValueLen bounds a single field value in the summarizer payload.
const maxValueLen = 200

// Payload renders the dataset as the textual digest handed to the
// summarizer. Categories appear in weight order (primary first),
// sources alphabetically within a category, and fields in extraction
// order, so the payload is stable across runs of the same batch.
func Payload(company model.CompanyIdentity, dataset model.CategorizedDataset) string {
	var b strings.Builder

	fmt.Fprintf(&b, "COMPREHENSIVE COMPANY INTELLIGENCE\n")
	fmt.Fprintf(&b, "Company: %s\n", company.Name)
	if company.URL != "" {
		fmt.Fprintf(&b, "Website: %s\n", company.URL)
	}
	fmt.Fprintf(&b, "\nData collected from %d categories of sources:\n", len(dataset))

	for _, category := range orderedCategories(dataset) {
		fmt.Fprintf(&b, "\n=== %s INTELLIGENCE ===\n", strings.ToUpper(string(category)))

		sources := dataset[category]
		names := make([]string, 0, len(sources))
		for name := range sources {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintf(&b, "\n--- %s ---\n", name)
			fields := sources[name]
			for _, key := range fields.Keys() {
				value, _ := fields.Get(key)
				if strings.TrimSpace(value) == "" {
					continue
				}
				fmt.Fprintf(&b, "%s: %s\n", key, truncate(value, maxValueLen))
			}
		}
	}

	return b.String()
}

// orderedCategories sorts present categories by descending weight,
// breaking ties by name.
func orderedCategories(dataset model.CategorizedDataset) []model.Category {
	out := make([]model.Category, 0, len(dataset))
	for c := range dataset {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		wi, wj := out[i].Weight(), out[j].Weight()
		if wi != wj {
			return wi > wj
		}
		return out[i] < out[j]
	})
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
