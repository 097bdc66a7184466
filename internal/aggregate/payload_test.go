package aggregate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/intel-cli/internal/model"
)

func TestPayload_CategoryOrderAndContent(t *testing.T) {
	fin := model.NewFields()
	fin.Set("funding_total", "$5M")

	prim := model.NewFields()
	prim.Set("title", "Acme Corp")

	ds := model.CategorizedDataset{
		model.CategoryFinancial: {"crunchbase": fin},
		model.CategoryPrimary:   {"main_website": prim},
	}

	payload := Payload(model.CompanyIdentity{Name: "Acme Corp", URL: "https://acme.example"}, ds)

	assert.Contains(t, payload, "Company: Acme Corp")
	assert.Contains(t, payload, "Website: https://acme.example")
	assert.Contains(t, payload, "=== PRIMARY INTELLIGENCE ===")
	assert.Contains(t, payload, "=== FINANCIAL INTELLIGENCE ===")
	assert.Contains(t, payload, "funding_total: $5M")

	// Primary (weight 1.0) renders before financial (0.9).
	assert.Less(t,
		strings.Index(payload, "PRIMARY INTELLIGENCE"),
		strings.Index(payload, "FINANCIAL INTELLIGENCE"),
	)
}

func TestPayload_TruncatesLongValues(t *testing.T) {
	f := model.NewFields()
	f.Set("content", strings.Repeat("x", 500))

	ds := model.CategorizedDataset{model.CategoryPrimary: {"main_website": f}}
	payload := Payload(model.CompanyIdentity{Name: "Acme"}, ds)

	assert.Contains(t, payload, strings.Repeat("x", 200)+"...")
	assert.NotContains(t, payload, strings.Repeat("x", 201))
}

func TestPayload_SkipsEmptyValues(t *testing.T) {
	f := model.NewFields()
	f.Set("empty", "   ")
	f.Set("kept", "value")

	ds := model.CategorizedDataset{model.CategoryNews: {"google_news": f}}
	payload := Payload(model.CompanyIdentity{Name: "Acme"}, ds)

	assert.NotContains(t, payload, "empty:")
	assert.Contains(t, payload, "kept: value")
}

func TestPayload_Deterministic(t *testing.T) {
	a := model.NewFields()
	a.Set("k", "v")
	ds := model.CategorizedDataset{
		model.CategoryReviews: {"yelp": a, "trustpilot": a},
		model.CategoryNews:    {"google_news": a},
	}
	id := model.CompanyIdentity{Name: "Acme"}

	assert.Equal(t, Payload(id, ds), Payload(id, ds))
}
