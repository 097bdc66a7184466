package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSlugs_Basic(t *testing.T) {
	id := CompanyIdentity{Name: "Acme Corp", URL: "https://www.acme.example/about"}
	s := DeriveSlugs(id)

	assert.Equal(t, "acme-corp", s.Slug)
	assert.Equal(t, "acme_corp", s.Underscore)
	assert.Equal(t, "Acme+Corp", s.Encoded)
	assert.Equal(t, "acme.example", s.Domain)
	assert.Equal(t, "acmecorp", s.Handle)
}

func TestDeriveSlugs_StripsPunctuation(t *testing.T) {
	s := DeriveSlugs(CompanyIdentity{Name: "Smith, Jones & Co."})
	assert.Equal(t, "smith-jones-&-co", s.Slug)
	assert.Equal(t, "smith_jones_&_co", s.Underscore)
}

func TestDeriveSlugs_HandleTruncation(t *testing.T) {
	s := DeriveSlugs(CompanyIdentity{Name: "Extremely Long Company Name Incorporated"})
	assert.Len(t, s.Handle, 15)
	assert.Equal(t, "extremelylongco", s.Handle)
}

func TestDeriveSlugs_FoldsDiacritics(t *testing.T) {
	s := DeriveSlugs(CompanyIdentity{Name: "Café Münster"})
	assert.Equal(t, "cafe-munster", s.Slug)
}

func TestDeriveSlugs_CollapsesWhitespace(t *testing.T) {
	s := DeriveSlugs(CompanyIdentity{Name: "  Acme   Corp  "})
	assert.Equal(t, "acme-corp", s.Slug)
}

func TestDomain_Variants(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.acme.example/about", "acme.example"},
		{"http://acme.example", "acme.example"},
		{"acme.example/path", "acme.example"},
		{"", ""},
	}
	for _, tt := range tests {
		got := CompanyIdentity{Name: "Acme", URL: tt.url}.Domain()
		assert.Equal(t, tt.want, got, "url=%q", tt.url)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, CompanyIdentity{Name: "Acme"}.Valid())
	assert.False(t, CompanyIdentity{Name: "   "}.Valid())
	assert.False(t, CompanyIdentity{URL: "https://acme.example"}.Valid())
}
