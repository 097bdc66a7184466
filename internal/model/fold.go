package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer decomposes characters and drops combining marks, so
// "Café Büro" folds to "Cafe Buro" before slugging.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// asciiFold strips diacritics from s. Falls back to the input when the
// transform fails on malformed UTF-8.
func asciiFold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return strings.ToValidUTF8(s, "")
	}
	return folded
}
