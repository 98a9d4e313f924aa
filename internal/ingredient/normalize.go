// Package ingredient provides canonical ingredient name handling.
//
// Meal documents arrive from several import paths (manual entry, document
// extraction) that spell the same ingredient in different ways. Matching and
// filtering only work if every path funnels through the same normalization.
package ingredient

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// aliases maps normalized raw variants to their canonical ingredient name.
// Keys must already be in folded form; values must be stable under Normalize
// so the function stays idempotent.
var aliases = map[string]string{
	"pechuga de pollo sin piel":      "pollo",
	"pechuga de pollo":               "pollo",
	"pollo asado":                    "pollo",
	"arroz integral":                 "arroz",
	"arroz blanco":                   "arroz",
	"cebolla morada":                 "cebolla",
	"cebolla morada picada":          "cebolla",
	"aceite de oliva extra virgen":   "aceite de oliva",
	"leche descremada":               "leche",
	"leche light":                    "leche",
	"queso parmesano rallado":        "queso parmesano",
	"tomates cherry":                 "tomate",
	"aguacate maduro":                "aguacate",
	"frijoles negros enlatados":      "frijoles negros",
}

var whitespace = regexp.MustCompile(`\s+`)

// diacriticFolder decomposes characters and drops combining marks, so
// "jalapeño" and "jalapeno" fold to the same string.
var diacriticFolder = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a free-text ingredient name: trim, lowercase,
// diacritic folding, whitespace collapsing, then alias resolution. It is
// total (any input yields a string, empty stays empty) and idempotent.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if folded, _, err := transform.String(diacriticFolder, s); err == nil {
		s = folded
	}
	s = whitespace.ReplaceAllString(s, " ")
	if canonical, ok := aliases[s]; ok {
		return canonical
	}
	return s
}

// NormalizeAll maps Normalize over a list, dropping entries that fold to
// the empty string.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if n := Normalize(r); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// NormalizeSet returns the normalized names as a membership set.
func NormalizeSet(raw []string) map[string]struct{} {
	set := make(map[string]struct{}, len(raw))
	for _, n := range NormalizeAll(raw) {
		set[n] = struct{}{}
	}
	return set
}
