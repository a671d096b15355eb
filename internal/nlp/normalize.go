// Package nlp implements query understanding for free-text food requests:
// diacritic-tolerant normalization, keyword intent extraction, TF-IDF
// semantic search, and fuzzy dish-name matching.
package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// newFoldTransformer strips combining marks after NFD decomposition, which
// covers the full Vietnamese accented-character set. The chain carries
// per-use buffer state, so each call builds its own instance.
func newFoldTransformer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Normalize lowercases text and strips Vietnamese diacritics, mapping
// đ/Đ to d (the one letter NFD decomposition does not fold).
func Normalize(text string) string {
	lower := strings.ToLower(text)
	folded, _, err := transform.String(newFoldTransformer(), lower)
	if err != nil {
		folded = lower
	}
	return strings.Map(func(r rune) rune {
		if r == 'đ' {
			return 'd'
		}
		return r
	}, folded)
}
