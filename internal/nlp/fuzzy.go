package nlp

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultFuzzyThreshold is the minimum 0-100 similarity kept.
const DefaultFuzzyThreshold = 60

// DishMatch is one fuzzy dish-name hit with its 0-100 similarity.
type DishMatch struct {
	Name  string
	Score int
}

// FuzzyMatchDishes matches the query against catalog dish names with a
// token-order-insensitive similarity score. Both the raw and the
// diacritic-stripped forms of query and names are compared; duplicate dish
// hits keep the maximum score. Results at or above threshold come back
// best first.
func (p *Processor) FuzzyMatchDishes(query string, names []string, threshold int) []DishMatch {
	if len(names) == 0 {
		p.logger.Warn("fuzzy match skipped: no dish names in catalog")
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultFuzzyThreshold
	}

	originalQuery := strings.ToLower(query)
	normalizedQuery := Normalize(query)

	// Each dish contributes its raw and normalized spelling as variants.
	type variant struct {
		text string
		dish string
	}
	var variants []variant
	for _, name := range names {
		lower := strings.ToLower(name)
		variants = append(variants, variant{lower, name})
		if folded := Normalize(name); folded != lower {
			variants = append(variants, variant{folded, name})
		}
	}

	best := make(map[string]int)
	var order []string
	for _, v := range variants {
		score := fuzzy.TokenSortRatio(originalQuery, v.text)
		if s := fuzzy.TokenSortRatio(normalizedQuery, v.text); s > score {
			score = s
		}
		if prev, seen := best[v.dish]; !seen {
			best[v.dish] = score
			order = append(order, v.dish)
		} else if score > prev {
			best[v.dish] = score
		}
	}

	matches := make([]DishMatch, 0, len(order))
	for _, dish := range order {
		if best[dish] >= threshold {
			matches = append(matches, DishMatch{Name: dish, Score: best[dish]})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	return matches
}
