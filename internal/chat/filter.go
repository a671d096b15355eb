package chat

import (
	"strings"

	"github.com/quangtran/monngon/backend/internal/nlp"
)

const (
	// ruleFilterScore is the flat relevance of a rule-filter survivor.
	ruleFilterScore = 0.8
	// ruleFilterLimit caps survivors emitted per query.
	ruleFilterLimit = 10
	// lowCalorieCeiling is the hard calorie cutoff used when no tag
	// signals a light dish.
	lowCalorieCeiling = 200
)

var (
	vegetarianTags = []string{"vegetarian", "vegan", "plant based", "plant-based", "veggie", "chay"}
	veganTags      = []string{"vegan", "plant based", "plant-based", "thuần chay", "thuan chay"}
	lowCalorieTags = []string{"low calorie", "low-calorie", "diet", "light", "healthy", "ít calo", "it calo"}
)

// ruleStrategy narrows the catalog by intent-derived predicates: cuisine
// tag containment, dietary tag or numeric-threshold rules, and ingredient
// containment. Survivors come back at a flat relevance score.
func (m *Matcher) ruleStrategy(catalog []nlp.Recipe, intent nlp.Intent) StrategyResult {
	survivors := make([]nlp.Recipe, 0, len(catalog))
	for _, r := range catalog {
		if m.passesFilters(r, intent) {
			survivors = append(survivors, r)
			if len(survivors) == ruleFilterLimit {
				break
			}
		}
	}

	out := make([]Candidate, 0, len(survivors))
	for _, r := range survivors {
		out = append(out, m.candidateFrom(r, ruleFilterScore, "rule_based"))
	}
	return StrategyResult{Source: "rule_based", Candidates: out}
}

func (m *Matcher) passesFilters(r nlp.Recipe, intent nlp.Intent) bool {
	tags := strings.ToLower(r.Tags)
	ingredients := strings.ToLower(r.Ingredients)

	if len(intent.Cuisine) > 0 && !containsAny(tags, intent.Cuisine) {
		return false
	}

	for _, diet := range intent.Dietary {
		switch diet {
		case "vegetarian":
			if !containsAny(tags, vegetarianTags) {
				return false
			}
		case "vegan":
			if !containsAny(tags, veganTags) {
				return false
			}
		case "low_calorie":
			// Tag pattern when the row carries tags, calorie ceiling otherwise.
			if tags != "" {
				if !containsAny(tags, lowCalorieTags) {
					return false
				}
			} else if r.Calories >= lowCalorieCeiling {
				return false
			}
		}
	}

	if len(intent.Ingredients) > 0 && !containsAny(ingredients, intent.Ingredients) {
		return false
	}
	return true
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
