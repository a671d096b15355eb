package nlp

import (
	"errors"
	"sort"
	"strings"
)

const (
	// DefaultTopK caps semantic results per query.
	DefaultTopK = 10
	// semanticScoreFloor drops candidates whose boosted score is noise.
	semanticScoreFloor = 0.05

	nameMatchBonus       = 0.3
	cuisineMatchBonus    = 0.2
	ingredientMatchBonus = 0.15
)

// ErrEmptyCatalog signals semantic search was given no recipes to rank.
var ErrEmptyCatalog = errors.New("recipe catalog is empty")

// Recipe is the catalog view the retrieval strategies rank against.
type Recipe struct {
	ID              int64
	Name            string
	Ingredients     string
	Tags            string
	Description     string
	Minutes         float64
	Calories        float64
	IngredientCount int
	Season          string
}

// SemanticMatch is one scored recipe from the semantic strategy.
type SemanticMatch struct {
	Recipe    Recipe
	Score     float64
	BaseScore float64
}

// SemanticSearch ranks the catalog against the query with tf-idf cosine
// similarity over combined original+normalized document text, then applies
// fixed heuristics: a bonus for verbatim query words in the dish name, for
// matching a detected cuisine, and per matched intent ingredient. Up to
// topK results whose boosted score clears the floor are returned, best
// first.
func (p *Processor) SemanticSearch(query string, recipes []Recipe, topK int) ([]SemanticMatch, error) {
	if len(recipes) == 0 {
		return nil, ErrEmptyCatalog
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	docs := make([]string, len(recipes)+1)
	for i, r := range recipes {
		var parts []string
		for _, field := range []string{r.Name, r.Ingredients, r.Tags, r.Description} {
			if field != "" {
				parts = append(parts, field, Normalize(field))
			}
		}
		docs[i] = strings.Join(parts, " ")
	}
	docs[len(recipes)] = query + " " + Normalize(query)

	vec := newVectorizer(p.stopwords)
	vectors := vec.fitTransform(docs)
	queryVec := vectors[len(recipes)]

	intent := p.ExtractIntent(query)
	queryWords := strings.Fields(strings.ToLower(query))

	matches := make([]SemanticMatch, 0, len(recipes))
	for i, r := range recipes {
		base := cosine(queryVec, vectors[i])
		score := base

		name := strings.ToLower(r.Name)
		for _, w := range queryWords {
			if strings.Contains(name, w) {
				score += nameMatchBonus
				break
			}
		}

		if len(intent.Cuisine) > 0 {
			recipeText := strings.ToLower(r.Name + " " + r.Tags + " " + r.Ingredients)
			for _, cuisine := range intent.Cuisine {
				if strings.Contains(recipeText, cuisine) || containsAnyKeyword(recipeText, keywordsFor(cuisineKeywords, cuisine)) {
					score += cuisineMatchBonus
					break
				}
			}
		}

		if len(intent.Ingredients) > 0 {
			ingredients := strings.ToLower(r.Ingredients)
			for _, ing := range intent.Ingredients {
				if strings.Contains(ingredients, ing) || containsAnyKeyword(ingredients, keywordsFor(ingredientKeywords, ing)) {
					score += ingredientMatchBonus
				}
			}
		}

		matches = append(matches, SemanticMatch{Recipe: r, Score: score, BaseScore: base})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	out := make([]SemanticMatch, 0, topK)
	for _, m := range matches {
		if len(out) == topK {
			break
		}
		if m.Score > semanticScoreFloor {
			out = append(out, m)
		}
	}
	return out, nil
}

func containsAnyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
