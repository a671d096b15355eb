package nlp

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

// Intent is the structured reading of one utterance. Category slices keep
// first-seen tag order; KeywordsFound records the raw hits for
// observability. Built fresh per utterance, never persisted.
type Intent struct {
	Cuisine        []string `json:"cuisine"`
	Dietary        []string `json:"dietary"`
	Ingredients    []string `json:"ingredients"`
	MealTime       []string `json:"meal_time"`
	Taste          []string `json:"taste"`
	CookingMethod  []string `json:"cooking_method"`
	RestaurantType []string `json:"restaurant_type"`
	RawText        string   `json:"raw_text"`
	NormalizedText string   `json:"normalized_text"`
	Confidence     float64  `json:"confidence"`
	KeywordsFound  []string `json:"keywords_found"`
}

// Processor extracts intents and runs retrieval strategies over the
// loaded vocabulary tables. Safe for concurrent use; the tables are
// read-only after construction.
type Processor struct {
	logger    *zap.Logger
	stopwords map[string]bool
}

// NewProcessor creates a Processor with the built-in Vietnamese/English
// vocabularies.
func NewProcessor(logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{logger: logger, stopwords: buildStopwords()}
}

// ExtractIntent maps free text to a structured intent. Both the original
// and the diacritic-stripped form are matched against every keyword;
// matching stops at the first hit per tag so no tag is credited twice.
// Pure function: no side effects, identical output for identical input.
func (p *Processor) ExtractIntent(text string) Intent {
	original := strings.TrimSpace(strings.ToLower(text))
	normalized := Normalize(original)

	intent := Intent{
		Cuisine:        []string{},
		Dietary:        []string{},
		Ingredients:    []string{},
		MealTime:       []string{},
		Taste:          []string{},
		CookingMethod:  []string{},
		RestaurantType: []string{},
		RawText:        original,
		NormalizedText: normalized,
		KeywordsFound:  []string{},
	}
	if original == "" {
		return intent
	}

	totalMatches := 0
	match := func(table []keywordEntry, category string, out *[]string) {
		for _, entry := range table {
			for _, keyword := range entry.Keywords {
				nk := Normalize(keyword)
				if strings.Contains(original, keyword) ||
					strings.Contains(normalized, nk) ||
					strings.Contains(normalized, keyword) {
					*out = append(*out, entry.Tag)
					totalMatches++
					intent.KeywordsFound = append(intent.KeywordsFound,
						fmt.Sprintf("%s:%s:%s", category, entry.Tag, keyword))
					break
				}
			}
		}
	}

	match(cuisineKeywords, "cuisine", &intent.Cuisine)
	match(dietaryKeywords, "dietary", &intent.Dietary)
	match(ingredientKeywords, "ingredients", &intent.Ingredients)
	match(mealTimeKeywords, "meal_time", &intent.MealTime)
	match(tasteKeywords, "taste", &intent.Taste)
	match(cookingMethodKeywords, "cooking_method", &intent.CookingMethod)
	match(restaurantTypeKeywords, "restaurant_type", &intent.RestaurantType)

	wordCount := len(strings.Fields(original))
	base := math.Min(float64(totalMatches)/math.Max(float64(wordCount), 1), 1.0)

	categoryBonus := 0.0
	for _, cat := range [][]string{intent.Cuisine, intent.Dietary, intent.Ingredients, intent.MealTime, intent.Taste} {
		if len(cat) > 0 {
			categoryBonus += 0.1
		}
	}
	intent.Confidence = math.Min(base+categoryBonus, 1.0)
	return intent
}

// CriteriaCount is the number of tags matched across the five core
// categories, used by complexity analysis.
func (i Intent) CriteriaCount() int {
	return len(i.Cuisine) + len(i.Dietary) + len(i.Ingredients) + len(i.MealTime) + len(i.Taste)
}
