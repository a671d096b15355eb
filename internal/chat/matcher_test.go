package chat

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangtran/monngon/backend/internal/nlp"
)

func testCatalog() []nlp.Recipe {
	return []nlp.Recipe{
		{ID: 1, Name: "Phở Bò", Ingredients: "beef, rice noodles, onion", Tags: "vietnamese, soup", Minutes: 45, Calories: 420, IngredientCount: 3},
		{ID: 2, Name: "Gỏi Cuốn Chay", Ingredients: "tofu, rice paper, vegetables", Tags: "vietnamese, vegetarian, light", Minutes: 20, Calories: 180, IngredientCount: 3},
		{ID: 3, Name: "Pizza Margherita", Ingredients: "flour, tomato, mozzarella", Tags: "italian", Minutes: 30, Calories: 700, IngredientCount: 3},
		{ID: 4, Name: "Cơm Gà Hải Nam", Ingredients: "chicken, rice, ginger", Tags: "vietnamese", Minutes: 50, Calories: 550, IngredientCount: 3},
	}
}

func newTestMatcher() (*Matcher, *nlp.Processor) {
	p := nlp.NewProcessor(nil)
	m := NewMatcher(p, nil)
	m.SetCatalog(testCatalog())
	return m, p
}

func TestFindMatchingDishesFusesStrategies(t *testing.T) {
	m, p := newTestMatcher()
	text := "phở bò"
	intent := p.ExtractIntent(text)

	candidates := m.FindMatchingDishes(context.Background(), intent, text)
	require.NotEmpty(t, candidates)
	assert.LessOrEqual(t, len(candidates), MaxResults)

	// Several strategies surface recipe 1; fusion must keep one entry
	// with the best score.
	seen := make(map[int64]int)
	for _, c := range candidates {
		seen[c.RecipeID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "recipe %d duplicated after fusion", id)
	}
	assert.Equal(t, int64(1), candidates[0].RecipeID)

	for i := 1; i < len(candidates); i++ {
		assert.GreaterOrEqual(t, candidates[i-1].Score, candidates[i].Score)
	}
}

func TestFindMatchingDishesEmptyCatalog(t *testing.T) {
	p := nlp.NewProcessor(nil)
	m := NewMatcher(p, nil)

	// Semantic errors on the empty catalog; the other strategies still run.
	candidates := m.FindMatchingDishes(context.Background(), p.ExtractIntent("phở"), "phở")
	assert.Empty(t, candidates)
}

func TestRuleStrategyDietaryFilter(t *testing.T) {
	m, p := newTestMatcher()
	intent := p.ExtractIntent("món chay")

	res := m.ruleStrategy(m.snapshot(), intent)
	require.NoError(t, res.Err)
	require.NotEmpty(t, res.Candidates)
	for _, c := range res.Candidates {
		assert.Equal(t, int64(2), c.RecipeID)
		assert.Equal(t, ruleFilterScore, c.Score)
		assert.Equal(t, "rule_based", c.Source)
	}
}

func TestRuleStrategyCuisineFilter(t *testing.T) {
	m, p := newTestMatcher()
	intent := p.ExtractIntent("italian pizza")

	res := m.ruleStrategy(m.snapshot(), intent)
	require.NoError(t, res.Err)
	require.Len(t, res.Candidates, 1)
	assert.Equal(t, int64(3), res.Candidates[0].RecipeID)
}

func TestPassesFiltersLowCalorieWithoutTags(t *testing.T) {
	m, p := newTestMatcher()
	intent := p.ExtractIntent("healthy food")
	require.Contains(t, intent.Dietary, "low_calorie")
	require.Empty(t, intent.Ingredients)

	light := nlp.Recipe{ID: 9, Name: "Salad", Ingredients: "lettuce", Calories: 150}
	heavy := nlp.Recipe{ID: 10, Name: "Burger", Ingredients: "beef", Calories: 800}
	assert.True(t, m.passesFilters(light, intent))
	assert.False(t, m.passesFilters(heavy, intent))
}

func TestPassesFiltersCalorieWordMatchesFishKeyword(t *testing.T) {
	// "calorie" contains the folded keyword "ca" (cá), so this utterance
	// carries a fish predicate on top of the dietary one.
	m, p := newTestMatcher()
	intent := p.ExtractIntent("low calorie food")
	require.Contains(t, intent.Dietary, "low_calorie")
	require.Contains(t, intent.Ingredients, "fish")

	salad := nlp.Recipe{ID: 9, Name: "Salad", Ingredients: "lettuce", Calories: 150}
	steamedFish := nlp.Recipe{ID: 11, Name: "Cá Hấp", Ingredients: "ca, gung", Calories: 180}
	assert.False(t, m.passesFilters(salad, intent))
	assert.True(t, m.passesFilters(steamedFish, intent))
}

func TestCandidateFromClampsIngredientCount(t *testing.T) {
	m, _ := newTestMatcher()
	r := nlp.Recipe{ID: 7, Name: "Lẩu Thập Cẩm", IngredientCount: 42, Calories: 900}

	c := m.candidateFrom(r, 0.5, "semantic")
	assert.Equal(t, 10, c.IngredientCount)
	assert.Equal(t, 900.0, c.Nutrition[0])
	assert.Equal(t, 0.0, c.Nutrition[1])
}

func TestFuzzyStrategyEmitsAllRowsForMatchedName(t *testing.T) {
	p := nlp.NewProcessor(nil)
	m := NewMatcher(p, nil)
	m.SetCatalog([]nlp.Recipe{
		{ID: 1, Name: "Phở Bò", Season: "Winter"},
		{ID: 2, Name: "Phở Bò", Season: "Summer"},
	})

	res := m.fuzzyStrategy(m.snapshot(), "pho bo")
	require.NoError(t, res.Err)
	assert.Len(t, res.Candidates, 2)
}

func TestSetCatalogConcurrentWithQueries(t *testing.T) {
	m, p := newTestMatcher()
	intent := p.ExtractIntent("phở bò")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				m.FindMatchingDishes(context.Background(), intent, "phở bò")
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 20; j++ {
			m.SetCatalog(testCatalog())
		}
	}()
	wg.Wait()

	candidates := m.FindMatchingDishes(context.Background(), intent, "phở bò")
	assert.NotEmpty(t, candidates)
}
