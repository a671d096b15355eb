package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []Recipe {
	return []Recipe{
		{ID: 1, Name: "Phở Bò", Ingredients: "beef, rice noodles, onion, herbs", Tags: "vietnamese, soup", Minutes: 45, Calories: 420, IngredientCount: 4},
		{ID: 2, Name: "Gỏi Cuốn Chay", Ingredients: "tofu, rice paper, vegetables", Tags: "vietnamese, vegetarian, light", Minutes: 20, Calories: 180, IngredientCount: 3},
		{ID: 3, Name: "Pizza Margherita", Ingredients: "flour, tomato, mozzarella, basil", Tags: "italian", Minutes: 30, Calories: 700, IngredientCount: 4},
	}
}

func TestSemanticSearchRanksRelevantFirst(t *testing.T) {
	p := NewProcessor(nil)
	matches, err := p.SemanticSearch("phở bò", sampleCatalog(), 3)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, int64(1), matches[0].Recipe.ID)
	assert.Greater(t, matches[0].Score, matches[0].BaseScore, "name and cuisine bonuses apply")
}

func TestSemanticSearchEmptyCatalog(t *testing.T) {
	p := NewProcessor(nil)
	_, err := p.SemanticSearch("phở", nil, 5)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestSemanticSearchRespectsTopK(t *testing.T) {
	p := NewProcessor(nil)
	matches, err := p.SemanticSearch("vietnamese food", sampleCatalog(), 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(matches), 1)
}

func TestSemanticSearchFiltersNoise(t *testing.T) {
	p := NewProcessor(nil)
	matches, err := p.SemanticSearch("zzz qqq xxx", sampleCatalog(), 5)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestVectorizerTerms(t *testing.T) {
	v := newVectorizer(buildStopwords())
	terms := v.terms("beef noodle soup")
	assert.Contains(t, terms, "beef")
	assert.Contains(t, terms, "beef noodle")
	assert.Contains(t, terms, "beef noodle soup")
}

func TestVectorizerStopwordRemoval(t *testing.T) {
	v := newVectorizer(buildStopwords())
	terms := v.terms("tôi muốn ăn phở")
	assert.Contains(t, terms, "phở")
	assert.NotContains(t, terms, "tôi")
}

func TestCosineBounds(t *testing.T) {
	v := newVectorizer(buildStopwords())
	vectors := v.fitTransform([]string{"beef noodle", "beef noodle", "chicken rice"})

	assert.InDelta(t, 1.0, cosine(vectors[0], vectors[1]), 1e-9)
	assert.InDelta(t, 0.0, cosine(vectors[0], vectors[2]), 1e-9)
}
