package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuzzyMatchDishes(t *testing.T) {
	p := NewProcessor(nil)
	names := []string{"Phở Bò Tái", "Bún Chả Hà Nội", "Pizza Margherita"}

	matches := p.FuzzyMatchDishes("pho bo", names, DefaultFuzzyThreshold)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Phở Bò Tái", matches[0].Name)
	assert.GreaterOrEqual(t, matches[0].Score, DefaultFuzzyThreshold)

	for _, m := range matches {
		assert.NotEqual(t, "Pizza Margherita", m.Name)
	}
}

func TestFuzzyMatchDishesWordOrderInsensitive(t *testing.T) {
	p := NewProcessor(nil)
	matches := p.FuzzyMatchDishes("tái bò phở", []string{"Phở Bò Tái"}, 0)
	require.Len(t, matches, 1)
	assert.GreaterOrEqual(t, matches[0].Score, 90)
}

func TestFuzzyMatchDishesEmptyCatalog(t *testing.T) {
	p := NewProcessor(nil)
	assert.Nil(t, p.FuzzyMatchDishes("pho", nil, 60))
}

func TestFuzzyMatchDishesRankedDescending(t *testing.T) {
	p := NewProcessor(nil)
	names := []string{"Cơm Gà", "Cơm Gà Xối Mỡ", "Bánh Xèo"}
	matches := p.FuzzyMatchDishes("com ga", names, 1)
	require.NotEmpty(t, matches)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
	}
	assert.Equal(t, "Cơm Gà", matches[0].Name)
}
