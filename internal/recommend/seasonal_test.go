package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSeasonalTrends(t *testing.T) {
	rec := NewRecommender(nil)
	rec.Load([]Interaction{
		{UserID: 1, RecipeID: 10, Rating: 5, Minutes: 30, IngredientCount: 6, Season: "Winter"},
		{UserID: 1, RecipeID: 20, Rating: 4, Minutes: 50, IngredientCount: 8, Season: "Winter"},
		{UserID: 2, RecipeID: 30, Rating: 3, Minutes: 20, IngredientCount: 4, Season: "Spring"},
	})

	trends := rec.AnalyzeSeasonalTrends()
	require.Len(t, trends, 2)

	// Canonical season order, not data order.
	assert.Equal(t, "Spring", trends[0].Season)
	assert.Equal(t, "Winter", trends[1].Season)

	winter := trends[1]
	assert.Equal(t, 2, winter.RecipeCount)
	assert.InDelta(t, 40.0, winter.AvgMinutes, 1e-9)
	assert.InDelta(t, 7.0, winter.AvgIngredients, 1e-9)
	// No clustered interactions yet: modal cluster defaults to 0.
	assert.Equal(t, 0, winter.PopularCluster)
}

func TestAnalyzeSeasonalTrendsModalCluster(t *testing.T) {
	rec := NewRecommender(nil)
	rec.Load([]Interaction{
		{UserID: 1, RecipeID: 10, Rating: 5, Season: "Summer"},
		{UserID: 1, RecipeID: 20, Rating: 4, Season: "Summer"},
		{UserID: 2, RecipeID: 30, Rating: 4, Season: "Summer"},
	})
	rec.data[0].Cluster = 2
	rec.data[1].Cluster = 2
	rec.data[2].Cluster = 1

	trends := rec.AnalyzeSeasonalTrends()
	require.Len(t, trends, 1)
	assert.Equal(t, 2, trends[0].PopularCluster)
}
