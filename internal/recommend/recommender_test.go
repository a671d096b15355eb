package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureData() []Interaction {
	return []Interaction{
		{UserID: 1, RecipeID: 10, Rating: 5, Minutes: 30, Calories: 300, IngredientCount: 6, Season: "Winter"},
		{UserID: 1, RecipeID: 20, Rating: 5, Minutes: 15, Calories: 150, IngredientCount: 3, Season: "Winter"},
		{UserID: 1, RecipeID: 30, Rating: 2, Minutes: 60, Calories: 600, IngredientCount: 12, Season: "Summer"},
		{UserID: 2, RecipeID: 10, Rating: 4, Minutes: 30, Calories: 300, IngredientCount: 6, Season: "Winter"},
		{UserID: 2, RecipeID: 20, Rating: 5, Minutes: 15, Calories: 150, IngredientCount: 3, Season: "Spring"},
		{UserID: 2, RecipeID: 40, Rating: 4, Minutes: 45, Calories: 400, IngredientCount: 9, Season: "Autumn"},
		{UserID: 3, RecipeID: 30, Rating: 5, Minutes: 60, Calories: 600, IngredientCount: 12, Season: "Summer"},
		{UserID: 3, RecipeID: 40, Rating: 3, Minutes: 45, Calories: 400, IngredientCount: 9, Season: "Autumn"},
	}
}

func fittedRecommender(t *testing.T) *Recommender {
	t.Helper()
	rec := NewRecommender(nil)
	rec.Load(fixtureData())
	rec.Fit(2, 0.2, 0.1)
	return rec
}

func TestRecommendForUserProperties(t *testing.T) {
	rec := fittedRecommender(t)

	for _, userID := range []int64{1, 2, 3} {
		ids := rec.RecommendForUser(userID, "Winter", 5)
		assert.NotNil(t, ids)
		assert.LessOrEqual(t, len(ids), 5)

		seen := make(map[int64]bool)
		for _, id := range ids {
			assert.False(t, seen[id], "duplicate recommendation %d for user %d", id, userID)
			seen[id] = true
		}
	}
}

func TestRecommendForUserUnknownUserFallsBackToPopular(t *testing.T) {
	rec := fittedRecommender(t)

	ids := rec.RecommendForUser(999, "", 3)
	require.NotEmpty(t, ids)
	// Popularity fallback: recipe 20 has the best mean rating (5.0).
	assert.Equal(t, int64(20), ids[0])
}

func TestRecommendForUserEmptyEngine(t *testing.T) {
	rec := NewRecommender(nil)
	rec.Load(nil)
	rec.Fit(5, 0, 0)

	ids := rec.RecommendForUser(1, "Winter", 5)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestRecommendForUserDefaultsCount(t *testing.T) {
	rec := fittedRecommender(t)
	ids := rec.RecommendForUser(1, "Winter", 0)
	assert.LessOrEqual(t, len(ids), DefaultRecommendations)
}

func TestTopRatedSeasonFilter(t *testing.T) {
	rec := NewRecommender(nil)
	rec.Load(fixtureData())

	winter := rec.topRated("Winter", 10)
	assert.Equal(t, []int64{20, 10}, winter)

	all := rec.topRated("", 2)
	assert.Equal(t, []int64{20, 10}, all)
}

func TestRecommendByRulesUsesMinedConsequents(t *testing.T) {
	rec := NewRecommender(nil)
	rec.Load([]Interaction{
		{UserID: 1, RecipeID: 10, Rating: 5, Season: "Winter"},
		{UserID: 1, RecipeID: 20, Rating: 5, Season: "Winter"},
		{UserID: 2, RecipeID: 10, Rating: 5, Season: "Winter"},
		{UserID: 2, RecipeID: 20, Rating: 4, Season: "Winter"},
		{UserID: 3, RecipeID: 10, Rating: 5, Season: "Winter"},
	})
	rec.BuildUserProfiles()
	rec.FindAssociationRules(0.5, 0.5)

	// User 3 liked recipe 10; the mined rule 10 -> 20 should surface 20.
	ids := rec.recommendByRules(3, 3)
	assert.Contains(t, ids, int64(20))
}

func TestDedupeAndTruncate(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3}, dedupe([]int64{1, 2, 1, 3, 2}))
	assert.Equal(t, []int64{1, 2}, truncate([]int64{1, 2, 3}, 2))
	assert.Equal(t, []int64{1}, truncate([]int64{1}, 5))
}
