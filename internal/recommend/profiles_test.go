package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserProfiles(t *testing.T) {
	rec := NewRecommender(nil)
	rec.Load([]Interaction{
		{UserID: 1, RecipeID: 10, Rating: 5, Minutes: 30, Calories: 300, IngredientCount: 6, Season: "Winter"},
		{UserID: 1, RecipeID: 20, Rating: 3, Minutes: 10, Calories: 100, IngredientCount: 4, Season: "Summer"},
		{UserID: 2, RecipeID: 10, Rating: 4, Minutes: 30, Calories: 300, IngredientCount: 6, Season: "Winter"},
	})

	profiles := rec.BuildUserProfiles()
	require.Len(t, profiles, 2)

	p := profiles[1]
	require.NotNil(t, p)
	assert.InDelta(t, 4.0, p.AvgRating, 1e-9)
	assert.Equal(t, 2, p.TotalRatings)
	assert.InDelta(t, 20.0, p.AvgCookTime, 1e-9)
	assert.InDelta(t, 200.0, p.AvgCalories, 1e-9)
	assert.InDelta(t, 5.0, p.AvgIngredients, 1e-9)

	// Every season is present; unrated seasons read zero.
	require.Len(t, p.SeasonalPrefs, 4)
	assert.InDelta(t, 5.0, p.SeasonalPrefs["Winter"], 1e-9)
	assert.InDelta(t, 3.0, p.SeasonalPrefs["Summer"], 1e-9)
	assert.Equal(t, 0.0, p.SeasonalPrefs["Spring"])
	assert.Equal(t, 0.0, p.SeasonalPrefs["Autumn"])
}

func TestBuildUserProfilesEmptyData(t *testing.T) {
	rec := NewRecommender(nil)
	profiles := rec.BuildUserProfiles()
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}
