package recommend

import (
	"go.uber.org/zap"
)

// BuildUserProfiles aggregates the interaction log into per-user profiles.
// An empty or missing snapshot yields an empty map, logged; downstream code
// treats "no profile" as "new user".
func (r *Recommender) BuildUserProfiles() map[int64]*UserProfile {
	r.profiles = make(map[int64]*UserProfile)
	if len(r.data) == 0 {
		r.logger.Warn("cannot build user profiles: no interaction data loaded")
		return r.profiles
	}

	type acc struct {
		ratingSum, minutesSum, caloriesSum, ingredientsSum float64
		count                                              int
		seasonSum                                          map[string]float64
		seasonCount                                        map[string]int
	}
	users := make(map[int64]*acc)
	for _, it := range r.data {
		a := users[it.UserID]
		if a == nil {
			a = &acc{seasonSum: make(map[string]float64), seasonCount: make(map[string]int)}
			users[it.UserID] = a
		}
		a.ratingSum += it.Rating
		a.minutesSum += it.Minutes
		a.caloriesSum += it.Calories
		a.ingredientsSum += it.IngredientCount
		a.count++
		a.seasonSum[it.Season] += it.Rating
		a.seasonCount[it.Season]++
	}

	for userID, a := range users {
		n := float64(a.count)
		prefs := make(map[string]float64, len(Seasons))
		for _, season := range Seasons {
			if c := a.seasonCount[season]; c > 0 {
				prefs[season] = a.seasonSum[season] / float64(c)
			} else {
				prefs[season] = 0
			}
		}
		r.profiles[userID] = &UserProfile{
			AvgRating:      a.ratingSum / n,
			TotalRatings:   a.count,
			AvgCookTime:    a.minutesSum / n,
			AvgCalories:    a.caloriesSum / n,
			AvgIngredients: a.ingredientsSum / n,
			SeasonalPrefs:  prefs,
		}
	}

	r.logger.Info("user profiles built", zap.Int("users", len(r.profiles)))
	return r.profiles
}
