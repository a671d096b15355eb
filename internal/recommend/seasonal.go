package recommend

import (
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// AnalyzeSeasonalTrends summarizes the interaction log per season: record
// count, mean minutes, mean ingredient count, and the modal cluster id
// (0 when the season has no clustered interactions).
func (r *Recommender) AnalyzeSeasonalTrends() []SeasonalTrend {
	type acc struct {
		count          int
		minutesSum     float64
		ingredientsSum float64
		clusters       []float64
	}
	bySeason := make(map[string]*acc)
	for _, it := range r.data {
		a := bySeason[it.Season]
		if a == nil {
			a = &acc{}
			bySeason[it.Season] = a
		}
		a.count++
		a.minutesSum += it.Minutes
		a.ingredientsSum += it.IngredientCount
		if it.Cluster >= 0 {
			a.clusters = append(a.clusters, float64(it.Cluster))
		}
	}

	r.trends = r.trends[:0]
	for _, season := range Seasons {
		a := bySeason[season]
		if a == nil {
			continue
		}
		popular := 0
		if len(a.clusters) > 0 {
			sort.Float64s(a.clusters)
			mode, _ := stat.Mode(a.clusters, nil)
			popular = int(mode)
		}
		r.trends = append(r.trends, SeasonalTrend{
			Season:         season,
			RecipeCount:    a.count,
			AvgMinutes:     a.minutesSum / float64(a.count),
			AvgIngredients: a.ingredientsSum / float64(a.count),
			PopularCluster: popular,
		})
	}

	r.logger.Info("seasonal trends analyzed", zap.Int("seasons", len(r.trends)))
	return r.trends
}
