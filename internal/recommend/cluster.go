package recommend

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// DefaultClusterCount matches the five named behavioral groups.
const DefaultClusterCount = 5

// clusterNames label the default clusters in fixed order. Labels are
// cosmetic; no logic depends on them.
var clusterNames = []string{"Quick & Light", "Traditional", "Premium", "Family", "Special"}

// PerformClustering groups recipes into k behavioral clusters from
// standardized (mean rating, minutes, calories, ingredient count) features
// and merges the assignment back onto the interaction snapshot. Recipes
// with missing aggregates are dropped, logged; their interactions keep a
// null cluster. Infeasible clustering (fewer distinct recipes than k) is a
// recoverable error: the cluster table stays empty and the blender treats
// clustering as unavailable.
func (r *Recommender) PerformClustering(k int) ([]RecipeFeature, error) {
	if k <= 0 {
		k = DefaultClusterCount
	}

	features := r.aggregateRecipeFeatures()
	points := standardize(features)
	assign, err := kMeans(points, k)
	if err != nil {
		r.logger.Error("clustering failed", zap.Error(err))
		r.clusters = nil
		r.clusterByRecipe = make(map[int64]int)
		return nil, err
	}

	r.clusterByRecipe = make(map[int64]int, len(features))
	for i := range features {
		features[i].Cluster = assign[i]
		features[i].ClusterName = clusterName(assign[i], k)
		r.clusterByRecipe[features[i].RecipeID] = assign[i]
	}
	r.clusters = features

	// Left join back onto the interaction log; dropped recipes stay null.
	for i := range r.data {
		if c, ok := r.clusterByRecipe[r.data[i].RecipeID]; ok {
			r.data[i].Cluster = c
		} else {
			r.data[i].Cluster = -1
		}
	}

	r.logger.Info("recipes clustered",
		zap.Int("recipes", len(features)),
		zap.Int("clusters", k))
	return features, nil
}

// aggregateRecipeFeatures computes per-recipe mean rating and first-seen
// numeric attributes, in first-seen recipe order. Rows with non-finite
// aggregates are dropped with a log entry so no recipe is silently lost.
func (r *Recommender) aggregateRecipeFeatures() []RecipeFeature {
	type acc struct {
		feature   RecipeFeature
		ratingSum float64
		count     int
	}
	order := make([]int64, 0)
	byRecipe := make(map[int64]*acc)
	for _, it := range r.data {
		a := byRecipe[it.RecipeID]
		if a == nil {
			a = &acc{feature: RecipeFeature{
				RecipeID:        it.RecipeID,
				Minutes:         it.Minutes,
				Calories:        it.Calories,
				IngredientCount: it.IngredientCount,
				Cluster:         -1,
			}}
			byRecipe[it.RecipeID] = a
			order = append(order, it.RecipeID)
		}
		a.ratingSum += it.Rating
		a.count++
	}

	features := make([]RecipeFeature, 0, len(order))
	for _, id := range order {
		a := byRecipe[id]
		a.feature.AvgRating = a.ratingSum / float64(a.count)
		if !finiteFeature(a.feature) {
			r.logger.Warn("recipe dropped from clustering: missing aggregate",
				zap.Int64("recipe_id", id))
			continue
		}
		features = append(features, a.feature)
	}
	return features
}

// standardize scales each feature column to zero mean and unit variance.
// Constant columns stay at zero rather than dividing by zero.
func standardize(features []RecipeFeature) [][]float64 {
	cols := make([][]float64, 4)
	for c := range cols {
		cols[c] = make([]float64, len(features))
	}
	for i, f := range features {
		cols[0][i] = f.AvgRating
		cols[1][i] = f.Minutes
		cols[2][i] = f.Calories
		cols[3][i] = f.IngredientCount
	}

	points := make([][]float64, len(features))
	for i := range points {
		points[i] = make([]float64, len(cols))
	}
	for c, col := range cols {
		mean, std := stat.MeanStdDev(col, nil)
		for i, v := range col {
			if std > 0 {
				points[i][c] = (v - mean) / std
			}
		}
	}
	return points
}

func clusterName(cluster, k int) string {
	if k == DefaultClusterCount && cluster < len(clusterNames) {
		return clusterNames[cluster]
	}
	return fmt.Sprintf("Group %d", cluster)
}

func finiteFeature(f RecipeFeature) bool {
	for _, v := range []float64{f.AvgRating, f.Minutes, f.Calories, f.IngredientCount} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// sortFeaturesByRating orders a copy of the given cluster rows by mean
// rating, descending, stable in catalog iteration order.
func sortFeaturesByRating(features []RecipeFeature) []RecipeFeature {
	out := make([]RecipeFeature, len(features))
	copy(out, features)
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgRating > out[j].AvgRating })
	return out
}
