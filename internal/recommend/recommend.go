// Package recommend implements the batch recommendation engine: per-user
// profiles, behavioral recipe clustering, co-occurrence rule mining,
// seasonal aggregates, and the blended per-user recommendation list.
//
// The engine is built once per data load (Fit) and then serves read-only
// queries; callers must serialize a rebuild against concurrent reads.
package recommend

import (
	"go.uber.org/zap"
)

// Seasons in canonical display order.
var Seasons = []string{"Spring", "Summer", "Autumn", "Winter"}

// Interaction is the engine's view of one cleaned rating event.
type Interaction struct {
	UserID          int64
	RecipeID        int64
	Rating          float64
	Name            string
	Minutes         float64
	Calories        float64
	IngredientCount float64
	Season          string

	// Cluster is merged on by PerformClustering; -1 means the recipe was
	// dropped from clustering (left-join null).
	Cluster int
}

// UserProfile holds aggregate rating behavior for one user.
type UserProfile struct {
	AvgRating      float64            `json:"avg_rating"`
	TotalRatings   int                `json:"total_ratings"`
	AvgCookTime    float64            `json:"avg_cook_time"`
	AvgCalories    float64            `json:"avg_calories"`
	AvgIngredients float64            `json:"avg_ingredients"`
	SeasonalPrefs  map[string]float64 `json:"seasonal_prefs"`
}

// RecipeFeature is one row of the recipe cluster table.
type RecipeFeature struct {
	RecipeID        int64   `json:"recipe_id"`
	AvgRating       float64 `json:"avg_rating"`
	Minutes         float64 `json:"minutes"`
	Calories        float64 `json:"calories"`
	IngredientCount float64 `json:"ingredient_count"`
	Cluster         int     `json:"cluster"`
	ClusterName     string  `json:"cluster_name"`
}

// SeasonalTrend summarizes one season of the interaction log.
type SeasonalTrend struct {
	Season         string  `json:"season"`
	RecipeCount    int     `json:"recipe_count"`
	AvgMinutes     float64 `json:"avg_minutes"`
	AvgIngredients float64 `json:"avg_ingredients"`
	PopularCluster int     `json:"popular_cluster"`
}

// Recommender owns the engine state for one data snapshot.
type Recommender struct {
	logger *zap.Logger

	data     []Interaction
	profiles map[int64]*UserProfile
	clusters []RecipeFeature
	rules    []Rule
	trends   []SeasonalTrend

	clusterByRecipe map[int64]int
	// ruleIndex maps a single-recipe antecedent to its consequents in
	// descending-confidence order. Multi-recipe antecedents are kept in
	// the rule table but never matched here.
	ruleIndex map[int64][]int64
}

// NewRecommender creates an engine with no data loaded.
func NewRecommender(logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{
		logger:          logger,
		profiles:        make(map[int64]*UserProfile),
		clusterByRecipe: make(map[int64]int),
		ruleIndex:       make(map[int64][]int64),
	}
}

// Load replaces the interaction snapshot. Cluster assignments start out
// null until PerformClustering merges them on.
func (r *Recommender) Load(data []Interaction) {
	r.data = make([]Interaction, len(data))
	copy(r.data, data)
	for i := range r.data {
		r.data[i].Cluster = -1
	}
	r.profiles = make(map[int64]*UserProfile)
	r.clusters = nil
	r.rules = nil
	r.trends = nil
	r.clusterByRecipe = make(map[int64]int)
	r.ruleIndex = make(map[int64][]int64)
	r.logger.Info("interaction snapshot loaded", zap.Int("records", len(r.data)))
}

// Fit runs the full batch pipeline over the loaded snapshot. Every stage
// degrades independently; Fit itself never fails.
func (r *Recommender) Fit(clusterCount int, minSupport, minConfidence float64) {
	r.BuildUserProfiles()
	if _, err := r.PerformClustering(clusterCount); err != nil {
		r.logger.Warn("clustering unavailable", zap.Error(err))
	}
	r.FindAssociationRules(minSupport, minConfidence)
	r.AnalyzeSeasonalTrends()
}

// Data returns the enriched interaction snapshot.
func (r *Recommender) Data() []Interaction { return r.data }

// Profiles returns the user profile table.
func (r *Recommender) Profiles() map[int64]*UserProfile { return r.profiles }

// Clusters returns the recipe cluster table, or nil when clustering was
// unavailable for this snapshot.
func (r *Recommender) Clusters() []RecipeFeature { return r.clusters }

// Rules returns the retained association rules in descending confidence order.
func (r *Recommender) Rules() []Rule { return r.rules }

// Trends returns one row per season.
func (r *Recommender) Trends() []SeasonalTrend { return r.trends }
