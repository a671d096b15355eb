package recommend

import (
	"sort"

	"go.uber.org/zap"
)

// DefaultRecommendations is the blender's default list length.
const DefaultRecommendations = 5

// RecommendForUser blends cluster-, rule-, and season-based candidates into
// up to n unique recipe ids. Unknown users fall straight through to the
// popularity fallback; every internal failure degrades to skipping that
// signal's contribution. The call never panics and always returns a list.
func (r *Recommender) RecommendForUser(userID int64, season string, n int) (ids []int64) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("recommendation failed",
				zap.Int64("user_id", userID), zap.Any("panic", rec))
			ids = []int64{}
		}
	}()

	if n <= 0 {
		n = DefaultRecommendations
	}

	if _, known := r.profiles[userID]; !known {
		return truncate(dedupe(r.popularItems(season, n)), n)
	}

	var recs []int64
	recs = append(recs, r.recommendByCluster(userID, max(n/2, 1))...)
	if len(r.rules) > 0 {
		recs = append(recs, r.recommendByRules(userID, max(n/3, 1))...)
	}
	if remaining := n - len(recs); remaining > 0 {
		recs = append(recs, r.recommendBySeason(season, remaining)...)
	}

	unique := dedupe(recs)
	if len(unique) < n {
		unique = dedupe(append(unique, r.popularItems(season, n-len(unique))...))
	}
	return truncate(unique, n)
}

// recommendByCluster picks the user's highest-mean-rated cluster and
// returns its top-rated recipes. Empty when clustering is unavailable.
func (r *Recommender) recommendByCluster(userID int64, n int) []int64 {
	if len(r.clusters) == 0 {
		return nil
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, it := range r.data {
		if it.UserID == userID && it.Cluster >= 0 {
			sums[it.Cluster] += it.Rating
			counts[it.Cluster]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	favorite, best := -1, -1.0
	clusters := make([]int, 0, len(counts))
	for c := range counts {
		clusters = append(clusters, c)
	}
	sort.Ints(clusters)
	for _, c := range clusters {
		if mean := sums[c] / float64(counts[c]); mean > best {
			favorite, best = c, mean
		}
	}

	var members []RecipeFeature
	for _, f := range r.clusters {
		if f.Cluster == favorite {
			members = append(members, f)
		}
	}
	ranked := sortFeaturesByRating(members)
	out := make([]int64, 0, n)
	for _, f := range ranked {
		if len(out) == n {
			break
		}
		out = append(out, f.RecipeID)
	}
	return out
}

// recommendByRules collects consequents of rules whose antecedent is
// exactly one recipe the user rated liked, in mined-confidence order.
func (r *Recommender) recommendByRules(userID int64, n int) []int64 {
	var out []int64
	for _, it := range r.data {
		if it.UserID != userID || it.Rating < likedThreshold {
			continue
		}
		out = append(out, r.ruleIndex[it.RecipeID]...)
	}
	return truncate(out, n)
}

// recommendBySeason returns the top mean-rated recipes within a season, or
// the whole catalog when no season is given.
func (r *Recommender) recommendBySeason(season string, n int) []int64 {
	return r.topRated(season, n)
}

// popularItems is the global fallback: top mean-rated recipes for the
// season, or overall.
func (r *Recommender) popularItems(season string, n int) []int64 {
	return r.topRated(season, n)
}

// topRated ranks recipes by mean rating within an optional season filter.
// Ties keep first-seen order.
func (r *Recommender) topRated(season string, n int) []int64 {
	sums := make(map[int64]float64)
	counts := make(map[int64]int)
	var order []int64
	for _, it := range r.data {
		if season != "" && it.Season != season {
			continue
		}
		if _, seen := counts[it.RecipeID]; !seen {
			order = append(order, it.RecipeID)
		}
		sums[it.RecipeID] += it.Rating
		counts[it.RecipeID]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return sums[order[i]]/float64(counts[order[i]]) > sums[order[j]]/float64(counts[order[j]])
	})
	return truncate(order, n)
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func truncate(ids []int64, n int) []int64 {
	if len(ids) > n {
		return ids[:n]
	}
	return ids
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
