package recommend

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultMinSupport is the minimum itemset frequency for mining.
	DefaultMinSupport = 0.005
	// DefaultMinConfidence is the retention threshold for derived rules.
	DefaultMinConfidence = 0.1
	// likedThreshold marks a rating as a "liked" transaction entry.
	likedThreshold = 4
)

// ErrEmptyItemsets signals rule derivation was handed no frequent itemsets.
// This is a caller error, not a data condition.
var ErrEmptyItemsets = errors.New("frequent itemset table is empty")

// Rule is one directional association between disjoint recipe sets.
type Rule struct {
	Antecedents       []int64 `json:"antecedents"`
	Consequents       []int64 `json:"consequents"`
	AntecedentSupport float64 `json:"antecedent_support"`
	ConsequentSupport float64 `json:"consequent_support"`
	Support           float64 `json:"support"`
	Confidence        float64 `json:"confidence"`
	Lift              float64 `json:"lift"`
	Leverage          float64 `json:"leverage"`
	Conviction        float64 `json:"conviction"`
	ZhangsMetric      float64 `json:"zhangs_metric"`
}

// ruleMetrics computes every metric from the three supports.
func ruleMetrics(sAC, sA, sC float64) Rule {
	confidence := sAC / sA
	conviction := math.Inf(1)
	if confidence < 1 {
		conviction = (1 - sC) / (1 - confidence)
	}
	leverage := sAC - sA*sC
	zhang := 0.0
	if denom := math.Max(sAC*(1-sA), sA*(sC-sAC)); denom != 0 {
		zhang = leverage / denom
	}
	return Rule{
		AntecedentSupport: sA,
		ConsequentSupport: sC,
		Support:           sAC,
		Confidence:        confidence,
		Lift:              confidence / sC,
		Leverage:          leverage,
		Conviction:        conviction,
		ZhangsMetric:      zhang,
	}
}

// metricValue returns the named metric of a computed rule. The supported
// names mirror the exported rule table columns.
func metricValue(r Rule, metric string) (float64, error) {
	switch metric {
	case "antecedent support":
		return r.AntecedentSupport, nil
	case "consequent support":
		return r.ConsequentSupport, nil
	case "support":
		return r.Support, nil
	case "confidence":
		return r.Confidence, nil
	case "lift":
		return r.Lift, nil
	case "leverage":
		return r.Leverage, nil
	case "conviction":
		return r.Conviction, nil
	case "zhangs_metric":
		return r.ZhangsMetric, nil
	default:
		return 0, fmt.Errorf("unsupported rule metric %q", metric)
	}
}

// deriveRules generates every non-empty proper antecedent/consequent split
// of each frequent itemset, in decreasing antecedent size, and keeps the
// splits whose named metric clears minThreshold. An empty itemset table or
// an unknown metric is rejected outright.
func deriveRules(itemsets []Itemset, metric string, minThreshold float64) ([]Rule, error) {
	if len(itemsets) == 0 {
		return nil, ErrEmptyItemsets
	}
	if _, err := metricValue(Rule{AntecedentSupport: 1, ConsequentSupport: 1, Support: 1, Confidence: 1}, metric); err != nil {
		return nil, err
	}

	supports := make(map[string]float64, len(itemsets))
	for _, is := range itemsets {
		supports[itemsKey(is.Items)] = is.Support
	}

	var rules []Rule
	for _, is := range itemsets {
		if len(is.Items) < 2 {
			continue
		}
		sAC := is.Support
		// Decreasing antecedent size; affects which duplicate pair wins ties
		// downstream, so the order is part of the contract.
		for size := len(is.Items) - 1; size >= 1; size-- {
			for _, antecedent := range combinations(is.Items, size) {
				consequent := difference(is.Items, antecedent)
				sA, okA := supports[itemsKey(antecedent)]
				sC, okC := supports[itemsKey(consequent)]
				if !okA || !okC {
					return nil, fmt.Errorf("missing support for sub-itemset of %v", is.Items)
				}
				rule := ruleMetrics(sAC, sA, sC)
				rule.Antecedents = antecedent
				rule.Consequents = consequent
				score, err := metricValue(rule, metric)
				if err != nil {
					return nil, err
				}
				if score >= minThreshold {
					rules = append(rules, rule)
				}
			}
		}
	}

	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Confidence > rules[j].Confidence })
	return rules, nil
}

// FindAssociationRules mines co-occurrence rules from liked interactions
// (rating >= 4). No itemset clearing the support threshold is an expected
// outcome and yields an empty rule set, not an error.
func (r *Recommender) FindAssociationRules(minSupport, minConfidence float64) []Rule {
	if minSupport <= 0 {
		minSupport = DefaultMinSupport
	}
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	r.rules = nil
	r.ruleIndex = make(map[int64][]int64)

	userOrder := make([]int64, 0)
	liked := make(map[int64]map[int64]bool)
	for _, it := range r.data {
		if _, ok := liked[it.UserID]; !ok {
			liked[it.UserID] = make(map[int64]bool)
			userOrder = append(userOrder, it.UserID)
		}
		if it.Rating >= likedThreshold {
			liked[it.UserID][it.RecipeID] = true
		}
	}
	transactions := make([]map[int64]bool, 0, len(userOrder))
	for _, userID := range userOrder {
		transactions = append(transactions, liked[userID])
	}

	itemsets := apriori(transactions, minSupport)
	if len(itemsets) == 0 {
		r.logger.Info("no frequent itemsets above support threshold",
			zap.Float64("min_support", minSupport))
		return nil
	}

	rules, err := deriveRules(itemsets, "confidence", minConfidence)
	if err != nil {
		r.logger.Error("rule derivation failed", zap.Error(err))
		return nil
	}
	r.rules = rules

	// Index single-recipe antecedents for the blender. Multi-recipe
	// antecedents are exported but never matched by the per-recipe lookup.
	for _, rule := range rules {
		if len(rule.Antecedents) == 1 {
			a := rule.Antecedents[0]
			r.ruleIndex[a] = append(r.ruleIndex[a], rule.Consequents...)
		}
	}

	r.logger.Info("association rules mined", zap.Int("rules", len(rules)))
	return rules
}

// itemsKey is the canonical map key of a sorted itemset.
func itemsKey(items []int64) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}

// combinations returns all size-r subsets of items, preserving item order.
func combinations(items []int64, r int) [][]int64 {
	var out [][]int64
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		pick := make([]int64, r)
		for i, j := range idx {
			pick[i] = items[j]
		}
		out = append(out, pick)

		i := r - 1
		for i >= 0 && idx[i] == len(items)-r+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func difference(items, remove []int64) []int64 {
	drop := make(map[int64]bool, len(remove))
	for _, v := range remove {
		drop[v] = true
	}
	out := make([]int64, 0, len(items)-len(remove))
	for _, v := range items {
		if !drop[v] {
			out = append(out, v)
		}
	}
	return out
}
