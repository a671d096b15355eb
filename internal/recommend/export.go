package recommend

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// WriteRulesCSV exports the retained association rules. Single-element
// antecedent/consequent sets collapse to the bare recipe id; multi-element
// sets keep a list representation.
func (r *Recommender) WriteRulesCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{
		"antecedents", "consequents",
		"antecedent support", "consequent support", "support",
		"confidence", "lift", "leverage", "conviction", "zhangs_metric",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing rules header: %w", err)
	}
	for _, rule := range r.rules {
		row := []string{
			formatItemset(rule.Antecedents),
			formatItemset(rule.Consequents),
			formatFloat(rule.AntecedentSupport),
			formatFloat(rule.ConsequentSupport),
			formatFloat(rule.Support),
			formatFloat(rule.Confidence),
			formatFloat(rule.Lift),
			formatFloat(rule.Leverage),
			formatFloat(rule.Conviction),
			formatFloat(rule.ZhangsMetric),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing rule row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTrendsCSV exports the seasonal trend table.
func (r *Recommender) WriteTrendsCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"season", "recipe_count", "avg_minutes", "avg_ingredients", "popular_cluster"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing trends header: %w", err)
	}
	for _, t := range r.trends {
		row := []string{
			t.Season,
			strconv.Itoa(t.RecipeCount),
			formatFloat(t.AvgMinutes),
			formatFloat(t.AvgIngredients),
			strconv.Itoa(t.PopularCluster),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing trend row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatItemset(items []int64) string {
	if len(items) == 1 {
		return strconv.FormatInt(items[0], 10)
	}
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatFloat(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
