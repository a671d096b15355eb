package recommend

import (
	"sort"
)

// Itemset is a frequent set of recipes with its transaction support.
type Itemset struct {
	Items   []int64 // sorted ascending
	Support float64
}

// apriori mines frequent itemsets from the liked-recipe transactions with
// level-wise candidate generation. transactions maps each user to the set
// of recipes they rated "liked"; support is the fraction of users whose
// set contains the whole itemset.
func apriori(transactions []map[int64]bool, minSupport float64) []Itemset {
	total := float64(len(transactions))
	if total == 0 {
		return nil
	}

	// L1: frequent single recipes.
	counts := make(map[int64]int)
	for _, tx := range transactions {
		for item := range tx {
			counts[item]++
		}
	}
	var frequent []Itemset
	var level [][]int64
	singles := make([]int64, 0, len(counts))
	for item := range counts {
		singles = append(singles, item)
	}
	sort.Slice(singles, func(i, j int) bool { return singles[i] < singles[j] })
	for _, item := range singles {
		if sup := float64(counts[item]) / total; sup >= minSupport {
			frequent = append(frequent, Itemset{Items: []int64{item}, Support: sup})
			level = append(level, []int64{item})
		}
	}

	for len(level) > 0 {
		candidates := joinLevel(level)
		level = level[:0]
		for _, cand := range candidates {
			hit := 0
			for _, tx := range transactions {
				if containsAll(tx, cand) {
					hit++
				}
			}
			if sup := float64(hit) / total; sup >= minSupport {
				frequent = append(frequent, Itemset{Items: cand, Support: sup})
				level = append(level, cand)
			}
		}
	}
	return frequent
}

// joinLevel generates size k+1 candidates from sorted size-k frequent sets
// sharing a k-1 prefix.
func joinLevel(level [][]int64) [][]int64 {
	var out [][]int64
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			a, b := level[i], level[j]
			if !samePrefix(a, b) {
				continue
			}
			cand := make([]int64, len(a)+1)
			copy(cand, a)
			cand[len(a)] = b[len(b)-1]
			if cand[len(a)-1] > cand[len(a)] {
				cand[len(a)-1], cand[len(a)] = cand[len(a)], cand[len(a)-1]
			}
			out = append(out, cand)
		}
	}
	return out
}

func samePrefix(a, b []int64) bool {
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsAll(tx map[int64]bool, items []int64) bool {
	for _, item := range items {
		if !tx[item] {
			return false
		}
	}
	return true
}
