// Package chat turns free-text food requests into ranked dish candidates
// by fusing semantic, rule-based, and fuzzy retrieval over the catalog,
// and composes chatbot responses on top.
package chat

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/quangtran/monngon/backend/internal/nlp"
)

const (
	// MaxResults caps the fused candidate list.
	MaxResults = 10
	// semanticPoolSize over-fetches from the semantic strategy before fusion.
	semanticPoolSize = 15
	// fuzzyDishLimit is how many fuzzy dish names expand into candidates.
	fuzzyDishLimit = 5
	// maxPlausibleIngredients flags data-quality outliers; counts above it
	// are clamped to clampedIngredients and logged.
	maxPlausibleIngredients = 15
	clampedIngredients      = 10
)

// Candidate is one scored dish. Every strategy emits this exact shape so
// fusion compares like with like; Nutrition is always a 7-element vector,
// zero-filled past calories.
type Candidate struct {
	RecipeID        int64      `json:"recipe_id"`
	Name            string     `json:"name"`
	Score           float64    `json:"score"`
	Ingredients     string     `json:"ingredients"`
	IngredientCount int        `json:"ingredient_count"`
	Tags            string     `json:"tags"`
	Nutrition       [7]float64 `json:"nutrition"`
	Minutes         float64    `json:"minutes"`
	Source          string     `json:"method"`
}

// StrategyResult distinguishes "zero genuine matches" from "strategy
// errored" so fusion can degrade without hiding failures.
type StrategyResult struct {
	Source     string
	Candidates []Candidate
	Err        error
}

// Matcher runs the retrieval strategies against a catalog snapshot.
// SetCatalog may be called while requests are in flight; each query
// works off the snapshot it captured at the start.
type Matcher struct {
	logger    *zap.Logger
	processor *nlp.Processor

	mu      sync.RWMutex
	catalog []nlp.Recipe
}

// NewMatcher creates a Matcher over an empty catalog.
func NewMatcher(processor *nlp.Processor, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger, processor: processor}
}

// SetCatalog replaces the catalog snapshot.
func (m *Matcher) SetCatalog(catalog []nlp.Recipe) {
	m.mu.Lock()
	m.catalog = catalog
	m.mu.Unlock()
}

// snapshot returns the current catalog. The slice is never mutated after
// SetCatalog, so holding the lock only for the header read is enough.
func (m *Matcher) snapshot() []nlp.Recipe {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog
}

// FindMatchingDishes runs all three strategies and fuses their outputs:
// union, dedupe by recipe id keeping the highest score, sort descending,
// top MaxResults. A strategy failing never aborts the others.
func (m *Matcher) FindMatchingDishes(ctx context.Context, intent nlp.Intent, text string) []Candidate {
	catalog := m.snapshot()
	results := []StrategyResult{
		m.semanticStrategy(catalog, text),
		m.ruleStrategy(catalog, intent),
		m.fuzzyStrategy(catalog, text),
	}

	var all []Candidate
	for _, res := range results {
		if res.Err != nil {
			m.logger.Warn("retrieval strategy failed",
				zap.String("strategy", res.Source), zap.Error(res.Err))
			continue
		}
		all = append(all, res.Candidates...)
	}

	best := make(map[int64]Candidate)
	var order []int64
	for _, c := range all {
		prev, seen := best[c.RecipeID]
		if !seen {
			best[c.RecipeID] = c
			order = append(order, c.RecipeID)
		} else if c.Score > prev.Score {
			best[c.RecipeID] = c
		}
	}

	fused := make([]Candidate, 0, len(order))
	for _, id := range order {
		fused = append(fused, best[id])
	}
	sort.SliceStable(fused, func(i, j int) bool { return fused[i].Score > fused[j].Score })
	if len(fused) > MaxResults {
		fused = fused[:MaxResults]
	}
	return fused
}

func (m *Matcher) semanticStrategy(catalog []nlp.Recipe, text string) StrategyResult {
	matches, err := m.processor.SemanticSearch(text, catalog, semanticPoolSize)
	if err != nil {
		return StrategyResult{Source: "semantic", Err: err}
	}
	out := make([]Candidate, 0, len(matches))
	for _, match := range matches {
		out = append(out, m.candidateFrom(match.Recipe, match.Score, "semantic"))
	}
	return StrategyResult{Source: "semantic", Candidates: out}
}

func (m *Matcher) fuzzyStrategy(catalog []nlp.Recipe, text string) StrategyResult {
	names := make([]string, 0, len(catalog))
	byName := make(map[string][]nlp.Recipe)
	for _, r := range catalog {
		if r.Name == "" {
			continue
		}
		if _, seen := byName[r.Name]; !seen {
			names = append(names, r.Name)
		}
		byName[r.Name] = append(byName[r.Name], r)
	}

	matches := m.processor.FuzzyMatchDishes(text, names, nlp.DefaultFuzzyThreshold)
	if len(matches) > fuzzyDishLimit {
		matches = matches[:fuzzyDishLimit]
	}
	var out []Candidate
	for _, match := range matches {
		// Every catalog row sharing the matched dish name is emitted.
		for _, r := range byName[match.Name] {
			out = append(out, m.candidateFrom(r, float64(match.Score)/100.0, "fuzzy"))
		}
	}
	return StrategyResult{Source: "fuzzy", Candidates: out}
}

// candidateFrom builds the uniform candidate record, clamping anomalous
// ingredient counts rather than rejecting the row.
func (m *Matcher) candidateFrom(r nlp.Recipe, score float64, source string) Candidate {
	count := r.IngredientCount
	if count > maxPlausibleIngredients {
		m.logger.Warn("anomalous ingredient count",
			zap.String("name", r.Name), zap.Int("ingredient_count", count))
		count = clampedIngredients
	}
	c := Candidate{
		RecipeID:        r.ID,
		Name:            r.Name,
		Score:           score,
		Ingredients:     r.Ingredients,
		IngredientCount: count,
		Tags:            r.Tags,
		Minutes:         r.Minutes,
		Source:          source,
	}
	c.Nutrition[0] = r.Calories
	return c
}
