package nlp

import (
	"strings"
)

// CookingPreferences is the detailed read of a cooking-related request.
type CookingPreferences struct {
	DifficultyLevel     string   `json:"difficulty_level"` // easy, medium, hard, any
	CookingTime         string   `json:"cooking_time"`     // quick, medium, long, any
	DietaryRestrictions []string `json:"dietary_restrictions"`
	PreferredCuisines   []string `json:"preferred_cuisines"`
}

var timeIndicators = []keywordEntry{
	{"quick", []string{"nhanh", "quick", "fast", "15 phút", "20 phút", "tốc hành", "toc hanh"}},
	{"medium", []string{"vừa", "vua", "medium", "30 phút", "45 phút", "1 tiếng", "bình thường", "binh thuong"}},
	{"long", []string{"lâu", "lau", "slow", "chậm", "cham", "2 tiếng", "cả ngày", "ca ngay"}},
}

var difficultyIndicators = []keywordEntry{
	{"easy", []string{"dễ", "de", "easy", "simple", "đơn giản", "don gian", "cơ bản", "co ban"}},
	{"medium", []string{"vừa", "vua", "medium", "bình thường", "binh thuong"}},
	{"hard", []string{"khó", "kho", "hard", "difficult", "phức tạp", "phuc tap", "chuyên nghiệp", "chuyen nghiep"}},
}

// ExtractCookingPreferences reads cooking time and difficulty hints out of
// an utterance on top of the regular intent categories.
func (p *Processor) ExtractCookingPreferences(text string) CookingPreferences {
	intent := p.ExtractIntent(text)
	prefs := CookingPreferences{
		DifficultyLevel:     "any",
		CookingTime:         "any",
		DietaryRestrictions: intent.Dietary,
		PreferredCuisines:   intent.Cuisine,
	}

	lower := strings.ToLower(text)
	normalized := Normalize(text)
	if tag := firstIndicator(timeIndicators, lower, normalized); tag != "" {
		prefs.CookingTime = tag
	}
	if tag := firstIndicator(difficultyIndicators, lower, normalized); tag != "" {
		prefs.DifficultyLevel = tag
	}
	return prefs
}

func firstIndicator(table []keywordEntry, lower, normalized string) string {
	for _, entry := range table {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) || strings.Contains(normalized, Normalize(kw)) {
				return entry.Tag
			}
		}
	}
	return ""
}

// QueryComplexity grades how demanding an utterance is to answer.
type QueryComplexity struct {
	Level         string   `json:"complexity_level"` // simple, medium, complex
	Score         int      `json:"complexity_score"`
	Factors       []string `json:"factors"`
	CriteriaCount int      `json:"criteria_count"`
	WordCount     int      `json:"word_count"`
	Intent        Intent   `json:"intent"`
}

var negativeWords = []string{"không", "khong", "không muốn", "khong muon", "not", "no", "without"}
var comparisonWords = []string{"hơn", "hon", "better", "vs", "so với", "so voi", "thay vì", "thay vi"}

// AnalyzeQueryComplexity scores an utterance by criteria spread, negative
// constraints, comparisons, and length.
func (p *Processor) AnalyzeQueryComplexity(text string) QueryComplexity {
	intent := p.ExtractIntent(text)
	lower := strings.ToLower(text)

	score := 0
	var factors []string
	criteria := intent.CriteriaCount()
	if criteria >= 3 {
		score += 2
		factors = append(factors, "multiple_criteria")
	}
	if containsAnyKeyword(lower, negativeWords) {
		score++
		factors = append(factors, "negative_constraints")
	}
	if containsAnyKeyword(lower, comparisonWords) {
		score++
		factors = append(factors, "comparison")
	}
	words := len(strings.Fields(text))
	if words > 15 {
		score++
		factors = append(factors, "long_query")
	}

	level := "simple"
	switch {
	case score >= 3:
		level = "complex"
	case score >= 1:
		level = "medium"
	}
	return QueryComplexity{
		Level:         level,
		Score:         score,
		Factors:       factors,
		CriteriaCount: criteria,
		WordCount:     words,
		Intent:        intent,
	}
}
