// Package dataset loads and cleans the raw recipe and interaction CSVs
// into the typed rows the engine and catalog are built from.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/quangtran/monngon/backend/internal/models"
)

const (
	maxCookingMinutes = 300
	minRating         = 1
	maxRating         = 5
)

// RawRecipe is one row of the raw recipes CSV.
type RawRecipe struct {
	ID          int64
	Name        string
	Minutes     float64
	Nutrition   string // python-style list literal, calories first
	Ingredients string // python-style list literal
	Tags        string
	Description string
}

// RawInteraction is one row of the raw interactions CSV.
type RawInteraction struct {
	UserID   int64
	RecipeID int64
	Rating   float64
	Date     time.Time
}

// Cleaner merges and cleans raw recipe and interaction data.
type Cleaner struct {
	logger *zap.Logger
}

// NewCleaner creates a Cleaner.
func NewCleaner(logger *zap.Logger) *Cleaner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cleaner{logger: logger}
}

// LoadRecipes reads and cleans the raw recipes CSV: rows missing name,
// ingredients, or nutrition are dropped, cooking times outside (0, 300]
// minutes are dropped, and malformed numeric literals coerce to zero.
func (c *Cleaner) LoadRecipes(path string) ([]RawRecipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recipes file: %w", err)
	}
	defer f.Close()
	return c.readRecipes(f)
}

func (c *Cleaner) readRecipes(r io.Reader) ([]RawRecipe, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading recipes header: %w", err)
	}
	col := columnIndex(header)

	var recipes []RawRecipe
	dropped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			dropped++
			continue
		}
		name := strings.TrimSpace(field(row, col, "name"))
		ingredients := field(row, col, "ingredients")
		nutrition := field(row, col, "nutrition")
		if name == "" || ingredients == "" || nutrition == "" {
			dropped++
			continue
		}
		minutes, _ := strconv.ParseFloat(field(row, col, "minutes"), 64)
		if minutes <= 0 || minutes > maxCookingMinutes {
			dropped++
			continue
		}
		id, err := strconv.ParseInt(field(row, col, "id"), 10, 64)
		if err != nil {
			dropped++
			continue
		}
		recipes = append(recipes, RawRecipe{
			ID:          id,
			Name:        name,
			Minutes:     minutes,
			Nutrition:   nutrition,
			Ingredients: ingredients,
			Tags:        field(row, col, "tags"),
			Description: field(row, col, "description"),
		})
	}
	c.logger.Info("recipes loaded", zap.Int("kept", len(recipes)), zap.Int("dropped", dropped))
	return recipes, nil
}

// LoadInteractions reads and cleans the raw interactions CSV, keeping
// only ratings in [1,5] with a parsable date.
func (c *Cleaner) LoadInteractions(path string) ([]RawInteraction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening interactions file: %w", err)
	}
	defer f.Close()
	return c.readInteractions(f)
}

func (c *Cleaner) readInteractions(r io.Reader) ([]RawInteraction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading interactions header: %w", err)
	}
	col := columnIndex(header)

	var interactions []RawInteraction
	dropped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			dropped++
			continue
		}
		rating, err := strconv.ParseFloat(field(row, col, "rating"), 64)
		if err != nil || rating < minRating || rating > maxRating {
			dropped++
			continue
		}
		userID, errU := strconv.ParseInt(field(row, col, "user_id"), 10, 64)
		recipeID, errR := strconv.ParseInt(field(row, col, "recipe_id"), 10, 64)
		if errU != nil || errR != nil {
			dropped++
			continue
		}
		date, err := time.Parse("2006-01-02", field(row, col, "date"))
		if err != nil {
			dropped++
			continue
		}
		interactions = append(interactions, RawInteraction{
			UserID:   userID,
			RecipeID: recipeID,
			Rating:   rating,
			Date:     date,
		})
	}
	c.logger.Info("interactions loaded", zap.Int("kept", len(interactions)), zap.Int("dropped", dropped))
	return interactions, nil
}

// Merge inner-joins interactions with their recipes into the cleaned
// interaction log.
func (c *Cleaner) Merge(recipes []RawRecipe, interactions []RawInteraction) []models.Interaction {
	byID := make(map[int64]RawRecipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}

	out := make([]models.Interaction, 0, len(interactions))
	for _, it := range interactions {
		recipe, ok := byID[it.RecipeID]
		if !ok {
			continue
		}
		out = append(out, models.Interaction{
			UserID:          it.UserID,
			RecipeID:        it.RecipeID,
			Rating:          it.Rating,
			Date:            it.Date,
			Season:          SeasonOf(it.Date.Month()),
			Name:            recipe.Name,
			Minutes:         recipe.Minutes,
			Calories:        ExtractCalories(recipe.Nutrition),
			IngredientCount: CountIngredients(recipe.Ingredients),
		})
	}
	c.logger.Info("interaction log merged", zap.Int("records", len(out)))
	return out
}

// SeasonOf maps a month to its season.
func SeasonOf(month time.Month) string {
	switch month {
	case time.December, time.January, time.February:
		return "Winter"
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Summer"
	default:
		return "Autumn"
	}
}

// ExtractCalories pulls the first element out of a python-style nutrition
// list literal; malformed input coerces to 0.
func ExtractCalories(nutrition string) float64 {
	values := parseListLiteral(nutrition)
	if len(values) == 0 {
		return 0
	}
	cal, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return 0
	}
	return cal
}

// CountIngredients counts elements of a python-style ingredient list
// literal; malformed input coerces to 0.
func CountIngredients(ingredients string) int {
	return len(parseListLiteral(ingredients))
}

// parseListLiteral splits "[a, b, c]" into trimmed, unquoted elements.
func parseListLiteral(s string) []string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.Trim(p, `'"`)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BuildMenu aggregates the cleaned interaction log into catalog rows:
// first-seen recipe attributes, a synthesized nutrition profile, and a
// seeded-random price used only for display.
func (c *Cleaner) BuildMenu(log []models.Interaction, recipes []RawRecipe) []models.MenuItem {
	byID := make(map[int64]RawRecipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}

	rng := rand.New(rand.NewSource(42))
	seen := make(map[int64]bool)
	var menu []models.MenuItem
	for _, it := range log {
		if seen[it.RecipeID] {
			continue
		}
		seen[it.RecipeID] = true

		item := models.MenuItem{
			ID:              it.RecipeID,
			Name:            it.Name,
			Category:        "other",
			Minutes:         it.Minutes,
			Calories:        it.Calories,
			IngredientCount: it.IngredientCount,
			Season:          it.Season,
			Price:           100000 + float64(it.IngredientCount)*10000 + rng.Float64()*40000 - 20000,
		}
		if raw, ok := byID[it.RecipeID]; ok {
			item.Ingredients = models.JSONStringArray(parseListLiteral(raw.Ingredients))
			item.Tags = models.JSONStringArray(parseListLiteral(raw.Tags))
			item.Description = raw.Description
		}
		menu = append(menu, item)
	}
	c.logger.Info("menu built", zap.Int("items", len(menu)))
	return menu
}

func columnIndex(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return col
}

func field(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
