package models

import (
	"time"
)

// Interaction is one cleaned user-recipe rating event. One row per
// (user, recipe, occasion); ratings are guaranteed in [1,5] after cleaning.
type Interaction struct {
	ID              uint      `gorm:"primarykey" json:"-"`
	UserID          int64     `gorm:"index;not null" json:"user_id"`
	RecipeID        int64     `gorm:"index;not null" json:"recipe_id"`
	Rating          float64   `gorm:"not null" json:"rating"`
	Date            time.Time `json:"date"`
	Season          string    `gorm:"size:16" json:"season"`
	Name            string    `gorm:"size:255" json:"name"`
	Minutes         float64   `json:"minutes"`
	Calories        float64   `json:"calories"`
	IngredientCount int       `json:"ingredient_count"`
}
