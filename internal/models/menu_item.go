package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONStringArray is a custom type for handling string arrays stored as JSON
type JSONStringArray []string

// Value implements the driver.Valuer interface
func (a JSONStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// MenuItem is one catalog dish served to the matcher. Optional columns
// (tags, ingredients, description) default to empty rather than failing.
type MenuItem struct {
	ID              int64           `gorm:"primarykey" json:"id"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Ingredients     JSONStringArray `gorm:"type:json;not null;default:'[]'" json:"ingredients"`
	Tags            JSONStringArray `gorm:"type:json;not null;default:'[]'" json:"tags"`
	Description     string          `gorm:"type:text" json:"description"`
	Category        string          `gorm:"size:50" json:"category"`
	Minutes         float64         `json:"minutes"`
	Calories        float64         `json:"calories"`
	IngredientCount int             `json:"ingredient_count"`
	Season          string          `gorm:"size:16" json:"season"`
	Price           float64         `json:"price"`
}
