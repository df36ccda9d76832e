package models

import "fmt"

// FoodCategory groups catalog entries for browsing and search.
type FoodCategory string

const (
	CategoryBreakfast FoodCategory = "breakfast"
	CategoryLunch     FoodCategory = "lunch"
	CategoryDinner    FoodCategory = "dinner"
	CategorySnack     FoodCategory = "snack"
	CategoryOther     FoodCategory = "other"
)

// FoodRecord is one catalog entry. Nutrition values are per serving.
// The catalog is loaded once at startup and never mutated.
type FoodRecord struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Brand       string       `json:"brand,omitempty"`
	ServingSize float64      `json:"serving_size"`
	ServingUnit string       `json:"serving_unit"`
	Calories    float64      `json:"calories"`
	Protein     float64      `json:"protein"`
	Carbs       float64      `json:"carbs"`
	Fat         float64      `json:"fat"`
	Fiber       float64      `json:"fiber,omitempty"`
	Category    FoodCategory `json:"category"`
	Tags        []string     `json:"tags,omitempty"`
}

func (f FoodRecord) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("food record missing id")
	}
	if f.Name == "" {
		return fmt.Errorf("food %q missing name", f.ID)
	}
	if f.ServingSize <= 0 {
		return fmt.Errorf("food %q has non-positive serving size", f.ID)
	}
	if f.Calories < 0 || f.Protein < 0 || f.Carbs < 0 || f.Fat < 0 || f.Fiber < 0 {
		return fmt.Errorf("food %q has negative nutrition values", f.ID)
	}
	switch f.Category {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnack, CategoryOther:
		return nil
	default:
		return fmt.Errorf("food %q has unknown category %q", f.ID, f.Category)
	}
}
