package models

import (
	"fmt"
	"time"
)

// MealType is the meal bucket an entry is logged against.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists the four buckets in display order.
var MealTypes = [4]MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func ParseMealType(s string) (MealType, error) {
	switch MealType(s) {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return MealType(s), nil
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

// LogEntry is one logged consumption. The nutrition fields are a snapshot
// taken when the entry was created: food values times the serving multiplier,
// calories rounded to an integer and the gram fields to one decimal place.
// Later catalog changes never alter an existing entry.
type LogEntry struct {
	ID          string    `json:"id"`
	FoodID      string    `json:"food_id"`
	FoodName    string    `json:"food_name"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Meal        MealType  `json:"meal"`
	Servings    float64   `json:"servings"`
	ServingSize float64   `json:"serving_size"`
	ServingUnit string    `json:"serving_unit"`
	Calories    int       `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fat         float64   `json:"fat"`
	Fiber       float64   `json:"fiber"`
	Timestamp   time.Time `json:"timestamp"`
}
