package services

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/yuyuan12138/food-cal/models"
	"github.com/yuyuan12138/food-cal/utils"
)

const (
	MinServings  = 0.25
	MaxServings  = 5.0
	ServingsStep = 0.25
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ValidateServings enforces the serving multiplier contract: within
// [0.25, 5] and on the 0.25 step. Out-of-step values are rejected, not
// rounded; the slider in the UI can only produce valid ones, so anything
// else is a caller bug.
func ValidateServings(servings float64) error {
	if servings < MinServings || servings > MaxServings {
		return validationErr("servings", "must be between %g and %g, got %g", MinServings, MaxServings, servings)
	}
	steps := servings / ServingsStep
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		return validationErr("servings", "must be a multiple of %g, got %g", ServingsStep, servings)
	}
	return nil
}

// NewLogEntry builds an immutable log entry from a catalog food. Nutrition
// values are frozen here: food value times servings, calories rounded to an
// integer, gram fields to one decimal place. The caller owns insertion into
// the log.
func NewLogEntry(food models.FoodRecord, meal models.MealType, servings float64, date string) (models.LogEntry, error) {
	if food.ID == "" {
		return models.LogEntry{}, validationErr("food", "missing food id")
	}
	if _, err := models.ParseMealType(string(meal)); err != nil {
		return models.LogEntry{}, validationErr("meal", "%v", err)
	}
	if err := ValidateServings(servings); err != nil {
		return models.LogEntry{}, err
	}
	if date == "" {
		date = utils.TodayDate()
	}
	if !utils.ValidDate(date) {
		return models.LogEntry{}, validationErr("date", "want YYYY-MM-DD, got %q", date)
	}

	return models.LogEntry{
		ID:          uuid.NewString(),
		FoodID:      food.ID,
		FoodName:    food.Name,
		Date:        date,
		Meal:        meal,
		Servings:    servings,
		ServingSize: food.ServingSize,
		ServingUnit: food.ServingUnit,
		Calories:    int(math.Round(food.Calories * servings)),
		Protein:     round1(food.Protein * servings),
		Carbs:       round1(food.Carbs * servings),
		Fat:         round1(food.Fat * servings),
		Fiber:       round1(food.Fiber * servings),
		Timestamp:   time.Now(),
	}, nil
}

// RescaleEntry returns a copy of entry with a new serving multiplier, the
// frozen nutrition re-derived proportionally from the entry's own snapshot.
// The catalog is deliberately not consulted.
func RescaleEntry(entry models.LogEntry, servings float64) (models.LogEntry, error) {
	if err := ValidateServings(servings); err != nil {
		return models.LogEntry{}, err
	}
	ratio := servings / entry.Servings
	out := entry
	out.Servings = servings
	out.Calories = int(math.Round(float64(entry.Calories) * ratio))
	out.Protein = round1(entry.Protein * ratio)
	out.Carbs = round1(entry.Carbs * ratio)
	out.Fat = round1(entry.Fat * ratio)
	out.Fiber = round1(entry.Fiber * ratio)
	return out, nil
}
