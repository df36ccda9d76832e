package services

import (
	"errors"
	"testing"

	"github.com/yuyuan12138/food-cal/models"
)

var testFood = models.FoodRecord{
	ID:          "oatmeal",
	Name:        "Oatmeal",
	ServingSize: 40,
	ServingUnit: "g",
	Calories:    150,
	Protein:     5,
	Carbs:       27,
	Fat:         3,
	Fiber:       4,
	Category:    models.CategoryBreakfast,
}

func TestNewLogEntry_FreezesScaledNutrition(t *testing.T) {
	entry, err := NewLogEntry(testFood, models.MealBreakfast, 1.5, "2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Calories != 225 {
		t.Errorf("calories = %d, want 225", entry.Calories)
	}
	if entry.Protein != 7.5 || entry.Carbs != 40.5 || entry.Fat != 4.5 || entry.Fiber != 6 {
		t.Errorf("macros = %v/%v/%v/%v", entry.Protein, entry.Carbs, entry.Fat, entry.Fiber)
	}
	if entry.FoodID != "oatmeal" || entry.FoodName != "Oatmeal" {
		t.Errorf("food reference = %q/%q", entry.FoodID, entry.FoodName)
	}
	if entry.ID == "" || entry.Timestamp.IsZero() {
		t.Error("entry missing identity or timestamp")
	}
}

func TestNewLogEntry_RoundsToOneDecimal(t *testing.T) {
	food := testFood
	food.Protein = 1.33
	entry, err := NewLogEntry(food, models.MealSnack, 0.25, "2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	// 1.33 * 0.25 = 0.3325 -> 0.3
	if entry.Protein != 0.3 {
		t.Errorf("protein = %v, want 0.3", entry.Protein)
	}
}

func TestNewLogEntry_UniqueIDs(t *testing.T) {
	a, _ := NewLogEntry(testFood, models.MealLunch, 1, "2026-09-01")
	b, _ := NewLogEntry(testFood, models.MealLunch, 1, "2026-09-01")
	if a.ID == b.ID {
		t.Error("two entries share an id")
	}
}

func TestNewLogEntry_ServingsValidation(t *testing.T) {
	cases := []struct {
		name     string
		servings float64
		wantErr  bool
	}{
		{"minimum", 0.25, false},
		{"maximum", 5, false},
		{"mid step", 2.75, false},
		{"below minimum", 0, true},
		{"negative", -1, true},
		{"above maximum", 5.25, true},
		{"off step", 0.3, true},
		{"off step fine", 1.1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLogEntry(testFood, models.MealDinner, tc.servings, "2026-09-01")
			if tc.wantErr {
				if !IsValidation(err) {
					t.Errorf("servings %v: got %v, want ValidationError", tc.servings, err)
				}
			} else if err != nil {
				t.Errorf("servings %v: unexpected error %v", tc.servings, err)
			}
		})
	}
}

func TestNewLogEntry_RejectsBadMealAndDate(t *testing.T) {
	if _, err := NewLogEntry(testFood, "brunch", 1, "2026-09-01"); !IsValidation(err) {
		t.Errorf("unknown meal: got %v, want ValidationError", err)
	}
	if _, err := NewLogEntry(testFood, models.MealLunch, 1, "09/01/2026"); !IsValidation(err) {
		t.Errorf("bad date: got %v, want ValidationError", err)
	}
}

func TestNewLogEntry_DefaultsDateToToday(t *testing.T) {
	entry, err := NewLogEntry(testFood, models.MealLunch, 1, "")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Date == "" {
		t.Error("date not defaulted")
	}
}

func TestNewLogEntry_FrozenAgainstCatalogEdits(t *testing.T) {
	food := testFood
	entry, err := NewLogEntry(food, models.MealBreakfast, 1, "2026-09-01")
	if err != nil {
		t.Fatal(err)
	}
	food.Calories = 999

	if entry.Calories != 150 {
		t.Errorf("entry calories = %d after catalog edit, want frozen 150", entry.Calories)
	}
}

func TestRescaleEntry(t *testing.T) {
	entry, _ := NewLogEntry(testFood, models.MealBreakfast, 1, "2026-09-01")
	rescaled, err := RescaleEntry(entry, 2)
	if err != nil {
		t.Fatal(err)
	}
	if rescaled.Calories != 300 || rescaled.Protein != 10 {
		t.Errorf("rescaled = %d cal / %v protein, want 300 / 10", rescaled.Calories, rescaled.Protein)
	}
	if rescaled.ID != entry.ID || rescaled.Date != entry.Date {
		t.Error("rescale changed identity fields")
	}

	if _, err := RescaleEntry(entry, 0.3); !IsValidation(err) {
		t.Errorf("off-step rescale: got %v, want ValidationError", err)
	}
	var ve *ValidationError
	if _, err := RescaleEntry(entry, 9); !errors.As(err, &ve) {
		t.Errorf("out-of-range rescale: got %v, want ValidationError", err)
	}
}
