package services

import (
	"github.com/yuyuan12138/food-cal/models"
	"github.com/yuyuan12138/food-cal/utils"
)

// Summarize filters entries to the given date and folds them into a daily
// summary. Calories are summed as integers; the gram totals are rounded to
// one decimal place after summation, not per entry. Pure: calling it twice
// with the same input yields the same summary.
func Summarize(entries []models.LogEntry, date string) models.DailySummary {
	s := models.DailySummary{
		Date:        date,
		DisplayDate: utils.FormatDisplayDate(date),
		Meals: models.MealBuckets{
			Breakfast: []models.LogEntry{},
			Lunch:     []models.LogEntry{},
			Dinner:    []models.LogEntry{},
			Snacks:    []models.LogEntry{},
		},
	}

	var protein, carbs, fat, fiber float64
	for _, e := range entries {
		if e.Date != date {
			continue
		}
		s.TotalCalories += e.Calories
		protein += e.Protein
		carbs += e.Carbs
		fat += e.Fat
		fiber += e.Fiber

		switch e.Meal {
		case models.MealBreakfast:
			s.Meals.Breakfast = append(s.Meals.Breakfast, e)
		case models.MealLunch:
			s.Meals.Lunch = append(s.Meals.Lunch, e)
		case models.MealDinner:
			s.Meals.Dinner = append(s.Meals.Dinner, e)
		case models.MealSnack:
			s.Meals.Snacks = append(s.Meals.Snacks, e)
		}
	}

	s.TotalProtein = round1(protein)
	s.TotalCarbs = round1(carbs)
	s.TotalFat = round1(fat)
	s.TotalFiber = round1(fiber)
	return s
}
