package models

// MealBuckets holds a day's entries partitioned by meal.
type MealBuckets struct {
	Breakfast []LogEntry `json:"breakfast"`
	Lunch     []LogEntry `json:"lunch"`
	Dinner    []LogEntry `json:"dinner"`
	Snacks    []LogEntry `json:"snacks"`
}

// DailySummary is recomputed on demand and never stored. Totals are summed
// over every entry for the date; the gram totals are rounded to one decimal
// place after summation.
type DailySummary struct {
	Date          string      `json:"date"`
	DisplayDate   string      `json:"display_date"`
	TotalCalories int         `json:"total_calories"`
	TotalProtein  float64     `json:"total_protein"`
	TotalCarbs    float64     `json:"total_carbs"`
	TotalFat      float64     `json:"total_fat"`
	TotalFiber    float64     `json:"total_fiber"`
	Meals         MealBuckets `json:"meals"`
}
