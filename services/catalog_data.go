package services

import "github.com/yuyuan12138/food-cal/models"

// SeedCatalog is the built-in food dataset. Values are per serving.
func SeedCatalog() []models.FoodRecord {
	return []models.FoodRecord{
		{ID: "oatmeal", Name: "Oatmeal", ServingSize: 40, ServingUnit: "g", Calories: 150, Protein: 5, Carbs: 27, Fat: 3, Fiber: 4, Category: models.CategoryBreakfast, Tags: []string{"grain", "popular"}},
		{ID: "scrambled-eggs", Name: "Scrambled Eggs", ServingSize: 2, ServingUnit: "eggs", Calories: 180, Protein: 12, Carbs: 2, Fat: 14, Category: models.CategoryBreakfast, Tags: []string{"protein", "popular"}},
		{ID: "greek-yogurt", Name: "Greek Yogurt", ServingSize: 170, ServingUnit: "g", Calories: 100, Protein: 17, Carbs: 6, Fat: 0.7, Category: models.CategoryBreakfast, Tags: []string{"dairy", "protein", "popular"}},
		{ID: "banana", Name: "Banana", ServingSize: 1, ServingUnit: "medium", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3.1, Category: models.CategorySnack, Tags: []string{"fruit", "popular"}},
		{ID: "apple", Name: "Apple", ServingSize: 1, ServingUnit: "medium", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Fiber: 4.4, Category: models.CategorySnack, Tags: []string{"fruit", "popular"}},
		{ID: "whole-wheat-toast", Name: "Whole Wheat Toast", ServingSize: 1, ServingUnit: "slice", Calories: 80, Protein: 4, Carbs: 14, Fat: 1, Fiber: 2, Category: models.CategoryBreakfast, Tags: []string{"grain"}},
		{ID: "peanut-butter", Name: "Peanut Butter", ServingSize: 32, ServingUnit: "g", Calories: 190, Protein: 8, Carbs: 7, Fat: 16, Fiber: 2, Category: models.CategorySnack, Tags: []string{"spread", "protein"}},
		{ID: "grilled-chicken-breast", Name: "Grilled Chicken Breast", ServingSize: 100, ServingUnit: "g", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Category: models.CategoryLunch, Tags: []string{"protein", "meat", "popular"}},
		{ID: "brown-rice", Name: "Brown Rice", ServingSize: 100, ServingUnit: "g cooked", Calories: 112, Protein: 2.6, Carbs: 24, Fat: 0.9, Fiber: 1.8, Category: models.CategoryLunch, Tags: []string{"grain"}},
		{ID: "white-rice", Name: "White Rice", ServingSize: 100, ServingUnit: "g cooked", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Category: models.CategoryLunch, Tags: []string{"grain"}},
		{ID: "caesar-salad", Name: "Caesar Salad", ServingSize: 200, ServingUnit: "g", Calories: 190, Protein: 7, Carbs: 10, Fat: 14, Fiber: 3, Category: models.CategoryLunch, Tags: []string{"salad"}},
		{ID: "turkey-sandwich", Name: "Turkey Sandwich", ServingSize: 1, ServingUnit: "sandwich", Calories: 320, Protein: 22, Carbs: 40, Fat: 8, Fiber: 4, Category: models.CategoryLunch, Tags: []string{"sandwich", "popular"}},
		{ID: "tuna-salad", Name: "Tuna Salad", ServingSize: 100, ServingUnit: "g", Calories: 187, Protein: 16, Carbs: 4, Fat: 11, Category: models.CategoryLunch, Tags: []string{"fish", "salad"}},
		{ID: "grilled-salmon", Name: "Grilled Salmon", ServingSize: 100, ServingUnit: "g", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Category: models.CategoryDinner, Tags: []string{"fish", "protein", "popular"}},
		{ID: "baked-potato", Name: "Baked Potato", ServingSize: 1, ServingUnit: "medium", Calories: 161, Protein: 4.3, Carbs: 37, Fat: 0.2, Fiber: 3.8, Category: models.CategoryDinner, Tags: []string{"vegetable"}},
		{ID: "steamed-broccoli", Name: "Steamed Broccoli", ServingSize: 100, ServingUnit: "g", Calories: 35, Protein: 2.4, Carbs: 7, Fat: 0.4, Fiber: 3.3, Category: models.CategoryDinner, Tags: []string{"vegetable"}},
		{ID: "spaghetti-bolognese", Name: "Spaghetti Bolognese", ServingSize: 350, ServingUnit: "g", Calories: 470, Protein: 25, Carbs: 58, Fat: 15, Fiber: 5, Category: models.CategoryDinner, Tags: []string{"pasta", "popular"}},
		{ID: "beef-steak", Name: "Beef Steak", ServingSize: 100, ServingUnit: "g", Calories: 271, Protein: 25, Carbs: 0, Fat: 19, Category: models.CategoryDinner, Tags: []string{"meat", "protein"}},
		{ID: "black-bean-chili", Name: "Black Bean Chili", ServingSize: 250, ServingUnit: "g", Calories: 240, Protein: 14, Carbs: 38, Fat: 4, Fiber: 12, Category: models.CategoryDinner, Tags: []string{"beans", "vegetarian"}},
		{ID: "almonds", Name: "Almonds", ServingSize: 28, ServingUnit: "g", Calories: 164, Protein: 6, Carbs: 6, Fat: 14, Fiber: 3.5, Category: models.CategorySnack, Tags: []string{"nuts"}},
		{ID: "dark-chocolate", Name: "Dark Chocolate", Brand: "Lindt", ServingSize: 25, ServingUnit: "g", Calories: 150, Protein: 2, Carbs: 11, Fat: 11, Fiber: 2, Category: models.CategorySnack, Tags: []string{"sweet"}},
		{ID: "protein-shake", Name: "Protein Shake", ServingSize: 300, ServingUnit: "ml", Calories: 160, Protein: 30, Carbs: 5, Fat: 2.5, Category: models.CategorySnack, Tags: []string{"protein", "drink"}},
		{ID: "cottage-cheese", Name: "Cottage Cheese", ServingSize: 100, ServingUnit: "g", Calories: 98, Protein: 11, Carbs: 3.4, Fat: 4.3, Category: models.CategoryOther, Tags: []string{"dairy", "protein"}},
		{ID: "olive-oil", Name: "Olive Oil", ServingSize: 14, ServingUnit: "g", Calories: 119, Protein: 0, Carbs: 0, Fat: 13.5, Category: models.CategoryOther, Tags: []string{"oil"}},
		{ID: "avocado", Name: "Avocado", ServingSize: 0.5, ServingUnit: "fruit", Calories: 160, Protein: 2, Carbs: 8.5, Fat: 14.7, Fiber: 6.7, Category: models.CategoryOther, Tags: []string{"fruit", "fat"}},
		{ID: "apple-pie", Name: "Apple Pie", ServingSize: 125, ServingUnit: "g", Calories: 296, Protein: 2.4, Carbs: 43, Fat: 14, Fiber: 2, Category: models.CategorySnack, Tags: []string{"dessert", "sweet"}},
	}
}
