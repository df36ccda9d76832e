package services

import (
	"fmt"
	"math"

	"github.com/yuyuan12138/food-cal/models"
)

// Defaults substituted when a biometric input is missing or non-positive.
// The calculator never fails on bad biometrics; it computes with these and
// reports an advisory instead.
const (
	DefaultWeightKG = 70
	DefaultHeightCM = 170
	DefaultAgeYears = 30
)

// activityMultiplier maps each activity level to its TDEE factor. Unknown
// levels fall back to sedentary.
func activityMultiplier(level models.ActivityLevel) (float64, bool) {
	switch level {
	case models.ActivitySedentary:
		return 1.2, true
	case models.ActivityLight:
		return 1.375, true
	case models.ActivityModerate:
		return 1.55, true
	case models.ActivityActive:
		return 1.725, true
	case models.ActivityVeryActive:
		return 1.9, true
	default:
		return 1.2, false
	}
}

// mifflinStJeor is the BMR formula. Female and other share the female
// constant.
func mifflinStJeor(weightKG, heightCM, ageYears float64, gender models.Gender) float64 {
	base := 10*weightKG + 6.25*heightCM - 5*ageYears
	if gender == models.GenderMale {
		return base + 5
	}
	return base - 161
}

// ComputeNeeds derives BMR, TDEE, the recommended daily intake and a macro
// split from the given biometrics. Recommended equals TDEE; no deficit or
// surplus is applied. Missing inputs are replaced with defaults and noted
// in the returned advisories, so this never returns an error.
func ComputeNeeds(weightKG, heightCM float64, ageYears int, gender models.Gender, level models.ActivityLevel) (models.CalorieNeeds, []string) {
	var advisories []string

	if weightKG <= 0 {
		advisories = append(advisories, fmt.Sprintf("weight missing, assuming %d kg", DefaultWeightKG))
		weightKG = DefaultWeightKG
	}
	if heightCM <= 0 {
		advisories = append(advisories, fmt.Sprintf("height missing, assuming %d cm", DefaultHeightCM))
		heightCM = DefaultHeightCM
	}
	if ageYears <= 0 {
		advisories = append(advisories, fmt.Sprintf("age missing, assuming %d years", DefaultAgeYears))
		ageYears = DefaultAgeYears
	}

	mult, known := activityMultiplier(level)
	if !known {
		advisories = append(advisories, fmt.Sprintf("unknown activity level %q, assuming sedentary", level))
	}

	bmr := mifflinStJeor(weightKG, heightCM, float64(ageYears), gender)
	tdee := bmr * mult
	recommended := int(math.Round(tdee))

	needs := models.CalorieNeeds{
		BMR:         int(math.Round(bmr)),
		TDEE:        int(math.Round(tdee)),
		Recommended: recommended,
		Macros:      SplitMacros(recommended),
	}
	needs.BMI, needs.BMICategory = bodyMassIndex(weightKG, heightCM)
	return needs, advisories
}

// SplitMacros distributes calories at the fixed 30% protein / 40% carbs /
// 30% fat ratio, converting to grams at 4, 4 and 9 kcal per gram.
func SplitMacros(calories int) models.MacroBreakdown {
	c := float64(calories)
	return models.MacroBreakdown{
		Protein: models.Macro{
			Grams:    int(math.Round(c * 0.30 / 4)),
			Calories: int(math.Round(c * 0.30)),
		},
		Carbs: models.Macro{
			Grams:    int(math.Round(c * 0.40 / 4)),
			Calories: int(math.Round(c * 0.40)),
		},
		Fat: models.Macro{
			Grams:    int(math.Round(c * 0.30 / 9)),
			Calories: int(math.Round(c * 0.30)),
		},
	}
}

// bodyMassIndex returns BMI and its WHO category, or zero values when the
// inputs are outside a plausible human range.
func bodyMassIndex(weightKG, heightCM float64) (float64, string) {
	if heightCM < 50 || heightCM > 250 || weightKG < 10 || weightKG > 400 {
		return 0, ""
	}
	h := heightCM / 100
	bmi := math.Round(weightKG/(h*h)*10) / 10
	switch {
	case bmi < 18.5:
		return bmi, "Underweight"
	case bmi < 25.0:
		return bmi, "Normal weight"
	case bmi < 30.0:
		return bmi, "Overweight"
	case bmi < 35.0:
		return bmi, "Obesity class I"
	case bmi < 40.0:
		return bmi, "Obesity class II"
	default:
		return bmi, "Obesity class III"
	}
}
