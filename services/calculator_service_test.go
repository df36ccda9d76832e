package services

import (
	"math"
	"testing"

	"github.com/yuyuan12138/food-cal/models"
)

func TestComputeNeeds_MaleModerate(t *testing.T) {
	needs, advisories := ComputeNeeds(70, 175, 30, models.GenderMale, models.ActivityModerate)
	if len(advisories) != 0 {
		t.Fatalf("unexpected advisories: %v", advisories)
	}
	// 10*70 + 6.25*175 - 5*30 + 5 = 1703.75
	if needs.BMR != 1704 {
		t.Errorf("BMR = %d, want 1704", needs.BMR)
	}
	if needs.TDEE != 2641 {
		t.Errorf("TDEE = %d, want 2641", needs.TDEE)
	}
	if needs.Recommended != needs.TDEE {
		t.Errorf("recommended = %d, want TDEE %d (no deficit policy)", needs.Recommended, needs.TDEE)
	}
}

func TestComputeNeeds_FemaleConstant(t *testing.T) {
	needs, _ := ComputeNeeds(70, 175, 30, models.GenderFemale, models.ActivityModerate)
	// 700 + 1093.75 - 150 - 161 = 1482.75
	if needs.BMR != 1483 {
		t.Errorf("BMR = %d, want 1483", needs.BMR)
	}

	other, _ := ComputeNeeds(70, 175, 30, models.GenderOther, models.ActivityModerate)
	if other.BMR != needs.BMR {
		t.Errorf("gender other BMR = %d, want the female constant result %d", other.BMR, needs.BMR)
	}
}

func TestComputeNeeds_ActivityMultipliers(t *testing.T) {
	cases := []struct {
		level models.ActivityLevel
		mult  float64
	}{
		{models.ActivitySedentary, 1.2},
		{models.ActivityLight, 1.375},
		{models.ActivityModerate, 1.55},
		{models.ActivityActive, 1.725},
		{models.ActivityVeryActive, 1.9},
	}
	for _, tc := range cases {
		t.Run(string(tc.level), func(t *testing.T) {
			needs, _ := ComputeNeeds(70, 175, 30, models.GenderMale, tc.level)
			want := int(math.Round(1703.75 * tc.mult))
			if needs.TDEE != want {
				t.Errorf("TDEE = %d, want %d", needs.TDEE, want)
			}
		})
	}
}

func TestComputeNeeds_UnknownActivityFallsBack(t *testing.T) {
	needs, advisories := ComputeNeeds(70, 175, 30, models.GenderMale, "couch-potato")
	want := int(math.Round(1703.75 * 1.2))
	if needs.TDEE != want {
		t.Errorf("TDEE = %d, want sedentary fallback %d", needs.TDEE, want)
	}
	if len(advisories) != 1 {
		t.Errorf("advisories = %v, want one about the unknown level", advisories)
	}
}

func TestComputeNeeds_MissingInputsAdvise(t *testing.T) {
	needs, advisories := ComputeNeeds(0, -5, 0, models.GenderMale, models.ActivityModerate)
	if len(advisories) != 3 {
		t.Fatalf("advisories = %v, want three (weight, height, age)", advisories)
	}
	// Defaults 70 kg / 170 cm / 30 years: BMR = 700 + 1062.5 - 150 + 5 = 1617.5
	if needs.BMR != 1618 {
		t.Errorf("BMR with defaults = %d, want 1618", needs.BMR)
	}
}

func TestComputeNeeds_MacroCaloriesSumToRecommended(t *testing.T) {
	for _, cal := range []int{1500, 2000, 2641, 3000} {
		m := SplitMacros(cal)
		sum := m.Protein.Calories + m.Carbs.Calories + m.Fat.Calories
		if diff := sum - cal; diff < -2 || diff > 2 {
			t.Errorf("macro calories for %d sum to %d, outside tolerance", cal, sum)
		}
	}
}

func TestComputeNeeds_MacroGramRatios(t *testing.T) {
	m := SplitMacros(2000)
	// 30% / 4, 40% / 4, 30% / 9
	if m.Protein.Grams != 150 {
		t.Errorf("protein grams = %d, want 150", m.Protein.Grams)
	}
	if m.Carbs.Grams != 200 {
		t.Errorf("carbs grams = %d, want 200", m.Carbs.Grams)
	}
	if m.Fat.Grams != 67 {
		t.Errorf("fat grams = %d, want 67", m.Fat.Grams)
	}
}

func TestComputeNeeds_BMISupplement(t *testing.T) {
	needs, _ := ComputeNeeds(70, 175, 30, models.GenderMale, models.ActivityModerate)
	if needs.BMI != 22.9 {
		t.Errorf("BMI = %v, want 22.9", needs.BMI)
	}
	if needs.BMICategory != "Normal weight" {
		t.Errorf("BMI category = %q", needs.BMICategory)
	}
}
