package models

// ActivityLevel scales BMR into total daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Goals are the daily targets the dashboard tracks progress against.
// DailyCalorieTarget is always set; the gram targets are optional.
type Goals struct {
	DailyCalorieTarget int     `json:"daily_calorie_target"`
	ProteinTarget      float64 `json:"protein_target,omitempty"`
	CarbsTarget        float64 `json:"carbs_target,omitempty"`
	FatTarget          float64 `json:"fat_target,omitempty"`
}

// UserProfile is the single process-wide profile. Biometrics are optional;
// zero means "not provided".
type UserProfile struct {
	WeightKG      float64       `json:"weight_kg,omitempty"`
	HeightCM      float64       `json:"height_cm,omitempty"`
	AgeYears      int           `json:"age_years,omitempty"`
	Gender        Gender        `json:"gender,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Goals         Goals         `json:"goals"`
}

// DefaultProfile mirrors the defaults the tracker starts with before the
// user fills anything in.
func DefaultProfile() UserProfile {
	return UserProfile{
		ActivityLevel: ActivityModerate,
		Goals: Goals{
			DailyCalorieTarget: 2000,
			ProteinTarget:      150,
			CarbsTarget:        200,
			FatTarget:          65,
		},
	}
}
