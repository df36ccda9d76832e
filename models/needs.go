package models

// Macro is one slice of the macro breakdown, in grams and in the calories
// those grams account for.
type Macro struct {
	Grams    int `json:"grams"`
	Calories int `json:"calories"`
}

type MacroBreakdown struct {
	Protein Macro `json:"protein"`
	Carbs   Macro `json:"carbs"`
	Fat     Macro `json:"fat"`
}

// CalorieNeeds is the calculator output. Recommended equals TDEE: the
// tracker applies no deficit or surplus.
type CalorieNeeds struct {
	BMR         int            `json:"bmr"`
	TDEE        int            `json:"tdee"`
	Recommended int            `json:"recommended"`
	Macros      MacroBreakdown `json:"macros"`
	BMI         float64        `json:"bmi,omitempty"`
	BMICategory string         `json:"bmi_category,omitempty"`
}
