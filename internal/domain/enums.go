package domain

// Sex is the biological sex used by the Mifflin-St Jeor BMR formula.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

func (s Sex) String() string { return string(s) }

func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	}
	return false
}

// ActivityLevel scales BMR into TDEE.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "SEDENTARY"
	ActivityLightlyActive    ActivityLevel = "LIGHTLY_ACTIVE"
	ActivityModeratelyActive ActivityLevel = "MODERATELY_ACTIVE"
	ActivityVeryActive       ActivityLevel = "VERY_ACTIVE"
)

func (a ActivityLevel) String() string { return string(a) }

func (a ActivityLevel) IsValid() bool {
	switch a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive:
		return true
	}
	return false
}

// Multiplier returns the TDEE multiplier for the activity level.
// Returns 0 for an invalid level; callers validate first.
func (a ActivityLevel) Multiplier() float64 {
	switch a {
	case ActivitySedentary:
		return 1.2
	case ActivityLightlyActive:
		return 1.375
	case ActivityModeratelyActive:
		return 1.55
	case ActivityVeryActive:
		return 1.725
	}
	return 0
}

// GoalType is the direction of the user's weight goal.
type GoalType string

const (
	GoalLose     GoalType = "LOSE"
	GoalMaintain GoalType = "MAINTAIN"
	GoalGain     GoalType = "GAIN"
)

func (g GoalType) String() string { return string(g) }

func (g GoalType) IsValid() bool {
	switch g {
	case GoalLose, GoalMaintain, GoalGain:
		return true
	}
	return false
}

// MealType is the categorical tag on a food item used for dashboard grouping.
// It does not affect calorie computation.
type MealType string

const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
	MealDinner    MealType = "DINNER"
	MealSnacks    MealType = "SNACKS"
	MealOther     MealType = "OTHER"
)

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks, MealOther:
		return true
	}
	return false
}
