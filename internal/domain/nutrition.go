package domain

import (
	"fmt"
	"math"
	"time"
)

// This file is the nutrition calculation pipeline: pure, deterministic
// arithmetic with no I/O. Every profile mutation that can change the derived
// fields goes through ComputeAll.

// kcalPerWeeklyKg converts a weekly weight-change pace (kg/week) into a daily
// calorie adjustment. 1 kg of body weight ≈ 7700 kcal, so 7700/7 = 1100
// kcal/day per kg/week.
const kcalPerWeeklyKg = 1100

// ProfileInputs are the biometrics and goal settings the calculator consumes.
// Values arrive pre-validated against the Min/Max bounds in user.go; the only
// guard here is against division by zero on height.
type ProfileInputs struct {
	WeightKg      float64
	HeightCm      float64
	DateOfBirth   time.Time
	Sex           Sex
	ActivityLevel ActivityLevel
	GoalType      GoalType
	WeeklyGoalKg  float64
}

// Metrics is the full output of the calculation pipeline.
type Metrics struct {
	BMI            float64
	BMR            float64
	TDEE           int
	DailyAllowance int
}

// BMI returns weight / height² in kg/m², rounded to 2 decimal places
// (round half up). Returns an error when heightCm is not positive.
func BMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, fmt.Errorf("height must be positive, got %v: %w", heightCm, ErrValidation)
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*100) / 100, nil
}

// BMR returns the basal metabolic rate per Mifflin-St Jeor. No rounding is
// applied at this stage; the raw value feeds TDEE.
func BMR(weightKg, heightCm float64, ageYears int, sex Sex) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if sex == SexMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales BMR by the activity multiplier and rounds half up to the
// nearest integer calorie.
func TDEE(bmr float64, activity ActivityLevel) int {
	return int(math.Round(bmr * activity.Multiplier()))
}

// DailyAllowance applies the weekly-goal adjustment to TDEE.
//
// The result is intentionally unclamped: extreme inputs can drive it to zero
// or below. Upstream validation bounds the weekly goal to [0.1, 1.0] kg/week,
// but no minimum-safe-intake floor is applied here.
func DailyAllowance(tdee int, weeklyGoalKg float64, goal GoalType) int {
	adjustment := int(math.Round(weeklyGoalKg * kcalPerWeeklyKg))
	switch goal {
	case GoalLose:
		return tdee - adjustment
	case GoalGain:
		return tdee + adjustment
	default:
		return tdee
	}
}

// AgeYears derives age as the calendar-year difference between now and the
// date of birth. This is off by one for part of the year when the birthday
// has not yet occurred; kept deliberately for parity with stored data.
func AgeYears(dateOfBirth, now time.Time) int {
	return now.Year() - dateOfBirth.Year()
}

// ComputeAll runs the full pipeline: BMI → BMR → TDEE → allowance.
// It is the single entry point used at registration and on every profile or
// latest-weight mutation.
func ComputeAll(in ProfileInputs, now time.Time) (Metrics, error) {
	bmi, err := BMI(in.WeightKg, in.HeightCm)
	if err != nil {
		return Metrics{}, err
	}

	bmr := BMR(in.WeightKg, in.HeightCm, AgeYears(in.DateOfBirth, now), in.Sex)
	tdee := TDEE(bmr, in.ActivityLevel)

	return Metrics{
		BMI:            bmi,
		BMR:            bmr,
		TDEE:           tdee,
		DailyAllowance: DailyAllowance(tdee, in.WeeklyGoalKg, in.GoalType),
	}, nil
}
