package auth

import (
	"net/mail"
	"time"

	"github.com/okravets/caltrack-backend/internal/domain"
)

// RegisterInput holds parameters for the register operation. Biometrics are
// collected at signup so the profile is complete from the first request.
type RegisterInput struct {
	Email    string
	Name     string
	Password string

	DateOfBirth   time.Time
	Sex           domain.Sex
	HeightCm      float64
	WeightKg      float64
	ActivityLevel domain.ActivityLevel

	GoalWeightKg *float64
	GoalType     domain.GoalType
	WeeklyGoalKg float64
}

// Validate validates the register input.
func (i RegisterInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(i.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	} else if len(i.Email) > 255 {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(i.Password) < 8 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > 72 {
		// bcrypt truncates input beyond 72 bytes
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 characters"})
	}

	errs = append(errs, validateBiometrics(i.DateOfBirth, i.Sex, i.HeightCm, i.WeightKg, i.ActivityLevel, now)...)
	errs = append(errs, validateGoal(i.GoalType, i.WeeklyGoalKg, i.GoalWeightKg)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for the token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateBiometrics checks the shared biometric fields used by both
// registration and profile updates.
func validateBiometrics(dob time.Time, sex domain.Sex, heightCm, weightKg float64, activity domain.ActivityLevel, now time.Time) []domain.FieldError {
	var errs []domain.FieldError

	if dob.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date_of_birth", Message: "required"})
	} else if !dob.Before(now) {
		errs = append(errs, domain.FieldError{Field: "date_of_birth", Message: "must be in the past"})
	}

	if !sex.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sex", Message: "must be MALE or FEMALE"})
	}

	if heightCm < domain.MinHeightCm || heightCm > domain.MaxHeightCm {
		errs = append(errs, domain.FieldError{Field: "height_cm", Message: "must be between 50 and 300"})
	}
	if weightKg < domain.MinWeightKg || weightKg > domain.MaxWeightKg {
		errs = append(errs, domain.FieldError{Field: "weight_kg", Message: "must be between 20 and 500"})
	}

	if !activity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_level", Message: "invalid activity level"})
	}

	return errs
}

// validateGoal checks the goal fields shared by registration and profile updates.
func validateGoal(goal domain.GoalType, weeklyGoalKg float64, goalWeightKg *float64) []domain.FieldError {
	var errs []domain.FieldError

	if !goal.IsValid() {
		errs = append(errs, domain.FieldError{Field: "goal_type", Message: "invalid goal type"})
	}

	// MAINTAIN carries no pace; LOSE and GAIN need one within bounds.
	if goal == domain.GoalLose || goal == domain.GoalGain {
		if weeklyGoalKg < domain.MinWeeklyGoalKg || weeklyGoalKg > domain.MaxWeeklyGoalKg {
			errs = append(errs, domain.FieldError{Field: "weekly_goal_kg", Message: "must be between 0.1 and 1.0"})
		}
	}

	if goalWeightKg != nil && (*goalWeightKg < domain.MinWeightKg || *goalWeightKg > domain.MaxWeightKg) {
		errs = append(errs, domain.FieldError{Field: "goal_weight_kg", Message: "must be between 20 and 500"})
	}

	return errs
}
