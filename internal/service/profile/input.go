package profile

import (
	"time"

	"github.com/okravets/caltrack-backend/internal/domain"
)

// UpdateInput holds parameters for the profile update operation.
// All fields are optional (nil = don't change).
type UpdateInput struct {
	Name          *string
	DateOfBirth   *time.Time
	Sex           *domain.Sex
	HeightCm      *float64
	WeightKg      *float64
	ActivityLevel *domain.ActivityLevel
	GoalWeightKg  *float64
	GoalType      *domain.GoalType
	WeeklyGoalKg  *float64
}

// Validate validates the update input.
func (i UpdateInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		} else if len(*i.Name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.DateOfBirth != nil && !i.DateOfBirth.Before(now) {
		errs = append(errs, domain.FieldError{Field: "date_of_birth", Message: "must be in the past"})
	}

	if i.Sex != nil && !i.Sex.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sex", Message: "must be MALE or FEMALE"})
	}

	if i.HeightCm != nil && (*i.HeightCm < domain.MinHeightCm || *i.HeightCm > domain.MaxHeightCm) {
		errs = append(errs, domain.FieldError{Field: "height_cm", Message: "must be between 50 and 300"})
	}
	if i.WeightKg != nil && (*i.WeightKg < domain.MinWeightKg || *i.WeightKg > domain.MaxWeightKg) {
		errs = append(errs, domain.FieldError{Field: "weight_kg", Message: "must be between 20 and 500"})
	}

	if i.ActivityLevel != nil && !i.ActivityLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "activity_level", Message: "invalid activity level"})
	}

	if i.GoalType != nil && !i.GoalType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "goal_type", Message: "invalid goal type"})
	}

	if i.WeeklyGoalKg != nil && (*i.WeeklyGoalKg < domain.MinWeeklyGoalKg || *i.WeeklyGoalKg > domain.MaxWeeklyGoalKg) {
		errs = append(errs, domain.FieldError{Field: "weekly_goal_kg", Message: "must be between 0.1 and 1.0"})
	}

	if i.GoalWeightKg != nil && (*i.GoalWeightKg < domain.MinWeightKg || *i.GoalWeightKg > domain.MaxWeightKg) {
		errs = append(errs, domain.FieldError{Field: "goal_weight_kg", Message: "must be between 20 and 500"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply copies the provided fields onto the user.
func (i UpdateInput) apply(u *domain.User) {
	if i.Name != nil {
		u.Name = *i.Name
	}
	if i.DateOfBirth != nil {
		u.DateOfBirth = *i.DateOfBirth
	}
	if i.Sex != nil {
		u.Sex = *i.Sex
	}
	if i.HeightCm != nil {
		u.HeightCm = *i.HeightCm
	}
	if i.WeightKg != nil {
		u.WeightKg = *i.WeightKg
	}
	if i.ActivityLevel != nil {
		u.ActivityLevel = *i.ActivityLevel
	}
	if i.GoalWeightKg != nil {
		goalWeight := *i.GoalWeightKg
		u.GoalWeightKg = &goalWeight
	}
	if i.GoalType != nil {
		u.GoalType = *i.GoalType
	}
	if i.WeeklyGoalKg != nil {
		u.WeeklyGoalKg = *i.WeeklyGoalKg
	}
}
