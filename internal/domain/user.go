package domain

import (
	"time"

	"github.com/google/uuid"
)

// Validation bounds for user biometrics, enforced at the service boundary.
// The calculator itself treats in-range inputs as pre-validated.
const (
	MinWeightKg     = 20.0
	MaxWeightKg     = 500.0
	MinHeightCm     = 50.0
	MaxHeightCm     = 300.0
	MinWeeklyGoalKg = 0.1
	MaxWeeklyGoalKg = 1.0
)

// User is an application user together with biometrics, goal settings,
// and cached derived fields.
//
// BMI and DailyAllowance are a materialized view over the current biometrics:
// they must always equal ComputeAll(current biometrics) and are recomputed and
// persisted by every mutator that touches weight, height, activity, goal, or
// weekly pace. They are never computed lazily on read.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string

	DateOfBirth   time.Time
	Sex           Sex
	HeightCm      float64
	WeightKg      float64
	ActivityLevel ActivityLevel

	GoalWeightKg *float64
	GoalType     GoalType
	WeeklyGoalKg float64

	// Derived, recomputed on write.
	BMI            float64
	DailyAllowance int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NutritionInputs extracts the calculator inputs from the user's current state.
func (u *User) NutritionInputs() ProfileInputs {
	return ProfileInputs{
		WeightKg:      u.WeightKg,
		HeightCm:      u.HeightCm,
		DateOfBirth:   u.DateOfBirth,
		Sex:           u.Sex,
		ActivityLevel: u.ActivityLevel,
		GoalType:      u.GoalType,
		WeeklyGoalKg:  u.WeeklyGoalKg,
	}
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
