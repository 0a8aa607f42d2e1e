package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxFoodCalories bounds the calorie count of a single food item.
const MaxFoodCalories = 10000

// Food is a catalog item referenced by meal entries. Calories live here, not
// on the entries: editing a food's calorie count retroactively changes
// historical daily totals. That is a deliberate modeling choice.
type Food struct {
	ID       uuid.UUID
	Name     string
	ImageURL *string
	MealType MealType
	Calories int

	// OwnerID is nil for globally visible system foods and set for
	// user-created foods visible only to their owner.
	OwnerID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCustom reports whether the food belongs to a specific user.
func (f *Food) IsCustom() bool {
	return f.OwnerID != nil
}

// VisibleTo reports whether the given user may reference this food.
func (f *Food) VisibleTo(userID uuid.UUID) bool {
	return f.OwnerID == nil || *f.OwnerID == userID
}
