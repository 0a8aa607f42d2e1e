package domain

import (
	"time"

	"github.com/google/uuid"
)

// MealEntry records that a user consumed a food on a given date and time.
// It carries no calorie value of its own; totals are read through the
// referenced Food at aggregation time.
type MealEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FoodID    uuid.UUID
	EntryDate time.Time // date component only
	EntryTime time.Time // time of day
	CreatedAt time.Time
}

// MealEntryWithFood is a meal entry joined with its food row, the shape the
// aggregator works with.
type MealEntryWithFood struct {
	MealEntry
	Food Food
}

// WeightEntry records a user's weight for a calendar date.
// At most one entry exists per (user, date); a write for an existing date
// replaces the stored weight in place.
type WeightEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	EntryDate time.Time
	WeightKg  float64
	CreatedAt time.Time
}
