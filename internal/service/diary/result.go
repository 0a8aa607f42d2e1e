package diary

import (
	"time"

	"github.com/okravets/caltrack-backend/internal/domain"
)

// MealGroup is one meal section of the daily summary.
type MealGroup struct {
	MealType domain.MealType
	Calories int
	Entries  []domain.MealEntryWithFood
}

// DailySummary is the dashboard view for one calendar date. Meals contains
// one group per meal type that has entries, in breakfast-to-other order;
// meal types without entries are omitted. TodayWeightKg is nil when no
// weight was logged for the date.
type DailySummary struct {
	Date            time.Time
	AllowanceKcal   int
	ConsumedKcal    int
	RemainingKcal   int
	CurrentWeightKg float64
	GoalWeightKg    *float64
	GoalType        domain.GoalType
	TodayWeightKg   *float64
	MealCount       int
	Meals           []MealGroup
}
