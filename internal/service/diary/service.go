// Package diary implements the meal diary and the daily dashboard summary.
package diary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
	"github.com/okravets/caltrack-backend/pkg/ctxutil"
)

// entryRepo defines the meal entry repository interface needed by diary service.
type entryRepo interface {
	Create(ctx context.Context, entry *domain.MealEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MealEntry, error)
	ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealEntryWithFood, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// foodRepo defines the food repository interface needed by diary service.
type foodRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error)
}

// userRepo defines the user repository interface needed by diary service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// weightRepo defines the weight ledger interface needed by diary service.
type weightRepo interface {
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.WeightEntry, error)
}

// Service implements diary operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	foods   foodRepo
	users   userRepo
	weights weightRepo
	now     func() time.Time
}

// NewService creates a new diary service instance.
func NewService(logger *slog.Logger, entries entryRepo, foods foodRepo, users userRepo, weights weightRepo) *Service {
	return &Service{
		log:     logger.With("service", "diary"),
		entries: entries,
		foods:   foods,
		users:   users,
		weights: weights,
		now:     time.Now,
	}
}

// AddEntry records that the authenticated user ate a food on a date.
// The referenced food must be visible to the user.
func (s *Service) AddEntry(ctx context.Context, input AddEntryInput) (*domain.MealEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	food, err := s.foods.GetByID(ctx, input.FoodID)
	if err != nil {
		return nil, fmt.Errorf("diary.AddEntry get food: %w", err)
	}
	if !food.VisibleTo(userID) {
		return nil, fmt.Errorf("food %s: %w", input.FoodID, domain.ErrNotFound)
	}

	now := s.now()
	entryTime := input.Time
	if entryTime.IsZero() {
		entryTime = time.Date(0, 1, 1, now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
	}

	entry := &domain.MealEntry{
		ID:        uuid.New(),
		UserID:    userID,
		FoodID:    input.FoodID,
		EntryDate: normalizeDate(input.Date),
		EntryTime: entryTime,
		CreatedAt: now,
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("diary.AddEntry: %w", err)
	}

	s.log.InfoContext(ctx, "meal entry added",
		slog.String("user_id", userID.String()),
		slog.String("food_id", input.FoodID.String()),
		slog.String("date", entry.EntryDate.Format("2006-01-02")))

	return entry, nil
}

// DeleteEntry removes one of the authenticated user's entries.
// Another user's entry reads as missing.
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("diary.DeleteEntry: %w", err)
	}
	if entry.UserID != userID {
		return fmt.Errorf("meal_entry %s: %w", id, domain.ErrNotFound)
	}

	if err := s.entries.Delete(ctx, id); err != nil {
		return fmt.Errorf("diary.DeleteEntry: %w", err)
	}

	s.log.InfoContext(ctx, "meal entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", id.String()))

	return nil
}

// Summary builds the dashboard view for a date: the user's daily allowance,
// the calories consumed through the diary, the remainder (which goes
// negative once the allowance is exceeded), the entries grouped by meal,
// and the day's weight entry when one was logged. Only meal types with
// entries appear. Calories are read through the referenced foods at
// aggregation time, so edits to a food retroactively change past summaries.
func (s *Service) Summary(ctx context.Context, date time.Time) (*DailySummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("diary.Summary get user: %w", err)
	}

	day := normalizeDate(date)
	entries, err := s.entries.ListByDate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("diary.Summary list entries: %w", err)
	}

	summary := &DailySummary{
		Date:            day,
		AllowanceKcal:   user.DailyAllowance,
		CurrentWeightKg: user.WeightKg,
		GoalWeightKg:    user.GoalWeightKg,
		GoalType:        user.GoalType,
		MealCount:       len(entries),
		Meals:           make([]MealGroup, 0, len(mealOrder)),
	}

	byMeal := make(map[domain.MealType][]domain.MealEntryWithFood, len(mealOrder))
	for _, e := range entries {
		byMeal[e.Food.MealType] = append(byMeal[e.Food.MealType], e)
		summary.ConsumedKcal += e.Food.Calories
	}

	for _, meal := range mealOrder {
		group := MealGroup{MealType: meal, Entries: byMeal[meal]}
		if len(group.Entries) == 0 {
			continue
		}
		for _, e := range group.Entries {
			group.Calories += e.Food.Calories
		}
		summary.Meals = append(summary.Meals, group)
	}

	weightEntry, err := s.weights.GetByDate(ctx, userID, day)
	switch {
	case err == nil:
		summary.TodayWeightKg = &weightEntry.WeightKg
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("diary.Summary get weight: %w", err)
	}

	summary.RemainingKcal = summary.AllowanceKcal - summary.ConsumedKcal
	return summary, nil
}

// mealOrder is the fixed dashboard ordering of meal groups.
var mealOrder = []domain.MealType{
	domain.MealBreakfast,
	domain.MealLunch,
	domain.MealDinner,
	domain.MealSnacks,
	domain.MealOther,
}

// normalizeDate strips the time-of-day component.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
