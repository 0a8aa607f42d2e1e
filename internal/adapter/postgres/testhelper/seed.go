package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okravets/caltrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the reference biometrics (75.5 kg, 175 cm,
// male, moderately active, losing 0.5 kg/week) and consistent derived fields.
// Returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	goalWeight := 70.0
	user := domain.User{
		ID:            uuid.New(),
		Email:         "testuser-" + suffix + "@example.com",
		Name:          "Test User " + suffix,
		PasswordHash:  "$2a$10$seeded-hash-not-a-real-one",
		DateOfBirth:   time.Date(1992, 6, 15, 0, 0, 0, 0, time.UTC),
		Sex:           domain.SexMale,
		HeightCm:      175,
		WeightKg:      75.5,
		ActivityLevel: domain.ActivityModeratelyActive,
		GoalWeightKg:  &goalWeight,
		GoalType:      domain.GoalLose,
		WeeklyGoalKg:  0.5,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	metrics, err := domain.ComputeAll(user.NutritionInputs(), now)
	if err != nil {
		t.Fatalf("testhelper: SeedUser compute metrics: %v", err)
	}
	user.BMI = metrics.BMI
	user.DailyAllowance = metrics.DailyAllowance

	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, date_of_birth, sex, height_cm, weight_kg,
		                    activity_level, goal_weight_kg, goal_type, weekly_goal_kg, bmi, daily_allowance,
		                    created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.DateOfBirth, string(user.Sex),
		user.HeightCm, user.WeightKg, string(user.ActivityLevel), user.GoalWeightKg,
		string(user.GoalType), user.WeeklyGoalKg, user.BMI, user.DailyAllowance,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedFood creates a food item. ownerID nil seeds a system food.
func SeedFood(t *testing.T, pool *pgxpool.Pool, mealType domain.MealType, calories int, ownerID *uuid.UUID) domain.Food {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	food := domain.Food{
		ID:        uuid.New(),
		Name:      "Test Food " + uniqueSuffix(),
		MealType:  mealType,
		Calories:  calories,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO foods (id, name, image_url, meal_type, calories, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		food.ID, food.Name, food.ImageURL, string(food.MealType), food.Calories, food.OwnerID,
		food.CreatedAt, food.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFood insert: %v", err)
	}

	return food
}

// SeedMealEntry creates a meal entry for the given user, food, and date.
func SeedMealEntry(t *testing.T, pool *pgxpool.Pool, userID, foodID uuid.UUID, entryDate time.Time) domain.MealEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.MealEntry{
		ID:        uuid.New(),
		UserID:    userID,
		FoodID:    foodID,
		EntryDate: entryDate,
		EntryTime: time.Date(0, 1, 1, 12, 30, 0, 0, time.UTC),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO meal_entries (id, user_id, food_id, entry_date, entry_time, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.UserID, entry.FoodID, entry.EntryDate, entry.EntryTime, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMealEntry insert: %v", err)
	}

	return entry
}

// SeedWeightEntry creates a weight entry for the given user and date.
func SeedWeightEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, entryDate time.Time, weightKg float64) domain.WeightEntry {
	t.Helper()
	ctx := context.Background()

	entry := domain.WeightEntry{
		UserID:    userID,
		EntryDate: entryDate,
		WeightKg:  weightKg,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO weight_entries (user_id, entry_date, weight_kg)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		entry.UserID, entry.EntryDate, entry.WeightKg,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedWeightEntry insert: %v", err)
	}

	return entry
}
