// Package mealentry implements the MealEntry repository using PostgreSQL.
package mealentry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okravets/caltrack-backend/internal/adapter/postgres"
	"github.com/okravets/caltrack-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides meal-entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meal-entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new meal entry.
func (r *Repo) Create(ctx context.Context, e *domain.MealEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert("meal_entries").
		Columns("id", "user_id", "food_id", "entry_date", "entry_time", "created_at").
		Values(e.ID, e.UserID, e.FoodID, e.EntryDate, e.EntryTime, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert meal entry: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "meal_entry", e.ID)
	}

	return nil
}

// GetByID returns a meal entry by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MealEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select("id", "user_id", "food_id", "entry_date", "entry_time", "created_at").
		From("meal_entries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select meal entry: %w", err)
	}

	var e domain.MealEntry
	err = q.QueryRow(ctx, query, args...).Scan(
		&e.ID, &e.UserID, &e.FoodID, &e.EntryDate, &e.EntryTime, &e.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "meal_entry", id)
	}

	return &e, nil
}

// ListByDate returns all of a user's entries for a date joined with their
// foods, ordered by entry time.
func (r *Repo) ListByDate(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.MealEntryWithFood, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(
		"e.id", "e.user_id", "e.food_id", "e.entry_date", "e.entry_time", "e.created_at",
		"f.id", "f.name", "f.image_url", "f.meal_type", "f.calories", "f.owner_id", "f.created_at", "f.updated_at",
	).
		From("meal_entries e").
		Join("foods f ON f.id = e.food_id").
		Where(sq.Eq{"e.user_id": userID, "e.entry_date": date}).
		OrderBy("e.entry_time ASC", "e.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list meal entries: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "meal_entry", uuid.Nil)
	}
	defer rows.Close()

	var entries []domain.MealEntryWithFood
	for rows.Next() {
		var (
			e        domain.MealEntryWithFood
			mealType string
		)
		err := rows.Scan(
			&e.ID, &e.UserID, &e.FoodID, &e.EntryDate, &e.EntryTime, &e.CreatedAt,
			&e.Food.ID, &e.Food.Name, &e.Food.ImageURL, &mealType, &e.Food.Calories,
			&e.Food.OwnerID, &e.Food.CreatedAt, &e.Food.UpdatedAt,
		)
		if err != nil {
			return nil, postgres.MapError(err, "meal_entry", uuid.Nil)
		}
		e.Food.MealType = domain.MealType(mealType)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "meal_entry", uuid.Nil)
	}

	return entries, nil
}

// TotalCaloriesForDate sums the calories of a user's entries on a date
// through the referenced foods.
func (r *Repo) TotalCaloriesForDate(ctx context.Context, userID uuid.UUID, date time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select("COALESCE(SUM(f.calories), 0)").
		From("meal_entries e").
		Join("foods f ON f.id = e.food_id").
		Where(sq.Eq{"e.user_id": userID, "e.entry_date": date}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build sum calories: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "meal_entry", uuid.Nil)
	}

	return total, nil
}

// Delete removes a meal entry.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete("meal_entries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete meal entry: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "meal_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal_entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
