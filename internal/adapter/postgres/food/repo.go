// Package food implements the Food repository using PostgreSQL.
package food

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okravets/caltrack-backend/internal/adapter/postgres"
	"github.com/okravets/caltrack-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var foodColumns = []string{
	"id", "name", "image_url", "meal_type", "calories", "owner_id", "created_at", "updated_at",
}

// Repo provides food persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new food repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new food item.
func (r *Repo) Create(ctx context.Context, f *domain.Food) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert("foods").
		Columns(foodColumns...).
		Values(f.ID, f.Name, f.ImageURL, string(f.MealType), f.Calories, f.OwnerID, f.CreatedAt, f.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert food: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "food", f.ID)
	}

	return nil
}

// GetByID returns a food item by ID regardless of ownership.
// Visibility is enforced at the service layer.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(foodColumns...).
		From("foods").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select food: %w", err)
	}

	var (
		f        domain.Food
		mealType string
	)
	err = q.QueryRow(ctx, query, args...).Scan(
		&f.ID, &f.Name, &f.ImageURL, &mealType, &f.Calories, &f.OwnerID, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "food", id)
	}

	f.MealType = domain.MealType(mealType)
	return &f, nil
}

// ListVisible returns system foods plus the given user's own foods,
// ordered by name. An empty mealType or nameSearch means no filtering.
func (r *Repo) ListVisible(ctx context.Context, userID uuid.UUID, mealType domain.MealType, nameSearch string) ([]domain.Food, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := qb.Select(foodColumns...).
		From("foods").
		Where(sq.Or{
			sq.Eq{"owner_id": nil},
			sq.Eq{"owner_id": userID},
		}).
		OrderBy("name ASC")

	if mealType != "" {
		builder = builder.Where(sq.Eq{"meal_type": string(mealType)})
	}
	if nameSearch != "" {
		builder = builder.Where(sq.ILike{"name": "%" + nameSearch + "%"})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list foods: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "food", uuid.Nil)
	}
	defer rows.Close()

	var foods []domain.Food
	for rows.Next() {
		var (
			f        domain.Food
			mealType string
		)
		err := rows.Scan(&f.ID, &f.Name, &f.ImageURL, &mealType, &f.Calories, &f.OwnerID, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, postgres.MapError(err, "food", uuid.Nil)
		}
		f.MealType = domain.MealType(mealType)
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "food", uuid.Nil)
	}

	return foods, nil
}

// Update persists changes to a food item.
func (r *Repo) Update(ctx context.Context, f *domain.Food) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Update("foods").
		Set("name", f.Name).
		Set("image_url", f.ImageURL).
		Set("meal_type", string(f.MealType)).
		Set("calories", f.Calories).
		Set("updated_at", f.UpdatedAt).
		Where(sq.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update food: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "food", f.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("food %s: %w", f.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a food item. Fails with domain.ErrConflict if meal entries
// still reference it.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete("foods").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete food: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		mapped := postgres.MapError(err, "food", id)
		// FK violations on delete mean the food is still referenced,
		// which is a conflict rather than a missing row.
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("food %s: %w", id, domain.ErrConflict)
		}
		return mapped
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("food %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
