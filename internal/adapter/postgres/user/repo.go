// Package user implements the User repository using PostgreSQL.
package user

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

var userColumns = []string{
	"id", "email", "name", "password_hash",
	"date_of_birth", "sex", "height_cm", "weight_kg", "activity_level",
	"goal_weight_kg", "goal_type", "weekly_goal_kg",
	"bmi", "daily_allowance",
	"created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user. Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert("users").
		Columns(userColumns...).
		Values(
			u.ID, u.Email, u.Name, u.PasswordHash,
			u.DateOfBirth, string(u.Sex), u.HeightCm, u.WeightKg, string(u.ActivityLevel),
			u.GoalWeightKg, string(u.GoalType), u.WeeklyGoalKg,
			u.BMI, u.DailyAllowance,
			u.CreatedAt, u.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", u.ID)
	}

	return nil
}

// GetByID returns a user by ID. Returns domain.ErrNotFound if missing.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by email. Returns domain.ErrNotFound if missing.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(userColumns...).
		From("users").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user by email: %w", err)
	}

	u, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// Update persists the user's profile fields along with the derived BMI and
// daily allowance. Callers recompute derived fields before calling.
func (r *Repo) Update(ctx context.Context, u *domain.User) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Update("users").
		Set("name", u.Name).
		Set("date_of_birth", u.DateOfBirth).
		Set("sex", string(u.Sex)).
		Set("height_cm", u.HeightCm).
		Set("weight_kg", u.WeightKg).
		Set("activity_level", string(u.ActivityLevel)).
		Set("goal_weight_kg", u.GoalWeightKg).
		Set("goal_type", string(u.GoalType)).
		Set("weekly_goal_kg", u.WeeklyGoalKg).
		Set("bmi", u.BMI).
		Set("daily_allowance", u.DailyAllowance).
		Set("updated_at", u.UpdatedAt).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrNotFound)
	}

	return nil
}

// UpdateWeight updates only the cached weight and its derived fields.
// Used by the weight ledger when a new entry becomes the latest.
func (r *Repo) UpdateWeight(ctx context.Context, id uuid.UUID, weightKg, bmi float64, dailyAllowance int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Update("users").
		Set("weight_kg", weightKg).
		Set("bmi", bmi).
		Set("daily_allowance", dailyAllowance).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user weight: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a user and, via cascades, all their data.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u        domain.User
		sex      string
		activity string
		goal     string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash,
		&u.DateOfBirth, &sex, &u.HeightCm, &u.WeightKg, &activity,
		&u.GoalWeightKg, &goal, &u.WeeklyGoalKg,
		&u.BMI, &u.DailyAllowance,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Sex = domain.Sex(sex)
	u.ActivityLevel = domain.ActivityLevel(activity)
	u.GoalType = domain.GoalType(goal)
	return &u, nil
}
