// Package weightentry implements the WeightEntry repository using PostgreSQL.
package weightentry

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

var entryColumns = []string{"id", "user_id", "entry_date", "weight_kg", "created_at"}

// Repo provides weight-entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new weight-entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert inserts a weight entry or, if one already exists for the
// (user, date) pair, replaces its weight in place. A single statement so
// concurrent writes for the same day cannot produce duplicates. The original
// created_at is preserved on replace.
func (r *Repo) Upsert(ctx context.Context, userID uuid.UUID, date time.Time, weightKg float64) (*domain.WeightEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert("weight_entries").
		Columns("user_id", "entry_date", "weight_kg").
		Values(userID, date, weightKg).
		Suffix(`ON CONFLICT (user_id, entry_date)
			DO UPDATE SET weight_kg = EXCLUDED.weight_kg
			RETURNING id, user_id, entry_date, weight_kg, created_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert weight entry: %w", err)
	}

	var e domain.WeightEntry
	err = q.QueryRow(ctx, query, args...).Scan(&e.ID, &e.UserID, &e.EntryDate, &e.WeightKg, &e.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "weight_entry", uuid.Nil)
	}

	return &e, nil
}

// GetByDate returns a user's entry for a specific date.
func (r *Repo) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.WeightEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(entryColumns...).
		From("weight_entries").
		Where(sq.Eq{"user_id": userID, "entry_date": date}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select weight entry: %w", err)
	}

	var e domain.WeightEntry
	err = q.QueryRow(ctx, query, args...).Scan(&e.ID, &e.UserID, &e.EntryDate, &e.WeightKg, &e.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "weight_entry", uuid.Nil)
	}

	return &e, nil
}

// Latest returns the user's entry with the most recent date.
// Returns domain.ErrNotFound if the user has no entries.
func (r *Repo) Latest(ctx context.Context, userID uuid.UUID) (*domain.WeightEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(entryColumns...).
		From("weight_entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("entry_date DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select latest weight entry: %w", err)
	}

	var e domain.WeightEntry
	err = q.QueryRow(ctx, query, args...).Scan(&e.ID, &e.UserID, &e.EntryDate, &e.WeightKg, &e.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "weight_entry", uuid.Nil)
	}

	return &e, nil
}

// ListRange returns the user's entries with dates in [from, to], oldest first.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.WeightEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select(entryColumns...).
		From("weight_entries").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"entry_date": from}).
		Where(sq.LtOrEq{"entry_date": to}).
		OrderBy("entry_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list weight entries: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "weight_entry", uuid.Nil)
	}
	defer rows.Close()

	var entries []domain.WeightEntry
	for rows.Next() {
		var e domain.WeightEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.EntryDate, &e.WeightKg, &e.CreatedAt); err != nil {
			return nil, postgres.MapError(err, "weight_entry", uuid.Nil)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "weight_entry", uuid.Nil)
	}

	return entries, nil
}

// Delete removes the user's entry for a date.
func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, date time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Delete("weight_entries").
		Where(sq.Eq{"user_id": userID, "entry_date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete weight entry: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "weight_entry", uuid.Nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("weight_entry: %w", domain.ErrNotFound)
	}

	return nil
}
