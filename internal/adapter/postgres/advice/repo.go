// Package advice implements persistence for generated plans and reviews.
package advice

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

// Repo provides plan and review persistence backed by PostgreSQL.
// Both tables are keyed by user_id: one row per user, regenerated in place.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new advice repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// UpsertPlan stores the user's meal plan, replacing any previous one.
func (r *Repo) UpsertPlan(ctx context.Context, p *domain.Plan) error {
	return r.upsert(ctx, "plans", p.UserID, p.Text, p.GeneratedAt)
}

// GetPlan returns the user's stored meal plan.
func (r *Repo) GetPlan(ctx context.Context, userID uuid.UUID) (*domain.Plan, error) {
	text, generatedAt, err := r.get(ctx, "plans", userID)
	if err != nil {
		return nil, err
	}
	return &domain.Plan{UserID: userID, Text: text, GeneratedAt: generatedAt}, nil
}

// UpsertReview stores the user's progress review, replacing any previous one.
func (r *Repo) UpsertReview(ctx context.Context, rev *domain.Review) error {
	return r.upsert(ctx, "reviews", rev.UserID, rev.Text, rev.GeneratedAt)
}

// GetReview returns the user's stored progress review.
func (r *Repo) GetReview(ctx context.Context, userID uuid.UUID) (*domain.Review, error) {
	text, generatedAt, err := r.get(ctx, "reviews", userID)
	if err != nil {
		return nil, err
	}
	return &domain.Review{UserID: userID, Text: text, GeneratedAt: generatedAt}, nil
}

func (r *Repo) upsert(ctx context.Context, table string, userID uuid.UUID, text string, generatedAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Insert(table).
		Columns("user_id", "body", "generated_at").
		Values(userID, text, generatedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET body = EXCLUDED.body, generated_at = EXCLUDED.generated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert %s: %w", table, err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, table, userID)
	}

	return nil
}

func (r *Repo) get(ctx context.Context, table string, userID uuid.UUID) (string, time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.Select("body", "generated_at").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("build select %s: %w", table, err)
	}

	var (
		text        string
		generatedAt time.Time
	)
	if err := q.QueryRow(ctx, query, args...).Scan(&text, &generatedAt); err != nil {
		return "", time.Time{}, postgres.MapError(err, table, userID)
	}

	return text, generatedAt, nil
}
