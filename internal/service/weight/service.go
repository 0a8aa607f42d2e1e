// Package weight implements the weight ledger: one entry per user per day,
// with the latest entry mirrored into the user's cached profile fields.
package weight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
	"github.com/okravets/caltrack-backend/pkg/ctxutil"
)

// weightRepo defines the weight entry repository interface needed by weight service.
type weightRepo interface {
	Upsert(ctx context.Context, userID uuid.UUID, date time.Time, weightKg float64) (*domain.WeightEntry, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.WeightEntry, error)
	Latest(ctx context.Context, userID uuid.UUID) (*domain.WeightEntry, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.WeightEntry, error)
	Delete(ctx context.Context, userID uuid.UUID, date time.Time) error
}

// userRepo defines the user repository interface needed by weight service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateWeight(ctx context.Context, id uuid.UUID, weightKg, bmi float64, dailyAllowance int) error
}

// txManager defines the transaction manager interface needed by weight service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements weight ledger operations.
type Service struct {
	log     *slog.Logger
	entries weightRepo
	users   userRepo
	tx      txManager
	now     func() time.Time
}

// NewService creates a new weight service instance.
func NewService(logger *slog.Logger, entries weightRepo, users userRepo, tx txManager) *Service {
	return &Service{
		log:     logger.With("service", "weight"),
		entries: entries,
		users:   users,
		tx:      tx,
		now:     time.Now,
	}
}

// Log records the authenticated user's weight for a date. Writing the same
// date again replaces the stored value in place. If the written date is the
// most recent one in the ledger, the user's cached weight, BMI and daily
// allowance are updated in the same transaction. Writes for older dates
// leave the cached profile untouched.
func (s *Service) Log(ctx context.Context, input LogInput) (*domain.WeightEntry, error) {
	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	date := normalizeDate(input.Date)

	var (
		entry      *domain.WeightEntry
		propagated bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		entry, err = s.entries.Upsert(txCtx, userID, date, input.WeightKg)
		if err != nil {
			return fmt.Errorf("upsert entry: %w", err)
		}

		latest, err := s.entries.Latest(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get latest entry: %w", err)
		}
		if !latest.EntryDate.Equal(entry.EntryDate) {
			// Backfill for an older date. The cached profile reflects the
			// newest entry and stays as it is.
			return nil
		}

		user, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		inputs := user.NutritionInputs()
		inputs.WeightKg = entry.WeightKg
		metrics, err := domain.ComputeAll(inputs, s.now())
		if err != nil {
			return fmt.Errorf("compute metrics: %w", err)
		}

		if err := s.users.UpdateWeight(txCtx, userID, entry.WeightKg, metrics.BMI, metrics.DailyAllowance); err != nil {
			return fmt.Errorf("update cached weight: %w", err)
		}
		propagated = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("weight.Log: %w", err)
	}

	s.log.InfoContext(ctx, "weight logged",
		slog.String("user_id", userID.String()),
		slog.String("date", date.Format("2006-01-02")),
		slog.Float64("weight_kg", input.WeightKg),
		slog.Bool("propagated", propagated))

	return entry, nil
}

// Delete removes the authenticated user's entry for a date. The cached
// profile weight is left as it is even when the deleted entry was the
// latest one.
func (s *Service) Delete(ctx context.Context, date time.Time) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.entries.Delete(ctx, userID, normalizeDate(date)); err != nil {
		return fmt.Errorf("weight.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "weight entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("date", date.Format("2006-01-02")))
	return nil
}

// Latest returns the authenticated user's most recent entry.
func (s *Service) Latest(ctx context.Context) (*domain.WeightEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.Latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("weight.Latest: %w", err)
	}
	return entry, nil
}

// History returns the authenticated user's entries within [from, to],
// oldest first.
func (s *Service) History(ctx context.Context, from, to time.Time) ([]domain.WeightEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	from = normalizeDate(from)
	to = normalizeDate(to)
	if to.Before(from) {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "to", Message: "must not precede from"},
		}}
	}

	entries, err := s.entries.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("weight.History: %w", err)
	}
	return entries, nil
}

// normalizeDate strips the time-of-day component.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
