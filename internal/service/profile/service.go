// Package profile implements nutrition profile operations: reading the
// authenticated user's profile and updating biometrics with the derived
// fields kept in sync.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
	"github.com/okravets/caltrack-backend/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by profile service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// txManager defines the transaction manager interface needed by profile service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
	now   func() time.Time
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, users userRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "profile"),
		users: users,
		tx:    tx,
		now:   time.Now,
	}
}

// Get returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Get(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Get: %w", err)
	}

	return user, nil
}

// Metrics returns the full nutrition breakdown for the authenticated user,
// computed from the current biometrics.
func (s *Service) Metrics(ctx context.Context) (domain.Metrics, error) {
	user, err := s.Get(ctx)
	if err != nil {
		return domain.Metrics{}, err
	}

	metrics, err := domain.ComputeAll(user.NutritionInputs(), s.now())
	if err != nil {
		return domain.Metrics{}, fmt.Errorf("profile.Metrics: %w", err)
	}

	return metrics, nil
}

// Update replaces the authenticated user's biometrics and goal settings and
// recomputes the cached BMI and daily allowance in the same write. The two
// derived columns never go stale relative to the inputs.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.User, error) {
	now := s.now()

	// Step 1: Validate input
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	// Step 2: Extract userID from context
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// Step 3: Load, apply, recompute, persist in one transaction
	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		input.apply(user)

		metrics, err := domain.ComputeAll(user.NutritionInputs(), now)
		if err != nil {
			return fmt.Errorf("compute metrics: %w", err)
		}
		user.BMI = metrics.BMI
		user.DailyAllowance = metrics.DailyAllowance
		user.UpdatedAt = now

		if err := s.users.Update(txCtx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("profile.Update: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Float64("bmi", updated.BMI),
		slog.Int("daily_allowance", updated.DailyAllowance))

	return updated, nil
}

// Delete removes the authenticated user's account and all associated data.
func (s *Service) Delete(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("profile.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted", slog.String("user_id", userID.String()))
	return nil
}
