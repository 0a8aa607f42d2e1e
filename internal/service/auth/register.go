package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/okravets/caltrack-backend/internal/domain"
)

// Register creates a new user with a complete nutrition profile and logs
// them in. The derived BMI and daily allowance are computed from the
// submitted biometrics before the row is written.
// Returns ErrAlreadyExists if the email is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	now := time.Now()

	// Step 1: Validate input
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Step 3: Build the user with derived fields filled in.
	newUser := &domain.User{
		ID:            uuid.New(),
		Email:         input.Email,
		Name:          input.Name,
		PasswordHash:  string(hash),
		DateOfBirth:   input.DateOfBirth,
		Sex:           input.Sex,
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		ActivityLevel: input.ActivityLevel,
		GoalWeightKg:  input.GoalWeightKg,
		GoalType:      input.GoalType,
		WeeklyGoalKg:  input.WeeklyGoalKg,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	metrics, err := domain.ComputeAll(newUser.NutritionInputs(), now)
	if err != nil {
		return nil, fmt.Errorf("auth.Register compute metrics: %w", err)
	}
	newUser.BMI = metrics.BMI
	newUser.DailyAllowance = metrics.DailyAllowance

	// Step 4: Create user. Email uniqueness is enforced by a DB constraint.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.users.Create(txCtx, newUser)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.Register: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Step 5: Issue tokens
	result, err := s.issueTokens(ctx, newUser)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", newUser.ID.String()))

	return result, nil
}
