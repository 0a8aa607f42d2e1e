// Package advisor implements the LLM-backed meal plan, advice, and
// progress review features.
package advisor

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

// adviceRepo defines the persistence interface for generated plans and reviews.
type adviceRepo interface {
	UpsertPlan(ctx context.Context, p *domain.Plan) error
	GetPlan(ctx context.Context, userID uuid.UUID) (*domain.Plan, error)
	UpsertReview(ctx context.Context, rev *domain.Review) error
	GetReview(ctx context.Context, userID uuid.UUID) (*domain.Review, error)
}

// userRepo defines the user repository interface needed by advisor service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// weightRepo provides the weight history used by progress reviews.
type weightRepo interface {
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.WeightEntry, error)
}

// mealRepo provides calorie totals used by progress reviews.
type mealRepo interface {
	TotalCaloriesForDate(ctx context.Context, userID uuid.UUID, date time.Time) (int, error)
}

// llmClient sends a prompt to the language model and returns its text reply.
type llmClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Service implements advisor operations.
type Service struct {
	log     *slog.Logger
	advice  adviceRepo
	users   userRepo
	weights weightRepo
	meals   mealRepo
	llm     llmClient
	now     func() time.Time
}

// NewService creates a new advisor service instance.
func NewService(logger *slog.Logger, advice adviceRepo, users userRepo, weights weightRepo, meals mealRepo, llm llmClient) *Service {
	return &Service{
		log:     logger.With("service", "advisor"),
		advice:  advice,
		users:   users,
		weights: weights,
		meals:   meals,
		llm:     llm,
		now:     time.Now,
	}
}

// GetMealPlan returns the user's meal plan, generating one when none is
// stored yet or the stored one has gone stale.
func (s *Service) GetMealPlan(ctx context.Context) (*domain.Plan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	plan, err := s.advice.GetPlan(ctx, userID)
	switch {
	case err == nil && !plan.IsStale(s.now()):
		return plan, nil
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("advisor.GetMealPlan: %w", err)
	}

	return s.RegenerateMealPlan(ctx)
}

// RegenerateMealPlan builds a fresh meal plan from the user's current
// profile and stores it, replacing any previous one.
func (s *Service) RegenerateMealPlan(ctx context.Context) (*domain.Plan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("advisor.RegenerateMealPlan get user: %w", err)
	}

	text, err := s.llm.Complete(ctx, buildPlanPrompt(user, s.now()))
	if err != nil {
		return nil, fmt.Errorf("advisor.RegenerateMealPlan: %w", err)
	}

	plan := &domain.Plan{
		UserID:      userID,
		Text:        text,
		GeneratedAt: s.now(),
	}
	if err := s.advice.UpsertPlan(ctx, plan); err != nil {
		return nil, fmt.Errorf("advisor.RegenerateMealPlan store: %w", err)
	}

	s.log.InfoContext(ctx, "meal plan generated", slog.String("user_id", userID.String()))
	return plan, nil
}

// Advise answers a free-form nutrition question with the user's profile
// as context. The answer is not persisted.
func (s *Service) Advise(ctx context.Context, question string) (string, error) {
	if err := validateQuestion(question); err != nil {
		return "", err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("advisor.Advise get user: %w", err)
	}

	answer, err := s.llm.Complete(ctx, buildAdvicePrompt(user, question, s.now()))
	if err != nil {
		return "", fmt.Errorf("advisor.Advise: %w", err)
	}

	return answer, nil
}

// GetReview returns the user's progress review, generating one when none
// is stored yet or the stored one has gone stale.
func (s *Service) GetReview(ctx context.Context) (*domain.Review, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	review, err := s.advice.GetReview(ctx, userID)
	switch {
	case err == nil && !review.IsStale(s.now()):
		return review, nil
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("advisor.GetReview: %w", err)
	}

	return s.RegenerateReview(ctx)
}

// reviewWeightWindow and reviewCalorieWindow bound how much history feeds
// a progress review.
const (
	reviewWeightWindow = 14 * 24 * time.Hour
	reviewCalorieDays  = 7
)

// RegenerateReview builds a fresh progress review over the user's recent
// weight history and diary totals and stores it.
func (s *Service) RegenerateReview(ctx context.Context) (*domain.Review, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("advisor.RegenerateReview get user: %w", err)
	}

	now := s.now()
	weights, err := s.weights.ListRange(ctx, userID, now.Add(-reviewWeightWindow), now)
	if err != nil {
		return nil, fmt.Errorf("advisor.RegenerateReview weight history: %w", err)
	}

	totals := make([]dayTotal, 0, reviewCalorieDays)
	for i := reviewCalorieDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		kcal, err := s.meals.TotalCaloriesForDate(ctx, userID, day)
		if err != nil {
			return nil, fmt.Errorf("advisor.RegenerateReview diary totals: %w", err)
		}
		totals = append(totals, dayTotal{Date: day, Kcal: kcal})
	}

	text, err := s.llm.Complete(ctx, buildReviewPrompt(user, weights, totals, now))
	if err != nil {
		return nil, fmt.Errorf("advisor.RegenerateReview: %w", err)
	}

	review := &domain.Review{
		UserID:      userID,
		Text:        text,
		GeneratedAt: now,
	}
	if err := s.advice.UpsertReview(ctx, review); err != nil {
		return nil, fmt.Errorf("advisor.RegenerateReview store: %w", err)
	}

	s.log.InfoContext(ctx, "progress review generated", slog.String("user_id", userID.String()))
	return review, nil
}

const maxQuestionLen = 2000

func validateQuestion(question string) error {
	if question == "" {
		return domain.NewValidationError("question", "is required")
	}
	if len(question) > maxQuestionLen {
		return domain.NewValidationError("question", "is too long")
	}
	return nil
}
