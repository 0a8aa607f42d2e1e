// Package food implements the food catalog: system foods visible to
// everyone plus per-user custom foods.
package food

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
	"github.com/okravets/caltrack-backend/internal/provider"
	"github.com/okravets/caltrack-backend/pkg/ctxutil"
)

// foodRepo defines the food repository interface needed by food service.
type foodRepo interface {
	Create(ctx context.Context, food *domain.Food) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error)
	ListVisible(ctx context.Context, userID uuid.UUID, mealType domain.MealType, nameSearch string) ([]domain.Food, error)
	Update(ctx context.Context, food *domain.Food) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// catalogProvider defines the external food catalog interface needed by
// food service.
type catalogProvider interface {
	Search(ctx context.Context, query string) ([]provider.FoodResult, error)
}

// ListFilter narrows List results. Zero values mean no filtering.
type ListFilter struct {
	MealType   domain.MealType
	NameSearch string
}

// Service implements food catalog operations.
type Service struct {
	log     *slog.Logger
	foods   foodRepo
	catalog catalogProvider
	now     func() time.Time
}

// NewService creates a new food service instance.
func NewService(logger *slog.Logger, foods foodRepo, catalog catalogProvider) *Service {
	return &Service{
		log:     logger.With("service", "food"),
		foods:   foods,
		catalog: catalog,
		now:     time.Now,
	}
}

// Create adds a custom food owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Food, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now()
	food := &domain.Food{
		ID:        uuid.New(),
		Name:      input.Name,
		ImageURL:  input.ImageURL,
		MealType:  input.MealType,
		Calories:  input.Calories,
		OwnerID:   &userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.foods.Create(ctx, food); err != nil {
		return nil, fmt.Errorf("food.Create: %w", err)
	}

	s.log.InfoContext(ctx, "food created",
		slog.String("food_id", food.ID.String()),
		slog.String("user_id", userID.String()))

	return food, nil
}

// Get returns a food item the authenticated user may see.
// Returns ErrNotFound for another user's custom food so that its existence
// is not revealed.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Food, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	food, err := s.foods.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("food.Get: %w", err)
	}
	if !food.VisibleTo(userID) {
		return nil, fmt.Errorf("food %s: %w", id, domain.ErrNotFound)
	}

	return food, nil
}

// List returns all foods visible to the authenticated user, optionally
// filtered by meal type or a name substring.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]domain.Food, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if filter.MealType != "" && !filter.MealType.IsValid() {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "meal_type", Message: "invalid meal type"},
		}}
	}

	foods, err := s.foods.ListVisible(ctx, userID, filter.MealType, filter.NameSearch)
	if err != nil {
		return nil, fmt.Errorf("food.List: %w", err)
	}

	return foods, nil
}

// SearchCatalog queries the external food catalog by free text. Results are
// not persisted; the client picks one and creates a custom food from it.
func (s *Service) SearchCatalog(ctx context.Context, query string) ([]provider.FoodResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("q", "is required")
	}

	results, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("food.SearchCatalog: %w", err)
	}

	return results, nil
}

// Update modifies a custom food owned by the authenticated user.
// System foods and other users' foods cannot be edited; the latter return
// ErrNotFound, the former ErrForbidden.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Food, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	food, err := s.foods.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("food.Update: %w", err)
	}
	if err := s.authorizeWrite(food, userID, id); err != nil {
		return nil, err
	}

	input.apply(food)
	food.UpdatedAt = s.now()

	if err := s.foods.Update(ctx, food); err != nil {
		return nil, fmt.Errorf("food.Update: %w", err)
	}

	s.log.InfoContext(ctx, "food updated",
		slog.String("food_id", id.String()),
		slog.String("user_id", userID.String()))

	return food, nil
}

// Delete removes a custom food owned by the authenticated user.
// Returns ErrConflict if meal entries still reference it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	food, err := s.foods.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("food.Delete: %w", err)
	}
	if err := s.authorizeWrite(food, userID, id); err != nil {
		return err
	}

	if err := s.foods.Delete(ctx, id); err != nil {
		return fmt.Errorf("food.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "food deleted",
		slog.String("food_id", id.String()),
		slog.String("user_id", userID.String()))

	return nil
}

func (s *Service) authorizeWrite(food *domain.Food, userID, id uuid.UUID) error {
	if !food.IsCustom() {
		return fmt.Errorf("food %s is a system food: %w", id, domain.ErrForbidden)
	}
	if !food.VisibleTo(userID) {
		return fmt.Errorf("food %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
