package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
	"github.com/okravets/caltrack-backend/internal/provider"
	"github.com/okravets/caltrack-backend/internal/service/food"
)

// foodService defines the minimal interface needed by FoodHandler.
type foodService interface {
	Create(ctx context.Context, input food.CreateInput) (*domain.Food, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Food, error)
	List(ctx context.Context, filter food.ListFilter) ([]domain.Food, error)
	SearchCatalog(ctx context.Context, query string) ([]provider.FoodResult, error)
	Update(ctx context.Context, id uuid.UUID, input food.UpdateInput) (*domain.Food, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FoodHandler serves food catalog REST endpoints.
type FoodHandler struct {
	svc foodService
	log *slog.Logger
}

// NewFoodHandler creates a FoodHandler.
func NewFoodHandler(svc foodService, logger *slog.Logger) *FoodHandler {
	return &FoodHandler{svc: svc, log: logger.With("handler", "food")}
}

type createFoodRequest struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
	MealType string  `json:"mealType"`
	Calories int     `json:"calories"`
}

type updateFoodRequest struct {
	Name     *string `json:"name"`
	ImageURL *string `json:"imageUrl"`
	MealType *string `json:"mealType"`
	Calories *int    `json:"calories"`
}

type foodResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl,omitempty"`
	MealType string  `json:"mealType"`
	Calories int     `json:"calories"`
	IsCustom bool    `json:"isCustom"`
}

// Create handles POST /api/foods.
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), food.CreateInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		MealType: domain.MealType(req.MealType),
		Calories: req.Calories,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFoodResponse(created))
}

// Get handles GET /api/foods/{id}.
func (h *FoodHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	f, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFoodResponse(f))
}

// List handles GET /api/foods?mealType=BREAKFAST&search=oat.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := food.ListFilter{
		MealType:   domain.MealType(r.URL.Query().Get("mealType")),
		NameSearch: r.URL.Query().Get("search"),
	}

	foods, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]foodResponse, 0, len(foods))
	for i := range foods {
		resp = append(resp, toFoodResponse(&foods[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

type catalogResultResponse struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Calories int     `json:"calories"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// SearchCatalog handles GET /api/foods/search?q=yogurt.
func (h *FoodHandler) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.SearchCatalog(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]catalogResultResponse, 0, len(results))
	for _, res := range results {
		resp = append(resp, catalogResultResponse{
			Name:     res.Name,
			Brand:    res.Brand,
			Calories: res.Calories,
			ImageURL: res.ImageURL,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/foods/{id}.
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := food.UpdateInput{
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Calories: req.Calories,
	}
	if req.MealType != nil {
		meal := domain.MealType(*req.MealType)
		input.MealType = &meal
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFoodResponse(updated))
}

// Delete handles DELETE /api/foods/{id}.
func (h *FoodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toFoodResponse(f *domain.Food) foodResponse {
	return foodResponse{
		ID:       f.ID.String(),
		Name:     f.Name,
		ImageURL: f.ImageURL,
		MealType: f.MealType.String(),
		Calories: f.Calories,
		IsCustom: f.IsCustom(),
	}
}
