package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/domain"
	"github.com/okravets/caltrack-backend/internal/service/diary"
)

// diaryService defines the minimal interface needed by DiaryHandler.
type diaryService interface {
	AddEntry(ctx context.Context, input diary.AddEntryInput) (*domain.MealEntry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	Summary(ctx context.Context, date time.Time) (*diary.DailySummary, error)
}

// DiaryHandler serves meal diary REST endpoints.
type DiaryHandler struct {
	svc diaryService
	log *slog.Logger
}

// NewDiaryHandler creates a DiaryHandler.
func NewDiaryHandler(svc diaryService, logger *slog.Logger) *DiaryHandler {
	return &DiaryHandler{svc: svc, log: logger.With("handler", "diary")}
}

type addEntryRequest struct {
	FoodID string `json:"foodId"`
	Date   string `json:"date"`
	Time   string `json:"time,omitempty"`
}

type entryResponse struct {
	ID     string `json:"id"`
	FoodID string `json:"foodId"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

type summaryEntryResponse struct {
	ID   string       `json:"id"`
	Time string       `json:"time"`
	Food foodResponse `json:"food"`
}

type mealGroupResponse struct {
	MealType string                 `json:"mealType"`
	Calories int                    `json:"calories"`
	Entries  []summaryEntryResponse `json:"entries"`
}

type summaryResponse struct {
	Date            string              `json:"date"`
	AllowanceKcal   int                 `json:"allowanceKcal"`
	ConsumedKcal    int                 `json:"consumedKcal"`
	RemainingKcal   int                 `json:"remainingKcal"`
	CurrentWeightKg float64             `json:"currentWeightKg"`
	GoalWeightKg    *float64            `json:"goalWeightKg,omitempty"`
	GoalType        string              `json:"goalType"`
	TodayWeightKg   *float64            `json:"todayWeightKg,omitempty"`
	MealCount       int                 `json:"mealCount"`
	Meals           []mealGroupResponse `json:"meals"`
}

// AddEntry handles POST /api/diary/entries.
func (h *DiaryHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	foodID, err := uuid.Parse(req.FoodID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid foodId")
		return
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	input := diary.AddEntryInput{FoodID: foodID, Date: date}
	if req.Time != "" {
		t, err := time.Parse("15:04", req.Time)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid time, want HH:MM")
			return
		}
		input.Time = t
	}

	entry, err := h.svc.AddEntry(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, entryResponse{
		ID:     entry.ID.String(),
		FoodID: entry.FoodID.String(),
		Date:   entry.EntryDate.Format(dateLayout),
		Time:   entry.EntryTime.Format("15:04"),
	})
}

// DeleteEntry handles DELETE /api/diary/entries/{id}.
func (h *DiaryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /api/diary/summary?date=2026-03-15.
func (h *DiaryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	date, ok := queryDate(w, r, "date")
	if !ok {
		return
	}

	summary, err := h.svc.Summary(r.Context(), date)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := summaryResponse{
		Date:            summary.Date.Format(dateLayout),
		AllowanceKcal:   summary.AllowanceKcal,
		ConsumedKcal:    summary.ConsumedKcal,
		RemainingKcal:   summary.RemainingKcal,
		CurrentWeightKg: summary.CurrentWeightKg,
		GoalWeightKg:    summary.GoalWeightKg,
		GoalType:        summary.GoalType.String(),
		TodayWeightKg:   summary.TodayWeightKg,
		MealCount:       summary.MealCount,
		Meals:           make([]mealGroupResponse, 0, len(summary.Meals)),
	}
	for _, group := range summary.Meals {
		g := mealGroupResponse{
			MealType: group.MealType.String(),
			Calories: group.Calories,
			Entries:  make([]summaryEntryResponse, 0, len(group.Entries)),
		}
		for _, e := range group.Entries {
			g.Entries = append(g.Entries, summaryEntryResponse{
				ID:   e.ID.String(),
				Time: e.EntryTime.Format("15:04"),
				Food: toFoodResponse(&e.Food),
			})
		}
		resp.Meals = append(resp.Meals, g)
	}

	writeJSON(w, http.StatusOK, resp)
}
