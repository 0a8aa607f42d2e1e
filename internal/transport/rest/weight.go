package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/okravets/caltrack-backend/internal/domain"
	"github.com/okravets/caltrack-backend/internal/service/weight"
)

// weightService defines the minimal interface needed by WeightHandler.
type weightService interface {
	Log(ctx context.Context, input weight.LogInput) (*domain.WeightEntry, error)
	Delete(ctx context.Context, date time.Time) error
	Latest(ctx context.Context) (*domain.WeightEntry, error)
	History(ctx context.Context, from, to time.Time) ([]domain.WeightEntry, error)
}

// WeightHandler serves weight ledger REST endpoints.
type WeightHandler struct {
	svc weightService
	log *slog.Logger
}

// NewWeightHandler creates a WeightHandler.
func NewWeightHandler(svc weightService, logger *slog.Logger) *WeightHandler {
	return &WeightHandler{svc: svc, log: logger.With("handler", "weight")}
}

type logWeightRequest struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weightKg"`
}

type weightEntryResponse struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weightKg"`
}

// Log handles POST /api/weight. Logging the same date twice replaces the
// stored value.
func (h *WeightHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req logWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	entry, err := h.svc.Log(r.Context(), weight.LogInput{
		Date:     date,
		WeightKg: req.WeightKg,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWeightEntryResponse(entry))
}

// Delete handles DELETE /api/weight/{date}.
func (h *WeightHandler) Delete(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(dateLayout, r.PathValue("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		return
	}

	if err := h.svc.Delete(r.Context(), date); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Latest handles GET /api/weight/latest.
func (h *WeightHandler) Latest(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Latest(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWeightEntryResponse(entry))
}

// History handles GET /api/weight?from=2026-03-01&to=2026-03-31.
// Without parameters it returns the last 30 days.
func (h *WeightHandler) History(w http.ResponseWriter, r *http.Request) {
	to, ok := queryDate(w, r, "to")
	if !ok {
		return
	}

	from := to.AddDate(0, 0, -30)
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from date, want YYYY-MM-DD")
			return
		}
		from = parsed
	}

	entries, err := h.svc.History(r.Context(), from, to)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]weightEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, toWeightEntryResponse(&entries[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toWeightEntryResponse(e *domain.WeightEntry) weightEntryResponse {
	return weightEntryResponse{
		Date:     e.EntryDate.Format(dateLayout),
		WeightKg: e.WeightKg,
	}
}
