package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/okravets/caltrack-backend/internal/domain"
)

// advisorService defines the minimal interface needed by AdvisorHandler.
type advisorService interface {
	GetMealPlan(ctx context.Context) (*domain.Plan, error)
	RegenerateMealPlan(ctx context.Context) (*domain.Plan, error)
	Advise(ctx context.Context, question string) (string, error)
	GetReview(ctx context.Context) (*domain.Review, error)
	RegenerateReview(ctx context.Context) (*domain.Review, error)
}

// AdvisorHandler serves LLM advisor REST endpoints.
type AdvisorHandler struct {
	svc advisorService
	log *slog.Logger
}

// NewAdvisorHandler creates an AdvisorHandler.
func NewAdvisorHandler(svc advisorService, logger *slog.Logger) *AdvisorHandler {
	return &AdvisorHandler{svc: svc, log: logger.With("handler", "advisor")}
}

type adviceRequest struct {
	Question string `json:"question"`
}

type adviceResponse struct {
	Answer string `json:"answer"`
}

type generatedTextResponse struct {
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// GetPlan handles GET /api/advisor/plan.
func (h *AdvisorHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.GetMealPlan(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, generatedTextResponse{Text: plan.Text, GeneratedAt: plan.GeneratedAt})
}

// RegeneratePlan handles POST /api/advisor/plan.
func (h *AdvisorHandler) RegeneratePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.svc.RegenerateMealPlan(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, generatedTextResponse{Text: plan.Text, GeneratedAt: plan.GeneratedAt})
}

// Advise handles POST /api/advisor/advice.
func (h *AdvisorHandler) Advise(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := h.svc.Advise(r.Context(), req.Question)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, adviceResponse{Answer: answer})
}

// GetReview handles GET /api/advisor/review.
func (h *AdvisorHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.svc.GetReview(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, generatedTextResponse{Text: review.Text, GeneratedAt: review.GeneratedAt})
}

// RegenerateReview handles POST /api/advisor/review.
func (h *AdvisorHandler) RegenerateReview(w http.ResponseWriter, r *http.Request) {
	review, err := h.svc.RegenerateReview(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, generatedTextResponse{Text: review.Text, GeneratedAt: review.GeneratedAt})
}
