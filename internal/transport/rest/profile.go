package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/okravets/caltrack-backend/internal/domain"
	"github.com/okravets/caltrack-backend/internal/service/profile"
)

// profileService defines the minimal interface needed by ProfileHandler.
type profileService interface {
	Get(ctx context.Context) (*domain.User, error)
	Metrics(ctx context.Context) (domain.Metrics, error)
	Update(ctx context.Context, input profile.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context) error
}

// ProfileHandler serves profile REST endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type userResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	DateOfBirth    string    `json:"dateOfBirth"`
	Sex            string    `json:"sex"`
	HeightCm       float64   `json:"heightCm"`
	WeightKg       float64   `json:"weightKg"`
	ActivityLevel  string    `json:"activityLevel"`
	GoalWeightKg   *float64  `json:"goalWeightKg,omitempty"`
	GoalType       string    `json:"goalType"`
	WeeklyGoalKg   float64   `json:"weeklyGoalKg"`
	BMI            float64   `json:"bmi"`
	DailyAllowance int       `json:"dailyAllowance"`
	CreatedAt      time.Time `json:"createdAt"`
}

type metricsResponse struct {
	BMI            float64 `json:"bmi"`
	BMR            float64 `json:"bmr"`
	TDEE           int     `json:"tdee"`
	DailyAllowance int     `json:"dailyAllowance"`
}

type updateProfileRequest struct {
	Name          *string  `json:"name"`
	DateOfBirth   *string  `json:"dateOfBirth"`
	Sex           *string  `json:"sex"`
	HeightCm      *float64 `json:"heightCm"`
	WeightKg      *float64 `json:"weightKg"`
	ActivityLevel *string  `json:"activityLevel"`
	GoalWeightKg  *float64 `json:"goalWeightKg"`
	GoalType      *string  `json:"goalType"`
	WeeklyGoalKg  *float64 `json:"weeklyGoalKg"`
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Metrics handles GET /api/profile/metrics.
func (h *ProfileHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Metrics(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, metricsResponse{
		BMI:            m.BMI,
		BMR:            m.BMR,
		TDEE:           m.TDEE,
		DailyAllowance: m.DailyAllowance,
	})
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := profile.UpdateInput{
		Name:         req.Name,
		HeightCm:     req.HeightCm,
		WeightKg:     req.WeightKg,
		GoalWeightKg: req.GoalWeightKg,
		WeeklyGoalKg: req.WeeklyGoalKg,
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid dateOfBirth, want YYYY-MM-DD")
			return
		}
		input.DateOfBirth = &dob
	}
	if req.Sex != nil {
		sex := domain.Sex(*req.Sex)
		input.Sex = &sex
	}
	if req.ActivityLevel != nil {
		level := domain.ActivityLevel(*req.ActivityLevel)
		input.ActivityLevel = &level
	}
	if req.GoalType != nil {
		goal := domain.GoalType(*req.GoalType)
		input.GoalType = &goal
	}

	user, err := h.svc.Update(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /api/profile.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:             u.ID.String(),
		Email:          u.Email,
		Name:           u.Name,
		DateOfBirth:    u.DateOfBirth.Format(dateLayout),
		Sex:            u.Sex.String(),
		HeightCm:       u.HeightCm,
		WeightKg:       u.WeightKg,
		ActivityLevel:  u.ActivityLevel.String(),
		GoalWeightKg:   u.GoalWeightKg,
		GoalType:       u.GoalType.String(),
		WeeklyGoalKg:   u.WeeklyGoalKg,
		BMI:            u.BMI,
		DailyAllowance: u.DailyAllowance,
		CreatedAt:      u.CreatedAt,
	}
}
