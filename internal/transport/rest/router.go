package rest

import (
	"net/http"

	"github.com/okravets/caltrack-backend/internal/transport/middleware"
)

// Handlers bundles everything the router mounts. Advisor may be nil when
// the advisor is disabled; its routes are simply not registered.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Profile *ProfileHandler
	Food    *FoodHandler
	Diary   *DiaryHandler
	Weight  *WeightHandler
	Advisor *AdvisorHandler
}

// NewRouter builds the HTTP routing table. The outer middleware chain is
// applied by the caller; route registration only maps methods and paths.
func NewRouter(h Handlers, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /api/profile", h.Profile.Get)
	mux.HandleFunc("PUT /api/profile", h.Profile.Update)
	mux.HandleFunc("DELETE /api/profile", h.Profile.Delete)
	mux.HandleFunc("GET /api/profile/metrics", h.Profile.Metrics)

	mux.HandleFunc("POST /api/foods", h.Food.Create)
	mux.HandleFunc("GET /api/foods", h.Food.List)
	mux.HandleFunc("GET /api/foods/search", h.Food.SearchCatalog)
	mux.HandleFunc("GET /api/foods/{id}", h.Food.Get)
	mux.HandleFunc("PUT /api/foods/{id}", h.Food.Update)
	mux.HandleFunc("DELETE /api/foods/{id}", h.Food.Delete)

	mux.HandleFunc("POST /api/diary/entries", h.Diary.AddEntry)
	mux.HandleFunc("DELETE /api/diary/entries/{id}", h.Diary.DeleteEntry)
	mux.HandleFunc("GET /api/diary/summary", h.Diary.Summary)

	mux.HandleFunc("POST /api/weight", h.Weight.Log)
	mux.HandleFunc("GET /api/weight", h.Weight.History)
	mux.HandleFunc("GET /api/weight/latest", h.Weight.Latest)
	mux.HandleFunc("DELETE /api/weight/{date}", h.Weight.Delete)

	if h.Advisor != nil {
		mux.HandleFunc("GET /api/advisor/plan", h.Advisor.GetPlan)
		mux.HandleFunc("POST /api/advisor/plan", h.Advisor.RegeneratePlan)
		mux.HandleFunc("POST /api/advisor/advice", h.Advisor.Advise)
		mux.HandleFunc("GET /api/advisor/review", h.Advisor.GetReview)
		mux.HandleFunc("POST /api/advisor/review", h.Advisor.RegenerateReview)
	}

	return mw(mux)
}
