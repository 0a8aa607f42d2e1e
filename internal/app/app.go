// Package app wires configuration, storage, services, and the HTTP server
// into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/okravets/caltrack-backend/internal/adapter/llm"
	"github.com/okravets/caltrack-backend/internal/adapter/postgres"
	advicerepo "github.com/okravets/caltrack-backend/internal/adapter/postgres/advice"
	foodrepo "github.com/okravets/caltrack-backend/internal/adapter/postgres/food"
	mealentryrepo "github.com/okravets/caltrack-backend/internal/adapter/postgres/mealentry"
	tokenrepo "github.com/okravets/caltrack-backend/internal/adapter/postgres/token"
	userrepo "github.com/okravets/caltrack-backend/internal/adapter/postgres/user"
	weightentryrepo "github.com/okravets/caltrack-backend/internal/adapter/postgres/weightentry"
	"github.com/okravets/caltrack-backend/internal/adapter/provider/openfoodfacts"
	"github.com/okravets/caltrack-backend/internal/auth"
	"github.com/okravets/caltrack-backend/internal/config"
	"github.com/okravets/caltrack-backend/internal/service/advisor"
	authservice "github.com/okravets/caltrack-backend/internal/service/auth"
	"github.com/okravets/caltrack-backend/internal/service/diary"
	"github.com/okravets/caltrack-backend/internal/service/food"
	"github.com/okravets/caltrack-backend/internal/service/profile"
	"github.com/okravets/caltrack-backend/internal/service/weight"
	"github.com/okravets/caltrack-backend/internal/transport/middleware"
	"github.com/okravets/caltrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and serves HTTP until the
// context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	foods := foodrepo.New(pool)
	mealEntries := mealentryrepo.New(pool)
	weightEntries := weightentryrepo.New(pool)
	advice := advicerepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authservice.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	profileService := profile.NewService(logger, users, txManager)
	foodCatalog := openfoodfacts.NewProvider(logger)
	foodService := food.NewService(logger, foods, foodCatalog)
	diaryService := diary.NewService(logger, mealEntries, foods, users, weightEntries)
	weightService := weight.NewService(logger, weightEntries, users, txManager)

	handlers := rest.Handlers{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Auth:    rest.NewAuthHandler(authService, logger),
		Profile: rest.NewProfileHandler(profileService, logger),
		Food:    rest.NewFoodHandler(foodService, logger),
		Diary:   rest.NewDiaryHandler(diaryService, logger),
		Weight:  rest.NewWeightHandler(weightService, logger),
	}

	if cfg.Advisor.Enabled {
		advisorService := advisor.NewService(logger, advice, users, weightEntries, mealEntries, llm.New(cfg.Advisor))
		handlers.Advisor = rest.NewAdvisorHandler(advisorService, logger)
	} else {
		logger.Info("advisor disabled, its routes are not registered")
	}

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      rest.NewRouter(handlers, chain),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
