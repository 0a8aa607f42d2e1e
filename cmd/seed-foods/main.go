// Command seed-foods populates the system food catalog from a JSON file.
// System foods have no owner and are visible to every user. Seeding is
// idempotent: a food whose name already exists in the catalog is skipped.
//
// Flags:
//
//	--file  path to the catalog JSON file (default: seed/foods.json)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/okravets/caltrack-backend/internal/adapter/postgres"
	"github.com/okravets/caltrack-backend/internal/app"
	"github.com/okravets/caltrack-backend/internal/config"
	"github.com/okravets/caltrack-backend/internal/domain"
)

type seedFood struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl,omitempty"`
	MealType string  `json:"mealType"`
	Calories int     `json:"calories"`
}

func main() {
	fileFlag := flag.String("file", "seed/foods.json", "path to the catalog JSON file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	foods, err := loadCatalog(*fileFlag)
	if err != nil {
		logger.Error("load catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	inserted := 0
	for _, f := range foods {
		tag, err := pool.Exec(ctx, `
			INSERT INTO foods (id, name, image_url, meal_type, calories, owner_id)
			SELECT $1, $2, $3, $4, $5, NULL
			WHERE NOT EXISTS (
				SELECT 1 FROM foods WHERE name = $2 AND owner_id IS NULL
			)`,
			uuid.New(), f.Name, f.ImageURL, f.MealType, f.Calories,
		)
		if err != nil {
			logger.Error("insert food", slog.String("name", f.Name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		inserted += int(tag.RowsAffected())
	}

	logger.Info("catalog seeded",
		slog.Int("total", len(foods)),
		slog.Int("inserted", inserted),
		slog.Int("skipped", len(foods)-inserted),
	)
}

func loadCatalog(path string) ([]seedFood, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var foods []seedFood
	if err := json.Unmarshal(data, &foods); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for i, f := range foods {
		if f.Name == "" {
			return nil, fmt.Errorf("food #%d: name is required", i)
		}
		if !domain.MealType(f.MealType).IsValid() {
			return nil, fmt.Errorf("food %q: invalid meal type %q", f.Name, f.MealType)
		}
		if f.Calories < 0 || f.Calories > domain.MaxFoodCalories {
			return nil, fmt.Errorf("food %q: calories out of range", f.Name)
		}
	}
	return foods, nil
}
