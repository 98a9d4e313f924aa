package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/dietwise/backend/config"
	"github.com/dietwise/backend/internal/database"
	"github.com/dietwise/backend/internal/models"
	"github.com/dietwise/backend/internal/service"
	"github.com/dietwise/backend/internal/types"
)

// MealData mirrors one entry of the seed catalog file.
type MealData struct {
	Name         string                  `json:"name"`
	Description  string                  `json:"description"`
	MealType     string                  `json:"meal_type"`
	Calories     int                     `json:"calories"`
	ProteinG     *float64                `json:"protein_g"`
	CarbsG       *float64                `json:"carbs_g"`
	FatG         *float64                `json:"fat_g"`
	FiberG       *float64                `json:"fiber_g"`
	PrepTimeMins *int                    `json:"prep_time_mins"`
	Servings     int                     `json:"servings"`
	Tags         []string                `json:"tags"`
	Ingredients  []types.IngredientInput `json:"ingredients"`
}

func main() {
	catalogPath := flag.String("catalog", "data/seed_meals.json", "Path to the meal catalog JSON file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.OpenGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	content, err := os.ReadFile(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to read catalog file %s: %v", *catalogPath, err)
	}

	var catalog []MealData
	if err := json.Unmarshal(content, &catalog); err != nil {
		log.Fatalf("Failed to parse catalog file: %v", err)
	}

	meals := service.NewMealService(db)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, entry := range catalog {
		exists, err := meals.MealExists(ctx, entry.Name)
		if err != nil {
			log.Fatalf("Failed to check meal %q: %v", entry.Name, err)
		}
		if exists {
			skipped++
			continue
		}

		meal := &models.Meal{
			Name:         entry.Name,
			Description:  entry.Description,
			MealType:     entry.MealType,
			Calories:     entry.Calories,
			ProteinG:     entry.ProteinG,
			CarbsG:       entry.CarbsG,
			FatG:         entry.FatG,
			FiberG:       entry.FiberG,
			PrepTimeMins: entry.PrepTimeMins,
			Servings:     entry.Servings,
			Tags:         entry.Tags,
		}

		if _, err := meals.CreateMeal(ctx, meal, entry.Ingredients); err != nil {
			log.Fatalf("Failed to create meal %q: %v", entry.Name, err)
		}
		created++
		log.Printf("Seeded meal: %s", entry.Name)
	}

	log.Printf("Seeding complete: %d created, %d skipped", created, skipped)
}
