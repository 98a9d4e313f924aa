package service

import (
	"context"

	"github.com/dietwise/backend/internal/models"
	"github.com/dietwise/backend/internal/nutrition"
	"github.com/dietwise/backend/internal/planner"
	"github.com/dietwise/backend/internal/types"
)

// IMealService defines the meal catalog operations consumed by the API layer
// and the planner.
type IMealService interface {
	SearchMeals(ctx context.Context, filters planner.MealFilters) ([]models.Meal, error)
	GetMeal(ctx context.Context, id uint) (*models.Meal, error)
	CreateMeal(ctx context.Context, meal *models.Meal, ingredients []types.IngredientInput) (*models.Meal, error)
	UpdateMeal(ctx context.Context, id uint, update *types.UpdateMealRequest) (*models.Meal, error)
	DeleteMeal(ctx context.Context, id uint) error
	MealExists(ctx context.Context, name string) (bool, error)
	GetOrCreateIngredient(ctx context.Context, rawName string) (*models.Ingredient, error)
}

// IPlannerService defines requirement computation and plan assembly/repair.
type IPlannerService interface {
	ComputeRequirements(profile nutrition.PatientProfile) nutrition.Requirements
	GeneratePlan(ctx context.Context, req *types.GeneratePlanRequest) (*planner.WeeklyPlan, error)
	GetPlan(ctx context.Context, id string) (*planner.WeeklyPlan, error)
	ReplaceSlot(ctx context.Context, planID string, req *types.ReplaceSlotRequest) (*planner.WeeklyPlan, error)
}

// PlanStore persists generated plans so the agent layer can address them by
// id for targeted repairs.
type PlanStore interface {
	SavePlan(ctx context.Context, plan *planner.WeeklyPlan) error
	GetPlan(ctx context.Context, id string) (*planner.WeeklyPlan, error)
}
