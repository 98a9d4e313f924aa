package types

import (
	"github.com/dietwise/backend/internal/nutrition"
)

// IngredientInput is one raw ingredient entry on a meal create/update.
// The name is normalized before lookup; quantity and unit stay nullable.
type IngredientInput struct {
	Name     string   `json:"name" binding:"required"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
}

// CreateMealRequest represents the request body for creating a meal.
type CreateMealRequest struct {
	Name         string            `json:"name" binding:"required"`
	Description  string            `json:"description"`
	MealType     string            `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Calories     int               `json:"calories"`
	ProteinG     *float64          `json:"protein_g"`
	CarbsG       *float64          `json:"carbs_g"`
	FatG         *float64          `json:"fat_g"`
	FiberG       *float64          `json:"fiber_g"`
	PrepTimeMins *int              `json:"prep_time_mins"`
	Servings     int               `json:"servings"`
	Tags         []string          `json:"tags"`
	Ingredients  []IngredientInput `json:"ingredients"`
}

// UpdateMealRequest represents a partial meal update; nil fields are left
// untouched, and a non-nil Ingredients list replaces the whole set.
type UpdateMealRequest struct {
	Name         *string            `json:"name"`
	Description  *string            `json:"description"`
	MealType     *string            `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Calories     *int               `json:"calories"`
	ProteinG     *float64           `json:"protein_g"`
	CarbsG       *float64           `json:"carbs_g"`
	FatG         *float64           `json:"fat_g"`
	FiberG       *float64           `json:"fiber_g"`
	PrepTimeMins *int               `json:"prep_time_mins"`
	Servings     *int               `json:"servings"`
	Tags         *[]string          `json:"tags"`
	Ingredients  *[]IngredientInput `json:"ingredients"`
}

// GeneratePlanRequest asks for a weekly plan. Either a full profile is given
// (requirements are computed and embedded) or a bare calorie target with
// explicit restrictions/preferences.
type GeneratePlanRequest struct {
	Profile        *nutrition.PatientProfile `json:"profile"`
	TargetCalories int                       `json:"target_calories"`
	Restrictions   []string                  `json:"restrictions"`
	Preferences    []string                  `json:"preferences"`
	Patient        string                    `json:"patient"`
	Objective      string                    `json:"objective"`
}

// ReplaceSlotRequest asks for a single-slot substitution in a stored plan.
type ReplaceSlotRequest struct {
	Day         string   `json:"day" binding:"required"`
	MealType    string   `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	MaxCalories *int     `json:"max_calories"`
	MustInclude []string `json:"must_include"`
	Exclude     []string `json:"exclude"`
}
