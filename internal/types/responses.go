package types

import (
	"github.com/dietwise/backend/internal/models"
)

// MealResponse is the API shape for a catalog meal, with ingredients
// flattened to canonical names. Nullable nutrient fields keep explicit
// nulls so callers can tell "unknown" from zero.
type MealResponse struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MealType     string   `json:"meal_type"`
	Calories     int      `json:"calories"`
	ProteinG     *float64 `json:"protein_g"`
	CarbsG       *float64 `json:"carbs_g"`
	FatG         *float64 `json:"fat_g"`
	FiberG       *float64 `json:"fiber_g"`
	PrepTimeMins *int     `json:"prep_time_mins"`
	Servings     int      `json:"servings"`
	Tags         []string `json:"tags"`
	Ingredients  []string `json:"ingredients"`
}

// NewMealResponse converts a stored meal to its API shape.
func NewMealResponse(m models.Meal) MealResponse {
	return MealResponse{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		MealType:     m.MealType,
		Calories:     m.Calories,
		ProteinG:     m.ProteinG,
		CarbsG:       m.CarbsG,
		FatG:         m.FatG,
		FiberG:       m.FiberG,
		PrepTimeMins: m.PrepTimeMins,
		Servings:     m.Servings,
		Tags:         m.Tags,
		Ingredients:  m.IngredientNames(),
	}
}

// MealListResponse is a page of meals plus the cursor for the next page.
// NextCursor is omitted when the page is not full.
type MealListResponse struct {
	Meals      []MealResponse `json:"meals"`
	NextCursor uint           `json:"next_cursor,omitempty"`
}
