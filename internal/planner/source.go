package planner

import (
	"context"

	"github.com/dietwise/backend/internal/models"
)

// MealFilters mirrors the catalog query surface the planner depends on.
// Ingredient set filtering uses normalized canonical names.
type MealFilters struct {
	MealType    string
	MaxCalories *int
	MinProtein  *float64
	MustInclude []string
	Exclude     []string
	NameQuery   string
	AfterID     uint
	Limit       int
}

// MealSource is the catalog the planner draws candidates from. Results are
// ordered by ascending id and may be shorter than Limit when the catalog is
// sparse. Storage errors propagate unmodified; the planner never retries.
type MealSource interface {
	SearchMeals(ctx context.Context, filters MealFilters) ([]models.Meal, error)
}
