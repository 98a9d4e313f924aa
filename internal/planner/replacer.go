package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoAlternatives means the catalog has no meal matching the
	// replacement filters. The plan is left untouched; this is an expected
	// outcome, not a storage failure.
	ErrNoAlternatives = errors.New("no alternative meals found")

	// ErrDayNotFound means the named day does not exist in the plan.
	ErrDayNotFound = errors.New("day not found in plan")
)

const replaceCandidateLimit = 10

// ReplaceFilters narrows the replacement lookup.
type ReplaceFilters struct {
	MaxCalories *int
	MustInclude []string
	Exclude     []string
}

// ReplaceSlot substitutes the first matching catalog meal into every slot of
// the given type on the given day (case-insensitive day match), then
// recomputes that day's totals. The week's variety counter is not consulted:
// a replacement is a one-off override. On ErrNoAlternatives or
// ErrDayNotFound the plan is unmodified.
func (g *Generator) ReplaceSlot(ctx context.Context, plan *WeeklyPlan, day, mealType string, filters ReplaceFilters) error {
	candidates, err := g.source.SearchMeals(ctx, MealFilters{
		MealType:    mealType,
		MaxCalories: filters.MaxCalories,
		MustInclude: filters.MustInclude,
		Exclude:     filters.Exclude,
		Limit:       replaceCandidateLimit,
	})
	if err != nil {
		return fmt.Errorf("searching replacement %s: %w", mealType, err)
	}
	if len(candidates) == 0 {
		return ErrNoAlternatives
	}
	replacement := slotFromMeal(candidates[0])

	for i := range plan.Days {
		if !strings.EqualFold(plan.Days[i].Day, day) {
			continue
		}
		for j := range plan.Days[i].Meals {
			if plan.Days[i].Meals[j].MealType == mealType {
				plan.Days[i].Meals[j] = replacement
			}
		}
		recomputeTotals(&plan.Days[i])
		return nil
	}
	return fmt.Errorf("%w: %q", ErrDayNotFound, day)
}
