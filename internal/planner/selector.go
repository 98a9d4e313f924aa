package planner

import (
	"sort"
	"strings"

	"github.com/dietwise/backend/internal/models"
)

// DefaultRepeatCap is the maximum number of times one meal (by type+name
// key) may appear across a generated week.
const DefaultRepeatCap = 2

// UsageCounter tracks per-meal selections within one plan-generation run.
// It is not safe for concurrent use; a run's slot loop is sequential because
// each selection changes the next slot's eligibility.
type UsageCounter map[string]int

// Key builds the composite variety key for a meal.
func (UsageCounter) Key(m models.Meal) string {
	return strings.ToLower(strings.TrimSpace(m.MealType)) + ":" + strings.ToLower(strings.TrimSpace(m.Name))
}

// SelectMeal picks the least-used candidate still under the repeat cap and
// increments its usage in place. The sort is stable, so among equally-used
// meals the catalog's id ordering acts as the tie-break. Returns nil when
// every candidate has reached the cap or no candidates exist; callers treat
// that as "no eligible meal for this slot", not as a failure.
func SelectMeal(candidates []models.Meal, usage UsageCounter, repeatCap int) *models.Meal {
	if repeatCap <= 0 {
		repeatCap = DefaultRepeatCap
	}

	ordered := make([]models.Meal, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return usage[usage.Key(ordered[i])] < usage[usage.Key(ordered[j])]
	})

	for i := range ordered {
		key := usage.Key(ordered[i])
		if usage[key] < repeatCap {
			usage[key]++
			return &ordered[i]
		}
	}
	return nil
}
