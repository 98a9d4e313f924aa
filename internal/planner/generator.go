package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/dietwise/backend/internal/models"
	"github.com/dietwise/backend/internal/nutrition"
)

const (
	// slotCalorieSlack widens each slot's calorie ceiling so small catalogs
	// are not over-constrained.
	slotCalorieSlack = 150
	// slotCandidateLimit is how many candidates each slot query asks for.
	slotCandidateLimit = 25
)

// slotBudgets fixes the per-slot share of the daily calorie target, in the
// order slots are attempted within a day.
var slotBudgets = []struct {
	mealType string
	fraction float64
}{
	{models.MealTypeBreakfast, 0.25},
	{models.MealTypeLunch, 0.35},
	{models.MealTypeDinner, 0.30},
	{models.MealTypeSnack, 0.10},
}

// Generator assembles and repairs weekly plans against a meal source.
type Generator struct {
	source    MealSource
	repeatCap int
}

// NewGenerator creates a Generator with the default repeat cap.
func NewGenerator(source MealSource) *Generator {
	return &Generator{source: source, repeatCap: DefaultRepeatCap}
}

// GenerateInput carries the plan request. TargetCalories is the only
// required field; Requirements is embedded verbatim when the caller already
// computed it, else the plan carries a zeroed placeholder with the target.
type GenerateInput struct {
	TargetCalories int
	Restrictions   []string
	Preferences    []string
	Patient        string
	Objective      string
	Requirements   *nutrition.Requirements
}

// Generate fills a 7-day, 4-slot plan. A slot with no eligible meal is
// omitted rather than null-filled, so a day may carry fewer than 4 meals;
// the caller decides whether a partial week is worth reporting. Only
// catalog errors abort generation.
func (g *Generator) Generate(ctx context.Context, in GenerateInput) (*WeeklyPlan, error) {
	usage := UsageCounter{}
	preferences := lowerAll(in.Preferences)

	days := make([]DayPlan, 0, len(dayNames))
	for _, dayName := range dayNames {
		day := DayPlan{Day: dayName, Meals: []MealSlot{}}

		for _, budget := range slotBudgets {
			maxCalories := int(float64(in.TargetCalories)*budget.fraction) + slotCalorieSlack
			candidates, err := g.source.SearchMeals(ctx, MealFilters{
				MealType:    budget.mealType,
				MaxCalories: &maxCalories,
				Exclude:     in.Restrictions,
				Limit:       slotCandidateLimit,
			})
			if err != nil {
				return nil, fmt.Errorf("searching %s candidates for %s: %w", budget.mealType, dayName, err)
			}

			if len(preferences) > 0 {
				candidates = filterByPreferences(candidates, preferences)
			}

			selected := SelectMeal(candidates, usage, g.repeatCap)
			if selected == nil {
				continue
			}
			day.Meals = append(day.Meals, slotFromMeal(*selected))
		}

		recomputeTotals(&day)
		days = append(days, day)
	}

	plan := &WeeklyPlan{
		Patient:   in.Patient,
		Objective: in.Objective,
		Days:      days,
	}
	if in.Requirements != nil {
		plan.Requirements = *in.Requirements
	} else {
		plan.Requirements = nutrition.Requirements{TargetCalories: in.TargetCalories, Notes: []string{}}
	}
	return plan, nil
}

// filterByPreferences keeps meals whose tag set intersects the lowercased
// preference set.
func filterByPreferences(meals []models.Meal, preferences []string) []models.Meal {
	kept := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		tags := make(map[string]struct{}, len(m.Tags))
		for _, t := range m.Tags {
			tags[strings.ToLower(t)] = struct{}{}
		}
		for _, p := range preferences {
			if _, ok := tags[p]; ok {
				kept = append(kept, m)
				break
			}
		}
	}
	return kept
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
