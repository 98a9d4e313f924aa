// Package planner fills weekly meal plans from the meal catalog using a
// greedy, rule-based strategy. It does not optimize globally: when the
// catalog cannot cover a slot, the slot is omitted and the plan is returned
// as a partial result.
package planner

import (
	"math"

	"github.com/dietwise/backend/internal/models"
	"github.com/dietwise/backend/internal/nutrition"
)

// MealSlot is one meal assignment within a day.
type MealSlot struct {
	MealID      uint     `json:"meal_id"`
	Name        string   `json:"name"`
	MealType    string   `json:"meal_type"`
	Calories    int      `json:"calories"`
	ProteinG    float64  `json:"protein_g"`
	CarbsG      float64  `json:"carbs_g"`
	FatG        float64  `json:"fat_g"`
	Ingredients []string `json:"ingredients"`
}

// DayPlan holds one day's slots plus running totals. Totals are always
// recomputed from the slots; nothing tracks them independently.
type DayPlan struct {
	Day           string     `json:"day"`
	Meals         []MealSlot `json:"meals"`
	TotalCalories int        `json:"total_calories"`
	TotalProteinG float64    `json:"total_protein_g"`
	TotalCarbsG   float64    `json:"total_carbs_g"`
	TotalFatG     float64    `json:"total_fat_g"`
}

// WeeklyPlan is the full 7-day plan handed to the agent layer. Requirements
// is zeroed except for the calorie target when the plan was generated
// without a full profile.
type WeeklyPlan struct {
	ID           string                 `json:"id,omitempty"`
	Patient      string                 `json:"patient"`
	Objective    string                 `json:"objective"`
	Requirements nutrition.Requirements `json:"requirements"`
	Days         []DayPlan              `json:"days"`
}

// dayNames is the fixed, non-reorderable week layout.
var dayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func slotFromMeal(m models.Meal) MealSlot {
	return MealSlot{
		MealID:      m.ID,
		Name:        m.Name,
		MealType:    m.MealType,
		Calories:    m.Calories,
		ProteinG:    floatOrZero(m.ProteinG),
		CarbsG:      floatOrZero(m.CarbsG),
		FatG:        floatOrZero(m.FatG),
		Ingredients: m.IngredientLabels(),
	}
}

// recomputeTotals rebuilds a day's totals from its slots. Every mutation of
// a day must go through this so totals can never drift.
func recomputeTotals(day *DayPlan) {
	var calories int
	var protein, carbs, fat float64
	for _, slot := range day.Meals {
		calories += slot.Calories
		protein += slot.ProteinG
		carbs += slot.CarbsG
		fat += slot.FatG
	}
	day.TotalCalories = calories
	day.TotalProteinG = round1(protein)
	day.TotalCarbsG = round1(carbs)
	day.TotalFatG = round1(fat)
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
