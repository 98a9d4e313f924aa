package nutrition

import (
	"fmt"
	"math"
	"strings"
)

// Calorie floors below which a target is never allowed to fall.
const (
	MinCaloriesFemale = 1200
	MinCaloriesMale   = 1500
)

// Requirements is the derived, read-only calculator output. All fields are
// JSON-stable for the conversational layer.
type Requirements struct {
	BMR            float64  `json:"bmr"`
	TDEE           float64  `json:"tdee"`
	TargetCalories int      `json:"target_calories"`
	TargetProteinG int      `json:"target_protein_g"`
	TargetCarbsG   int      `json:"target_carbs_g"`
	TargetFatG     int      `json:"target_fat_g"`
	TargetFiberG   int      `json:"target_fiber_g"`
	Notes          []string `json:"notes"`
}

type macroSplit struct {
	protein float64
	carbs   float64
	fat     float64
}

var macroSplits = map[Objective]macroSplit{
	ObjectiveLoseWeight: {protein: 0.35, carbs: 0.35, fat: 0.30},
	ObjectiveGainMuscle: {protein: 0.30, carbs: 0.45, fat: 0.25},
	ObjectiveGainWeight: {protein: 0.25, carbs: 0.45, fat: 0.30},
	ObjectiveMaintain:   {protein: 0.25, carbs: 0.50, fat: 0.25},
}

// conditionRule adjusts the calorie target and/or adds an advisory note when
// any of its trigger names appears among the patient's conditions. The rule
// set is data so clinical adjustments live in one place.
type conditionRule struct {
	triggers     []string
	calorieDelta float64
	note         string
}

var conditionRules = []conditionRule{
	{
		triggers:     []string{"hipotiroidismo"},
		calorieDelta: -100,
		note:         "Adjusted -100 kcal for hypothyroidism",
	},
	{
		triggers: []string{"diabetes", "resistencia a la insulina"},
		note:     "Prioritize complex, low glycemic index carbohydrates",
	},
	{
		triggers: []string{"hipertension"},
		note:     "Limit sodium to under 2000 mg/day",
	},
	{
		triggers: []string{"enfermedad renal"},
		note:     "Moderate protein intake per medical guidance",
	},
}

// Compute derives nutritional requirements from a validated profile using
// the Mifflin-St Jeor equation. It is pure: same profile in, same
// requirements out, and it never fails for a profile that passed Validate.
func Compute(p PatientProfile) Requirements {
	notes := []string{}

	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	if p.Sex == SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	level := p.ActivityLevel
	if level == "" {
		level = ActivitySedentary
	}
	tdee := bmr * activityMultipliers[level]
	target := tdee + objectiveDeltas[p.Objective]

	conditions := make(map[string]struct{}, len(p.Conditions))
	for _, c := range p.Conditions {
		conditions[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}
	for _, rule := range conditionRules {
		if !rule.matches(conditions) {
			continue
		}
		target += rule.calorieDelta
		notes = append(notes, rule.note)
	}

	floor := MinCaloriesMale
	if p.Sex == SexFemale {
		floor = MinCaloriesFemale
	}
	if target < float64(floor) {
		target = float64(floor)
		notes = append(notes, fmt.Sprintf("Adjusted to the minimum healthy intake: %d kcal", floor))
	}

	calories := int(target)
	split := macroSplits[p.Objective]

	fiber := 30
	if p.Sex == SexFemale {
		fiber = 25
	}

	return Requirements{
		BMR:            round1(bmr),
		TDEE:           round1(tdee),
		TargetCalories: calories,
		TargetProteinG: int(float64(calories) * split.protein / 4),
		TargetCarbsG:   int(float64(calories) * split.carbs / 4),
		TargetFatG:     int(float64(calories) * split.fat / 9),
		TargetFiberG:   fiber,
		Notes:          notes,
	}
}

func (r conditionRule) matches(conditions map[string]struct{}) bool {
	for _, t := range r.triggers {
		if _, ok := conditions[t]; ok {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
