// Package nutrition computes nutritional requirements from patient profiles.
package nutrition

import (
	"fmt"
)

// Sex is the biological sex used by the Mifflin-St Jeor equation.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Objective is the patient's dietary goal.
type Objective string

const (
	ObjectiveLoseWeight Objective = "lose_weight"
	ObjectiveGainWeight Objective = "gain_weight"
	ObjectiveMaintain   Objective = "maintain"
	ObjectiveGainMuscle Objective = "gain_muscle"
)

// ActivityLevel scales BMR into total daily energy expenditure.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// activityMultipliers is the single source of truth for valid activity
// levels; Validate checks membership against it.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var objectiveDeltas = map[Objective]float64{
	ObjectiveLoseWeight: -500,
	ObjectiveGainWeight: 300,
	ObjectiveMaintain:   0,
	ObjectiveGainMuscle: 200,
}

// PatientProfile holds the patient attributes the calculator consumes.
// It carries no persistence; the conversational layer owns its lifecycle.
type PatientProfile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Sex           Sex           `json:"sex"`
	WeightKG      float64       `json:"weight_kg"`
	HeightCM      float64       `json:"height_cm"`
	Objective     Objective     `json:"objective"`
	ActivityLevel ActivityLevel `json:"activity_level"`
	Conditions    []string      `json:"conditions"`
	Allergies     []string      `json:"allergies"`
	Restrictions  []string      `json:"restrictions"`
	Preferences   []string      `json:"preferences"`
}

// ValidationError reports an invalid profile field at construction time,
// before the value can reach the calculator.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Message)
}

// Validate checks enum values and numeric ranges, applying the sedentary
// default when no activity level is given. A profile that passes Validate
// can never make Compute fail.
func (p *PatientProfile) Validate() error {
	if p.Age < 0 {
		return &ValidationError{Field: "age", Message: "must be >= 0"}
	}
	if p.WeightKG <= 0 {
		return &ValidationError{Field: "weight_kg", Message: "must be > 0"}
	}
	if p.HeightCM <= 0 {
		return &ValidationError{Field: "height_cm", Message: "must be > 0"}
	}
	if p.Sex != SexMale && p.Sex != SexFemale {
		return &ValidationError{Field: "sex", Message: fmt.Sprintf("unknown value %q", p.Sex)}
	}
	if _, ok := objectiveDeltas[p.Objective]; !ok {
		return &ValidationError{Field: "objective", Message: fmt.Sprintf("unknown value %q", p.Objective)}
	}
	if p.ActivityLevel == "" {
		p.ActivityLevel = ActivitySedentary
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return &ValidationError{Field: "activity_level", Message: fmt.Sprintf("unknown value %q", p.ActivityLevel)}
	}
	return nil
}
