package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dietwise/backend/internal/nutrition"
	"github.com/dietwise/backend/internal/planner"
	"github.com/dietwise/backend/internal/types"
)

// ErrPlanNotFound is returned when a plan id is unknown or its cache entry
// has expired.
var ErrPlanNotFound = errors.New("plan not found")

// PlannerService ties the requirement calculator and the plan generator to
// the meal catalog and the plan store.
type PlannerService struct {
	generator *planner.Generator
	store     PlanStore
}

// NewPlannerService creates a new PlannerService instance.
func NewPlannerService(source planner.MealSource, store PlanStore) *PlannerService {
	return &PlannerService{
		generator: planner.NewGenerator(source),
		store:     store,
	}
}

// ComputeRequirements derives calorie and macro targets for a validated
// profile.
func (s *PlannerService) ComputeRequirements(profile nutrition.PatientProfile) nutrition.Requirements {
	return nutrition.Compute(profile)
}

// GeneratePlan assembles a weekly plan. With a profile, requirements are
// computed and embedded, and the profile's allergies join its restrictions
// for catalog exclusion. Without one, the caller's bare calorie target is
// used and the embedded requirements stay zeroed apart from that target.
// The stored plan gets a uuid so it can be addressed for slot repairs.
func (s *PlannerService) GeneratePlan(ctx context.Context, req *types.GeneratePlanRequest) (*planner.WeeklyPlan, error) {
	in := planner.GenerateInput{
		TargetCalories: req.TargetCalories,
		Restrictions:   req.Restrictions,
		Preferences:    req.Preferences,
		Patient:        req.Patient,
		Objective:      req.Objective,
	}

	if req.Profile != nil {
		profile := *req.Profile
		if err := profile.Validate(); err != nil {
			return nil, err
		}
		requirements := nutrition.Compute(profile)
		in.TargetCalories = requirements.TargetCalories
		in.Requirements = &requirements
		in.Restrictions = append(append([]string{}, profile.Restrictions...), profile.Allergies...)
		if len(req.Restrictions) > 0 {
			in.Restrictions = append(in.Restrictions, req.Restrictions...)
		}
		if len(in.Preferences) == 0 {
			in.Preferences = profile.Preferences
		}
		if in.Patient == "" {
			in.Patient = profile.Name
		}
		if in.Objective == "" {
			in.Objective = string(profile.Objective)
		}
	} else if req.TargetCalories <= 0 {
		return nil, &nutrition.ValidationError{Field: "target_calories", Message: "must be > 0 when no profile is given"}
	}

	plan, err := s.generator.Generate(ctx, in)
	if err != nil {
		return nil, err
	}

	plan.ID = uuid.NewString()
	if s.store != nil {
		if err := s.store.SavePlan(ctx, plan); err != nil {
			return nil, fmt.Errorf("saving plan %s: %w", plan.ID, err)
		}
	}
	return plan, nil
}

// GetPlan loads a stored plan by id.
func (s *PlannerService) GetPlan(ctx context.Context, id string) (*planner.WeeklyPlan, error) {
	if s.store == nil {
		return nil, ErrPlanNotFound
	}
	return s.store.GetPlan(ctx, id)
}

// ReplaceSlot swaps one slot in a stored plan and persists the result. The
// rest of the plan is untouched; only the targeted day's totals change.
func (s *PlannerService) ReplaceSlot(ctx context.Context, planID string, req *types.ReplaceSlotRequest) (*planner.WeeklyPlan, error) {
	plan, err := s.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	err = s.generator.ReplaceSlot(ctx, plan, req.Day, req.MealType, planner.ReplaceFilters{
		MaxCalories: req.MaxCalories,
		MustInclude: req.MustInclude,
		Exclude:     req.Exclude,
	})
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if err := s.store.SavePlan(ctx, plan); err != nil {
			return nil, fmt.Errorf("saving plan %s: %w", plan.ID, err)
		}
	}
	return plan, nil
}
