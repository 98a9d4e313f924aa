package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dietwise/backend/internal/mocks"
	"github.com/dietwise/backend/internal/models"
	"github.com/dietwise/backend/internal/nutrition"
	"github.com/dietwise/backend/internal/planner"
	"github.com/dietwise/backend/internal/types"
)

func catalogOf(meals ...models.Meal) *mocks.MockMealSource {
	source := new(mocks.MockMealSource)
	source.On("SearchMeals", mock.Anything, mock.AnythingOfType("planner.MealFilters")).Return(meals, nil)
	return source
}

func TestGeneratePlanWithProfile(t *testing.T) {
	source := catalogOf(models.Meal{ID: 1, Name: "Oatmeal", MealType: models.MealTypeBreakfast, Calories: 300})
	store := new(mocks.MockPlanStore)
	store.On("SavePlan", mock.Anything, mock.AnythingOfType("*planner.WeeklyPlan")).Return(nil)
	svc := NewPlannerService(source, store)

	plan, err := svc.GeneratePlan(context.Background(), &types.GeneratePlanRequest{
		Profile: &nutrition.PatientProfile{
			Name:          "Ana",
			Age:           28,
			Sex:           nutrition.SexFemale,
			WeightKG:      62,
			HeightCM:      165,
			Objective:     nutrition.ObjectiveLoseWeight,
			ActivityLevel: nutrition.ActivityLight,
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "Ana", plan.Patient)
	assert.Equal(t, "lose_weight", plan.Objective)
	assert.NotZero(t, plan.Requirements.BMR, "profile mode must embed computed requirements")
	store.AssertCalled(t, "SavePlan", mock.Anything, plan)
}

func TestGeneratePlanWithProfileMergesAllergies(t *testing.T) {
	source := new(mocks.MockMealSource)
	var captured []planner.MealFilters
	source.On("SearchMeals", mock.Anything, mock.AnythingOfType("planner.MealFilters")).
		Run(func(args mock.Arguments) {
			captured = append(captured, args.Get(1).(planner.MealFilters))
		}).
		Return([]models.Meal{}, nil)
	store := new(mocks.MockPlanStore)
	store.On("SavePlan", mock.Anything, mock.Anything).Return(nil)
	svc := NewPlannerService(source, store)

	_, err := svc.GeneratePlan(context.Background(), &types.GeneratePlanRequest{
		Profile: &nutrition.PatientProfile{
			Name:         "Luis",
			Age:          40,
			Sex:          nutrition.SexMale,
			WeightKG:     85,
			HeightCM:     180,
			Objective:    nutrition.ObjectiveMaintain,
			Restrictions: []string{"cerdo"},
			Allergies:    []string{"mani"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, captured)
	assert.ElementsMatch(t, []string{"cerdo", "mani"}, captured[0].Exclude)
}

func TestGeneratePlanWithBareTarget(t *testing.T) {
	source := catalogOf()
	store := new(mocks.MockPlanStore)
	store.On("SavePlan", mock.Anything, mock.Anything).Return(nil)
	svc := NewPlannerService(source, store)

	plan, err := svc.GeneratePlan(context.Background(), &types.GeneratePlanRequest{
		TargetCalories: 1800,
		Patient:        "Paciente",
		Objective:      "mantener",
	})
	require.NoError(t, err)
	assert.Equal(t, 1800, plan.Requirements.TargetCalories)
	assert.Zero(t, plan.Requirements.BMR, "bare-target mode carries placeholder requirements")
}

func TestGeneratePlanRejectsMissingTarget(t *testing.T) {
	svc := NewPlannerService(catalogOf(), nil)
	_, err := svc.GeneratePlan(context.Background(), &types.GeneratePlanRequest{})
	var verr *nutrition.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestGeneratePlanRejectsInvalidProfile(t *testing.T) {
	svc := NewPlannerService(catalogOf(), nil)
	_, err := svc.GeneratePlan(context.Background(), &types.GeneratePlanRequest{
		Profile: &nutrition.PatientProfile{Sex: "other"},
	})
	var verr *nutrition.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestReplaceSlotRoundTrip(t *testing.T) {
	protein := 28.0
	source := catalogOf(models.Meal{ID: 9, Name: "Lentil stew", MealType: models.MealTypeLunch, Calories: 380, ProteinG: &protein})
	stored := &planner.WeeklyPlan{
		ID: "plan-1",
		Days: []planner.DayPlan{
			{Day: "Monday", Meals: []planner.MealSlot{
				{MealID: 2, Name: "Chicken bowl", MealType: models.MealTypeLunch, Calories: 450, ProteinG: 35},
			}, TotalCalories: 450, TotalProteinG: 35},
		},
	}
	store := new(mocks.MockPlanStore)
	store.On("GetPlan", mock.Anything, "plan-1").Return(stored, nil)
	store.On("SavePlan", mock.Anything, mock.Anything).Return(nil)
	svc := NewPlannerService(source, store)

	plan, err := svc.ReplaceSlot(context.Background(), "plan-1", &types.ReplaceSlotRequest{
		Day:      "Monday",
		MealType: models.MealTypeLunch,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lentil stew", plan.Days[0].Meals[0].Name)
	assert.Equal(t, 380, plan.Days[0].TotalCalories)
	store.AssertCalled(t, "SavePlan", mock.Anything, plan)
}

func TestReplaceSlotUnknownPlan(t *testing.T) {
	store := new(mocks.MockPlanStore)
	store.On("GetPlan", mock.Anything, "missing").Return(nil, ErrPlanNotFound)
	svc := NewPlannerService(catalogOf(), store)

	_, err := svc.ReplaceSlot(context.Background(), "missing", &types.ReplaceSlotRequest{
		Day:      "Monday",
		MealType: models.MealTypeLunch,
	})
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestComputeRequirementsDelegates(t *testing.T) {
	svc := NewPlannerService(catalogOf(), nil)
	req := svc.ComputeRequirements(nutrition.PatientProfile{
		Age: 30, Sex: nutrition.SexMale, WeightKG: 80, HeightCM: 174,
		Objective: nutrition.ObjectiveMaintain, ActivityLevel: nutrition.ActivityModerate,
	})
	assert.Equal(t, 2700, req.TargetCalories)
}
