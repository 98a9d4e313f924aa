package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietwise/backend/internal/models"
	"github.com/dietwise/backend/internal/planner"
	"github.com/dietwise/backend/internal/testhelpers"
	"github.com/dietwise/backend/internal/types"
)

func newTestMealService(t *testing.T) *MealService {
	return NewMealService(testhelpers.SetupTestDB(t))
}

func seedMeal(t *testing.T, svc *MealService, name, mealType string, calories int, ingredients ...string) *models.Meal {
	t.Helper()
	inputs := make([]types.IngredientInput, 0, len(ingredients))
	for _, raw := range ingredients {
		inputs = append(inputs, types.IngredientInput{Name: raw})
	}
	meal, err := svc.CreateMeal(context.Background(), &models.Meal{
		Name:     name,
		MealType: mealType,
		Calories: calories,
	}, inputs)
	require.NoError(t, err)
	return meal
}

func TestCreateMealNormalizesIngredients(t *testing.T) {
	svc := newTestMealService(t)

	qty := 150.0
	unit := "g"
	meal, err := svc.CreateMeal(context.Background(), &models.Meal{
		Name:     "Arroz con pollo",
		MealType: models.MealTypeLunch,
		Calories: 450,
	}, []types.IngredientInput{
		{Name: "Pechuga de Pollo Sin Piel", Quantity: &qty, Unit: &unit},
		{Name: "ARROZ INTEGRAL"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, meal.Servings, "servings should default to 1")
	assert.ElementsMatch(t, []string{"pollo", "arroz"}, meal.IngredientNames())
	assert.Contains(t, meal.IngredientLabels(), "pollo (150 g)")
}

func TestGetOrCreateIngredientReusesAliasRow(t *testing.T) {
	svc := newTestMealService(t)
	ctx := context.Background()

	first, err := svc.GetOrCreateIngredient(ctx, "Pechuga de Pollo")
	require.NoError(t, err)
	second, err := svc.GetOrCreateIngredient(ctx, "pollo asado")
	require.NoError(t, err)

	assert.Equal(t, "pollo", first.CanonicalName)
	assert.Equal(t, first.ID, second.ID, "aliases must resolve to one row")
}

func TestCreateMealReusesExistingIngredientRow(t *testing.T) {
	svc := newTestMealService(t)
	ctx := context.Background()

	existing, err := svc.GetOrCreateIngredient(ctx, "pollo")
	require.NoError(t, err)

	// Linking through a raw alias must land on the same row, not create one.
	meal := seedMeal(t, svc, "Chicken bowl", models.MealTypeLunch, 450, "Pechuga de Pollo Sin Piel")
	require.Len(t, meal.Ingredients, 1)
	assert.Equal(t, existing.ID, meal.Ingredients[0].IngredientID)
}

func TestSearchMealsFilters(t *testing.T) {
	svc := newTestMealService(t)
	ctx := context.Background()

	seedMeal(t, svc, "Oatmeal", models.MealTypeBreakfast, 300, "avena", "leche descremada")
	seedMeal(t, svc, "Chicken bowl", models.MealTypeLunch, 450, "pollo asado", "arroz blanco")
	seedMeal(t, svc, "Veggie bowl", models.MealTypeLunch, 380, "arroz integral", "aguacate maduro")
	seedMeal(t, svc, "Steak plate", models.MealTypeDinner, 700, "res")

	meals, err := svc.SearchMeals(ctx, planner.MealFilters{MealType: models.MealTypeLunch})
	require.NoError(t, err)
	assert.Len(t, meals, 2)

	maxCal := 400
	meals, err = svc.SearchMeals(ctx, planner.MealFilters{MealType: models.MealTypeLunch, MaxCalories: &maxCal})
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Veggie bowl", meals[0].Name)

	meals, err = svc.SearchMeals(ctx, planner.MealFilters{NameQuery: "bowl"})
	require.NoError(t, err)
	assert.Len(t, meals, 2)
}

func TestSearchMealsExcludesByAlias(t *testing.T) {
	svc := newTestMealService(t)
	ctx := context.Background()

	// Stored under the raw variant; the exclusion uses the canonical form.
	seedMeal(t, svc, "Chicken bowl", models.MealTypeLunch, 450, "Pechuga de Pollo Sin Piel")
	seedMeal(t, svc, "Veggie bowl", models.MealTypeLunch, 380, "arroz integral")

	meals, err := svc.SearchMeals(ctx, planner.MealFilters{
		MealType: models.MealTypeLunch,
		Exclude:  []string{"pollo"},
	})
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Veggie bowl", meals[0].Name)
}

func TestSearchMealsMustInclude(t *testing.T) {
	svc := newTestMealService(t)
	ctx := context.Background()

	seedMeal(t, svc, "Chicken rice", models.MealTypeLunch, 450, "pollo", "arroz")
	seedMeal(t, svc, "Plain rice", models.MealTypeLunch, 300, "arroz")

	meals, err := svc.SearchMeals(ctx, planner.MealFilters{
		MustInclude: []string{"Pechuga de Pollo", "arroz blanco"},
	})
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, "Chicken rice", meals[0].Name)
}

func TestSearchMealsCursorPagination(t *testing.T) {
	svc := newTestMealService(t)
	ctx := context.Background()

	for _, name := range []string{"One", "Two", "Three", "Four", "Five"} {
		seedMeal(t, svc, name, models.MealTypeSnack, 100)
	}

	first, err := svc.SearchMeals(ctx, planner.MealFilters{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Less(t, first[0].ID, first[1].ID, "results must be ordered by ascending id")

	second, err := svc.SearchMeals(ctx, planner.MealFilters{Limit: 2, AfterID: first[1].ID})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Greater(t, second[0].ID, first[1].ID)
}

func TestMealLifecycle(t *testing.T) {
	svc := newTestMealService(t)
	ctx := context.Background()

	meal := seedMeal(t, svc, "Oatmeal", models.MealTypeBreakfast, 300, "avena")

	exists, err := svc.MealExists(ctx, "Oatmeal")
	require.NoError(t, err)
	assert.True(t, exists)

	name := "Overnight oats"
	protein := 12.5
	updated, err := svc.UpdateMeal(ctx, meal.ID, &types.UpdateMealRequest{
		Name:        &name,
		ProteinG:    &protein,
		Ingredients: &[]types.IngredientInput{{Name: "avena"}, {Name: "Leche Descremada"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Overnight oats", updated.Name)
	require.NotNil(t, updated.ProteinG)
	assert.Equal(t, 12.5, *updated.ProteinG)
	assert.ElementsMatch(t, []string{"avena", "leche"}, updated.IngredientNames())

	require.NoError(t, svc.DeleteMeal(ctx, meal.ID))
	_, err = svc.GetMeal(ctx, meal.ID)
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestGetMealNotFound(t *testing.T) {
	svc := newTestMealService(t)
	_, err := svc.GetMeal(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrMealNotFound)

	err = svc.DeleteMeal(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrMealNotFound)
}
