package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dietwise/backend/internal/models"
	"github.com/dietwise/backend/internal/planner"
)

// MockMealSource is a mock implementation of planner.MealSource
type MockMealSource struct {
	mock.Mock
}

// SearchMeals mocks the SearchMeals method
func (m *MockMealSource) SearchMeals(ctx context.Context, filters planner.MealFilters) ([]models.Meal, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

// MockPlanStore is a mock implementation of service.PlanStore
type MockPlanStore struct {
	mock.Mock
}

// SavePlan mocks the SavePlan method
func (m *MockPlanStore) SavePlan(ctx context.Context, plan *planner.WeeklyPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

// GetPlan mocks the GetPlan method
func (m *MockPlanStore) GetPlan(ctx context.Context, id string) (*planner.WeeklyPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planner.WeeklyPlan), args.Error(1)
}
