package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/dietwise/backend/internal/ingredient"
	"github.com/dietwise/backend/internal/models"
	"github.com/dietwise/backend/internal/planner"
	"github.com/dietwise/backend/internal/types"
)

// ErrMealNotFound is returned when a meal id does not exist in the catalog.
var ErrMealNotFound = errors.New("meal not found")

// defaultSearchLimit applies when a caller does not bound the result size.
const defaultSearchLimit = 10

// overfetchFactor widens the SQL fetch so the in-core ingredient post-filter
// still has enough rows to fill a page. Callers must tolerate short pages
// when the catalog is sparse.
const overfetchFactor = 5

// MealService handles catalog queries and meal lifecycle operations.
type MealService struct {
	db *gorm.DB
}

// NewMealService creates a new MealService instance.
func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// SearchMeals queries the catalog with the SQL-expressible filters, then
// post-filters by normalized ingredient sets. Only the post-filter runs
// in-core: must-include/exclude need alias-resolved set semantics the
// database does not know about. Results are ordered by ascending id.
func (s *MealService) SearchMeals(ctx context.Context, f planner.MealFilters) ([]models.Meal, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	query := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Preload("Ingredients.Ingredient")

	if f.AfterID > 0 {
		query = query.Where("id > ?", f.AfterID)
	}
	if f.NameQuery != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.NameQuery)+"%")
	}
	if f.MealType != "" {
		query = query.Where("meal_type = ?", f.MealType)
	}
	if f.MaxCalories != nil {
		query = query.Where("calories <= ?", *f.MaxCalories)
	}
	if f.MinProtein != nil {
		query = query.Where("protein_g >= ?", *f.MinProtein)
	}

	var meals []models.Meal
	if err := query.Order("id ASC").Limit(limit * overfetchFactor).Find(&meals).Error; err != nil {
		return nil, err
	}

	filtered := filterByIngredients(meals, f.MustInclude, f.Exclude)
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// filterByIngredients keeps meals that contain every must-include ingredient
// and none of the excluded ones, comparing normalized canonical names.
func filterByIngredients(meals []models.Meal, mustInclude, exclude []string) []models.Meal {
	if len(mustInclude) == 0 && len(exclude) == 0 {
		return meals
	}

	includeSet := ingredient.NormalizeSet(mustInclude)
	excludeSet := ingredient.NormalizeSet(exclude)

	filtered := make([]models.Meal, 0, len(meals))
	for _, meal := range meals {
		names := make(map[string]struct{}, len(meal.Ingredients))
		for _, name := range meal.IngredientNames() {
			names[ingredient.Normalize(name)] = struct{}{}
		}

		if !containsAll(names, includeSet) {
			continue
		}
		if intersects(names, excludeSet) {
			continue
		}
		filtered = append(filtered, meal)
	}
	return filtered
}

func containsAll(set, wanted map[string]struct{}) bool {
	for name := range wanted {
		if _, ok := set[name]; !ok {
			return false
		}
	}
	return true
}

func intersects(set, other map[string]struct{}) bool {
	for name := range other {
		if _, ok := set[name]; ok {
			return true
		}
	}
	return false
}

// GetMeal retrieves a meal with its ingredients.
func (s *MealService) GetMeal(ctx context.Context, id uint) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		First(&meal, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// MealExists reports whether a meal with the exact name is already stored.
// The ingestion pipeline uses this to avoid duplicate extraction.
func (s *MealService) MealExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// GetOrCreateIngredient resolves a raw name to its ingredient row, creating
// it on first sight. Identity is the normalized canonical name.
func (s *MealService) GetOrCreateIngredient(ctx context.Context, rawName string) (*models.Ingredient, error) {
	return getOrCreateIngredient(s.db.WithContext(ctx), rawName)
}

// getOrCreateIngredient is the one lookup-or-create path for ingredient
// rows; meal linking runs it on the enclosing transaction handle.
func getOrCreateIngredient(db *gorm.DB, rawName string) (*models.Ingredient, error) {
	canonical := ingredient.Normalize(rawName)
	var ing models.Ingredient
	err := db.Where("canonical_name = ?", canonical).First(&ing).Error
	if err == nil {
		return &ing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ing = models.Ingredient{CanonicalName: canonical}
	if err := db.Create(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// CreateMeal stores a meal and links its ingredients through get-or-create.
func (s *MealService) CreateMeal(ctx context.Context, meal *models.Meal, ingredients []types.IngredientInput) (*models.Meal, error) {
	if meal.Servings == 0 {
		meal.Servings = 1
	}
	if meal.Tags == nil {
		meal.Tags = models.JSONBStringArray{}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		return s.linkIngredients(tx, meal.ID, ingredients)
	})
	if err != nil {
		return nil, err
	}
	return s.GetMeal(ctx, meal.ID)
}

// UpdateMeal applies a partial update; a non-nil ingredient list replaces
// the meal's ingredient set wholesale.
func (s *MealService) UpdateMeal(ctx context.Context, id uint, update *types.UpdateMealRequest) (*models.Meal, error) {
	if _, err := s.GetMeal(ctx, id); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if update.Name != nil {
		changes["name"] = *update.Name
	}
	if update.Description != nil {
		changes["description"] = *update.Description
	}
	if update.MealType != nil {
		changes["meal_type"] = *update.MealType
	}
	if update.Calories != nil {
		changes["calories"] = *update.Calories
	}
	if update.ProteinG != nil {
		changes["protein_g"] = *update.ProteinG
	}
	if update.CarbsG != nil {
		changes["carbs_g"] = *update.CarbsG
	}
	if update.FatG != nil {
		changes["fat_g"] = *update.FatG
	}
	if update.FiberG != nil {
		changes["fiber_g"] = *update.FiberG
	}
	if update.PrepTimeMins != nil {
		changes["prep_time_mins"] = *update.PrepTimeMins
	}
	if update.Servings != nil {
		changes["servings"] = *update.Servings
	}
	if update.Tags != nil {
		changes["tags"] = models.JSONBStringArray(*update.Tags)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(changes) > 0 {
			if err := tx.Model(&models.Meal{}).Where("id = ?", id).Updates(changes).Error; err != nil {
				return err
			}
		}
		if update.Ingredients != nil {
			if err := tx.Where("meal_id = ?", id).Delete(&models.MealIngredient{}).Error; err != nil {
				return err
			}
			return s.linkIngredients(tx, id, *update.Ingredients)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetMeal(ctx, id)
}

// DeleteMeal removes a meal and its ingredient links.
func (s *MealService) DeleteMeal(ctx context.Context, id uint) error {
	if _, err := s.GetMeal(ctx, id); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&models.MealIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Meal{}, "id = ?", id).Error
	})
}

func (s *MealService) linkIngredients(tx *gorm.DB, mealID uint, ingredients []types.IngredientInput) error {
	for _, in := range ingredients {
		if ingredient.Normalize(in.Name) == "" {
			continue
		}
		ing, err := getOrCreateIngredient(tx, in.Name)
		if err != nil {
			return err
		}
		link := models.MealIngredient{
			MealID:       mealID,
			IngredientID: ing.ID,
			Quantity:     in.Quantity,
			Unit:         in.Unit,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
