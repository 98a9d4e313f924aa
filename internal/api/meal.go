package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dietwise/backend/internal/models"
	"github.com/dietwise/backend/internal/planner"
	"github.com/dietwise/backend/internal/service"
	"github.com/dietwise/backend/internal/types"
)

// MealHandler serves the meal catalog endpoints.
type MealHandler struct {
	meals service.IMealService
}

// NewMealHandler creates a new MealHandler instance.
func NewMealHandler(meals service.IMealService) *MealHandler {
	return &MealHandler{meals: meals}
}

// RegisterRoutes wires the meal endpoints into the API group.
func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.GET("/:id", h.GetMeal)
		meals.POST("", h.CreateMeal)
		meals.PUT("/:id", h.UpdateMeal)
		meals.DELETE("/:id", h.DeleteMeal)
	}
}

// ListMeals searches the catalog. All filters are query parameters;
// include/exclude take comma-separated ingredient names in any raw form.
func (h *MealHandler) ListMeals(c *gin.Context) {
	filters := planner.MealFilters{
		MealType:    c.Query("meal_type"),
		NameQuery:   c.Query("q"),
		MustInclude: splitList(c.Query("include")),
		Exclude:     splitList(c.Query("exclude")),
	}

	if raw := c.Query("max_calories"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_calories must be an integer"})
			return
		}
		filters.MaxCalories = &v
	}
	if raw := c.Query("min_protein"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_protein must be a number"})
			return
		}
		filters.MinProtein = &v
	}
	if raw := c.Query("after_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "after_id must be an integer"})
			return
		}
		filters.AfterID = uint(v)
	}
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		filters.Limit = v
	}

	meals, err := h.meals.SearchMeals(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search meals"})
		return
	}

	response := types.MealListResponse{Meals: make([]types.MealResponse, 0, len(meals))}
	for _, m := range meals {
		response.Meals = append(response.Meals, types.NewMealResponse(m))
	}
	if limit := filters.Limit; limit > 0 && len(meals) == limit {
		response.NextCursor = meals[len(meals)-1].ID
	}
	c.JSON(http.StatusOK, response)
}

// GetMeal returns one meal by id.
func (h *MealHandler) GetMeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	meal, err := h.meals.GetMeal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch meal"})
		return
	}
	c.JSON(http.StatusOK, types.NewMealResponse(*meal))
}

// CreateMeal stores a new catalog meal with its ingredient list.
func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req types.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := &models.Meal{
		Name:         req.Name,
		Description:  req.Description,
		MealType:     req.MealType,
		Calories:     req.Calories,
		ProteinG:     req.ProteinG,
		CarbsG:       req.CarbsG,
		FatG:         req.FatG,
		FiberG:       req.FiberG,
		PrepTimeMins: req.PrepTimeMins,
		Servings:     req.Servings,
		Tags:         models.JSONBStringArray(req.Tags),
	}
	created, err := h.meals.CreateMeal(c.Request.Context(), meal, req.Ingredients)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create meal"})
		return
	}
	c.JSON(http.StatusCreated, types.NewMealResponse(*created))
}

// UpdateMeal applies a partial update to a meal.
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req types.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.meals.UpdateMeal(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update meal"})
		return
	}
	c.JSON(http.StatusOK, types.NewMealResponse(*updated))
}

// DeleteMeal removes a meal from the catalog.
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.meals.DeleteMeal(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete meal"})
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return uint(id), true
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
