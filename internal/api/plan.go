package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dietwise/backend/internal/nutrition"
	"github.com/dietwise/backend/internal/planner"
	"github.com/dietwise/backend/internal/service"
	"github.com/dietwise/backend/internal/types"
)

// PlanHandler serves requirement computation and weekly plan endpoints.
type PlanHandler struct {
	planner service.IPlannerService
}

// NewPlanHandler creates a new PlanHandler instance.
func NewPlanHandler(plannerService service.IPlannerService) *PlanHandler {
	return &PlanHandler{planner: plannerService}
}

// RegisterRoutes wires the plan endpoints into the API group. The rate
// limiting middleware, when configured, is applied by the router on the
// generation route only.
func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup, generateMiddleware ...gin.HandlerFunc) {
	router.POST("/requirements", h.ComputeRequirements)

	plans := router.Group("/plans")
	{
		handlers := append([]gin.HandlerFunc{}, generateMiddleware...)
		plans.POST("", append(handlers, h.GeneratePlan)...)
		plans.GET("/:id", h.GetPlan)
		plans.POST("/:id/replacements", h.ReplaceSlot)
	}
}

// ComputeRequirements validates a patient profile and returns its calorie
// and macro targets.
func (h *PlanHandler) ComputeRequirements(c *gin.Context) {
	var profile nutrition.PatientProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := profile.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.planner.ComputeRequirements(profile))
}

// GeneratePlan assembles a weekly plan from a profile or a bare calorie
// target. A plan with missing slots is still a success: the catalog simply
// could not fill them, and the response shows which days are short.
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req types.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planner.GeneratePlan(c.Request.Context(), &req)
	if err != nil {
		var verr *nutrition.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate plan"})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GetPlan returns a stored plan by id.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.planner.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ReplaceSlot substitutes one slot in a stored plan.
func (h *PlanHandler) ReplaceSlot(c *gin.Context) {
	var req types.ReplaceSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.planner.ReplaceSlot(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		case errors.Is(err, planner.ErrNoAlternatives):
			c.JSON(http.StatusNotFound, gin.H{"error": "no alternative meals found"})
		case errors.Is(err, planner.ErrDayNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to replace meal"})
		}
		return
	}
	c.JSON(http.StatusOK, plan)
}
