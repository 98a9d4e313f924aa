package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dietwise/backend/internal/api"
	"github.com/dietwise/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	mealHandler *api.MealHandler,
	planHandler *api.PlanHandler,
	healthHandler *api.HealthHandler,
	planLimiter *middleware.RateLimiter,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery(), middleware.CORS(allowedOrigins))

	healthHandler.RegisterRoutes(router)

	v1 := router.Group("/api/v1")
	mealHandler.RegisterRoutes(v1)

	var generateMiddleware []gin.HandlerFunc
	if planLimiter != nil {
		generateMiddleware = append(generateMiddleware, planLimiter.Middleware())
	}
	planHandler.RegisterRoutes(v1, generateMiddleware...)

	return router
}
