package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dietwise/backend/config"
	"github.com/dietwise/backend/internal/api"
	"github.com/dietwise/backend/internal/database"
	"github.com/dietwise/backend/internal/middleware"
	"github.com/dietwise/backend/internal/router"
	"github.com/dietwise/backend/internal/service"
)

// Server wires the database, cache, services, and HTTP layer together.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
	db     *gorm.DB
	sqlDB  *database.DB
	redis  *redis.Client
}

// New builds a fully wired server from configuration. It connects to
// Postgres and Redis and applies pending migrations before returning.
func New(cfg *config.Config) (*Server, error) {
	// Raw database/sql handle; readiness pings go through this one so the
	// health endpoint does not depend on the GORM pool.
	sqlDB, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db, err := database.OpenGorm(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	mealService := service.NewMealService(db)
	planStore := service.NewRedisPlanStore(redisClient, cfg.PlanTTL)
	plannerService := service.NewPlannerService(mealService, planStore)

	mealHandler := api.NewMealHandler(mealService)
	planHandler := api.NewPlanHandler(plannerService)
	healthHandler := api.NewHealthHandler(sqlDB, redisClient)
	planLimiter := middleware.NewPlanGenerationRateLimiter(redisClient)

	engine := router.SetupRouter(mealHandler, planHandler, healthHandler, planLimiter, cfg.AllowedOrigins)

	return &Server{
		cfg:    cfg,
		engine: engine,
		db:     db,
		sqlDB:  sqlDB,
		redis:  redisClient,
	}, nil
}

// Start runs the HTTP server until it fails or is shut down.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.engine,
	}

	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			return err
		}
	}

	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		}
	}

	if s.db != nil {
		if gormDB, err := s.db.DB(); err == nil {
			if err := gormDB.Close(); err != nil {
				log.Printf("Error closing database connection: %v", err)
			}
		}
	}

	if s.sqlDB != nil {
		if err := s.sqlDB.Close(); err != nil {
			log.Printf("Error closing database handle: %v", err)
		}
	}

	return nil
}
