package api

import (
	"time"

	"cropai-modelhub/config"
	"cropai-modelhub/internal/api/v1/catalog"
	"cropai-modelhub/internal/api/v1/filter"
	"cropai-modelhub/internal/api/v1/pages"
	"cropai-modelhub/internal/api/v1/submission"
	"cropai-modelhub/internal/middleware"
	"cropai-modelhub/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Dependencies are the long-lived services the routes are bound to.
type Dependencies struct {
	Engine   *services.FilterEngine
	Pipeline *services.SubmissionPipeline
	// Redis is optional; without it notifications are only logged.
	Redis *redis.Client
	// Ping reports whether the document store is reachable.
	Ping func() error
}

func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.ClientIDHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}))

	router.GET("/health", healthHandler(deps))

	v1 := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(v1, deps.Engine)
		filter.RegisterRoutes(v1, deps.Engine)
		submission.RegisterRoutes(v1, deps.Pipeline, deps.Redis, cfg.NotificationTTL)
		pages.RegisterRoutes(v1)
	}

	return router
}
