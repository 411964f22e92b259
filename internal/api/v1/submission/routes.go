package submission

import (
	"time"

	"cropai-modelhub/internal/middleware"
	"cropai-modelhub/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func RegisterRoutes(router *gin.RouterGroup, pipeline *services.SubmissionPipeline, rdb *redis.Client, ttl time.Duration) {
	h := NewHandler(pipeline, rdb, ttl)

	group := router.Group("")
	group.Use(middleware.ClientID())
	{
		group.POST("/submissions", h.Submit)
		group.GET("/notifications", h.ListNotifications)
	}
}
