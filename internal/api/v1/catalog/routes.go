package catalog

import (
	"cropai-modelhub/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, engine *services.FilterEngine) {
	h := NewHandler(engine)

	modelGroup := router.Group("/models")
	{
		modelGroup.GET("", h.ListModels)
		modelGroup.GET("/:id", h.GetModel)
	}
	router.GET("/crops", h.ListCrops)
	router.GET("/tags", h.ListTags)
	router.GET("/stats", h.GetStats)
}
