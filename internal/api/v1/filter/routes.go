package filter

import (
	"cropai-modelhub/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, engine *services.FilterEngine) {
	h := NewHandler(engine)

	filterGroup := router.Group("/filter")
	{
		filterGroup.GET("", h.GetState)
		filterGroup.PUT("/query", h.SetQuery)
		filterGroup.PUT("/crop", h.SetCrop)
		filterGroup.GET("/events", h.Events)
	}
}
