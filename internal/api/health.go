package api

import (
	"net/http"

	"cropai-modelhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Models int    `json:"models"`
	Store  string `json:"store"`
	Redis  string `json:"redis"`
}

const (
	componentOK          = "ok"
	componentDisabled    = "disabled"
	componentUnavailable = "unavailable"
)

// healthHandler reports 200 when the document store answers. Redis is
// reported but never fails the check.
func healthHandler(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := HealthResponse{
			Models: len(deps.Engine.Records()),
			Store:  componentOK,
			Redis:  componentDisabled,
		}
		status := http.StatusOK

		if deps.Ping != nil {
			if err := deps.Ping(); err != nil {
				_ = c.Error(err)
				resp.Store = componentUnavailable
				status = http.StatusServiceUnavailable
			}
		}
		if deps.Redis != nil {
			resp.Redis = componentOK
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				resp.Redis = componentUnavailable
			}
		}

		message := "healthy"
		if status != http.StatusOK {
			message = "unhealthy"
		}
		c.JSON(status, utils.NewResponse(status, message, resp))
	}
}
