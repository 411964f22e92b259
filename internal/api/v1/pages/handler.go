package pages

import (
	"net/http"

	"cropai-modelhub/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	PageAbout      = "about"
	PageContribute = "contribute"
	PageDocs       = "docs"
)

// GetPage godoc
// @Summary Informational page content
// @Tags pages
// @Produce json
// @Param name path string true "Page name" Enums(about, contribute, docs)
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /pages/{name} [get]
func GetPage(c *gin.Context) {
	var page interface{}
	switch c.Param("name") {
	case PageAbout:
		page = aboutPage
	case PageContribute:
		page = contributePage
	case PageDocs:
		page = docsPage(apiBaseURL(c))
	default:
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Page not found"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", page))
}

func apiBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + "/api/v1"
}
