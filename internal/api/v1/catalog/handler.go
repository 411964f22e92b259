package catalog

import (
	"errors"
	"net/http"

	"cropai-modelhub/internal/models"
	"cropai-modelhub/internal/services"
	"cropai-modelhub/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine *services.FilterEngine
}

func NewHandler(engine *services.FilterEngine) *Handler {
	return &Handler{engine: engine}
}

// ListModels godoc
// @Summary Search the model catalog
// @Description Filter the catalog by crop and free-text query without touching the shared filter state
// @Tags catalog
// @Produce json
// @Param q query string false "Case-insensitive text query"
// @Param crop query string false "Crop type" default(All Crops)
// @Success 200 {object} utils.Response{data=ModelListResponse}
// @Failure 400 {object} utils.Response
// @Router /models [get]
func (h *Handler) ListModels(c *gin.Context) {
	crop, err := services.ResolveCrop(c.Query("crop"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}
	criteria := services.FilterCriteria{Query: c.Query("q"), Crop: crop}

	visible := h.engine.Search(criteria)
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ModelListResponse{
		Models: NewModelCards(visible),
		Total:  len(visible),
		Query:  criteria.Query,
		Crop:   criteria.Crop,
	}))
}

// GetModel godoc
// @Summary Get one model
// @Tags catalog
// @Produce json
// @Param id path string true "Model ID"
// @Success 200 {object} utils.Response{data=ModelCard}
// @Failure 404 {object} utils.Response
// @Router /models/{id} [get]
func (h *Handler) GetModel(c *gin.Context) {
	record, err := h.engine.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrModelNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Model not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", NewModelCard(record)))
}

// ListCrops returns the filter crop set and the submission form options.
func (h *Handler) ListCrops(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", CropListResponse{
		Crops:             models.CropTypes,
		SubmissionOptions: models.SubmissionCropOptions,
	}))
}

// ListTags returns every known tag with its badge style.
func (h *Handler) ListTags(c *gin.Context) {
	badges := make([]TagBadge, 0, len(models.Tags))
	for _, t := range models.Tags {
		badges = append(badges, TagBadge{Tag: t, TagStyle: t.Style()})
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", badges))
}

// GetStats godoc
// @Summary Catalog statistics
// @Tags catalog
// @Produce json
// @Success 200 {object} utils.Response{data=services.CatalogStats}
// @Router /stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", services.ComputeCatalogStats(h.engine.Records())))
}
