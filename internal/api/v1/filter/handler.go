package filter

import (
	"io"
	"net/http"

	"cropai-modelhub/internal/services"
	"cropai-modelhub/internal/utils"
	"cropai-modelhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const snapshotEvent = "snapshot"

type Handler struct {
	engine *services.FilterEngine
	log    *zap.Logger
}

func NewHandler(engine *services.FilterEngine) *Handler {
	return &Handler{engine: engine, log: logger.Named("filter-api")}
}

// GetState godoc
// @Summary Current shared filter state
// @Tags filter
// @Produce json
// @Success 200 {object} utils.Response{data=StateResponse}
// @Router /filter [get]
func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", NewStateResponse(h.engine.Snapshot())))
}

// SetQuery godoc
// @Summary Replace the search query
// @Tags filter
// @Accept json
// @Produce json
// @Param request body SetQueryRequest true "New query"
// @Success 200 {object} utils.Response{data=StateResponse}
// @Failure 400 {object} utils.Response
// @Router /filter/query [put]
func (h *Handler) SetQuery(c *gin.Context) {
	var req SetQueryRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", NewStateResponse(h.engine.SetQuery(*req.Query))))
}

// SetCrop godoc
// @Summary Replace the crop filter
// @Tags filter
// @Accept json
// @Produce json
// @Param request body SetCropRequest true "New crop"
// @Success 200 {object} utils.Response{data=StateResponse}
// @Failure 400 {object} utils.Response
// @Router /filter/crop [put]
func (h *Handler) SetCrop(c *gin.Context) {
	var req SetCropRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	crop, err := services.ResolveCrop(req.Crop)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", NewStateResponse(h.engine.SetCrop(crop))))
}

// Events streams the filter state as server-sent events: the current state on
// connect, then one event per change. A slow client skips intermediate
// states and always receives the latest one.
func (h *Handler) Events(c *gin.Context) {
	updates := make(chan services.FilterSnapshot, 1)
	unsubscribe := h.engine.Subscribe(func(s services.FilterSnapshot) {
		offerLatest(updates, s)
	})
	defer unsubscribe()

	current := h.engine.Snapshot()
	last := current.Version
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.SSEvent(snapshotEvent, NewStateResponse(current))
	c.Writer.Flush()

	h.log.Debug("Filter stream opened", zap.String("ip", c.ClientIP()))
	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case s := <-updates:
			// A change that landed between Subscribe and Snapshot is
			// already in the first event.
			if s.Version <= last {
				return true
			}
			last = s.Version
			c.SSEvent(snapshotEvent, NewStateResponse(s))
			return true
		}
	})
	h.log.Debug("Filter stream closed", zap.String("ip", c.ClientIP()))
}

// offerLatest puts s in ch, replacing an undelivered older snapshot.
func offerLatest(ch chan services.FilterSnapshot, s services.FilterSnapshot) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
