package submission

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"cropai-modelhub/internal/middleware"
	"cropai-modelhub/internal/models"
	"cropai-modelhub/internal/services"
	"cropai-modelhub/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type Handler struct {
	pipeline *services.SubmissionPipeline
	redis    *redis.Client
	ttl      time.Duration

	mu sync.Mutex
	// Present while at least one request for the client holds the form.
	forms map[string]*formRef
}

type formRef struct {
	form *services.SubmissionForm
	refs int
}

// NewHandler builds a submission handler. With a nil redis client
// notifications go to the log and GET /notifications is always empty.
func NewHandler(pipeline *services.SubmissionPipeline, rdb *redis.Client, ttl time.Duration) *Handler {
	return &Handler{pipeline: pipeline, redis: rdb, ttl: ttl, forms: make(map[string]*formRef)}
}

// Submit godoc
// @Summary Submit a model to the hub
// @Description Validates the draft and stores it once. Validation stops at the first failing field.
// @Tags submissions
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Caller identity for notifications"
// @Param request body models.SubmissionDraft true "Submission draft"
// @Success 201 {object} utils.Response{data=SubmitResponse}
// @Failure 400 {object} utils.Response{data=services.ValidationError}
// @Failure 409 {object} utils.Response
// @Failure 502 {object} utils.Response
// @Router /submissions [post]
func (h *Handler) Submit(c *gin.Context) {
	var draft models.SubmissionDraft
	if !utils.BindAndValidate(c, &draft) {
		return
	}

	clientID := middleware.GetClientID(c)
	form := h.acquire(clientID)
	defer h.release(clientID)

	id, err := form.SubmitDraft(c.Request.Context(), draft)

	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, utils.NewResponse(http.StatusBadRequest, vErr.Message, vErr))
		case errors.Is(err, services.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, utils.NewErrorResponse(http.StatusConflict, "A submission is already in progress"))
		case errors.Is(err, services.ErrSubmissionFailed):
			_ = c.Error(err)
			c.JSON(http.StatusBadGateway, utils.NewErrorResponse(http.StatusBadGateway, services.SubmissionFailureMessage))
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, services.SubmissionFailureMessage))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, services.SubmissionSuccessMessage, SubmitResponse{
		ID:      id,
		Message: services.SubmissionSuccessMessage,
	}))
}

// ListNotifications godoc
// @Summary Drain pending notifications
// @Description Returns and clears the caller's queued success and error messages, oldest first.
// @Tags submissions
// @Produce json
// @Param X-Client-ID header string false "Caller identity"
// @Success 200 {object} utils.Response{data=NotificationListResponse}
// @Failure 500 {object} utils.Response
// @Router /notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	list := []services.Notification{}
	if h.redis != nil {
		drained, err := services.DrainNotifications(c.Request.Context(), h.redis, middleware.GetClientID(c))
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch notifications"))
			return
		}
		list = drained
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", NotificationListResponse{Notifications: list}))
}

// acquire returns the client's form, creating it on first use. Every
// acquire must be paired with a release.
func (h *Handler) acquire(clientID string) *services.SubmissionForm {
	h.mu.Lock()
	defer h.mu.Unlock()

	ref, ok := h.forms[clientID]
	if !ok {
		ref = &formRef{form: services.NewSubmissionForm(h.pipeline.WithNotifier(h.notifierFor(clientID)))}
		h.forms[clientID] = ref
	}
	ref.refs++
	return ref.form
}

// release drops the form once no request for the client holds it.
func (h *Handler) release(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ref, ok := h.forms[clientID]
	if !ok {
		return
	}
	if ref.refs--; ref.refs == 0 {
		delete(h.forms, clientID)
	}
}

func (h *Handler) activeForms() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.forms)
}

func (h *Handler) notifierFor(clientID string) services.Notifier {
	if h.redis == nil {
		return services.NewLogNotifier()
	}
	return services.NewRedisNotifier(h.redis, clientID, h.ttl)
}
