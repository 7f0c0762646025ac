package api

import (
	"errors"
	"net/http"

	reqdto "letterdesk/internal/handler/dto/request"
	resdto "letterdesk/internal/handler/dto/response"
	"letterdesk/internal/handler/httperr"
	"letterdesk/internal/pkg/errs"
	"letterdesk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the internal surface called by sibling subsystems
// and the external scheduler, never by browsers.
type AdminHandler struct {
	dispatch commands.DispatchCommand
	process  commands.ProcessCommand
	cleanup  commands.CleanupCommand
}

func NewAdminHandler(
	dispatch commands.DispatchCommand,
	process commands.ProcessCommand,
	cleanup commands.CleanupCommand,
) *AdminHandler {
	return &AdminHandler{dispatch: dispatch, process: process, cleanup: cleanup}
}

// @Summary Dispatch event
// @Description Enqueue notifications for a marketplace event
// @Tags internal
// @Accept json
// @Produce json
// @Param X-Scheduler-Token header string true "Shared scheduler secret"
// @Param request body reqdto.DispatchEventRequest true "Event to dispatch"
// @Success 202 {object} resdto.DispatchResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /internal/events [post]
func (h *AdminHandler) DispatchEvent(c *gin.Context) {
	var req reqdto.DispatchEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	ev, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event", nil)
		return
	}

	ids, err := h.dispatch.Dispatch(c.Request.Context(), ev)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoRecipients):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Event resolves to no recipients", nil)
		case errors.Is(err, errs.ErrEnqueueFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Enqueue failed, retry the event", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusAccepted, resdto.DispatchResponse{NotificationIDs: ids})
}

// @Summary Process notification queue
// @Description Claim and deliver due notifications, one batch
// @Tags internal
// @Produce json
// @Param X-Scheduler-Token header string true "Shared scheduler secret"
// @Success 200 {object} resdto.ProcessResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /internal/notifications/process [post]
func (h *AdminHandler) Process(c *gin.Context) {
	summary, err := h.process.ProcessBatch(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Processing failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ProcessResponse{Summary: summary})
}

// @Summary Cleanup notifications
// @Description Delete terminal notifications past the retention window
// @Tags internal
// @Produce json
// @Param X-Scheduler-Token header string true "Shared scheduler secret"
// @Success 200 {object} resdto.CleanupResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /internal/notifications/cleanup [post]
func (h *AdminHandler) Cleanup(c *gin.Context) {
	deleted, err := h.cleanup.Cleanup(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Cleanup failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CleanupResponse{Deleted: deleted})
}
