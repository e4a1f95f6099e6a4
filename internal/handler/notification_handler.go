package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edustack/attendance-api/internal/service"
	appErrors "github.com/edustack/attendance-api/pkg/errors"
	"github.com/edustack/attendance-api/pkg/response"
)

type notificationService interface {
	Notify(ctx context.Context, req service.NotifyRequest) (*service.NotifyResult, error)
}

// NotificationHandler exposes the low-attendance notification endpoint.
type NotificationHandler struct {
	notifications notificationService
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(notifications notificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// SendLowAttendance godoc
// @Summary Email students whose attendance is below the threshold
// @Tags Notifications
// @Accept json
// @Produce json
// @Param payload body service.NotifyRequest true "Summaries and threshold"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /notifications/low-attendance [post]
func (h *NotificationHandler) SendLowAttendance(c *gin.Context) {
	var req service.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required data"))
		return
	}
	result, err := h.notifications.Notify(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
