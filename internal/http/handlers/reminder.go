package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/carryhelper-backend/internal/http/response"
	"github.com/yungbote/carryhelper-backend/internal/services"
)

type ReminderHandler struct {
	reminders services.ReminderService
}

func NewReminderHandler(reminders services.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

type createReminderRequest struct {
	UserID       uint     `json:"user_id" binding:"required"`
	EventID      uint     `json:"event_id" binding:"required"`
	ReminderText string   `json:"reminder_text" binding:"required"`
	TriggeredBy  *string  `json:"triggered_by" binding:"omitempty,oneof=sensor user app"`
	Items        []string `json:"items"`
}

// POST /api/reminders
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req createReminderRequest
	if err := bindStrictJSON(c, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rl, err := h.reminders.Create(c.Request.Context(), services.ReminderInput{
		UserID:       req.UserID,
		EventID:      req.EventID,
		ReminderText: req.ReminderText,
		TriggeredBy:  req.TriggeredBy,
		Items:        req.Items,
	})
	if err != nil {
		response.RespondServiceError(c, "create_reminder_failed", err)
		return
	}
	response.RespondCreated(c, rl)
}

// GET /api/users/:id/reminders
func (h *ReminderHandler) ListUserReminders(c *gin.Context) {
	userID, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	logs, err := h.reminders.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, "list_reminders_failed", err)
		return
	}
	response.RespondOK(c, logs)
}
