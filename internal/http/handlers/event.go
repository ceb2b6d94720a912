package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/carryhelper-backend/internal/http/response"
	"github.com/yungbote/carryhelper-backend/internal/services"
)

type EventHandler struct {
	events services.EventService
}

func NewEventHandler(events services.EventService) *EventHandler {
	return &EventHandler{events: events}
}

type createEventRequest struct {
	UserID    uint       `json:"user_id" binding:"required"`
	Title     string     `json:"title" binding:"required"`
	ActType   *string    `json:"act_type"`
	Location  *string    `json:"location"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

// POST /api/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := bindStrictJSON(c, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	ev, err := h.events.Create(c.Request.Context(), services.EventInput{
		UserID:    req.UserID,
		Title:     req.Title,
		ActType:   req.ActType,
		Location:  req.Location,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		response.RespondServiceError(c, "create_event_failed", err)
		return
	}
	response.RespondCreated(c, ev)
}

// GET /api/events?skip=&limit=
func (h *EventHandler) ListEvents(c *gin.Context) {
	offset, limit, err := page(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_page", err)
		return
	}
	events, err := h.events.List(c.Request.Context(), offset, limit)
	if err != nil {
		response.RespondServiceError(c, "list_events_failed", err)
		return
	}
	response.RespondOK(c, events)
}

// GET /api/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_event_id", err)
		return
	}
	ev, err := h.events.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "get_event_failed", err)
		return
	}
	response.RespondOK(c, ev)
}

// GET /api/users/:id/events
func (h *EventHandler) ListUserEvents(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	events, err := h.events.ListByUser(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "list_events_failed", err)
		return
	}
	response.RespondOK(c, events)
}
