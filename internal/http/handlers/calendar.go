package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/carryhelper-backend/internal/http/response"
	"github.com/yungbote/carryhelper-backend/internal/services"
)

type CalendarHandler struct {
	calendars services.CalendarService
}

func NewCalendarHandler(calendars services.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendars: calendars}
}

type addCalendarSourceRequest struct {
	URL             string  `json:"url" binding:"required"`
	DefaultActivity *string `json:"default_activity"`
}

// POST /api/users/:id/calendar_sources
func (h *CalendarHandler) AddSource(c *gin.Context) {
	userID, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	var req addCalendarSourceRequest
	if err := bindStrictJSON(c, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	src, err := h.calendars.AddSource(c.Request.Context(), userID, req.URL, req.DefaultActivity)
	if err != nil {
		response.RespondServiceError(c, "add_calendar_source_failed", err)
		return
	}
	response.RespondCreated(c, src)
}

// GET /api/users/:id/calendar_sources
func (h *CalendarHandler) ListSources(c *gin.Context) {
	userID, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	sources, err := h.calendars.ListSources(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, "list_calendar_sources_failed", err)
		return
	}
	response.RespondOK(c, sources)
}

// POST /api/users/:id/calendar_sources/sync
func (h *CalendarHandler) SyncUser(c *gin.Context) {
	userID, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	reports, err := h.calendars.SyncUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, "calendar_sync_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"reports": reports})
}
