package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/carryhelper-backend/internal/http/response"
	"github.com/yungbote/carryhelper-backend/internal/services"
)

type RecommendationHandler struct {
	recs services.RecommendationService
}

func NewRecommendationHandler(recs services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recs: recs}
}

type recommendationQuery struct {
	UserID      uint   `form:"user_id" binding:"required"`
	ShoeType    string `form:"shoe_type" binding:"required"`
	CurrentTime string `form:"current_time"`
}

// GET /api/recommendations?user_id=&shoe_type=&current_time=
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var q recommendationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	in := services.RecommendInput{UserID: q.UserID, ShoeType: q.ShoeType}
	if q.CurrentTime != "" {
		at, err := parseTime(q.CurrentTime)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_current_time", err)
			return
		}
		in.At = &at
	}

	res, err := h.recs.Recommend(c.Request.Context(), in)
	if err != nil {
		response.RespondServiceError(c, "recommendation_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"shoe_type":     res.ShoeType,
		"current_event": res.Current,
		"next_event":    res.Next,
		"items":         res.Items,
	})
}

type detectShoeRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	ShoeID uint `json:"shoe_id" binding:"required"`
}

// POST /api/detect_shoe
func (h *RecommendationHandler) DetectShoe(c *gin.Context) {
	var req detectShoeRequest
	if err := bindStrictJSON(c, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.recs.DetectShoe(c.Request.Context(), req.UserID, req.ShoeID)
	if err != nil {
		response.RespondServiceError(c, "detect_shoe_failed", err)
		return
	}
	response.RespondOK(c, res)
}

type commonItemsQuery struct {
	ShoeID uint `form:"shoe_id" binding:"required"`
}

// GET /api/mcu/common_items?shoe_id=
func (h *RecommendationHandler) CommonItems(c *gin.Context) {
	var q commonItemsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	res, err := h.recs.CommonItems(c.Request.Context(), q.ShoeID)
	if err != nil {
		response.RespondServiceError(c, "common_items_failed", err)
		return
	}
	response.RespondOK(c, res)
}
