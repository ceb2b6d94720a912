package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/carryhelper-backend/internal/http/response"
	"github.com/yungbote/carryhelper-backend/internal/services"
)

type ShoeHandler struct {
	shoes services.ShoeService
}

func NewShoeHandler(shoes services.ShoeService) *ShoeHandler {
	return &ShoeHandler{shoes: shoes}
}

type registerShoeRequest struct {
	ShoeType string  `json:"shoe_type" binding:"required"`
	Label    *string `json:"label"`
}

// POST /api/users/:id/shoes
func (h *ShoeHandler) RegisterShoe(c *gin.Context) {
	userID, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	var req registerShoeRequest
	if err := bindStrictJSON(c, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	shoe, err := h.shoes.Register(c.Request.Context(), userID, req.ShoeType, req.Label)
	if err != nil {
		response.RespondServiceError(c, "register_shoe_failed", err)
		return
	}
	response.RespondCreated(c, shoe)
}

// GET /api/users/:id/shoes
func (h *ShoeHandler) ListUserShoes(c *gin.Context) {
	userID, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	shoes, err := h.shoes.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, "list_shoes_failed", err)
		return
	}
	response.RespondOK(c, shoes)
}
