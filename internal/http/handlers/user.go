package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/carryhelper-backend/internal/http/response"
	"github.com/yungbote/carryhelper-backend/internal/services"
)

type UserHandler struct {
	users services.UserService
}

func NewUserHandler(users services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type createUserRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	u, err := h.users.Create(c.Request.Context(), req.Name)
	if err != nil {
		response.RespondServiceError(c, "create_user_failed", err)
		return
	}
	response.RespondCreated(c, u)
}

// GET /api/users?skip=&limit=
func (h *UserHandler) ListUsers(c *gin.Context) {
	offset, limit, err := page(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_page", err)
		return
	}
	users, err := h.users.List(c.Request.Context(), offset, limit)
	if err != nil {
		response.RespondServiceError(c, "list_users_failed", err)
		return
	}
	response.RespondOK(c, users)
}

// GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondServiceError(c, "get_user_failed", err)
		return
	}
	response.RespondOK(c, u)
}
