package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/carryhelper-backend/internal/http/response"
	"github.com/yungbote/carryhelper-backend/internal/services"
)

type RuleHandler struct {
	rules services.RuleService
}

func NewRuleHandler(rules services.RuleService) *RuleHandler {
	return &RuleHandler{rules: rules}
}

type createRuleRequest struct {
	ActType      string  `json:"act_type" binding:"required"`
	ItemName     string  `json:"item_name" binding:"required"`
	BasePriority *int    `json:"base_priority" binding:"omitempty,min=0"`
	ShoeType     *string `json:"shoe_type"`
	IsDefault    bool    `json:"is_default"`
	TimeTag      *string `json:"time_tag"`
}

// POST /api/rules
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var req createRuleRequest
	if err := bindStrictJSON(c, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	r, err := h.rules.CreateRule(c.Request.Context(), services.RuleInput{
		ActType:      req.ActType,
		ItemName:     req.ItemName,
		BasePriority: req.BasePriority,
		ShoeType:     req.ShoeType,
		IsDefault:    req.IsDefault,
		TimeTag:      req.TimeTag,
	})
	if err != nil {
		response.RespondServiceError(c, "create_rule_failed", err)
		return
	}
	response.RespondCreated(c, r)
}

// GET /api/rules?act_type=&skip=&limit=
func (h *RuleHandler) ListRules(c *gin.Context) {
	offset, limit, err := page(c)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_page", err)
		return
	}
	rules, err := h.rules.ListRules(c.Request.Context(), c.Query("act_type"), offset, limit)
	if err != nil {
		response.RespondServiceError(c, "list_rules_failed", err)
		return
	}
	response.RespondOK(c, rules)
}

type addShoeItemsRequest struct {
	ShoeID   *uint    `json:"shoe_id"`
	ShoeType *string  `json:"shoe_type"`
	Items    []string `json:"items" binding:"required,min=1"`
}

// POST /api/shoe_items
func (h *RuleHandler) AddShoeItems(c *gin.Context) {
	var req addShoeItemsRequest
	if err := bindStrictJSON(c, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rows, err := h.rules.AddShoeItems(c.Request.Context(), services.ShoeItemsInput{
		ShoeID:   req.ShoeID,
		ShoeType: req.ShoeType,
		Items:    req.Items,
	})
	if err != nil {
		response.RespondServiceError(c, "add_shoe_items_failed", err)
		return
	}
	response.RespondCreated(c, rows)
}

// GET /api/shoe_items?shoe_id= or ?shoe_type=
func (h *RuleHandler) ListShoeItems(c *gin.Context) {
	var shoeID *uint
	if raw := c.Query("shoe_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_shoe_id", err)
			return
		}
		id := uint(v)
		shoeID = &id
	}
	rows, err := h.rules.ListShoeItems(c.Request.Context(), shoeID, c.Query("shoe_type"))
	if err != nil {
		response.RespondServiceError(c, "list_shoe_items_failed", err)
		return
	}
	response.RespondOK(c, rows)
}

type createEncounterRuleRequest struct {
	OwnerUserID       uint   `json:"owner_user_id" binding:"required"`
	CounterpartUserID uint   `json:"counterpart_user_id" binding:"required"`
	ItemName          string `json:"item_name" binding:"required"`
}

// POST /api/encounter_rules
func (h *RuleHandler) CreateEncounterRule(c *gin.Context) {
	var req createEncounterRuleRequest
	if err := bindStrictJSON(c, &req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	r, err := h.rules.CreateEncounterRule(c.Request.Context(), req.OwnerUserID, req.CounterpartUserID, req.ItemName)
	if err != nil {
		response.RespondServiceError(c, "create_encounter_rule_failed", err)
		return
	}
	response.RespondCreated(c, r)
}

// GET /api/users/:id/encounter_rules
func (h *RuleHandler) ListEncounterRules(c *gin.Context) {
	userID, err := uintParam(c, "id")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return
	}
	rules, err := h.rules.ListEncounterRules(c.Request.Context(), userID)
	if err != nil {
		response.RespondServiceError(c, "list_encounter_rules_failed", err)
		return
	}
	response.RespondOK(c, rules)
}
