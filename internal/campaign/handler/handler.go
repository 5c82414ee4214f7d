package handler

import (
	"errors"
	"net/http"
	"time"

	"rewards-server/internal/apierrors"
	"rewards-server/internal/campaign/processor"
	"rewards-server/internal/observability"
	"rewards-server/internal/rules"
	"rewards-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor *processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCampaignRuleRequest represents the HTTP request for creating a campaign rule
type CreateCampaignRuleRequest struct {
	Name         string               `json:"name" binding:"required,min=1,max=255"`
	Priority     int                  `json:"priority"`
	Definition   rules.RuleDefinition `json:"definition"`
	BudgetConfig rules.BudgetConfig   `json:"budget_config,omitempty"`
	Metadata     store.JSONB          `json:"metadata,omitempty"`
	ExpiresAt    *time.Time           `json:"expires_at,omitempty"`
}

// UpdateCampaignRuleRequest represents the HTTP request for updating a campaign rule
type UpdateCampaignRuleRequest struct {
	Name           *string               `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Priority       *int                  `json:"priority,omitempty"`
	Definition     *rules.RuleDefinition `json:"definition,omitempty"`
	BudgetConfig   *rules.BudgetConfig   `json:"budget_config,omitempty"`
	Metadata       *store.JSONB          `json:"metadata,omitempty"`
	ExpiresAt      *time.Time            `json:"expires_at,omitempty"`
	ClearExpiresAt bool                  `json:"clear_expires_at,omitempty"`
}

// HandleCreateCampaignRule creates a new draft campaign rule
func (h *Handler) HandleCreateCampaignRule(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	var req CreateCampaignRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "trigger", Value: string(req.Definition.Trigger)})

	rule, err := h.processor.CreateCampaignRule(ctx, merchantID, processor.CreateCampaignRuleRequest{
		Name:         req.Name,
		Priority:     req.Priority,
		Definition:   req.Definition,
		BudgetConfig: req.BudgetConfig,
		Metadata:     req.Metadata,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// HandleListCampaignRules lists all campaign rules for the merchant
func (h *Handler) HandleListCampaignRules(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	campaignRules, err := h.processor.ListCampaignRules(ctx, merchantID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign_rules": campaignRules})
}

// HandleGetCampaignRule retrieves a campaign rule by ID
func (h *Handler) HandleGetCampaignRule(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	ruleID, ok := h.getRuleID(c)
	if !ok {
		return
	}

	rule, err := h.processor.GetCampaignRule(ctx, merchantID, ruleID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rule)
}

// HandleUpdateCampaignRule applies a partial update to a campaign rule
func (h *Handler) HandleUpdateCampaignRule(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	ruleID, ok := h.getRuleID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	rule, err := h.processor.UpdateCampaignRule(ctx, merchantID, ruleID, processor.UpdateCampaignRuleRequest{
		Name:           req.Name,
		Priority:       req.Priority,
		Definition:     req.Definition,
		BudgetConfig:   req.BudgetConfig,
		Metadata:       req.Metadata,
		ExpiresAt:      req.ExpiresAt,
		ClearExpiresAt: req.ClearExpiresAt,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rule)
}

// HandleTransition returns a handler applying one lifecycle action (publish, pause, resume, archive)
func (h *Handler) HandleTransition(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		merchantID, ok := h.getMerchantID(c)
		if !ok {
			return
		}

		ruleID, ok := h.getRuleID(c)
		if !ok {
			return
		}

		rule, err := h.processor.TransitionStatus(ctx, merchantID, ruleID, action)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, rule)
	}
}

// HandleDeleteCampaignRule deletes a draft campaign rule
func (h *Handler) HandleDeleteCampaignRule(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	ruleID, ok := h.getRuleID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCampaignRule(ctx, merchantID, ruleID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) getMerchantID(c *gin.Context) (uuid.UUID, bool) {
	merchantIDStr, exists := c.Get("Merchant-ID")
	if !exists {
		apierrors.Unauthorized(c, "Merchant ID not found in context")
		return uuid.UUID{}, false
	}

	merchantID, err := uuid.Parse(merchantIDStr.(string))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid merchant ID format")
		return uuid.UUID{}, false
	}
	return merchantID, true
}

func (h *Handler) getRuleID(c *gin.Context) (uuid.UUID, bool) {
	ruleID, err := uuid.Parse(c.Param("rule_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid campaign rule ID format")
		return uuid.UUID{}, false
	}
	return ruleID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrCampaignRuleNotFound):
		apierrors.NotFound(c, "Campaign rule not found")
	case errors.Is(err, processor.ErrInvalidRule):
		apierrors.BadRequest(c, "INVALID_RULE", err.Error())
	case errors.Is(err, processor.ErrBudgetRequired):
		apierrors.BadRequest(c, "BUDGET_REQUIRED", "Campaign rule needs a budget before it can be published")
	case errors.Is(err, processor.ErrInvalidTransition):
		apierrors.Conflict(c, "INVALID_TRANSITION", "Campaign rule cannot make this status change")
	case errors.Is(err, processor.ErrRuleNotEditable):
		apierrors.Conflict(c, "RULE_NOT_EDITABLE", "Only draft campaign rules can change their definition, priority or metadata")
	case errors.Is(err, processor.ErrCannotDeletePublished):
		apierrors.Conflict(c, "RULE_PUBLISHED", "Only draft campaign rules can be deleted")
	default:
		apierrors.InternalError(c, err)
	}
}
