package handler

import (
	"errors"
	"net/http"

	"rewards-server/internal/apierrors"
	"rewards-server/internal/observability"
	"rewards-server/internal/rewards/processor"
	"rewards-server/internal/rules"
	"rewards-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Handler struct {
	processor *processor.RewardsProcessor
	logger    *observability.Logger
}

func New(processor *processor.RewardsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// PurchaseItemRequest represents one purchase line in HTTP request
type PurchaseItemRequest struct {
	SKU      string          `json:"sku" binding:"required"`
	Name     string          `json:"name,omitempty"`
	Quantity int             `json:"quantity" binding:"gte=0"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category,omitempty"`
}

// ProcessPurchaseRequest represents the HTTP request for rewarding a purchase
type ProcessPurchaseRequest struct {
	IdentityGroupID uuid.UUID             `json:"identity_group_id" binding:"required"`
	PurchaseID      string                `json:"purchase_id" binding:"required,max=255"`
	Amount          decimal.Decimal       `json:"amount"`
	Subtotal        *decimal.Decimal      `json:"subtotal,omitempty"`
	Currency        string                `json:"currency,omitempty" binding:"omitempty,len=3"`
	Items           []PurchaseItemRequest `json:"items,omitempty" binding:"dive"`
	Metadata        map[string]any        `json:"metadata,omitempty"`
}

// RecordInteractionRequest represents the HTTP request for appending a raw interaction
type RecordInteractionRequest struct {
	IdentityGroupID uuid.UUID   `json:"identity_group_id" binding:"required"`
	Type            string      `json:"type" binding:"required,oneof=wallet_connect referral_arrival identity_merge"`
	Payload         store.JSONB `json:"payload,omitempty"`
}

// HandleProcessPurchase handles POST /api/merchants/:merchant_id/purchases
func (h *Handler) HandleProcessPurchase(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	var req ProcessPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "purchase_id", Value: req.PurchaseID})

	items := make([]rules.PurchaseItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, rules.PurchaseItem{
			SKU:      item.SKU,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Category: item.Category,
		})
	}

	result, err := h.processor.ProcessPurchase(ctx, merchantID, processor.ProcessPurchaseRequest{
		IdentityGroupID: req.IdentityGroupID,
		Purchase: rules.PurchaseContext{
			ID:       req.PurchaseID,
			Amount:   req.Amount,
			Subtotal: req.Subtotal,
			Currency: req.Currency,
			Items:    items,
			Metadata: req.Metadata,
		},
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleRefundPurchase handles POST /api/merchants/:merchant_id/purchases/:interaction_id/refund
func (h *Handler) HandleRefundPurchase(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	interactionID, err := uuid.Parse(c.Param("interaction_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid interaction ID format")
		return
	}

	result, err := h.processor.HandleRefund(ctx, merchantID, interactionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleRecordInteraction handles POST /api/merchants/:merchant_id/interactions
func (h *Handler) HandleRecordInteraction(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	var req RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	log, err := h.processor.RecordInteraction(ctx, merchantID, processor.RecordInteractionRequest{
		IdentityGroupID: req.IdentityGroupID,
		Type:            req.Type,
		Payload:         req.Payload,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, log)
}

// HandleListInteractionRewards handles GET /api/merchants/:merchant_id/interactions/:interaction_id/rewards
func (h *Handler) HandleListInteractionRewards(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	interactionID, err := uuid.Parse(c.Param("interaction_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid interaction ID format")
		return
	}

	assets, err := h.processor.ListInteractionRewards(ctx, merchantID, interactionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rewards": assets})
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

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidPurchase):
		apierrors.BadRequest(c, "INVALID_PURCHASE", err.Error())
	case errors.Is(err, processor.ErrMissingIdentity):
		apierrors.BadRequest(c, "INVALID_INPUT", "Identity group is required")
	case errors.Is(err, processor.ErrInvalidInteractionType):
		apierrors.BadRequest(c, "INVALID_INTERACTION_TYPE", "Invalid interaction type")
	case errors.Is(err, processor.ErrInteractionNotFound):
		apierrors.NotFound(c, "Interaction not found")
	case errors.Is(err, processor.ErrFailedRewards):
		apierrors.ServiceUnavailable(c, "REWARDS_DEFERRED", "Rewards could not be computed now and will be retried", err)
	default:
		apierrors.InternalError(c, err)
	}
}
