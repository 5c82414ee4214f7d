package handler

import (
	"errors"
	"net/http"

	"rewards-server/internal/apierrors"
	"rewards-server/internal/attribution/processor"
	"rewards-server/internal/observability"
	"rewards-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.AttributionProcessor
	logger    *observability.Logger
}

func New(processor *processor.AttributionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RecordTouchpointRequest represents the HTTP request for recording a marketing touchpoint
type RecordTouchpointRequest struct {
	IdentityGroupID         uuid.UUID   `json:"identity_group_id" binding:"required"`
	Source                  string      `json:"source" binding:"required,oneof=referral_link organic paid_ad direct"`
	SourceData              store.JSONB `json:"source_data,omitempty"`
	LandingURL              *string     `json:"landing_url,omitempty" binding:"omitempty,url"`
	ReferrerIdentityGroupID *uuid.UUID  `json:"referrer_identity_group_id,omitempty"`
}

// HandleRecordTouchpoint handles POST /api/merchants/:merchant_id/touchpoints
func (h *Handler) HandleRecordTouchpoint(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	var req RecordTouchpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.processor.RecordTouchpoint(ctx, merchantID, processor.RecordTouchpointRequest{
		IdentityGroupID:         req.IdentityGroupID,
		Source:                  req.Source,
		SourceData:              req.SourceData,
		LandingURL:              req.LandingURL,
		ReferrerIdentityGroupID: req.ReferrerIdentityGroupID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleGetAttribution handles GET /api/merchants/:merchant_id/attribution/:identity_group_id
func (h *Handler) HandleGetAttribution(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	identityGroupID, err := uuid.Parse(c.Param("identity_group_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid identity group ID format")
		return
	}

	attribution, err := h.processor.AttributeConversion(ctx, identityGroupID, merchantID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, attribution)
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
	case errors.Is(err, processor.ErrInvalidSource):
		apierrors.BadRequest(c, "INVALID_SOURCE", "Invalid touchpoint source")
	case errors.Is(err, processor.ErrMissingIdentity):
		apierrors.BadRequest(c, "INVALID_INPUT", "Identity group is required")
	default:
		apierrors.InternalError(c, err)
	}
}
