package handler

import (
	"errors"
	"net/http"
	"strconv"

	"rewards-server/internal/apierrors"
	"rewards-server/internal/observability"
	"rewards-server/internal/referral/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor *processor.ReferralProcessor
	logger    *observability.Logger
}

func New(processor *processor.ReferralProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// RegisterReferralRequest represents the HTTP request for linking a referee to a referrer
type RegisterReferralRequest struct {
	ReferrerIdentityGroupID uuid.UUID `json:"referrer_identity_group_id" binding:"required"`
	RefereeIdentityGroupID  uuid.UUID `json:"referee_identity_group_id" binding:"required"`
}

// HandleRegisterReferral handles POST /api/merchants/:merchant_id/referrals
func (h *Handler) HandleRegisterReferral(c *gin.Context) {
	ctx := c.Request.Context()

	merchantID, ok := h.getMerchantID(c)
	if !ok {
		return
	}

	var req RegisterReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.processor.RegisterReferral(ctx, merchantID, req.ReferrerIdentityGroupID, req.RefereeIdentityGroupID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if result.Registered {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

// HandleGetReferralGraph handles GET /api/merchants/:merchant_id/referrals/:identity_group_id
// and returns the identity's referrer chain and direct referees.
func (h *Handler) HandleGetReferralGraph(c *gin.Context) {
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

	maxDepth := 0
	if depthStr := c.Query("max_depth"); depthStr != "" {
		maxDepth, err = strconv.Atoi(depthStr)
		if err != nil || maxDepth < 1 {
			apierrors.BadRequest(c, "INVALID_INPUT", "max_depth must be a positive integer")
			return
		}
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "identity_group_id", Value: identityGroupID.String()})

	chain, err := h.processor.GetReferralChain(ctx, merchantID, identityGroupID, maxDepth)
	if err != nil {
		h.handleError(c, err)
		return
	}

	referees, err := h.processor.ListReferees(ctx, merchantID, identityGroupID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var referrer *uuid.UUID
	if len(chain) > 0 {
		referrer = &chain[0].IdentityGroupID
	}

	c.JSON(http.StatusOK, gin.H{
		"identity_group_id": identityGroupID,
		"referrer":          referrer,
		"chain":             chain,
		"referees":          referees,
	})
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
	case errors.Is(err, processor.ErrInvalidReferral):
		apierrors.BadRequest(c, "INVALID_REFERRAL", "Referrer and referee identity groups are required")
	case errors.Is(err, processor.ErrFailedLookup), errors.Is(err, processor.ErrFailedReferral):
		apierrors.ServiceUnavailable(c, "REFERRALS_UNAVAILABLE", "Referral data is temporarily unavailable", err)
	default:
		apierrors.InternalError(c, err)
	}
}
