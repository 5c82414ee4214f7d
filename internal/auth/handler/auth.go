package handler

import (
	"context"
	"rewards-server/internal/apierrors"
	"rewards-server/internal/observability"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MerchantIDKey is the gin context key the middleware stores the authenticated merchant under
const MerchantIDKey = "Merchant-ID"

// TokenValidator resolves a bearer token to the merchant it is scoped to
type TokenValidator interface {
	ValidateJWTToken(ctx context.Context, token string) (uuid.UUID, error)
}

type Handler struct {
	validator TokenValidator
	logger    *observability.Logger
}

func New(validator TokenValidator, logger *observability.Logger) Handler {
	return Handler{validator: validator, logger: logger}
}

// HandleJWTMiddleware authenticates the bearer token and, on merchant-scoped routes, requires
// the token's merchant to match the :merchant_id path parameter.
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	merchantID, err := h.validator.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		apierrors.Unauthorized(c, "Authorization token is missing or invalid")
		return
	}

	if param := c.Param("merchant_id"); param != "" && param != merchantID.String() {
		ctx = observability.WithFields(ctx,
			observability.Field{Key: "merchant_id", Value: merchantID.String()},
			observability.Field{Key: "requested_merchant_id", Value: param},
		)
		h.logger.Warn(ctx, "token merchant does not match route")
		apierrors.Forbidden(c, "FORBIDDEN", "You do not have access to this merchant")
		return
	}

	c.Set(MerchantIDKey, merchantID.String())
	c.Next()
}
