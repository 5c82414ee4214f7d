package ratelimit

import (
	"strconv"

	"rewards-server/internal/apierrors"
	"rewards-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MerchantIDKey is the gin context key the auth middleware stores the merchant under
const MerchantIDKey = "Merchant-ID"

// Middleware rate limits authenticated merchant requests. It must run after the JWT
// middleware; requests without a merchant pass through. When the window store is unreachable
// requests are let through.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		merchantIDStr := c.GetString(MerchantIDKey)
		merchantID, err := uuid.Parse(merchantIDStr)
		if err != nil {
			c.Next()
			return
		}

		ctx = observability.WithFields(ctx,
			observability.Field{Key: "merchant_id", Value: merchantIDStr},
			observability.Field{Key: "rate_limit_rpm", Value: s.limit},
		)

		result, err := s.Check(ctx, merchantID)
		if err != nil {
			s.logger.Error(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			), "rate limit exceeded")
			apierrors.TooManyRequests(c, retryAfter)
			return
		}

		c.Next()
	}
}
