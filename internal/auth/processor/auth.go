package processor

import (
	"errors"
	"rewards-server/internal/observability"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTokenTTL = 24 * time.Hour
	tokenIssuer     = "rewards-server"
)

var ErrExpiredToken = errors.New("token expired")

var ErrInvalidJWTToken = errors.New("invalid jwt token")

var ErrParseJWTToken = errors.New("failed to parse jwt token")

var ErrMissingMerchant = errors.New("token has no merchant")

var ErrFailedSignToken = errors.New("failed to sign token")

// AuthProcessor issues and validates merchant bearer tokens
type AuthProcessor struct {
	secret []byte
	logger *observability.Logger
	now    func() time.Time
}

func New(secret string, logger *observability.Logger) *AuthProcessor {
	return &AuthProcessor{
		secret: []byte(secret),
		logger: logger,
		now:    time.Now,
	}
}

// BaseClaims are the claims carried by a merchant token
type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf,omitempty"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	MerchantID     string           `json:"merchant_id"`
}
