package processor

import (
	"context"
	"errors"
	"fmt"
	"rewards-server/internal/observability"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateMerchantToken signs a token scoping its bearer to one merchant
func (p *AuthProcessor) GenerateMerchantToken(ctx context.Context, merchantID uuid.UUID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := p.now()
	claims := BaseClaims{
		ExpirationTime: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:       jwt.NewNumericDate(now),
		Issuer:         tokenIssuer,
		Subject:        merchantID.String(),
		Audience:       jwt.ClaimStrings{tokenIssuer},
		MerchantID:     merchantID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString(p.secret)
	if err != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "merchant_id", Value: merchantID.String()})
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignToken
	}

	return tokenString, nil
}

func (b *BaseClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BaseClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BaseClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BaseClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BaseClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BaseClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

// ValidateJWTToken parses a bearer token and returns the merchant it is scoped to
func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (uuid.UUID, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenIssuer),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.InfoWithError(ctx, "token expired", err)
			return uuid.Nil, ErrExpiredToken
		}

		p.logger.InfoWithError(ctx, "failed to parse token", err)
		return uuid.Nil, ErrParseJWTToken
	}
	if !t.Valid {
		return uuid.Nil, ErrInvalidJWTToken
	}

	claims, ok := t.Claims.(*BaseClaims)
	if !ok || claims.MerchantID == "" {
		return uuid.Nil, ErrMissingMerchant
	}

	merchantID, err := uuid.Parse(claims.MerchantID)
	if err != nil {
		return uuid.Nil, ErrMissingMerchant
	}
	return merchantID, nil
}
