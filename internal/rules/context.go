package rules

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseItem is one line of a purchase.
type PurchaseItem struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name,omitempty"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category,omitempty"`
}

// PurchaseContext describes the purchase being rewarded.
type PurchaseContext struct {
	ID       string           `json:"id"`
	Amount   decimal.Decimal  `json:"amount"`
	Subtotal *decimal.Decimal `json:"subtotal,omitempty"`
	Currency string           `json:"currency,omitempty"`
	Items    []PurchaseItem   `json:"items,omitempty"`
	Metadata map[string]any   `json:"metadata,omitempty"`
}

// AttributionSourceReferralLink is the touchpoint source that carries a referrer.
const AttributionSourceReferralLink = "referral_link"

// AttributionContext describes which touchpoint or referral got credit for the event.
type AttributionContext struct {
	Attributed              bool           `json:"attributed"`
	Source                  string         `json:"source,omitempty"`
	TouchpointID            *uuid.UUID     `json:"touchpointId,omitempty"`
	ReferrerWallet          *string        `json:"referrerWallet,omitempty"`
	ReferrerIdentityGroupID *uuid.UUID     `json:"referrerIdentityGroupId,omitempty"`
	ReferralChainDepth      int            `json:"referralChainDepth"`
	SourceData              map[string]any `json:"sourceData,omitempty"`
}

// UserContext describes the acting identity.
type UserContext struct {
	IdentityGroupID uuid.UUID      `json:"identityGroupId"`
	WalletAddress   *string        `json:"walletAddress,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// TimeContext exposes the evaluation instant to conditions.
type TimeContext struct {
	DayOfWeek        int    `json:"dayOfWeek"`
	HourOfDay        int    `json:"hourOfDay"`
	Date             string `json:"date"`
	TimestampSeconds int64  `json:"timestampSeconds"`
}

// NewTimeContext derives the time fields from t in UTC. Sunday is day 0.
func NewTimeContext(t time.Time) TimeContext {
	u := t.UTC()
	return TimeContext{
		DayOfWeek:        int(u.Weekday()),
		HourOfDay:        u.Hour(),
		Date:             u.Format("2006-01-02"),
		TimestampSeconds: u.Unix(),
	}
}

// RuleContext is everything a rule can look at while being evaluated.
type RuleContext struct {
	Purchase    *PurchaseContext
	Attribution *AttributionContext
	User        UserContext
	Time        TimeContext
}

// Fields renders the context as the nested object conditions resolve dot-paths against.
// Numeric values are float64 so they compare against decoded JSON rule values.
func (rc RuleContext) Fields() map[string]any {
	fields := map[string]any{
		"user": userFields(rc.User),
		"time": map[string]any{
			"dayOfWeek":        float64(rc.Time.DayOfWeek),
			"hourOfDay":        float64(rc.Time.HourOfDay),
			"date":             rc.Time.Date,
			"timestampSeconds": float64(rc.Time.TimestampSeconds),
		},
	}
	if rc.Purchase != nil {
		fields["purchase"] = purchaseFields(*rc.Purchase)
	}
	if rc.Attribution != nil {
		fields["attribution"] = attributionFields(*rc.Attribution)
	}
	return fields
}

func userFields(u UserContext) map[string]any {
	m := map[string]any{
		"identityGroupId": u.IdentityGroupID.String(),
	}
	if u.WalletAddress != nil {
		m["walletAddress"] = *u.WalletAddress
	}
	if u.Metadata != nil {
		m["metadata"] = u.Metadata
	}
	return m
}

func purchaseFields(p PurchaseContext) map[string]any {
	m := map[string]any{
		"id":        p.ID,
		"amount":    p.Amount.InexactFloat64(),
		"itemCount": float64(len(p.Items)),
	}
	if p.Subtotal != nil {
		m["subtotal"] = p.Subtotal.InexactFloat64()
	}
	if p.Currency != "" {
		m["currency"] = p.Currency
	}
	if len(p.Items) > 0 {
		items := make([]any, 0, len(p.Items))
		skus := make([]any, 0, len(p.Items))
		for _, item := range p.Items {
			items = append(items, map[string]any{
				"sku":      item.SKU,
				"name":     item.Name,
				"quantity": float64(item.Quantity),
				"price":    item.Price.InexactFloat64(),
				"category": item.Category,
			})
			skus = append(skus, item.SKU)
		}
		m["items"] = items
		m["skus"] = skus
	}
	if p.Metadata != nil {
		m["metadata"] = p.Metadata
	}
	return m
}

func attributionFields(a AttributionContext) map[string]any {
	m := map[string]any{
		"attributed":         a.Attributed,
		"referralChainDepth": float64(a.ReferralChainDepth),
	}
	if a.Source != "" {
		m["source"] = a.Source
	}
	if a.TouchpointID != nil {
		m["touchpointId"] = a.TouchpointID.String()
	}
	if a.ReferrerWallet != nil {
		m["referrerWallet"] = *a.ReferrerWallet
	}
	if a.ReferrerIdentityGroupID != nil {
		m["referrerIdentityGroupId"] = a.ReferrerIdentityGroupID.String()
	}
	if a.SourceData != nil {
		m["sourceData"] = a.SourceData
	}
	return m
}
