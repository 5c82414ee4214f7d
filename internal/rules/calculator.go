package rules

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const amountPrecision = 6

// Beta(2,5) shape parameters for range rewards.
const (
	rangeAlpha = 2.0
	rangeBeta  = 5.0
)

var (
	ErrInvalidAmount       = errors.New("reward amount must be greater than zero")
	ErrMissingPurchase     = errors.New("reward requires a purchase context")
	ErrMissingPercent      = errors.New("percentage reward requires percent")
	ErrNoTierMatch         = errors.New("no tier matches the field value")
	ErrTierFieldNotNumeric = errors.New("tier field is missing or not numeric")
	ErrInvalidRange        = errors.New("range reward has invalid bounds")
	ErrUnknownAmountType   = errors.New("unknown reward amount type")
	ErrUnresolvedRecipient = errors.New("reward recipient could not be resolved")
)

// Calculation is a successfully computed reward amount.
type Calculation struct {
	Amount decimal.Decimal
	Token  *string
}

// CalculatedReward is a computed reward bound to the identity that receives it.
type CalculatedReward struct {
	Recipient       Recipient
	IdentityGroupID uuid.UUID
	WalletAddress   *string
	AssetType       AssetType
	Amount          decimal.Decimal
	TokenAddress    *string
	Description     string
}

// Calculator computes reward amounts. The random source only affects range rewards.
type Calculator struct {
	rng *rand.Rand
}

// NewCalculator returns a calculator drawing range multipliers from rng. A nil rng
// uses a randomly seeded source.
func NewCalculator(rng *rand.Rand) *Calculator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Calculator{rng: rng}
}

// Calculate computes the amount for one reward definition.
func (c *Calculator) Calculate(def RewardDefinition, rc RuleContext) (Calculation, error) {
	var (
		amount decimal.Decimal
		err    error
	)
	switch def.AmountType {
	case AmountTypeFixed:
		amount, err = fixedAmount(def)
	case AmountTypePercentage:
		amount, err = percentageAmount(def, rc)
	case AmountTypeTiered:
		amount, err = tieredAmount(def, rc)
	case AmountTypeRange:
		amount, err = c.rangeAmount(def)
	default:
		return Calculation{}, fmt.Errorf("%w: %q", ErrUnknownAmountType, def.AmountType)
	}
	if err != nil {
		return Calculation{}, err
	}
	return Calculation{Amount: amount, Token: def.TokenAddress}, nil
}

// CalculateAll computes every reward of a rule. Failures are reported per reward and
// do not discard the rewards that succeeded.
func (c *Calculator) CalculateAll(defs []RewardDefinition, rc RuleContext, referrerID *uuid.UUID) ([]CalculatedReward, []string) {
	var (
		rewards []CalculatedReward
		errs    []string
	)
	for i, def := range defs {
		groupID, wallet, err := resolveRecipient(def.Recipient, rc, referrerID)
		if err != nil {
			errs = append(errs, fmt.Sprintf("reward %d (%s): %v", i, def.Recipient, err))
			continue
		}
		calc, err := c.Calculate(def, rc)
		if err != nil {
			errs = append(errs, fmt.Sprintf("reward %d (%s): %v", i, def.Recipient, err))
			continue
		}
		rewards = append(rewards, CalculatedReward{
			Recipient:       def.Recipient,
			IdentityGroupID: groupID,
			WalletAddress:   wallet,
			AssetType:       def.Type,
			Amount:          calc.Amount,
			TokenAddress:    calc.Token,
			Description:     def.Description,
		})
	}
	return rewards, errs
}

// TotalAmount sums reward amounts.
func TotalAmount(rewards []CalculatedReward) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rewards {
		total = total.Add(r.Amount)
	}
	return total
}

func resolveRecipient(recipient Recipient, rc RuleContext, referrerID *uuid.UUID) (uuid.UUID, *string, error) {
	switch recipient {
	case RecipientReferrer:
		if referrerID == nil {
			return uuid.Nil, nil, fmt.Errorf("%w: no referrer", ErrUnresolvedRecipient)
		}
		var wallet *string
		if rc.Attribution != nil {
			wallet = rc.Attribution.ReferrerWallet
		}
		return *referrerID, wallet, nil
	case RecipientReferee:
		// a stored referral relationship counts even when this conversion was attributed organically
		referred := referrerID != nil || (rc.Attribution != nil && rc.Attribution.Source == AttributionSourceReferralLink)
		if !referred {
			return uuid.Nil, nil, fmt.Errorf("%w: user was not referred", ErrUnresolvedRecipient)
		}
		return rc.User.IdentityGroupID, rc.User.WalletAddress, nil
	case RecipientUser:
		return rc.User.IdentityGroupID, rc.User.WalletAddress, nil
	default:
		return uuid.Nil, nil, fmt.Errorf("%w: unknown recipient %q", ErrUnresolvedRecipient, recipient)
	}
}

func fixedAmount(def RewardDefinition) (decimal.Decimal, error) {
	if def.Amount == nil || !def.Amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return def.Amount.Round(amountPrecision), nil
}

func percentageAmount(def RewardDefinition, rc RuleContext) (decimal.Decimal, error) {
	if rc.Purchase == nil {
		return decimal.Decimal{}, ErrMissingPurchase
	}
	if def.Percent == nil {
		return decimal.Decimal{}, ErrMissingPercent
	}
	base := rc.Purchase.Amount
	if def.PercentOf == PercentOfPurchaseSubtotal {
		if rc.Purchase.Subtotal == nil {
			return decimal.Decimal{}, fmt.Errorf("%w: subtotal not provided", ErrMissingPurchase)
		}
		base = *rc.Purchase.Subtotal
	}

	amount := def.Percent.Mul(base).Div(decimal.NewFromInt(100))
	if def.MinAmount != nil && amount.LessThan(*def.MinAmount) {
		amount = *def.MinAmount
	}
	if def.MaxAmount != nil && amount.GreaterThan(*def.MaxAmount) {
		amount = *def.MaxAmount
	}
	amount = amount.Round(amountPrecision)
	if !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}

func tieredAmount(def RewardDefinition, rc RuleContext) (decimal.Decimal, error) {
	raw, ok := ResolveField(rc.Fields(), def.TierField)
	if !ok {
		return decimal.Decimal{}, ErrTierFieldNotNumeric
	}
	num, ok := toNumber(raw)
	if !ok {
		return decimal.Decimal{}, ErrTierFieldNotNumeric
	}
	value := num.InexactFloat64()

	tiers := make([]RewardTier, len(def.Tiers))
	copy(tiers, def.Tiers)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinValue > tiers[j].MinValue })

	for _, tier := range tiers {
		if value < tier.MinValue {
			continue
		}
		if tier.MaxValue != nil && value > *tier.MaxValue {
			continue
		}
		if !tier.Amount.IsPositive() {
			return decimal.Decimal{}, ErrInvalidAmount
		}
		return tier.Amount.Round(amountPrecision), nil
	}
	return decimal.Decimal{}, ErrNoTierMatch
}

func (c *Calculator) rangeAmount(def RewardDefinition) (decimal.Decimal, error) {
	if def.BaseAmount == nil || def.MinMultiplier == nil || def.MaxMultiplier == nil {
		return decimal.Decimal{}, ErrInvalidRange
	}
	if !def.BaseAmount.IsPositive() || def.MinMultiplier.IsNegative() || def.MaxMultiplier.LessThan(*def.MinMultiplier) {
		return decimal.Decimal{}, ErrInvalidRange
	}

	spread := def.MaxMultiplier.Sub(*def.MinMultiplier)
	multiplier := def.MinMultiplier.Add(spread.Mul(decimal.NewFromFloat(c.betaSample())))
	amount := def.BaseAmount.Mul(multiplier).Round(amountPrecision)
	if !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return amount, nil
}

// betaSample draws from Beta(2,5) using u^(1/a) / (u^(1/a) + v^(1/b)).
func (c *Calculator) betaSample() float64 {
	x := math.Pow(c.rng.Float64(), 1/rangeAlpha)
	y := math.Pow(c.rng.Float64(), 1/rangeBeta)
	if x+y == 0 {
		return 0
	}
	return x / (x + y)
}
