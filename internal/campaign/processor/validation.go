package processor

import (
	"errors"
	"fmt"
	"rewards-server/internal/rules"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

const maxConditionDepth = 8

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateDefinition checks a rule definition before it is persisted.
func ValidateDefinition(def rules.RuleDefinition) error {
	if err := validate.Struct(def); err != nil {
		return invalidRule(describeValidation(err))
	}
	if !def.Trigger.IsValid() {
		return invalidRule(fmt.Sprintf("unknown trigger %q", def.Trigger))
	}
	if err := validateGroup(def.Conditions.ConditionGroup, "conditions", 0); err != nil {
		return err
	}
	for i, reward := range def.Rewards {
		if err := validateReward(reward); err != nil {
			return invalidRule(fmt.Sprintf("rewards[%d]: %s", i, err))
		}
	}
	return nil
}

// ValidateBudget checks that bucket labels are unique and limits are positive.
func ValidateBudget(config rules.BudgetConfig) error {
	seen := make(map[string]struct{}, len(config))
	for i, bucket := range config {
		if err := validate.Struct(bucket); err != nil {
			return invalidRule(fmt.Sprintf("budgetConfig[%d]: %s", i, describeValidation(err)))
		}
		if _, dup := seen[bucket.Label]; dup {
			return invalidRule(fmt.Sprintf("budgetConfig[%d]: duplicate label %q", i, bucket.Label))
		}
		seen[bucket.Label] = struct{}{}
		if !bucket.Amount.IsPositive() {
			return invalidRule(fmt.Sprintf("budgetConfig[%d]: amount must be greater than zero", i))
		}
		if bucket.DurationInSeconds != nil && *bucket.DurationInSeconds <= 0 {
			return invalidRule(fmt.Sprintf("budgetConfig[%d]: durationInSeconds must be greater than zero", i))
		}
	}
	return nil
}

func validateGroup(g rules.ConditionGroup, path string, depth int) error {
	if depth > maxConditionDepth {
		return invalidRule(fmt.Sprintf("%s: conditions nested too deeply", path))
	}
	switch g.Logic {
	case "", rules.LogicAll, rules.LogicAny, rules.LogicNone:
	default:
		return invalidRule(fmt.Sprintf("%s: unknown logic %q", path, g.Logic))
	}
	for i, node := range g.Conditions {
		nodePath := fmt.Sprintf("%s[%d]", path, i)
		switch {
		case node.Group != nil:
			if err := validateGroup(*node.Group, nodePath, depth+1); err != nil {
				return err
			}
		case node.Leaf != nil:
			if err := validateCondition(*node.Leaf); err != nil {
				return invalidRule(fmt.Sprintf("%s: %s", nodePath, err))
			}
		default:
			return invalidRule(fmt.Sprintf("%s: empty condition", nodePath))
		}
	}
	return nil
}

func validateCondition(c rules.Condition) error {
	if strings.TrimSpace(c.Field) == "" {
		return errors.New("field is required")
	}
	if !c.Operator.IsValid() {
		return fmt.Errorf("unknown operator %q", c.Operator)
	}
	switch c.Operator {
	case rules.OperatorExists, rules.OperatorNotExists:
	case rules.OperatorBetween:
		if c.Value == nil || c.ValueTo == nil {
			return errors.New("between requires value and valueTo")
		}
	case rules.OperatorIn, rules.OperatorNotIn:
		if _, ok := c.Value.([]any); !ok {
			return fmt.Errorf("%s requires an array value", c.Operator)
		}
	default:
		if c.Value == nil {
			return fmt.Errorf("%s requires a value", c.Operator)
		}
	}
	return nil
}

func validateReward(r rules.RewardDefinition) error {
	if r.TokenAddress != nil && !common.IsHexAddress(*r.TokenAddress) {
		return fmt.Errorf("token %q is not a valid address", *r.TokenAddress)
	}

	switch r.AmountType {
	case rules.AmountTypeFixed:
		if r.Amount == nil || !r.Amount.IsPositive() {
			return errors.New("fixed reward requires a positive amount")
		}
	case rules.AmountTypePercentage:
		if r.Percent == nil || !r.Percent.IsPositive() {
			return errors.New("percentage reward requires a positive percent")
		}
		switch r.PercentOf {
		case "", rules.PercentOfPurchaseAmount, rules.PercentOfPurchaseSubtotal:
		default:
			return fmt.Errorf("unknown percentOf %q", r.PercentOf)
		}
		if r.MinAmount != nil && r.MaxAmount != nil && r.MaxAmount.LessThan(*r.MinAmount) {
			return errors.New("maxAmount must not be below minAmount")
		}
	case rules.AmountTypeTiered:
		if strings.TrimSpace(r.TierField) == "" {
			return errors.New("tiered reward requires tierField")
		}
		if len(r.Tiers) == 0 {
			return errors.New("tiered reward requires at least one tier")
		}
		for i, tier := range r.Tiers {
			if !tier.Amount.IsPositive() {
				return fmt.Errorf("tiers[%d]: amount must be greater than zero", i)
			}
			if tier.MaxValue != nil && *tier.MaxValue < tier.MinValue {
				return fmt.Errorf("tiers[%d]: maxValue must not be below minValue", i)
			}
		}
	case rules.AmountTypeRange:
		if r.BaseAmount == nil || r.MinMultiplier == nil || r.MaxMultiplier == nil {
			return errors.New("range reward requires baseAmount, minMultiplier and maxMultiplier")
		}
		if !r.BaseAmount.IsPositive() || r.MinMultiplier.IsNegative() || r.MaxMultiplier.LessThan(*r.MinMultiplier) {
			return errors.New("range reward has invalid bounds")
		}
	default:
		return fmt.Errorf("unknown amountType %q", r.AmountType)
	}
	return nil
}

func describeValidation(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}
	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		if fieldErr.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s failed %s=%s", fieldErr.Namespace(), fieldErr.Tag(), fieldErr.Param()))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s failed %s", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return strings.Join(messages, "; ")
}

func invalidRule(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidRule, msg)
}
