package rules

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Trigger identifies the event kind a campaign rule reacts to.
type Trigger string

const (
	TriggerPurchase         Trigger = "purchase"
	TriggerReferralPurchase Trigger = "referral_purchase"
	TriggerWalletConnect    Trigger = "wallet_connect"
	TriggerReferralArrival  Trigger = "referral_arrival"
)

// IsValid reports whether the trigger is one of the known triggers.
func (t Trigger) IsValid() bool {
	switch t {
	case TriggerPurchase, TriggerReferralPurchase, TriggerWalletConnect, TriggerReferralArrival:
		return true
	}
	return false
}

// Operator is a leaf condition comparison operator.
type Operator string

const (
	OperatorEq         Operator = "eq"
	OperatorNeq        Operator = "neq"
	OperatorExists     Operator = "exists"
	OperatorNotExists  Operator = "not_exists"
	OperatorGt         Operator = "gt"
	OperatorGte        Operator = "gte"
	OperatorLt         Operator = "lt"
	OperatorLte        Operator = "lte"
	OperatorBetween    Operator = "between"
	OperatorIn         Operator = "in"
	OperatorNotIn      Operator = "not_in"
	OperatorContains   Operator = "contains"
	OperatorStartsWith Operator = "starts_with"
	OperatorEndsWith   Operator = "ends_with"
)

// IsValid reports whether the operator is known to the evaluator.
func (o Operator) IsValid() bool {
	switch o {
	case OperatorEq, OperatorNeq, OperatorExists, OperatorNotExists,
		OperatorGt, OperatorGte, OperatorLt, OperatorLte, OperatorBetween,
		OperatorIn, OperatorNotIn, OperatorContains, OperatorStartsWith, OperatorEndsWith:
		return true
	}
	return false
}

// Logic combines the children of a ConditionGroup.
type Logic string

const (
	LogicAll  Logic = "all"
	LogicAny  Logic = "any"
	LogicNone Logic = "none"
)

// Condition is a single field comparison. Field is a dot-path into the rule context.
type Condition struct {
	Field    string   `json:"field" validate:"required"`
	Operator Operator `json:"operator" validate:"required"`
	Value    any      `json:"value,omitempty"`
	ValueTo  any      `json:"valueTo,omitempty"`
}

// ConditionGroup combines leaf conditions and nested groups.
type ConditionGroup struct {
	Logic      Logic           `json:"logic"`
	Conditions []ConditionNode `json:"conditions"`
}

// ConditionNode holds exactly one of Leaf or Group.
type ConditionNode struct {
	Leaf  *Condition
	Group *ConditionGroup
}

// Leaf wraps a condition into a node.
func Leaf(c Condition) ConditionNode {
	return ConditionNode{Leaf: &c}
}

// Group wraps a nested group into a node.
func Group(logic Logic, nodes ...ConditionNode) ConditionNode {
	return ConditionNode{Group: &ConditionGroup{Logic: logic, Conditions: nodes}}
}

func (n ConditionNode) MarshalJSON() ([]byte, error) {
	if n.Group != nil {
		return json.Marshal(n.Group)
	}
	if n.Leaf != nil {
		return json.Marshal(n.Leaf)
	}
	return []byte("null"), nil
}

func (n *ConditionNode) UnmarshalJSON(data []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("condition must be an object: %w", err)
	}
	if _, ok := keys["logic"]; ok {
		var g ConditionGroup
		if err := json.Unmarshal(data, &g); err != nil {
			return err
		}
		n.Group = &g
		return nil
	}
	var c Condition
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	n.Leaf = &c
	return nil
}

// Conditions is the root of a rule's condition tree. In JSON it is either a flat
// array of conditions (implicit all) or a single group object.
type Conditions struct {
	ConditionGroup
	flat bool
}

// AllOf builds a flat condition list.
func AllOf(conds ...Condition) Conditions {
	nodes := make([]ConditionNode, 0, len(conds))
	for _, c := range conds {
		nodes = append(nodes, Leaf(c))
	}
	return Conditions{ConditionGroup: ConditionGroup{Logic: LogicAll, Conditions: nodes}, flat: true}
}

// Tree builds a condition root from a group.
func Tree(logic Logic, nodes ...ConditionNode) Conditions {
	return Conditions{ConditionGroup: ConditionGroup{Logic: logic, Conditions: nodes}}
}

func (c Conditions) MarshalJSON() ([]byte, error) {
	if c.flat || c.Logic == "" {
		nodes := c.Conditions
		if nodes == nil {
			nodes = []ConditionNode{}
		}
		return json.Marshal(nodes)
	}
	return json.Marshal(c.ConditionGroup)
}

func (c *Conditions) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = Conditions{ConditionGroup: ConditionGroup{Logic: LogicAll}, flat: true}
		return nil
	}
	if trimmed[0] == '[' {
		var nodes []ConditionNode
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			return err
		}
		*c = Conditions{ConditionGroup: ConditionGroup{Logic: LogicAll, Conditions: nodes}, flat: true}
		return nil
	}
	var g ConditionGroup
	if err := json.Unmarshal(trimmed, &g); err != nil {
		return err
	}
	*c = Conditions{ConditionGroup: g}
	return nil
}

// AmountType tags the shape of a reward definition.
type AmountType string

const (
	AmountTypeFixed      AmountType = "fixed"
	AmountTypePercentage AmountType = "percentage"
	AmountTypeTiered     AmountType = "tiered"
	AmountTypeRange      AmountType = "range"
)

// Recipient names who receives a reward.
type Recipient string

const (
	RecipientReferrer Recipient = "referrer"
	RecipientReferee  Recipient = "referee"
	RecipientUser     Recipient = "user"
)

// AssetType is the kind of value a reward carries.
type AssetType string

const (
	AssetTypeToken    AssetType = "token"
	AssetTypeDiscount AssetType = "discount"
	AssetTypePoints   AssetType = "points"
)

// PercentOf selects the purchase field a percentage reward is based on.
type PercentOf string

const (
	PercentOfPurchaseAmount   PercentOf = "purchase_amount"
	PercentOfPurchaseSubtotal PercentOf = "purchase_subtotal"
)

// RewardTier is one bracket of a tiered reward. MaxValue nil means unbounded.
type RewardTier struct {
	MinValue float64         `json:"minValue"`
	MaxValue *float64        `json:"maxValue,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// RewardDefinition describes one reward a rule grants when it matches.
// Which of the amount fields are meaningful depends on AmountType.
type RewardDefinition struct {
	Recipient    Recipient  `json:"recipient" validate:"required,oneof=referrer referee user"`
	Type         AssetType  `json:"type" validate:"required,oneof=token discount points"`
	AmountType   AmountType `json:"amountType" validate:"required,oneof=fixed percentage tiered range"`
	TokenAddress *string    `json:"token,omitempty"`
	Description  string     `json:"description,omitempty"`

	// fixed
	Amount *decimal.Decimal `json:"amount,omitempty"`

	// percentage
	Percent   *decimal.Decimal `json:"percent,omitempty"`
	PercentOf PercentOf        `json:"percentOf,omitempty"`
	MinAmount *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount *decimal.Decimal `json:"maxAmount,omitempty"`

	// tiered
	TierField string       `json:"tierField,omitempty"`
	Tiers     []RewardTier `json:"tiers,omitempty"`

	// range
	BaseAmount    *decimal.Decimal `json:"baseAmount,omitempty"`
	MinMultiplier *decimal.Decimal `json:"minMultiplier,omitempty"`
	MaxMultiplier *decimal.Decimal `json:"maxMultiplier,omitempty"`
}

// RuleDefinition is the evaluable body of a campaign rule.
type RuleDefinition struct {
	Trigger    Trigger            `json:"trigger" validate:"required"`
	Conditions Conditions         `json:"conditions"`
	Rewards    []RewardDefinition `json:"rewards" validate:"required,min=1,dive"`
}
