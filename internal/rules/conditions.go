package rules

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Evaluate reports whether the condition tree matches the context fields.
// A root with no conditions always matches.
func Evaluate(conds Conditions, fields map[string]any) bool {
	return evaluateGroup(conds.ConditionGroup, fields)
}

func evaluateGroup(g ConditionGroup, fields map[string]any) bool {
	logic := g.Logic
	if logic == "" {
		logic = LogicAll
	}
	switch logic {
	case LogicAll:
		for _, node := range g.Conditions {
			if !evaluateNode(node, fields) {
				return false
			}
		}
		return true
	case LogicAny:
		for _, node := range g.Conditions {
			if evaluateNode(node, fields) {
				return true
			}
		}
		return false
	case LogicNone:
		for _, node := range g.Conditions {
			if evaluateNode(node, fields) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func evaluateNode(n ConditionNode, fields map[string]any) bool {
	switch {
	case n.Group != nil:
		return evaluateGroup(*n.Group, fields)
	case n.Leaf != nil:
		return EvaluateCondition(*n.Leaf, fields)
	default:
		return false
	}
}

// EvaluateCondition evaluates one leaf. A field that cannot be resolved fails every
// operator except not_exists.
func EvaluateCondition(c Condition, fields map[string]any) bool {
	value, found := ResolveField(fields, c.Field)
	if !found {
		return c.Operator == OperatorNotExists
	}

	switch c.Operator {
	case OperatorExists:
		return true
	case OperatorNotExists:
		return false
	case OperatorEq:
		return equal(value, c.Value)
	case OperatorNeq:
		return !equal(value, c.Value)
	case OperatorGt:
		return compare(value, c.Value) > 0
	case OperatorGte:
		return compare(value, c.Value) >= 0
	case OperatorLt:
		return compare(value, c.Value) < 0
	case OperatorLte:
		return compare(value, c.Value) <= 0
	case OperatorBetween:
		if c.Value == nil || c.ValueTo == nil {
			return false
		}
		return compare(value, c.Value) >= 0 && compare(value, c.ValueTo) <= 0
	case OperatorIn:
		list, ok := asList(c.Value)
		if !ok {
			return false
		}
		return listContains(list, value)
	case OperatorNotIn:
		list, ok := asList(c.Value)
		if !ok {
			return true
		}
		return !listContains(list, value)
	case OperatorContains:
		if list, ok := asList(value); ok {
			return listContains(list, c.Value)
		}
		return strings.Contains(stringify(value), stringify(c.Value))
	case OperatorStartsWith:
		return strings.HasPrefix(stringify(value), stringify(c.Value))
	case OperatorEndsWith:
		return strings.HasSuffix(stringify(value), stringify(c.Value))
	default:
		return false
	}
}

// ResolveField walks a dot-path through nested maps. It reports false when any
// segment is missing, when an intermediate value is not an object, or when the
// final value is nil.
func ResolveField(fields map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	var current any = fields
	for _, segment := range strings.Split(path, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := obj[segment]
		if !ok {
			return nil, false
		}
		current = next
	}
	if current == nil {
		return nil, false
	}
	return current, true
}

func equal(a, b any) bool {
	if an, ok := toNumber(a); ok {
		if bn, ok := toNumber(b); ok {
			return an.Equal(bn)
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return ab == bb
		}
	}
	return stringify(a) == stringify(b)
}

// compare orders two values numerically when both are numbers and by their string
// forms otherwise.
func compare(a, b any) int {
	if an, ok := toNumber(a); ok {
		if bn, ok := toNumber(b); ok {
			return an.Cmp(bn)
		}
	}
	return strings.Compare(stringify(a), stringify(b))
}

func listContains(list []any, value any) bool {
	for _, item := range list {
		if equal(value, item) {
			return true
		}
	}
	return false
}

func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case []float64:
		out := make([]any, len(t))
		for i, f := range t {
			out[i] = f
		}
		return out, true
	case []int:
		out := make([]any, len(t))
		for i, n := range t {
			out[i] = n
		}
		return out, true
	default:
		return nil, false
	}
}

// toNumber converts numeric Go values to a decimal. Strings are not numbers here;
// a string against a number compares as strings.
func toNumber(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case float32:
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return decimal.NewFromInt(int64(n)), true
	case uint32:
		return decimal.NewFromInt(int64(n)), true
	case uint64:
		return decimal.NewFromInt(int64(n)), true
	case decimal.Decimal:
		return n, true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}

func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case decimal.Decimal:
		return s.String()
	case float64:
		return decimal.NewFromFloat(s).String()
	default:
		return fmt.Sprint(v)
	}
}
