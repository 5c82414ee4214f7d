package rules

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetBucket is one named spend cap. A nil duration is a lifetime cap.
type BudgetBucket struct {
	Label             string          `json:"label" validate:"required"`
	Amount            decimal.Decimal `json:"amount"`
	DurationInSeconds *int64          `json:"durationInSeconds"`
}

// BudgetConfig is the ordered list of buckets a campaign must fit within.
type BudgetConfig []BudgetBucket

// BudgetBucketState tracks spend within the current window of a bucket.
type BudgetBucketState struct {
	Used    decimal.Decimal `json:"used"`
	ResetAt *time.Time      `json:"resetAt,omitempty"`
}

// BudgetUsed maps bucket labels to their state. Labels with no configured bucket are ignored.
type BudgetUsed map[string]BudgetBucketState

// BudgetOutcome is the result of trying to charge an amount against a budget.
type BudgetOutcome struct {
	Success        bool
	ExceededBudget string
	Used           BudgetUsed
}

// ConsumeBudget charges amount against every bucket in config order. Buckets whose window
// has elapsed are reset first. If any bucket would be exceeded the outcome reports that
// bucket and carries the unmodified state; used itself is never mutated.
func ConsumeBudget(config BudgetConfig, used BudgetUsed, amount decimal.Decimal, now time.Time) BudgetOutcome {
	next := used.clone()
	for _, bucket := range config {
		state := next[bucket.Label]
		if bucket.DurationInSeconds != nil && (state.ResetAt == nil || !now.Before(*state.ResetAt)) {
			resetAt := now.Add(time.Duration(*bucket.DurationInSeconds) * time.Second)
			state = BudgetBucketState{Used: decimal.Zero, ResetAt: &resetAt}
		}
		if state.Used.Add(amount).GreaterThan(bucket.Amount) {
			return BudgetOutcome{Success: false, ExceededBudget: bucket.Label, Used: used.clone()}
		}
		state.Used = state.Used.Add(amount)
		next[bucket.Label] = state
	}
	return BudgetOutcome{Success: true, Used: next}
}

// RollbackBudget returns amount to every configured bucket, never going below zero.
func RollbackBudget(config BudgetConfig, used BudgetUsed, amount decimal.Decimal) BudgetUsed {
	next := used.clone()
	for _, bucket := range config {
		state, ok := next[bucket.Label]
		if !ok {
			continue
		}
		state.Used = decimal.Max(state.Used.Sub(amount), decimal.Zero)
		next[bucket.Label] = state
	}
	return next
}

func (u BudgetUsed) clone() BudgetUsed {
	out := make(BudgetUsed, len(u))
	for label, state := range u {
		if state.ResetAt != nil {
			resetAt := *state.ResetAt
			state.ResetAt = &resetAt
		}
		out[label] = state
	}
	return out
}
