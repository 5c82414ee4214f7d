package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	rewardsMetricsOnce sync.Once
	rewardsRegistry    *RewardsMetrics
)

// RewardsMetrics wraps collectors tracking rule evaluation, reward issuance and settlement.
type RewardsMetrics struct {
	rulesEvaluated         *prometheus.CounterVec
	rewardsCreated         *prometheus.CounterVec
	interactionsProcessed  *prometheus.CounterVec
	settlementItems        *prometheus.CounterVec
	settlementBatchLatency *prometheus.HistogramVec
	jobRuns                *prometheus.HistogramVec
}

// Rewards returns the lazily-initialised rewards metrics registry.
func Rewards() *RewardsMetrics {
	rewardsMetricsOnce.Do(func() {
		rewardsRegistry = &RewardsMetrics{
			rulesEvaluated: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "rewards",
				Name:      "rules_evaluated_total",
				Help:      "Campaign rule evaluations segmented by trigger and outcome.",
			}, []string{"trigger", "outcome"}),
			rewardsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "rewards",
				Name:      "created_total",
				Help:      "Pending rewards written to the asset ledger segmented by asset type.",
			}, []string{"asset_type"}),
			interactionsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "rewards",
				Name:      "interactions_processed_total",
				Help:      "Interaction logs processed segmented by type and outcome.",
			}, []string{"type", "outcome"}),
			settlementItems: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "rewards",
				Name:      "settlement_items_total",
				Help:      "Asset logs handled by settlement segmented by mode and outcome.",
			}, []string{"mode", "outcome"}),
			settlementBatchLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "rewards",
				Name:      "settlement_batch_seconds",
				Help:      "Latency of ledger batch submissions.",
				Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
			}, []string{"mode"}),
			jobRuns: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: "rewards",
				Name:      "job_run_seconds",
				Help:      "Duration of scheduled job runs segmented by job and outcome.",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14),
			}, []string{"job", "outcome"}),
		}
		prometheus.MustRegister(
			rewardsRegistry.rulesEvaluated,
			rewardsRegistry.rewardsCreated,
			rewardsRegistry.interactionsProcessed,
			rewardsRegistry.settlementItems,
			rewardsRegistry.settlementBatchLatency,
			rewardsRegistry.jobRuns,
		)
	})
	return rewardsRegistry
}

// RecordRuleEvaluation counts one rule evaluation outcome such as "matched" or "budget_exceeded".
func (m *RewardsMetrics) RecordRuleEvaluation(trigger, outcome string) {
	if m == nil {
		return
	}
	m.rulesEvaluated.WithLabelValues(label(trigger), label(outcome)).Inc()
}

// RecordRewardCreated counts a pending reward written to the ledger.
func (m *RewardsMetrics) RecordRewardCreated(assetType string) {
	if m == nil {
		return
	}
	m.rewardsCreated.WithLabelValues(label(assetType)).Inc()
}

// RecordInteraction counts one processed interaction.
func (m *RewardsMetrics) RecordInteraction(interactionType, outcome string) {
	if m == nil {
		return
	}
	m.interactionsProcessed.WithLabelValues(label(interactionType), label(outcome)).Inc()
}

// RecordSettlementItems counts n asset logs reaching an outcome in a settlement mode.
func (m *RewardsMetrics) RecordSettlementItems(mode, outcome string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.settlementItems.WithLabelValues(label(mode), label(outcome)).Add(float64(n))
}

// ObserveSettlementBatch records how long a ledger submission took.
func (m *RewardsMetrics) ObserveSettlementBatch(mode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.settlementBatchLatency.WithLabelValues(label(mode)).Observe(duration.Seconds())
}

// ObserveJobRun records one scheduled job run; outcome is "success", "failure" or "panic".
func (m *RewardsMetrics) ObserveJobRun(job, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.jobRuns.WithLabelValues(label(job), label(outcome)).Observe(duration.Seconds())
}

func label(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
