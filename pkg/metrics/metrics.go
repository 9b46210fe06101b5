package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	// ActiveInstances tracks the number of ChallengeInstances currently
	// live: incremented once when a ChallengeInstance is first observed,
	// decremented once when its finalizer runs.
	ActiveInstances = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "berg_challenge_instances_active",
			Help: "Number of ChallengeInstances currently live",
		},
	)

	// Reconciliations tracks reconciliation count and outcome.
	Reconciliations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "berg_challenge_instance_reconciliations_total",
			Help: "Total number of ChallengeInstance reconciliations",
		},
		[]string{"result"},
	)

	// ReconciliationErrors tracks reconciliation failures by error kind.
	ReconciliationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "berg_challenge_instance_reconcile_errors_total",
			Help: "Total number of ChallengeInstance reconciliation errors by kind",
		},
		[]string{"kind"},
	)

	// ReconciliationDuration tracks reconciliation latency.
	ReconciliationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "berg_challenge_instance_reconciliation_duration_seconds",
			Help:    "Duration of ChallengeInstance reconciliations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{},
	)

	// Timeouts tracks instances torn down because their timeout expired.
	Timeouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "berg_challenge_instance_timeouts_total",
			Help: "Total number of ChallengeInstances torn down due to expiry",
		},
		[]string{},
	)
)

func init() {
	metrics.Registry.MustRegister(
		ActiveInstances,
		Reconciliations,
		ReconciliationErrors,
		ReconciliationDuration,
		Timeouts,
	)
}

// RecordInstanceStarted marks one ChallengeInstance as now live.
func RecordInstanceStarted() {
	ActiveInstances.Inc()
}

// RecordInstanceTerminated marks one ChallengeInstance as no longer live.
func RecordInstanceTerminated() {
	ActiveInstances.Dec()
}

// RecordReconciliation records a reconciliation outcome, "success" or "error".
func RecordReconciliation(result string) {
	Reconciliations.WithLabelValues(result).Inc()
}

// RecordReconcileError records a reconciliation failure of the given kind.
func RecordReconcileError(kind string) {
	ReconciliationErrors.WithLabelValues(kind).Inc()
}

// ObserveReconciliationDuration records reconciliation duration.
func ObserveReconciliationDuration(duration float64) {
	ReconciliationDuration.WithLabelValues().Observe(duration)
}

// RecordTimeout records an instance torn down by expiry.
func RecordTimeout() {
	Timeouts.WithLabelValues().Inc()
}
