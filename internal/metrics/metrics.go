// Package metrics holds the Prometheus collectors of the service. All of them
// register with the default registry on package load and are exposed at
// /metrics by the HTTP server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sync Metrics
var (
	StatesStamped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameStatesStamped,
			Help:      HelpTextStatesStamped,
		},
		[]string{LabelMapping},
	)

	CascadeSteps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCascadeSteps,
			Help:      HelpTextCascadeSteps,
		},
		[]string{LabelClass},
	)

	ChangesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameChangesSkipped,
			Help:      HelpTextChangesSkipped,
		},
		[]string{LabelClass},
	)

	DeletionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameDeletionsRecorded,
			Help:      HelpTextDeletionsRecorded,
		},
		[]string{LabelClass},
	)

	FlushesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameFlushesProcessed,
			Help:      HelpTextFlushesProcessed,
		},
		[]string{LabelOutcome},
	)

	FailedItemsReported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameFailedItemsFetched,
			Help:      HelpTextFailedItemsFetched,
		},
		[]string{LabelMapping},
	)
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelRoute, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   prometheus.DefBuckets,
		},
		[]string{LabelMethod, LabelRoute},
	)
)
