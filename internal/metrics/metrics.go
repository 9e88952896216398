package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Queue Metrics
var (
	CapturesSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCapturesSubmitted,
			Help: HelpTextCapturesSubmitted,
		},
	)

	CapturesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCapturesCompleted,
			Help: HelpTextCapturesCompleted,
		},
	)

	CapturesValidated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCapturesValidated,
			Help: HelpTextCapturesValidated,
		},
	)

	CapturesRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCapturesRejected,
			Help: HelpTextCapturesRejected,
		},
	)

	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameQueueDepth,
			Help: HelpTextQueueDepth,
		},
	)
)

// Extraction Metrics
var (
	ExtractionFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameExtractionFailures,
			Help: HelpTextExtractionFailures,
		},
	)

	ExtractionConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameExtractionConfidence,
			Help:    HelpTextExtractionConfidence,
			Buckets: ConfidenceBuckets,
		},
	)

	ExtractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameExtractionDuration,
			Help:    HelpTextExtractionDuration,
			Buckets: DurationBuckets,
		},
		[]string{LabelEngine},
	)
)

// Validation Metrics
var (
	SessionsTimedOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsTimedOut,
			Help: HelpTextSessionsTimedOut,
		},
	)
)
