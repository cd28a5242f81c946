package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics. Stage failures carry the failing stage as a label
// so the demo dashboard can show where orders halt.
var (
	OrdersSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_submitted_total",
		Help: "Total number of orders entering the pipeline.",
	})

	OrdersDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_delivered_total",
		Help: "Total number of orders that reached delivery confirmation.",
	})

	StageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_stage_failures_total",
		Help: "Total number of pipeline halts, by failing stage.",
	}, []string{"stage"})

	PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "order_pipeline_duration_seconds",
		Help:    "Wall-clock time of a full pipeline run, pacing included.",
		Buckets: prometheus.DefBuckets,
	})
)
