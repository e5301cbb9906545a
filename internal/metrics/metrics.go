package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "alkhair"

var (
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "mutations_total",
		Help:      "Store mutations applied, by operation.",
	}, []string{"operation"})

	SaveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "save_failures_total",
		Help:      "Full-aggregate saves that returned an error.",
	})

	SaveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "save_duration_seconds",
		Help:      "Time spent writing the aggregate to storage.",
		Buckets:   prometheus.DefBuckets,
	})

	MirrorFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "mirror_failures_total",
		Help:      "Failed writes to secondary copies, by mirror.",
	}, []string{"mirror"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by method and status.",
	}, []string{"method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)
