package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	AnalyticsLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fundlens",
			Subsystem: "analytics",
			Name:      "latency_seconds",
			Help:      "Latency of analytics endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	AnalyticsErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fundlens",
			Subsystem: "analytics",
			Name:      "errors_total",
			Help:      "Errors by analytics endpoint",
		},
		[]string{"endpoint"},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fundlens",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cache hits by endpoint",
		},
		[]string{"endpoint"},
	)

	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fundlens",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache misses by endpoint",
		},
		[]string{"endpoint"},
	)

	FundsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fundlens",
			Subsystem: "dataset",
			Name:      "funds_loaded",
			Help:      "Number of funds in the current snapshot",
		},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(AnalyticsLatency, AnalyticsErrors, CacheHits, CacheMisses, FundsLoaded)
	})
}
