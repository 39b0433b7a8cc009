package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder records dataset lifecycle metrics using Prometheus.
type Recorder struct {
	loadsTotal  *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	rowsLoaded  *prometheus.GaugeVec
	latency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		loadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundlens_data_loads_total",
				Help: "Total number of dataset loads by source",
			},
			[]string{"source"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fundlens_data_errors_total",
				Help: "Total number of dataset errors encountered",
			},
			[]string{"type"},
		),
		rowsLoaded: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "fundlens_data_rows_loaded",
				Help: "Rows in the current snapshot by kind",
			},
			[]string{"kind"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fundlens_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordLoad records a completed dataset load from a source ("csv", "demo").
func (r *Recorder) RecordLoad(source string) {
	r.loadsTotal.WithLabelValues(source).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordRows records the row count for one data kind in the snapshot.
func (r *Recorder) RecordRows(kind string, count int) {
	r.rowsLoaded.WithLabelValues(kind).Set(float64(count))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
