package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/milvus-go/v1/observability"
)

// IncrementOperations increments the operation counter for an operation and outcome.
// Example: metrics.IncrementOperations("Insert", "success")
func (m *Metrics) IncrementOperations(operation, status string) {
	m.operationsTotal.WithLabelValues(operation, status).Inc()
}

// RecordOperationDuration records the duration (in seconds) of an operation.
// Example: defer metrics.RecordOperationDuration(time.Now(), "Search")
func (m *Metrics) RecordOperationDuration(start time.Time, operation string) {
	duration := time.Since(start).Seconds()
	m.operationDuration.WithLabelValues(operation).Observe(duration)
}

// SetConnectionReady sets the readiness gauge for a connection target.
// Example: metrics.SetConnectionReady(true, "localhost:19530")
func (m *Metrics) SetConnectionReady(ready bool, target string) {
	value := 0.0
	if ready {
		value = 1.0
	}
	m.connectionReady.WithLabelValues(target).Set(value)
}

// ObserveOperation records a completed operation from an observability context.
// It increments the operation counter with a success or error status and feeds
// the measured duration into the latency histogram.
//
// *Metrics satisfies observability.Observer, so a Metrics instance can be
// plugged directly into any client that reports through that interface.
func (m *Metrics) ObserveOperation(octx observability.OperationContext) {
	status := "success"
	if octx.Error != nil {
		status = "error"
	}
	m.operationsTotal.WithLabelValues(octx.Operation, status).Inc()
	m.operationDuration.WithLabelValues(octx.Operation).Observe(octx.Duration.Seconds())
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.Registry.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.Registry.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.Registry.MustRegister(gauge)
	return gauge
}

// createCounterVec defines a new CounterVec with standard options.
// Used internally by NewMetrics to maintain consistency.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
// Used internally by NewMetrics for latency tracking.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec defines a new GaugeVec safely for resource monitoring.
// Used internally by NewMetrics to track resource utilization.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
