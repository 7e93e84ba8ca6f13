// Package metrics provides Prometheus-based monitoring and metrics collection
// functionality for Go applications.
//
// The metrics package is designed to provide a standardized observability
// approach with features such as configurable HTTP endpoints for metrics exposure,
// automatic runtime instrumentation, and integration with the Fx dependency
// injection framework for easy incorporation into Aleph Alpha services.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: Defines the contract for metrics operations
//   - Metrics struct: Concrete implementation of the MetricsCollector interface
//   - NewMetrics constructor: Returns *Metrics (concrete type)
//   - FX module: Provides *Metrics, and also exposes it as an observability.Observer
//
// Core Features:
//   - Exposes a configurable /metrics endpoint for Prometheus scraping
//   - Integration with go.uber.org/fx for automatic lifecycle management
//   - Automatic registration of Go runtime and process-level metrics
//   - Support for custom metric registration (counters, gauges, histograms)
//   - Built-in operation counter, latency histogram, and connection gauge
//   - Graceful startup and shutdown via Fx lifecycle hooks
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create metrics directly:
//
//	import "github.com/Aleph-Alpha/milvus-go/v1/metrics"
//
//	// Create a new metrics server (returns concrete *Metrics)
//	cfg := metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "vector-ingest",
//	}
//
//	m := metrics.NewMetrics(cfg)
//	go m.Server.ListenAndServe()
//
//	// Use built-in metrics
//	m.IncrementOperations("Insert", "success")
//	defer m.RecordOperationDuration(time.Now(), "Search")
//
// # Observer Integration
//
// *Metrics implements observability.Observer, so it can be handed to any client
// in this module that accepts an observer. Every completed operation is then
// counted and timed automatically:
//
//	m := metrics.NewMetrics(metrics.DefaultConfig())
//	client := milvus.NewClient(cfg).WithObserver(m)
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule which provides
// both the concrete type and the observer binding:
//
//	import (
//		"go.uber.org/fx"
//		"github.com/Aleph-Alpha/milvus-go/v1/metrics"
//		"github.com/Aleph-Alpha/milvus-go/v1/logger"
//	)
//
//	app := fx.New(
//		logger.FXModule,  // Provides the structured logger
//		metrics.FXModule, // Provides *Metrics and observability.Observer
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{
//				Address:                 ":9090",
//				EnableDefaultCollectors: true,
//				ServiceName:             "vector-ingest",
//			}
//		}),
//		fx.Invoke(func(m *metrics.Metrics) {
//			// Use concrete type directly
//			m.IncrementOperations("Insert", "success")
//		}),
//	)
//	app.Run()
//
// # Configuration
//
// The metrics server can be configured via environment variables:
//
//	METRICS_ADDRESS=:9090                      # Port and address for /metrics endpoint
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true     # Enable runtime and process metrics
//	METRICS_SERVICE_NAME=vector-ingest         # Adds service label to all metrics
//
// # Default Collectors
//
// When EnableDefaultCollectors is true, the package automatically registers
// the following collectors:
//   - Go runtime metrics (goroutines, GC stats, heap usage)
//   - Process metrics (CPU time, memory, file descriptors)
//
// These metrics provide deep visibility into service performance and stability.
//
// # Custom Metrics
//
// Applications can register additional Prometheus metrics using the exposed
// Registry. For example:
//
//	insertedRows := prometheus.NewCounterVec(
//	    prometheus.CounterOpts{
//	        Name: "inserted_rows_total",
//	        Help: "Total number of vector rows inserted.",
//	    },
//	    []string{"table"},
//	)
//	m.Registry.MustRegister(insertedRows)
//
// # Thread Safety
//
// All methods on the Metrics struct and Prometheus collectors are safe for
// concurrent use by multiple goroutines.
package metrics
