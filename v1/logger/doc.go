// Package logger provides structured logging functionality for Go applications.
//
// The logger package is designed to provide a standardized logging approach
// with features such as log levels, contextual logging, distributed tracing integration,
// and flexible output formatting. It integrates with the fx dependency injection framework
// for easy incorporation into applications.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Logger interface: Defines the contract for logging operations
//   - LoggerClient struct: Concrete implementation of the Logger interface
//   - NewLoggerClient constructor: Returns *LoggerClient (concrete type)
//   - FX module: Provides both *LoggerClient and Logger interface for dependency injection
//
// Core Features:
//   - Structured logging with key-value pairs
//   - Support for multiple log levels (Debug, Info, Warning, Error)
//   - Context-aware logging for request tracing
//   - Distributed tracing integration with OpenTelemetry
//   - Automatic trace and span ID extraction from context
//   - JSON output with ISO8601 timestamps, directed to stderr
//
// # Direct Usage (Without FX)
//
// For simple applications or tests, create a logger directly:
//
//	import "github.com/Aleph-Alpha/milvus-go/v1/logger"
//
//	// Create a new logger (returns concrete *LoggerClient)
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "vector-ingest",
//	})
//
//	// Log with structured fields (without context)
//	log.Info("Insert finished", nil, map[string]interface{}{
//		"table": "books",
//		"rows":  2000,
//	})
//
//	// Log with trace context (automatically includes trace_id and span_id)
//	log.InfoWithContext(ctx, "Search finished", nil, map[string]interface{}{
//		"table": "books",
//		"topk":  5,
//	})
//
// # FX Module Integration
//
// For production applications using Uber's fx, use the FXModule which provides
// both the concrete type and interface:
//
//	app := fx.New(
//		logger.FXModule, // Provides *LoggerClient and logger.Logger interface
//		fx.Provide(func() logger.Config {
//			return logger.Config{
//				Level:         logger.Info,
//				ServiceName:   "vector-ingest",
//				EnableTracing: true,
//			}
//		}),
//		fx.Invoke(func(log *logger.LoggerClient) {
//			log.Info("Service started", nil, nil)
//		}),
//		// ... other modules
//	)
//	app.Run()
//
// # Logging Levels
//
//	log.Debug("Debug message", nil, nil) // Only appears if level is Debug
//	log.Info("Info message", nil, nil)
//	log.Warn("Warning message", nil, nil)
//	log.Error("Error message", err, nil)
//
// # Configuration
//
// The logger can be configured via environment variables:
//
//	LOGGER_LEVEL=debug           # Log level (debug, info, warning, error)
//	LOGGER_SERVICE_NAME=ingest   # Value of the "service" field on every entry
//	LOGGER_ENABLE_TRACING=true   # Enable distributed tracing integration
//
// # Tracing Integration
//
// When tracing is enabled (EnableTracing: true), the *WithContext methods
// extract trace and span IDs from the context and include them in log entries.
// This provides correlation between logs and distributed traces in your
// observability system:
//   - trace_id: The OpenTelemetry trace ID
//   - span_id: The OpenTelemetry span ID
//
// To use tracing, ensure your application has OpenTelemetry configured (see
// the tracer package) and pass context with active spans to the *WithContext
// logging methods.
//
// # Thread Safety
//
// All methods on the Logger interface are safe for concurrent use by multiple
// goroutines.
package logger
