package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// convertToZapFields converts error and additional field maps into Zap's structured logging fields.
// This internal helper method transforms the simplified field maps used by this logger wrapper
// into the zap.Field format required by the underlying Zap logger.
//
// The method handles both error objects and arbitrary key-value pairs from the fields maps.
// If multiple fields maps contain the same key, the later maps will override earlier ones.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	// Iterate through optional field maps and convert them into Zap fields.
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

// withTraceFields appends trace_id and span_id to the field maps when tracing
// integration is enabled and the context carries a valid span.
func (l *LoggerClient) withTraceFields(ctx context.Context, fields []map[string]interface{}) []map[string]interface{} {
	if !l.tracingEnabled || ctx == nil {
		return fields
	}

	spanCtx := trace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return fields
	}

	return append(fields, map[string]interface{}{
		"trace_id": spanCtx.TraceID().String(),
		"span_id":  spanCtx.SpanID().String(),
	})
}

// Info logs an informational message, along with an optional error and structured fields.
// Use Info for general application progress and successful operations.
//
// Example:
//
//	log.Info("Table created", nil, map[string]interface{}{
//	    "table":     "books",
//	    "dimension": 256,
//	})
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Debug logs a debug-level message, useful for development and troubleshooting.
// Debug logs are typically more verbose and include information primarily useful during
// development or when diagnosing issues.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning message, indicating potential issues that aren't necessarily errors.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error message, including details of the error and additional context fields.
// Use Error when something has gone wrong that affects the current operation but
// doesn't require immediate termination of the application.
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// Fatal logs a critical error message and terminates the application.
// Use Fatal only for errors that make it impossible for the application to continue running.
//
// Note: This function does not return as it terminates the application.
func (l *LoggerClient) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, l.convertToZapFields(err, fields...)...)
}

// InfoWithContext logs at info level and, when tracing integration is enabled,
// includes trace_id and span_id extracted from the context.
func (l *LoggerClient) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, l.withTraceFields(ctx, fields)...)...)
}

// DebugWithContext logs at debug level with trace correlation fields.
func (l *LoggerClient) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, l.withTraceFields(ctx, fields)...)...)
}

// WarnWithContext logs at warn level with trace correlation fields.
func (l *LoggerClient) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, l.withTraceFields(ctx, fields)...)...)
}

// ErrorWithContext logs at error level with trace correlation fields.
func (l *LoggerClient) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, l.withTraceFields(ctx, fields)...)...)
}
