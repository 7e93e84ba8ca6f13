// Package observability defines the contract between instrumented client
// packages and whatever sink consumes their operation reports.
//
// Client packages in this repository accept an optional Observer and call
// ObserveOperation once per finished operation with an OperationContext
// (component, operation, resource, duration, error, size). The metrics
// package ships a Prometheus-backed implementation; applications can plug
// in their own for custom pipelines.
//
// Keeping the contract in its own dependency-free package lets clients stay
// decoupled from any particular metrics or tracing stack.
//
// Example:
//
//	type logObserver struct{ log *logger.LoggerClient }
//
//	func (o *logObserver) ObserveOperation(op observability.OperationContext) {
//		o.log.Debug("operation finished", op.Error, map[string]interface{}{
//			"component": op.Component,
//			"operation": op.Operation,
//			"duration":  op.Duration.String(),
//		})
//	}
package observability
