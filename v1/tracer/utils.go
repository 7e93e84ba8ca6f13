package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// StartSpan creates a new span with the given name and returns an updated
// context containing the span, along with the span itself. The created span
// becomes a child of any span already in the context; without one it starts
// a new root span.
//
// Example:
//
//	ctx, span := tracer.StartSpan(ctx, "insert-batch")
//	defer span.End()
func (t *Tracer) StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	tracer := t.tracer.Tracer("")
	ctx, span := tracer.Start(ctx, name)
	return ctx, span
}

// RecordErrorOnSpan records an error on a span and sets its status to error,
// so failed operations surface as such in the tracing backend.
func (t *Tracer) RecordErrorOnSpan(span traceSpan.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// SetAttributes adds attributes to a span. Values may be strings, ints,
// int64s, float64s, or booleans; anything else is rendered with fmt.Sprint.
//
// Example:
//
//	tracer.SetAttributes(span, map[string]interface{}{
//	    "table": "books",
//	    "rows":  2000,
//	})
func (t *Tracer) SetAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			// For unsupported types, convert to string
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	span.SetAttributes(attributes...)
}

// GetCarrier extracts the current trace context from ctx as a W3C Trace
// Context header map ("traceparent", optionally "tracestate") suitable for
// transmission across service boundaries.
func (t *Tracer) GetCarrier(ctx context.Context) map[string]string {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	carrier := propagation.MapCarrier{}
	propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext is the complement to GetCarrier: it extracts trace
// information from a carrier map (e.g. incoming message headers) and returns
// a context carrying it, keeping distributed traces connected across
// process boundaries.
func (t *Tracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	propagator := propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
	return propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
