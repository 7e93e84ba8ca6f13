package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

func newTestTracer(t *testing.T) *Tracer {
	t.Helper()

	ctrl := gomock.NewController(t)
	tr := NewClient(Config{ServiceName: "test", AppEnv: "test"}, NewMockLogger(ctrl))
	require.NotNil(t, tr)
	return tr
}

func TestStartSpanProducesValidSpan(t *testing.T) {
	tr := newTestTracer(t)

	ctx, span := tr.StartSpan(context.Background(), "unit-of-work")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
	assert.Equal(t, span.SpanContext().TraceID(), trace.SpanContextFromContext(ctx).TraceID())
}

func TestStartSpanNestsUnderParent(t *testing.T) {
	tr := newTestTracer(t)

	ctx, parent := tr.StartSpan(context.Background(), "parent")
	defer parent.End()
	_, child := tr.StartSpan(ctx, "child")
	defer child.End()

	assert.Equal(t, parent.SpanContext().TraceID(), child.SpanContext().TraceID())
	assert.NotEqual(t, parent.SpanContext().SpanID(), child.SpanContext().SpanID())
}

func TestCarrierRoundTrip(t *testing.T) {
	tr := newTestTracer(t)

	ctx, span := tr.StartSpan(context.Background(), "outgoing")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	require.Contains(t, carrier, "traceparent")

	restored := tr.SetCarrierOnContext(context.Background(), carrier)
	assert.Equal(t, span.SpanContext().TraceID(), trace.SpanContextFromContext(restored).TraceID())
}

func TestSetAttributesAcceptsMixedTypes(t *testing.T) {
	tr := newTestTracer(t)

	_, span := tr.StartSpan(context.Background(), "attrs")
	defer span.End()

	// Must not panic on any of the supported or fallback types.
	tr.SetAttributes(span, map[string]interface{}{
		"table":    "books",
		"rows":     2000,
		"topk":     int64(5),
		"score":    0.25,
		"ready":    true,
		"fallback": []string{"a", "b"},
	})
	tr.SetAttributes(span, nil)
}

func TestRecordErrorOnSpan(t *testing.T) {
	tr := newTestTracer(t)

	_, span := tr.StartSpan(context.Background(), "failing")
	tr.RecordErrorOnSpan(span, errors.New("boom"))
	span.End()
}
