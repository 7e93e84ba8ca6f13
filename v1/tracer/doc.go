// Package tracer provides distributed tracing for Go applications using OpenTelemetry.
//
// The tracer package wraps the OpenTelemetry SDK behind a small API: create
// spans for significant operations, record errors on them, attach
// attributes, and move trace context across process boundaries with the
// carrier helpers. It integrates with the fx dependency injection framework
// and with the logger package (which extracts trace and span IDs into log
// entries when tracing is enabled).
//
// # Core Features
//
//   - Tracer provider setup with service name and environment resource attributes
//   - Optional OTLP HTTP export, configured via the standard OTEL_EXPORTER_OTLP_* variables
//   - W3C TraceContext and Baggage propagation installed globally
//   - Span creation, error recording, and typed attribute helpers
//   - Carrier inject/extract for crossing service boundaries
//   - Fx lifecycle management that flushes spans on shutdown
//
// # Direct Usage
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info, ServiceName: "vector-ingest"})
//	tr := tracer.NewClient(tracer.Config{
//	    ServiceName:  "vector-ingest",
//	    AppEnv:       "production",
//	    EnableExport: true,
//	}, log)
//
//	ctx, span := tr.StartSpan(ctx, "insert-batch")
//	defer span.End()
//
//	if err := doWork(ctx); err != nil {
//	    tr.RecordErrorOnSpan(span, err)
//	    return err
//	}
//
// # FX Module Integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Provide(
//	        func() tracer.Config { return tracer.DefaultConfig() },
//	        func(l *logger.LoggerClient) tracer.Logger { return l },
//	    ),
//	)
//
// The module registers an OnStop hook that shuts the provider down so
// buffered spans reach the exporter before the process exits.
package tracer
