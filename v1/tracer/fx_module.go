package tracer

import (
	"context"

	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that configures distributed tracing for your application.
// This module registers the tracer client with the dependency injection system and
// sets up proper lifecycle management to ensure graceful startup and shutdown of the tracer.
//
// The module:
// 1. Provides the tracer client through the NewClient constructor
// 2. Registers shutdown hooks to cleanly close tracer resources on application termination
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    tracer.FXModule,
//	    fx.Provide(
//	        func() tracer.Config { return tracer.DefaultConfig() },
//	        func(l *logger.LoggerClient) tracer.Logger { return l },
//	    ),
//	    // other modules...
//	)
//	app.Run()
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle registers shutdown hooks for the tracer with the FX lifecycle.
// This ensures that tracer resources are released when the application terminates and
// that pending spans are flushed to the exporter.
//
// This function is automatically invoked by the FXModule and normally doesn't need
// to be called directly.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.tracer == nil {
				return nil
			}
			tracer.logger.Info("Shutting down tracer", nil, nil)
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
