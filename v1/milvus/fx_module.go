package milvus

import (
	"context"
	"errors"
	"log"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/milvus-go/v1/observability"
)

// FXModule is an fx.Module that provides and configures the Milvus client.
// This module registers the Milvus client with the Fx dependency injection
// framework, making it available to other components in the application.
//
// The module:
// 1. Provides the Milvus client factory function
// 2. Binds the concrete client to the Client interface
// 3. Invokes the lifecycle registration to manage the connection
//
// Usage:
//
//	app := fx.New(
//	    milvus.FXModule,
//	    // other modules...
//	)
var FXModule = fx.Module("milvus",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			func(c *GrpcClient) Client { return c },
			fx.As(new(Client)),
		),
	),
	fx.Invoke(RegisterMilvusLifecycle),
)

// MilvusParams groups the dependencies needed to create a Milvus client
type MilvusParams struct {
	fx.In

	Config   *Config
	Logger   Logger                 `optional:"true"` // Optional logger from v1/logger
	Observer observability.Observer `optional:"true"` // Optional observer from v1/metrics
}

// NewClientWithDI creates a new Milvus client using dependency injection.
// This function is designed to be used with Uber's fx dependency injection
// framework where dependencies are automatically provided via the
// MilvusParams struct.
//
// Parameters:
//   - params: A MilvusParams struct that contains the Config instance and
//     optionally a Logger and an Observer. This struct embeds fx.In to
//     enable automatic injection of these dependencies.
//
// Returns:
//   - *GrpcClient: A fully initialized Milvus client, not yet connected.
//     The lifecycle hook registered by RegisterMilvusLifecycle connects it
//     on application start.
//
// Example usage with fx:
//
//	app := fx.New(
//	    milvus.FXModule,
//	    logger.FXModule,  // Optional: provides logger
//	    metrics.FXModule, // Optional: provides observer
//	    fx.Provide(
//	        func() *milvus.Config {
//	            return milvus.FromHostPort("localhost", 19530)
//	        },
//	    ),
//	)
func NewClientWithDI(params MilvusParams) *GrpcClient {
	client := NewClient(params.Config)

	if params.Logger != nil {
		client = client.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		client = client.WithObserver(params.Observer)
	}

	return client
}

// MilvusLifecycleParams groups the dependencies needed for Milvus lifecycle management
type MilvusLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *GrpcClient
}

// RegisterMilvusLifecycle registers the Milvus client with the fx lifecycle
// system. This function sets up connection establishment on startup and
// graceful disconnection on shutdown.
//
// Parameters:
//   - params: The lifecycle parameters containing the Milvus client
//
// The function:
//  1. On application start: Connects to the configured endpoint and waits
//     for the channel to become ready
//  2. On application stop: Disconnects and waits for the channel to
//     terminate; a client that never connected shuts down cleanly
//
// This ensures that the Milvus connection is ready before dependent
// components start and is properly closed during shutdown.
func RegisterMilvusLifecycle(params MilvusLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Client.Connect(ctx, ConnectParam{}); err != nil {
				log.Printf("WARN: Failed to connect to Milvus on startup: %v", err)
				return err
			}
			log.Println("INFO: Milvus client connected and ready")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("INFO: Shutting down Milvus client")
			if err := params.Client.Disconnect(ctx); err != nil && !errors.Is(err, ErrNotConnected) {
				return err
			}
			return nil
		},
	})
}
