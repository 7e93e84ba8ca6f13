package milvus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/Aleph-Alpha/milvus-go/v1/milvus/milvuspb"
	"github.com/Aleph-Alpha/milvus-go/v1/observability"
)

//
// ──────────────────────────────────────────────────────────────
//   MILVUS CLIENT
// ──────────────────────────────────────────────────────────────
//
// This file defines the gRPC client for the Milvus vector store,
// covering the connection lifecycle: establishing the channel,
// waiting for readiness, reporting connectivity, and tearing the
// channel down again.
//
// Responsibilities:
//   • Establish the gRPC channel and wait until it is ready.
//   • Report connectivity strictly (ready means ready, nothing else).
//   • Shut the channel down with a bounded wait for termination.
//   • Offer a safe API suitable for Fx dependency injection.
//
// The operations the client performs against the store live in
// operations.go; request/response conversion lives in converter.go.
//

// Keepalive settings applied when Config.KeepAlive is enabled.
const (
	keepAliveTime    = 30 * time.Second
	keepAliveTimeout = 20 * time.Second
)

// channel is the narrow view of the gRPC connection the lifecycle logic
// needs. *grpc.ClientConn satisfies it; tests substitute a scripted fake.
type channel interface {
	GetState() connectivity.State
	Connect()
	WaitForStateChange(ctx context.Context, sourceState connectivity.State) bool
	Close() error
}

// dialFunc creates the channel for a target together with the service stub
// bound to it. Tests substitute this to avoid real network activity.
type dialFunc func(target string, opts ...grpc.DialOption) (channel, milvuspb.MilvusServiceClient, error)

// grpcDial is the production dial function.
func grpcDial(target string, opts ...grpc.DialOption) (channel, milvuspb.MilvusServiceClient, error) {
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, nil, err
	}
	return conn, milvuspb.NewMilvusServiceClient(conn), nil
}

// GrpcClient is a client for a Milvus vector store over gRPC.
// It manages a single connection and performs one synchronous RPC per
// operation, with no client-side retries, pooling, or reconnection.
//
// GrpcClient implements the Client interface.
type GrpcClient struct {
	// cfg stores the configuration for this client
	cfg *Config

	// logger is used for structured logging
	logger Logger

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// conn is the underlying gRPC channel
	conn channel

	// stub is the service client bound to conn
	stub milvuspb.MilvusServiceClient

	// target is the host:port conn was dialed against
	target string

	// dial creates conn and stub; replaced in tests
	dial dialFunc

	// mu protects concurrent access to conn, stub, and target
	mu sync.RWMutex
}

// NewClient creates a new Milvus client with the provided configuration.
// The client starts disconnected; call Connect before issuing operations.
//
// A nil configuration, and any zero field of a given configuration, falls
// back to the package defaults.
//
// Example:
//
//	client := milvus.NewClient(milvus.FromHostPort("localhost", 19530))
//	if err := client.Connect(ctx, milvus.ConnectParam{}); err != nil {
//		log.Fatal(err)
//	}
//	defer client.Disconnect(ctx)
func NewClient(cfg *Config) *GrpcClient {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Apply defaults
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.StatePollInterval == 0 {
		cfg.StatePollInterval = DefaultStatePollInterval
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.MaxRecvSize == 0 {
		cfg.MaxRecvSize = DefaultMaxRecvSize
	}

	return &GrpcClient{
		cfg:  cfg,
		dial: grpcDial,
	}
}

// Connect establishes the gRPC channel and blocks until it reports ready.
//
// Zero fields of param fall back to the client's configuration, so
// Connect(ctx, milvus.ConnectParam{}) connects to the configured endpoint.
//
// Connect returns:
//   - ErrAlreadyConnected when a previous channel exists that has not been
//     shut down; the existing channel is left untouched.
//   - ErrPortOutOfRange when the port is outside [0, 65535]; no channel is
//     created.
//   - ErrConnectFailed when the channel could not be created.
//   - ErrConnectTimeout when the channel did not become ready within the
//     timeout. The channel is kept, and a later Connect is only possible
//     after Disconnect has shut it down.
//
// While waiting for readiness the connectivity state is polled every
// Config.StatePollInterval. Cancelling ctx aborts the wait with ctx.Err().
func (c *GrpcClient) Connect(ctx context.Context, param ConnectParam) error {
	host := param.Host
	if host == "" {
		host = c.cfg.Host
	}
	port := param.Port
	if port == 0 {
		port = c.cfg.Port
	}
	timeout := param.Timeout
	if timeout == 0 {
		timeout = c.cfg.ConnectTimeout
	}

	c.mu.Lock()

	if c.conn != nil && c.conn.GetState() != connectivity.Shutdown {
		c.mu.Unlock()
		c.logWarn(ctx, "Channel is not shutdown or terminated", nil)
		return ErrAlreadyConnected
	}

	if port < 0 || port > 65535 {
		c.mu.Unlock()
		c.logError(ctx, "Connect failed, port out of range", ErrPortOutOfRange, map[string]interface{}{
			"port": port,
		})
		return fmt.Errorf("%w: %d", ErrPortOutOfRange, port)
	}

	target := fmt.Sprintf("%s:%d", host, port)
	conn, stub, err := c.dial(target, c.dialOptions(param.DialOptions)...)
	if err != nil {
		c.mu.Unlock()
		c.logError(ctx, "Connect failed", err, map[string]interface{}{
			"target": target,
		})
		return newError(StatusConnectFailed, fmt.Sprintf("failed to create channel to %s", target), err)
	}

	c.conn = conn
	c.stub = stub
	c.target = target
	c.mu.Unlock()

	c.logInfo(ctx, "Trying to connect to Milvus", map[string]interface{}{
		"target":  target,
		"timeout": timeout.String(),
	})

	// Kick the channel out of idle, then wait for it to report ready.
	conn.Connect()
	if err := c.waitForReady(ctx, conn, timeout); err != nil {
		c.logError(ctx, "Connect failed", err, map[string]interface{}{
			"target": target,
		})
		return err
	}

	c.logInfo(ctx, "Connected to Milvus successfully", map[string]interface{}{
		"target": target,
	})
	return nil
}

// waitForReady polls the connectivity state every Config.StatePollInterval
// until the channel is ready, the timeout budget is spent, or ctx is done.
func (c *GrpcClient) waitForReady(ctx context.Context, conn channel, timeout time.Duration) error {
	remaining := timeout
	for conn.GetState() != connectivity.Ready {
		if remaining <= 0 {
			return fmt.Errorf("%w after %s (state %s)", ErrConnectTimeout, timeout, conn.GetState())
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.cfg.StatePollInterval):
		}
		remaining -= c.cfg.StatePollInterval
	}
	return nil
}

// IsConnected reports whether the client holds a channel in the ready state.
//
// The check is strict: a channel that is idle or in transient failure reports
// false even though the transport would recover it on first use. Callers that
// treat those states as usable should issue the operation instead of checking
// first.
func (c *GrpcClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.conn != nil && c.conn.GetState() == connectivity.Ready
}

// Disconnect closes the channel and waits for it to terminate.
//
// When the client is not connected, Disconnect returns ErrNotConnected and
// touches nothing, so calling it twice is harmless. When the channel does not
// reach the shutdown state within Config.ShutdownTimeout, Disconnect returns
// ErrShutdownTimeout. Cancelling ctx aborts the wait with ctx.Err().
//
// The terminated channel is kept, which allows a later Connect on the same
// client.
func (c *GrpcClient) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	conn := c.conn
	if conn == nil || conn.GetState() != connectivity.Ready {
		c.mu.Unlock()
		c.logWarn(ctx, "You are not connected to Milvus server", nil)
		return ErrNotConnected
	}

	if err := conn.Close(); err != nil {
		c.mu.Unlock()
		c.logError(ctx, "Failed to close channel", err, nil)
		return newError(StatusUnknown, "failed to close channel", err)
	}
	c.mu.Unlock()

	if err := c.waitForShutdown(ctx, conn); err != nil {
		c.logError(ctx, "Channel did not terminate", err, nil)
		return err
	}

	c.logInfo(ctx, "Channel terminated", nil)
	return nil
}

// waitForShutdown waits for the channel to reach the shutdown state, bounded
// by Config.ShutdownTimeout.
func (c *GrpcClient) waitForShutdown(ctx context.Context, conn channel) error {
	waitCtx, cancel := context.WithTimeout(ctx, c.cfg.ShutdownTimeout)
	defer cancel()

	for {
		state := conn.GetState()
		if state == connectivity.Shutdown {
			return nil
		}
		if !conn.WaitForStateChange(waitCtx, state) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return ErrShutdownTimeout
		}
	}
}

// Target returns the host:port the client is connected to, or the configured
// endpoint when no connection has been made yet.
func (c *GrpcClient) Target() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.target != "" {
		return c.target
	}
	return fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
}

// dialOptions assembles the transport options from the configuration plus any
// caller-supplied extras.
func (c *GrpcClient) dialOptions(extra []grpc.DialOption) []grpc.DialOption {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(c.cfg.MaxRecvSize)),
	}

	if c.cfg.KeepAlive {
		opts = append(opts, grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                keepAliveTime,
			Timeout:             keepAliveTimeout,
			PermitWithoutStream: true,
		}))
	}

	return append(opts, extra...)
}

// connection returns the service stub when the client holds a ready channel.
// Every operation gates on this before building its request, so a
// disconnected client never touches the transport.
func (c *GrpcClient) connection() (milvuspb.MilvusServiceClient, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.conn == nil || c.conn.GetState() != connectivity.Ready {
		return nil, newError(StatusClientNotConnected, "you are not connected to Milvus server", nil)
	}
	return c.stub, nil
}

// WithObserver sets the observer for this client and returns the client for
// method chaining. The observer receives events about Milvus operations
// (e.g., insert, search, create table).
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (c *GrpcClient) WithObserver(observer observability.Observer) *GrpcClient {
	c.observer = observer
	return c
}

// WithLogger sets the logger for this client and returns the client for
// method chaining. The logger is used for structured logging of connection
// lifecycle events and operation failures.
//
// Example:
//
//	client := client.WithObserver(myObserver).WithLogger(myLogger)
func (c *GrpcClient) WithLogger(logger Logger) *GrpcClient {
	c.logger = logger
	return c
}

// observeOperation notifies the observer about an operation if one is
// configured. This is used internally to track Milvus operations for metrics
// and tracing.
//
// Notes:
//   - resource: the table being operated on
//   - subResource: additional context like the command string
func (c *GrpcClient) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component:   "milvus",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    metadata,
	})
}

// logDebug logs a debug message using the configured logger if available.
func (c *GrpcClient) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.DebugWithContext(ctx, msg, nil, fields)
	}
	// Silently skip if no logger configured
}

// logInfo logs an informational message using the configured logger if available.
// This is used for connection lifecycle logging.
func (c *GrpcClient) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.InfoWithContext(ctx, msg, nil, fields)
	}
	// Silently skip if no logger configured
}

// logWarn logs a warning message using the configured logger if available.
func (c *GrpcClient) logWarn(ctx context.Context, msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.WarnWithContext(ctx, msg, nil, fields)
	}
	// Silently skip if no logger configured
}

// logError logs an error message using the configured logger if available.
func (c *GrpcClient) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.ErrorWithContext(ctx, msg, err, fields)
	}
	// Silently skip if no logger configured
}
