package milvus

import (
	"context"
)

// Client provides a high-level interface for interacting with a Milvus vector
// store over gRPC. It covers connection lifecycle, table and index management,
// vector insertion, similarity search, and server commands.
//
// This interface is implemented by the concrete *GrpcClient type.
//
//go:generate mockgen -source=interface.go -destination=mock_client.go -package=milvus
type Client interface {
	// Connection and lifecycle

	// Connect establishes the gRPC channel and waits for it to become ready.
	Connect(ctx context.Context, param ConnectParam) error

	// IsConnected reports whether the client holds a ready channel.
	IsConnected() bool

	// Disconnect closes the channel and waits for it to terminate.
	Disconnect(ctx context.Context) error

	// Target returns the host:port the client is configured against.
	Target() string

	// Table management

	// CreateTable creates a table from the given schema.
	CreateTable(ctx context.Context, schema TableSchema) error

	// HasTable checks whether a table exists.
	HasTable(ctx context.Context, tableName string) (bool, error)

	// DropTable removes a table and all its data.
	DropTable(ctx context.Context, tableName string) error

	// DescribeTable returns the schema of a table.
	DescribeTable(ctx context.Context, tableName string) (TableSchema, error)

	// ShowTables lists the names of all tables.
	ShowTables(ctx context.Context) ([]string, error)

	// CountTable returns the number of rows in a table.
	CountTable(ctx context.Context, tableName string) (int64, error)

	// PreloadTable loads a table into server memory ahead of searches.
	PreloadTable(ctx context.Context, tableName string) error

	// Index management

	// CreateIndex builds an index over a table.
	CreateIndex(ctx context.Context, param IndexParam) error

	// DescribeIndex returns the index built over a table.
	DescribeIndex(ctx context.Context, tableName string) (Index, error)

	// DropIndex removes the index of a table.
	DropIndex(ctx context.Context, tableName string) error

	// Vector operations

	// Insert adds vector rows to a table and returns their identifiers.
	Insert(ctx context.Context, param InsertParam) ([]int64, error)

	// Search runs a similarity search and returns one ranked result list per
	// query vector.
	Search(ctx context.Context, param SearchParam) ([][]QueryResult, error)

	// SearchInFiles runs a similarity search restricted to specific data files.
	SearchInFiles(ctx context.Context, param SearchInFilesParam) ([][]QueryResult, error)

	// DeleteByRange removes the rows inserted inside a calendar date window.
	DeleteByRange(ctx context.Context, tableName string, r Range) error

	// Server commands

	// ServerStatus returns the server's health string.
	ServerStatus(ctx context.Context) (string, error)

	// ServerVersion returns the server's version string.
	ServerVersion(ctx context.Context) (string, error)
}

// Logger defines the interface for logging operations within the Milvus client.
// This interface allows for dependency injection of any compatible logger
// implementation.
type Logger interface {
	// Info logs informational messages with optional error and additional fields
	Info(msg string, err error, fields ...map[string]interface{})

	// Debug logs debug-level messages with optional error and additional fields
	Debug(msg string, err error, fields ...map[string]interface{})

	// Warn logs warning messages with optional error and additional fields
	Warn(msg string, err error, fields ...map[string]interface{})

	// Error logs error messages with the associated error and optional additional fields
	Error(msg string, err error, fields ...map[string]interface{})

	// DebugWithContext logs debug-level messages enriched with trace context
	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// InfoWithContext logs informational messages enriched with trace context
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// WarnWithContext logs warning messages enriched with trace context
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// ErrorWithContext logs error messages enriched with trace context
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
