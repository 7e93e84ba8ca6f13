// Package milvus provides a modular, dependency-injected client for the Milvus vector database.
//
// The milvus package is designed to simplify interaction with Milvus in Go applications,
// offering a clean, testable abstraction layer over the gRPC service: table management,
// index management, vector insertion, similarity search, and server commands. It integrates
// seamlessly with the fx dependency injection framework and supports builder-style
// configuration.
//
// # Core Features
//
//   - Managed connection lifecycle with Fx integration
//   - Config struct supporting environment and YAML loading
//   - Strict readiness reporting and bounded connect/shutdown waits
//   - One synchronous RPC per operation, no hidden retries or pooling
//   - Server status codes surfaced verbatim through typed errors
//   - Optional structured logging via the Logger interface
//   - Optional operation observability via the observability.Observer interface
//   - Generated gomock mocks for the Client and Logger interfaces
//
// # Basic Usage
//
//	import (
//	    "github.com/Aleph-Alpha/milvus-go/v1/milvus"
//	)
//
//	// Create a new client and connect
//	client := milvus.NewClient(milvus.FromHostPort("localhost", 19530))
//	if err := client.Connect(ctx, milvus.ConnectParam{}); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Disconnect(ctx)
//
//	// Create a table
//	err := client.CreateTable(ctx, milvus.TableSchema{
//	    TableName: "documents",
//	    Dimension: 128,
//	})
//
//	// Insert vectors
//	ids, err := client.Insert(ctx, milvus.InsertParam{
//	    TableName: "documents",
//	    Vectors:   [][]float32{{0.12, 0.43, ...}, {0.85, 0.07, ...}},
//	})
//
//	// Perform similarity search
//	results, err := client.Search(ctx, milvus.SearchParam{
//	    TableName:    "documents",
//	    QueryVectors: [][]float32{queryVector},
//	    TopK:         5,
//	    NProbe:       16,
//	})
//	for _, res := range results[0] {
//	    fmt.Printf("ID=%d Distance=%.4f\n", res.ID, res.Distance)
//	}
//
// # FX Module Integration
//
// The package exposes an Fx module for automatic dependency injection. The
// module connects on application start and disconnects on shutdown:
//
//	app := fx.New(
//	    milvus.FXModule,
//	    fx.Provide(func() *milvus.Config {
//	        return milvus.DefaultConfig()
//	    }),
//	    // other modules...
//	)
//	app.Run()
//
// # Connection Lifecycle
//
// The client manages a single gRPC channel. Connect creates the channel and
// polls its connectivity state until it reports ready, bounded by
// Config.ConnectTimeout. IsConnected is strict: it reports true only while
// the channel is in the ready state. Disconnect closes the channel and waits
// for termination, bounded by Config.ShutdownTimeout. A client whose channel
// has been shut down can connect again.
//
// Operations on a client that is not connected fail with ErrNotConnected
// before any transport activity.
//
// # Error Handling
//
// Failures are surfaced as three distinct kinds, all matchable with
// errors.Is and errors.As:
//
//   - Server-reported failures carry the status code and reason exactly as
//     the server sent them, as an *Error with the corresponding StatusCode.
//   - Transport failures are wrapped as *Error with StatusRPCError and match
//     ErrRPC; the underlying gRPC error remains available via errors.Unwrap.
//   - Lifecycle failures use the package sentinels (ErrAlreadyConnected,
//     ErrConnectTimeout, ErrNotConnected, ErrShutdownTimeout, ...).
//
//	if err := client.CreateTable(ctx, schema); err != nil {
//	    var mErr *milvus.Error
//	    if errors.As(err, &mErr) && mErr.Code == milvus.StatusTableNotExists {
//	        // handle missing table
//	    }
//	}
//
// # Search Results
//
// Search returns one ranked list per query vector, in query order:
//
//	type QueryResult struct {
//	    ID       int64   // ID of the matched vector
//	    Distance float64 // Distance to the query vector under the table's metric
//	}
//
// Access fields directly (no getter methods needed):
//
//	for i, list := range results {
//	    for _, match := range list {
//	        fmt.Println(i, match.ID, match.Distance)
//	    }
//	}
package milvus
