package observability

import "time"

// OperationContext describes one completed client operation. Instrumented
// packages fill it in and hand it to the configured Observer; what happens
// with it (metrics, tracing, sampling) is the observer's business.
type OperationContext struct {
	// Component names the package reporting the operation, e.g. "milvus".
	Component string

	// Operation is the operation name, e.g. "Insert" or "Search".
	Operation string

	// Resource is the primary resource the operation touched, typically a
	// table name.
	Resource string

	// SubResource carries additional addressing context, e.g. an index name
	// or command string. May be empty.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is the operation outcome; nil on success.
	Error error

	// Size is an operation-specific payload measure (rows inserted, results
	// returned). Zero when not meaningful.
	Size int64

	// Metadata holds free-form extra fields. May be nil.
	Metadata map[string]interface{}
}

// Observer receives operation reports from instrumented clients.
//
// Implementations must be safe for concurrent use; clients call
// ObserveOperation from whatever goroutine ran the operation and do not
// wait for it beyond the method returning.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
