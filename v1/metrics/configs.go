package metrics

// Default address for the metrics server if none is specified.
const DefaultMetricsAddress = ":9090"

// Config defines the configuration structure for the Prometheus metrics server.
type Config struct {
	// Address determines the network address where the Prometheus
	// metrics HTTP server listens.
	//
	// Example values:
	//   - ":9090"          → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9100" → Listen only on localhost, port 9100
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// EnableDefaultCollectors controls whether the built-in Go runtime
	// and process metrics are automatically registered.
	//
	// When true, metrics such as goroutine count, GC stats, and CPU usage
	// will be included automatically. Disable only if you want full
	// manual control over registered collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// ServiceName identifies the service exposing metrics. It is applied
	// as a constant "service" label on every metric, which keeps metrics
	// distinguishable when several services report to one Prometheus.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Address:                 DefaultMetricsAddress,
		EnableDefaultCollectors: true,
		ServiceName:             "milvus-client",
	}
}
