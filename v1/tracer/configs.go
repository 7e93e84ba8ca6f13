package tracer

// Config controls how the tracer provider is built.
type Config struct {
	// ServiceName identifies this service in exported traces.
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME"`

	// AppEnv tags spans with the deployment environment, e.g. "production".
	AppEnv string `yaml:"app_env" env:"TRACER_APP_ENV"`

	// EnableExport turns on the OTLP HTTP exporter. When false the provider
	// still creates spans (so logs get trace IDs) but nothing leaves the
	// process. The exporter endpoint comes from the standard
	// OTEL_EXPORTER_OTLP_* environment variables.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`
}

// DefaultConfig provides sensible defaults for local development.
func DefaultConfig() Config {
	return Config{
		ServiceName:  "milvus-client",
		AppEnv:       "development",
		EnableExport: false,
	}
}
