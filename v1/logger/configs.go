package logger

// Log level names accepted by Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls how the logger is built.
type Config struct {
	// Level is the minimum level that gets emitted. One of the level
	// constants above; anything unrecognized falls back to info.
	Level string `yaml:"level" env:"LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" env:"LOGGER_SERVICE_NAME"`

	// EnableTracing makes the *WithContext methods extract trace_id and
	// span_id from the context's OpenTelemetry span, when one is present.
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`
}
