package logger

import "context"

// Logger is the logging contract consumed by the other packages in this
// repository. It is implemented by the concrete *LoggerClient type.
//
// The *WithContext variants behave like their plain counterparts and
// additionally pull trace correlation fields out of the context when
// tracing integration is enabled.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})

	DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
	ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
