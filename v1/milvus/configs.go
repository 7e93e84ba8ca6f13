package milvus

import (
	"math"
	"time"

	"google.golang.org/grpc"
)

// Default values for configuration
const (
	DefaultHost              = "localhost"
	DefaultPort              = 19530
	DefaultConnectTimeout    = 10 * time.Second
	DefaultStatePollInterval = 100 * time.Millisecond
	DefaultShutdownTimeout   = 60 * time.Second
	DefaultMaxRecvSize       = math.MaxInt32
)

// Config holds connection and behavior settings for the Milvus client.
//
// It is intentionally minimal, readable, and easy to override from environment
// variables, YAML, or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := milvus.DefaultConfig()
//	cfg.Host = "localhost"
//	cfg.Port = 19530
//	cfg.ConnectTimeout = 10 * time.Second
//
// Example (builder style):
//
//	cfg := milvus.FromHostPort("localhost", 19530).
//	    WithConnectTimeout(10 * time.Second).
//	    WithShutdownTimeout(30 * time.Second)
type Config struct {
	// Hostname of the Milvus server, e.g. "localhost".
	Host string `yaml:"host" env:"MILVUS_HOST"`

	// gRPC port of the Milvus server. Defaults to 19530.
	Port int `yaml:"port" env:"MILVUS_PORT"`

	// Maximum time Connect waits for the channel to become ready.
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MILVUS_CONNECT_TIMEOUT"`

	// Interval between connectivity checks while Connect waits for the
	// channel to become ready.
	StatePollInterval time.Duration `yaml:"state_poll_interval" env:"MILVUS_STATE_POLL_INTERVAL"`

	// Maximum time Disconnect waits for the channel to terminate.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"MILVUS_SHUTDOWN_TIMEOUT"`

	// Whether to send keepalive pings on the idle connection.
	KeepAlive bool `yaml:"keep_alive" env:"MILVUS_KEEP_ALIVE"`

	// Maximum size in bytes of a single received message. Defaults to the
	// largest value the transport accepts, since search replies can be large.
	MaxRecvSize int `yaml:"max_recv_size" env:"MILVUS_MAX_RECV_SIZE"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Host:              DefaultHost,
		Port:              DefaultPort,
		ConnectTimeout:    DefaultConnectTimeout,
		StatePollInterval: DefaultStatePollInterval,
		ShutdownTimeout:   DefaultShutdownTimeout,
		KeepAlive:         true,
		MaxRecvSize:       DefaultMaxRecvSize,
	}
}

// FromHostPort returns a default config pre-filled with a specific endpoint.
func FromHostPort(host string, port int) *Config {
	cfg := DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	return cfg
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithConnectTimeout(d time.Duration) *Config {
	c.ConnectTimeout = d
	return c
}

func (c *Config) WithStatePollInterval(d time.Duration) *Config {
	c.StatePollInterval = d
	return c
}

func (c *Config) WithShutdownTimeout(d time.Duration) *Config {
	c.ShutdownTimeout = d
	return c
}

func (c *Config) WithKeepAlive(enabled bool) *Config {
	c.KeepAlive = enabled
	return c
}

func (c *Config) WithMaxRecvSize(bytes int) *Config {
	c.MaxRecvSize = bytes
	return c
}

// ConnectParam carries the arguments of a single Connect call. Zero values
// fall back to the corresponding Config fields, so Connect(ctx,
// milvus.ConnectParam{}) connects to the configured endpoint.
type ConnectParam struct {
	// Host overrides Config.Host when non-empty.
	Host string

	// Port overrides Config.Port when non-zero.
	Port int

	// Timeout overrides Config.ConnectTimeout when non-zero.
	Timeout time.Duration

	// DialOptions are appended to the options the client builds from its
	// configuration. Mainly useful for tests and custom transports.
	DialOptions []grpc.DialOption
}
