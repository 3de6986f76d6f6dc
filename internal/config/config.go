// Package config provides configuration loading for zinspector.
//
// Values come from built-in defaults, then an optional YAML file, then
// ZINSPECTOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds the complete zinspector configuration.
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	Admin         AdminConfig         `koanf:"admin"`
	Stream        StreamConfig        `koanf:"stream"`
	Storage       StorageConfig       `koanf:"storage"`
	Events        EventsConfig        `koanf:"events"`
	Logging       LoggingConfig       `koanf:"logging"`
	Observability ObservabilityConfig `koanf:"observability"`
}

// ServerConfig holds gRPC server configuration.
type ServerConfig struct {
	Host            string   `koanf:"host"`
	Port            int      `koanf:"port"`
	Workers         int      `koanf:"workers"`          // fixed pool servicing RPCs
	MaxMessageSize  int      `koanf:"max_message_size"` // bytes, both directions
	ShutdownTimeout Duration `koanf:"shutdown_timeout"`
	RateLimit       float64  `koanf:"rate_limit"` // requests per second, 0 disables
	RateBurst       int      `koanf:"rate_burst"`
}

// Addr returns host:port for net.Listen.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// AdminConfig holds the HTTP admin server (health, metrics, debug).
type AdminConfig struct {
	Enabled bool   `koanf:"enabled"`
	Host    string `koanf:"host"`
	Port    int    `koanf:"port"`
}

// StreamConfig controls GetMeshData.
type StreamConfig struct {
	Format    string `koanf:"format"`     // wire encoding
	ChunkSize int    `koanf:"chunk_size"` // bytes per chunk
}

// StorageConfig controls project files.
type StorageConfig struct {
	Format  string `koanf:"format"`  // mesh payload encoding on disk
	Workers int    `koanf:"workers"` // concurrent payload encode/decode
}

// EventsConfig controls lifecycle event publication over NATS.
type EventsConfig struct {
	Enabled       bool   `koanf:"enabled"`
	URL           string `koanf:"url"`
	Token         Secret `koanf:"token"`
	SubjectPrefix string `koanf:"subject_prefix"`
}

// LoggingConfig is the user-facing subset of logging settings.
type LoggingConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"` // rotated log file, empty for stdout only
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	OTEL       bool   `koanf:"otel"`
}

// ObservabilityConfig holds OpenTelemetry export settings.
type ObservabilityConfig struct {
	EnableTelemetry bool    `koanf:"enable_telemetry"`
	ServiceName     string  `koanf:"service_name"`
	Endpoint        string  `koanf:"endpoint"`
	Protocol        string  `koanf:"protocol"` // grpc or http/protobuf
	Insecure        bool    `koanf:"insecure"`
	SampleRate      float64 `koanf:"sample_rate"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            50051,
			Workers:         10,
			MaxMessageSize:  4 << 20,
			ShutdownTimeout: Duration(10 * time.Second),
			RateBurst:       50,
		},
		Admin: AdminConfig{
			Enabled: true,
			Host:    "127.0.0.1",
			Port:    9090,
		},
		Stream: StreamConfig{
			Format:    "glb",
			ChunkSize: 2 << 20,
		},
		Storage: StorageConfig{
			Format:  "stl",
			Workers: 4,
		},
		Events: EventsConfig{
			URL:           "nats://127.0.0.1:4222",
			SubjectPrefix: "zinspector",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Observability: ObservabilityConfig{
			ServiceName: "zinspector",
			Endpoint:    "localhost:4317",
			Protocol:    "grpc",
			Insecure:    true,
			SampleRate:  1.0,
		},
	}
}

var (
	validWireFormats    = []string{"glb", "stl", "obj"}
	validStorageFormats = []string{"stl", "obj"}
)

// chunkOverhead is the room left in a message for the chunk's format and
// index fields and the gRPC frame.
const chunkOverhead = 4 << 10

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid server port: %d (must be 0-65535)", c.Server.Port))
	}
	if c.Server.Workers < 1 {
		errs = append(errs, fmt.Errorf("server workers must be positive, got %d", c.Server.Workers))
	}
	if c.Server.MaxMessageSize < 1<<20 {
		errs = append(errs, fmt.Errorf("server max_message_size must be at least 1MiB, got %d", c.Server.MaxMessageSize))
	}
	if c.Server.ShutdownTimeout.Duration() <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	if c.Server.RateLimit < 0 {
		errs = append(errs, errors.New("rate limit cannot be negative"))
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		errs = append(errs, errors.New("rate burst must be positive when rate limiting"))
	}

	if c.Admin.Enabled && (c.Admin.Port < 0 || c.Admin.Port > 65535) {
		errs = append(errs, fmt.Errorf("invalid admin port: %d", c.Admin.Port))
	}

	if !contains(validWireFormats, c.Stream.Format) {
		errs = append(errs, fmt.Errorf("stream format must be one of %s, got %q", strings.Join(validWireFormats, ", "), c.Stream.Format))
	}
	// A chunk plus its message framing must fit in one gRPC message.
	if c.Stream.ChunkSize < 1 || c.Stream.ChunkSize+chunkOverhead > c.Server.MaxMessageSize {
		errs = append(errs, fmt.Errorf("stream chunk_size %d does not fit max_message_size %d", c.Stream.ChunkSize, c.Server.MaxMessageSize))
	}

	if !contains(validStorageFormats, c.Storage.Format) {
		errs = append(errs, fmt.Errorf("storage format must be one of %s, got %q", strings.Join(validStorageFormats, ", "), c.Storage.Format))
	}
	if c.Storage.Workers < 1 {
		errs = append(errs, fmt.Errorf("storage workers must be positive, got %d", c.Storage.Workers))
	}

	if c.Events.Enabled && c.Events.URL == "" {
		errs = append(errs, errors.New("events url required when events are enabled"))
	}

	if c.Observability.EnableTelemetry && c.Observability.ServiceName == "" {
		errs = append(errs, errors.New("service name required when telemetry is enabled"))
	}

	return errors.Join(errs...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
