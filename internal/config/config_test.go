package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50051, cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.Workers)
	assert.Equal(t, 2<<20, cfg.Stream.ChunkSize)
	assert.Equal(t, "glb", cfg.Stream.Format)
	assert.Equal(t, "stl", cfg.Storage.Format)
	assert.Equal(t, "0.0.0.0:50051", cfg.Server.Addr())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 6000
  workers: 4
  shutdown_timeout: 3s
stream:
  chunk_size: 1048576
events:
  enabled: true
  url: nats://events:4222
  token: hunter2
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Server.Workers)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout.Duration())
	assert.Equal(t, 1<<20, cfg.Stream.ChunkSize)
	assert.Equal(t, "glb", cfg.Stream.Format, "unset keys keep defaults")
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, "hunter2", cfg.Events.Token.Value())
	assert.Equal(t, "[REDACTED]", cfg.Events.Token.String())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 6000\n")
	t.Setenv("ZINSPECTOR_SERVER_PORT", "7000")
	t.Setenv("ZINSPECTOR_STREAM_CHUNK_SIZE", "65536")
	t.Setenv("ZINSPECTOR_STORAGE_FORMAT", "obj")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 65536, cfg.Stream.ChunkSize)
	assert.Equal(t, "obj", cfg.Storage.Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(t.TempDir())
	assert.ErrorContains(t, err, "directory")

	_, err = Load(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "stream:\n  format: fbx\n"))
	assert.ErrorContains(t, err, "stream format")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, "invalid server port"},
		{"no workers", func(c *Config) { c.Server.Workers = 0 }, "workers must be positive"},
		{"tiny message size", func(c *Config) { c.Server.MaxMessageSize = 1024 }, "max_message_size"},
		{"chunk too large", func(c *Config) { c.Stream.ChunkSize = 4 << 20 }, "chunk_size"},
		{"zero chunk", func(c *Config) { c.Stream.ChunkSize = 0 }, "chunk_size"},
		{"glb storage", func(c *Config) { c.Storage.Format = "glb" }, "storage format"},
		{"rate without burst", func(c *Config) { c.Server.RateLimit = 5; c.Server.RateBurst = 0 }, "rate burst"},
		{"events without url", func(c *Config) { c.Events.Enabled = true; c.Events.URL = "" }, "events url"},
		{"zero shutdown", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "shutdown timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestValidate_ChunkUpToMessageSize(t *testing.T) {
	cfg := Default()
	cfg.Stream.ChunkSize = 4<<20 - chunkOverhead
	assert.NoError(t, cfg.Validate())

	cfg.Stream.ChunkSize++
	assert.ErrorContains(t, cfg.Validate(), "chunk_size")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.port", envKey("ZINSPECTOR_SERVER_PORT"))
	assert.Equal(t, "server.max_message_size", envKey("ZINSPECTOR_SERVER_MAX_MESSAGE_SIZE"))
	assert.Equal(t, "debug", envKey("ZINSPECTOR_DEBUG"))
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Duration())
	assert.Error(t, d.UnmarshalText([]byte("-1s")))
	assert.Error(t, d.UnmarshalText([]byte("soon")))
}
