package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fyrsmithlabs/zinspector/internal/config"
)

func TestNew_Disabled(t *testing.T) {
	tel, err := New(context.Background(), NewDefaultConfig())
	require.NoError(t, err)
	assert.False(t, tel.IsEnabled())
	assert.Equal(t, HealthStatus{Healthy: true}, tel.Health())

	// Disabled telemetry still hands out usable no-op instruments.
	_, span := tel.Tracer("test").Start(context.Background(), "noop")
	span.End()
	_, err = tel.Meter("test").Int64Counter("noop")
	assert.NoError(t, err)

	require.NoError(t, tel.Shutdown(context.Background()))
	assert.False(t, tel.Health().Healthy)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"remote insecure", func(c *Config) { c.Endpoint = "collector.example.com:4317" }, "insecure"},
		{"bad protocol", func(c *Config) { c.Protocol = "udp" }, "protocol"},
		{"bad rate", func(c *Config) { c.SampleRate = 2 }, "sample_rate"},
		{"no endpoint", func(c *Config) { c.Endpoint = "" }, "endpoint"},
		{"no interval", func(c *Config) { c.ExportInterval = 0 }, "export_interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			cfg.Enabled = true
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}

	cfg := NewDefaultConfig()
	cfg.Enabled = true
	for _, ep := range []string{"localhost:4317", "127.0.0.1:4317", "[::1]:4317", "http://localhost:4318"} {
		cfg.Endpoint = ep
		assert.NoError(t, cfg.Validate(), ep)
	}
}

func TestFromAppConfig(t *testing.T) {
	cfg := FromAppConfig(config.ObservabilityConfig{
		EnableTelemetry: true,
		ServiceName:     "zi-test",
		Protocol:        "http/protobuf",
		Endpoint:        "localhost:4318",
		Insecure:        true,
		SampleRate:      0.5,
	}, "1.2.3")
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "zi-test", cfg.ServiceName)
	assert.Equal(t, "1.2.3", cfg.ServiceVersion)
	assert.Equal(t, "http/protobuf", cfg.Protocol)
	assert.Equal(t, 0.5, cfg.SampleRate)
	assert.NoError(t, cfg.Validate())
}

func TestTestTelemetry_RecordsSpans(t *testing.T) {
	tel := NewTestTelemetry()
	assert.True(t, tel.IsEnabled())

	_, span := tel.Tracer("zinspector/test").Start(context.Background(), "GetName")
	span.SetAttributes(attribute.String("object.id", "abc"))
	span.End()

	tel.AssertSpanExists(t, "GetName")
	tel.AssertSpanAttribute(t, "GetName", "object.id", "abc")
}

func TestTestTelemetry_CollectsMetrics(t *testing.T) {
	tel := NewTestTelemetry()
	ctx := context.Background()

	counter, err := tel.Meter("zinspector/test").Int64Counter("test.calls")
	require.NoError(t, err)
	counter.Add(ctx, 3)

	rm, err := tel.Collect(ctx)
	require.NoError(t, err)
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
	assert.Equal(t, "test.calls", rm.ScopeMetrics[0].Metrics[0].Name)
}
