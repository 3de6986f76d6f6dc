package logging

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/zinspector/internal/config"
)

func TestNewLogger_InvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Format = "xml"
	_, err := NewLogger(cfg, nil)
	assert.ErrorContains(t, err, "format")

	cfg = NewDefaultConfig()
	cfg.Output.Stdout = false
	_, err = NewLogger(cfg, nil)
	assert.ErrorContains(t, err, "at least one output")
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zinspector.log")
	cfg := NewDefaultConfig()
	cfg.Output.Stdout = false
	cfg.Output.File = FileConfig{Path: path, MaxSizeMB: 1}
	cfg.Sampling.Enabled = false

	logger, err := NewLogger(cfg, nil)
	require.NoError(t, err)
	logger.Info(context.Background(), "project created", ObjectID("abc"))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"project created"`)
	assert.Contains(t, string(data), `"object.id":"abc"`)
	assert.Contains(t, string(data), `"service":"zinspector"`)
}

func TestFromAppConfig(t *testing.T) {
	cfg, err := FromAppConfig(config.LoggingConfig{Level: "trace", Format: "console", File: "/tmp/x.log", MaxSizeMB: 5})
	require.NoError(t, err)
	assert.Equal(t, TraceLevel, cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "/tmp/x.log", cfg.Output.File.Path)
	assert.Equal(t, 5, cfg.Output.File.MaxSizeMB)

	_, err = FromAppConfig(config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestLevelFromString(t *testing.T) {
	l, err := LevelFromString("trace")
	require.NoError(t, err)
	assert.Equal(t, TraceLevel, l)

	l, err = LevelFromString("warn")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, l)

	_, err = LevelFromString("verbose")
	assert.Error(t, err)
}

func TestContextFields(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ContextFields(ctx))

	ctx = WithRequestID(ctx, "req-42")
	ctx = WithMethod(ctx, "/zinspector.v1.ZInspector/GetName")
	ctx = WithObjectID(ctx, "obj-1")

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx = trace.ContextWithSpanContext(ctx, trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled,
	}))

	fields := map[string]string{}
	for _, f := range ContextFields(ctx) {
		fields[f.Key] = f.String
	}
	assert.Equal(t, map[string]string{
		"trace_id":   traceID.String(),
		"span_id":    spanID.String(),
		"request.id": "req-42",
		"rpc.method": "/zinspector.v1.ZInspector/GetName",
		"object.id":  "obj-1",
	}, fields)
}

func TestWithRequestID_DropsInvalid(t *testing.T) {
	ctx := WithRequestID(context.Background(), "bad id; drop table")
	assert.Empty(t, RequestIDFromContext(ctx))

	long := make([]byte, maxIDLen+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ValidID(string(long)))
	assert.True(t, ValidID("550e8400-e29b-41d4-a716-446655440000"))
}

func TestTestLogger(t *testing.T) {
	logger := NewTestLogger()
	ctx := WithRequestID(context.Background(), "r1")
	logger.Named("service").Info(ctx, "mesh imported", zap.Int("faces", 12))
	logger.Trace(ctx, "chunk sent")

	logger.AssertLogged(t, zapcore.InfoLevel, "mesh imported")
	logger.AssertLogged(t, TraceLevel, "chunk sent")
	logger.AssertField(t, "mesh imported", "request.id", "r1")
	logger.AssertNotLogged(t, zapcore.ErrorLevel, "mesh imported")

	logger.Reset()
	assert.Empty(t, logger.All())
}

func TestFromContext(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	logger := NewTestLogger()
	ctx := WithLogger(context.Background(), logger.Logger)
	assert.Same(t, logger.Logger, FromContext(ctx))
}

func TestSecretField(t *testing.T) {
	f := Secret("token", config.Secret("hunter2"))
	assert.Equal(t, "[REDACTED:7]", f.String)
	assert.Equal(t, "", Secret("token", "").String)
}

func TestSampledCore_ErrorsNeverSampled(t *testing.T) {
	base := NewTestLogger()
	core := newSampledCore(base.Underlying().Core(), SamplingConfig{
		Enabled: true, Tick: config.Duration(1e9), Initial: 1, Thereafter: 0,
	})
	logger := zap.New(core)
	for i := 0; i < 5; i++ {
		logger.Info("repeated")
		logger.Error("failure")
	}
	assert.Equal(t, 1, base.FilterMessage("repeated").Len())
	assert.Equal(t, 5, base.FilterMessage("failure").Len())
}
