// Package metrics records RPC and streaming instruments through OpenTelemetry
// and exposes object and persistence gauges through Prometheus.
package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "github.com/fyrsmithlabs/zinspector/internal/metrics"

// Metrics holds the RPC instruments. A nil *Metrics records nothing.
type Metrics struct {
	meter  metric.Meter
	logger *zap.Logger

	requestsTotal  metric.Int64Counter
	requestDur     metric.Float64Histogram
	activeRequests metric.Int64UpDownCounter
	chunksSent     metric.Int64Counter
	bytesStreamed  metric.Int64Counter
}

// New creates Metrics on the global meter provider.
func New(logger *zap.Logger) *Metrics {
	return NewWithMeter(otel.Meter(instrumentationName), logger)
}

// NewWithMeter creates Metrics on the given meter.
func NewWithMeter(meter metric.Meter, logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Metrics{
		meter:  meter,
		logger: logger,
	}
	m.init()
	return m
}

func (m *Metrics) init() {
	var err error

	m.requestsTotal, err = m.meter.Int64Counter(
		"zinspector.rpc.requests_total",
		metric.WithDescription("RPC calls labeled by method and status code"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		m.logger.Warn("failed to create requests counter", zap.Error(err))
	}

	m.requestDur, err = m.meter.Float64Histogram(
		"zinspector.rpc.request_duration_seconds",
		metric.WithDescription("RPC duration in seconds labeled by method and status code"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		m.logger.Warn("failed to create duration histogram", zap.Error(err))
	}

	m.activeRequests, err = m.meter.Int64UpDownCounter(
		"zinspector.rpc.active_requests",
		metric.WithDescription("RPC calls currently in flight"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		m.logger.Warn("failed to create active requests gauge", zap.Error(err))
	}

	m.chunksSent, err = m.meter.Int64Counter(
		"zinspector.stream.chunks_total",
		metric.WithDescription("Mesh data chunks written to streams"),
		metric.WithUnit("{chunk}"),
	)
	if err != nil {
		m.logger.Warn("failed to create chunks counter", zap.Error(err))
	}

	m.bytesStreamed, err = m.meter.Int64Counter(
		"zinspector.stream.bytes_total",
		metric.WithDescription("Mesh payload bytes written to streams"),
		metric.WithUnit("By"),
	)
	if err != nil {
		m.logger.Warn("failed to create bytes counter", zap.Error(err))
	}
}

// RequestStarted marks a call in flight. Call the returned func when it ends.
func (m *Metrics) RequestStarted(ctx context.Context) func() {
	if m == nil || m.activeRequests == nil {
		return func() {}
	}
	m.activeRequests.Add(ctx, 1)
	return func() { m.activeRequests.Add(ctx, -1) }
}

// RecordRequest records one finished call.
func (m *Metrics) RecordRequest(ctx context.Context, method, code string, d time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("code", code),
	)
	if m.requestsTotal != nil {
		m.requestsTotal.Add(ctx, 1, attrs)
	}
	if m.requestDur != nil {
		m.requestDur.Record(ctx, d.Seconds(), attrs)
	}
}

// RecordChunk records one chunk of n bytes sent in format.
func (m *Metrics) RecordChunk(ctx context.Context, format string, n int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("format", format))
	if m.chunksSent != nil {
		m.chunksSent.Add(ctx, 1, attrs)
	}
	if m.bytesStreamed != nil {
		m.bytesStreamed.Add(ctx, int64(n), attrs)
	}
}
