// Package telemetry provides OpenTelemetry tracing and metrics for
// zinspector.
//
// Telemetry is disabled by default. When enabled, spans and metrics are
// exported over OTLP (grpc or http/protobuf) to a collector:
//
//	tel, err := telemetry.New(ctx, telemetry.FromAppConfig(cfg.Observability, version))
//	if err != nil {
//	    return err
//	}
//	defer tel.Shutdown(context.Background())
//	tracer := tel.Tracer("zinspector/service")
//
// Tests use NewTestTelemetry, which records spans in memory.
package telemetry
