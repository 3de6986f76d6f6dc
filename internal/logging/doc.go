// Package logging provides structured logging for zinspector.
//
// The Logger wraps Zap with context-aware methods. Every call picks up
// correlation fields from the context: trace and span ids from
// OpenTelemetry, the request id, the RPC method and the object id.
//
//	ctx = logging.WithRequestID(ctx, "req-1")
//	ctx = logging.WithObjectID(ctx, id.String())
//	logger.Info(ctx, "mesh imported", logging.Path(path))
//
// Outputs are stdout (JSON or console), a size-rotated JSON file, and the
// OpenTelemetry log bridge, in any combination. Entries below Error are
// sampled. A custom Trace level sits below Debug.
//
// Tests use NewTestLogger, which records every entry for assertions.
package logging
