package rpc

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/fyrsmithlabs/zinspector/internal/logging"
	"github.com/fyrsmithlabs/zinspector/internal/metrics"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "x-request-id"

// wrappedStream overrides the context of a server stream.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context { return w.ctx }

// withRequestID tags ctx with the caller's request id, or a fresh one, and
// echoes it in the response header.
func withRequestID(ctx context.Context, method string) context.Context {
	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(RequestIDHeader); len(vals) > 0 && logging.ValidID(vals[0]) {
			id = vals[0]
		}
	}
	if id == "" {
		id = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))
	ctx = logging.WithRequestID(ctx, id)
	return logging.WithMethod(ctx, method)
}

func unaryRequestID() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		return handler(withRequestID(ctx, info.FullMethod), req)
	}
}

func streamRequestID() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		return handler(srv, &wrappedStream{ServerStream: ss, ctx: withRequestID(ss.Context(), info.FullMethod)})
	}
}

// observe logs and measures one finished call. Client faults log at info,
// server faults at error.
func observe(ctx context.Context, logger *logging.Logger, m *metrics.Metrics, method string, start time.Time, err error) {
	d := time.Since(start)
	code := status.Code(err)
	m.RecordRequest(ctx, method, code.String(), d)

	fields := []zap.Field{
		zap.String("grpc.code", code.String()),
		zap.Duration("duration", d),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	switch levelFor(code) {
	case zapcore.ErrorLevel:
		logger.Error(ctx, "rpc failed", fields...)
	case zapcore.InfoLevel:
		logger.Info(ctx, "rpc finished", fields...)
	default:
		logger.Debug(ctx, "rpc finished", fields...)
	}
}

func levelFor(code codes.Code) zapcore.Level {
	switch code {
	case codes.OK:
		return zapcore.DebugLevel
	case codes.Internal, codes.Unknown, codes.DataLoss, codes.Unavailable:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func unaryObserve(logger *logging.Logger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		done := m.RequestStarted(ctx)
		defer done()
		resp, err := handler(ctx, req)
		observe(ctx, logger, m, info.FullMethod, start, err)
		return resp, err
	}
}

func streamObserve(logger *logging.Logger, m *metrics.Metrics) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := ss.Context()
		start := time.Now()
		done := m.RequestStarted(ctx)
		defer done()
		err := handler(srv, ss)
		observe(ctx, logger, m, info.FullMethod, start, err)
		return err
	}
}

func recoveryHandler(logger *logging.Logger) recovery.RecoveryHandlerFuncContext {
	return func(ctx context.Context, p any) error {
		logger.Error(ctx, "rpc handler panicked", zap.Any("panic", p), zap.Stack("stack"))
		return status.Error(codes.Internal, "internal error")
	}
}

func unaryRecovery(logger *logging.Logger) grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(recoveryHandler(logger)))
}

func streamRecovery(logger *logging.Logger) grpc.StreamServerInterceptor {
	return recovery.StreamServerInterceptor(recovery.WithRecoveryHandlerContext(recoveryHandler(logger)))
}

// A nil limiter admits every call.
func unaryRateLimit(limiter *rate.Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if limiter != nil && !limiter.Allow() {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for %s", info.FullMethod)
		}
		return handler(ctx, req)
	}
}

func streamRateLimit(limiter *rate.Limiter) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if limiter != nil && !limiter.Allow() {
			return status.Errorf(codes.ResourceExhausted, "rate limit exceeded for %s", info.FullMethod)
		}
		return handler(srv, ss)
	}
}

// admission caps the number of calls executing at once. A call beyond the
// cap waits for a slot until its context ends; a stream holds its slot
// until the last chunk is sent. Health checks are never queued.
type admission struct {
	sem *semaphore.Weighted
}

func newAdmission(workers int) *admission {
	return &admission{sem: semaphore.NewWeighted(int64(workers))}
}

var healthPrefix = "/" + healthpb.Health_ServiceDesc.ServiceName + "/"

func (a *admission) acquire(ctx context.Context, method string) (func(), error) {
	if strings.HasPrefix(method, healthPrefix) {
		return func() {}, nil
	}
	if err := a.sem.Acquire(ctx, 1); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	return func() { a.sem.Release(1) }, nil
}

func (a *admission) unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		release, err := a.acquire(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}
		defer release()
		return handler(ctx, req)
	}
}

func (a *admission) stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		release, err := a.acquire(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}
		defer release()
		return handler(srv, ss)
	}
}
