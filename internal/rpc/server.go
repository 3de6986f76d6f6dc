// Package rpc hosts the ZInspector gRPC service: server lifecycle,
// interceptors and the handlers that translate between wire messages and
// the service layer.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/fyrsmithlabs/zinspector/internal/config"
	"github.com/fyrsmithlabs/zinspector/internal/logging"
	"github.com/fyrsmithlabs/zinspector/internal/metrics"
	"github.com/fyrsmithlabs/zinspector/internal/service"
	v1 "github.com/fyrsmithlabs/zinspector/pkg/api/v1"
)

// Config configures the gRPC server.
type Config struct {
	Addr            string
	Workers         int
	MaxMessageSize  int
	ShutdownTimeout time.Duration
	RateLimit       float64
	RateBurst       int
}

// FromAppConfig maps the server section onto a Config.
func FromAppConfig(sc config.ServerConfig) Config {
	return Config{
		Addr:            sc.Addr(),
		Workers:         sc.Workers,
		MaxMessageSize:  sc.MaxMessageSize,
		ShutdownTimeout: sc.ShutdownTimeout.Duration(),
		RateLimit:       sc.RateLimit,
		RateBurst:       sc.RateBurst,
	}
}

// Server serves the ZInspector service and the standard health service.
type Server struct {
	config Config
	grpc   *grpc.Server
	health *health.Server
	logger *logging.Logger
}

// New builds a server for svc. A nil logger discards output and nil
// metrics record nothing.
func New(cfg Config, svc *service.Service, logger *logging.Logger, m *metrics.Metrics) (*Server, error) {
	if svc == nil {
		return nil, errors.New("service is required")
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.Named("rpc")

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	admit := newAdmission(cfg.Workers)
	opts := []grpc.ServerOption{
		grpc.NumStreamWorkers(uint32(cfg.Workers)),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			unaryRequestID(),
			unaryObserve(logger, m),
			unaryRecovery(logger),
			unaryRateLimit(limiter),
			admit.unary(),
		),
		grpc.ChainStreamInterceptor(
			streamRequestID(),
			streamObserve(logger, m),
			streamRecovery(logger),
			streamRateLimit(limiter),
			admit.stream(),
		),
	}
	if cfg.MaxMessageSize > 0 {
		opts = append(opts,
			grpc.MaxRecvMsgSize(cfg.MaxMessageSize),
			grpc.MaxSendMsgSize(cfg.MaxMessageSize),
		)
	}

	gs := grpc.NewServer(opts...)
	v1.RegisterZInspectorServer(gs, newHandler(svc, m))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(v1.ZInspector_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &Server{config: cfg, grpc: gs, health: hs, logger: logger}, nil
}

// GRPC returns the underlying server.
func (s *Server) GRPC() *grpc.Server { return s.grpc }

// ListenAndServe listens on the configured address and serves until ctx is
// done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done, then stops gracefully. Calls still
// running after the shutdown timeout are cut off.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.logger.Info(ctx, "grpc server listening",
		zap.String("addr", lis.Addr().String()),
		zap.Int("workers", s.config.Workers),
	)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpc.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.shutdown()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

func (s *Server) shutdown() {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()

	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	select {
	case <-done:
	case <-time.After(timeout):
		s.logger.Warn(context.Background(), "graceful stop timed out, forcing",
			zap.Duration("timeout", timeout))
		s.grpc.Stop()
		<-done
	}
}

// Stop stops the server immediately.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.Stop()
}
