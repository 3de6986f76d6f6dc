// Zinspector serves the object tree of loaded 3D projects over gRPC.
//
// The binary starts the gRPC listener plus an optional admin HTTP server
// carrying /health, /metrics and the registry debug endpoints.
//
// Configuration is loaded from an optional YAML file and ZINSPECTOR_*
// environment variables. See internal/config for details.
//
// Usage:
//
//	# Start server with defaults
//	zinspector
//
//	# Start with a config file and a port override
//	ZINSPECTOR_SERVER_PORT=6000 zinspector -config /etc/zinspector.yaml
//
//	# Override the port on the command line
//	zinspector --port 6000
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/log/global"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fyrsmithlabs/zinspector/internal/config"
	"github.com/fyrsmithlabs/zinspector/internal/events"
	"github.com/fyrsmithlabs/zinspector/internal/logging"
	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/metrics"
	"github.com/fyrsmithlabs/zinspector/internal/model"
	"github.com/fyrsmithlabs/zinspector/internal/persist"
	"github.com/fyrsmithlabs/zinspector/internal/rpc"
	"github.com/fyrsmithlabs/zinspector/internal/service"
	"github.com/fyrsmithlabs/zinspector/internal/telemetry"
	"github.com/fyrsmithlabs/zinspector/pkg/server"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

const instrumentationName = "github.com/fyrsmithlabs/zinspector"

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	port := flag.Int("port", -1, "gRPC listen port, overrides the config when set")
	flag.Parse()
	args := flag.Args()

	if len(args) > 0 {
		switch args[0] {
		case "version":
			printVersion()
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
			fmt.Fprintf(os.Stderr, "\nUsage:\n")
			fmt.Fprintf(os.Stderr, "  zinspector [-config file] [-port n]   Start the server\n")
			fmt.Fprintf(os.Stderr, "  zinspector version                    Show version information\n")
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, *port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server shutdown complete")
}

func printVersion() {
	fmt.Printf("zinspector by Fyrsmith Labs\n")
	fmt.Printf("Version:    %s\n", version)
	fmt.Printf("Commit:     %s\n", gitCommit)
	fmt.Printf("Build Date: %s\n", buildDate)
}

// run loads configuration, wires the application and serves until ctx is
// cancelled. A non-negative port overrides the configured one.
func run(ctx context.Context, configPath string, port int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port >= 0 {
		if port > 65535 {
			return fmt.Errorf("invalid port: %d", port)
		}
		cfg.Server.Port = port
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Server.Addr(), err)
	}
	return a.serve(ctx, lis)
}

// app holds the wired components of one server process.
type app struct {
	cfg       *config.Config
	logger    *logging.Logger
	tel       *telemetry.Telemetry
	publisher events.Publisher
	tree      *model.Tree
	grpc      *rpc.Server
	admin     *server.Server
}

// newApp builds every component from cfg. Components are created in
// dependency order:
//  1. Telemetry, so the logger can bridge into OTEL
//  2. Logger
//  3. Event publisher (NATS, or a no-op when disabled)
//  4. Persistence codec and the tree service
//  5. gRPC server and the admin server
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	tel, err := telemetry.New(ctx, telemetry.FromAppConfig(cfg.Observability, version))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	logCfg, err := logging.FromAppConfig(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}
	logger, err := logging.NewLogger(logCfg, global.GetLoggerProvider())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info(ctx, "starting zinspector",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr()),
		zap.Bool("admin", cfg.Admin.Enabled),
		zap.Bool("events", cfg.Events.Enabled),
		zap.Bool("telemetry", cfg.Observability.EnableTelemetry),
	)

	publisher, err := events.New(cfg.Events, logger.Underlying())
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to initialize events: %w", err)
	}

	storageFormat, err := mesh.ParseFormat(cfg.Storage.Format)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("invalid storage format: %w", err)
	}
	streamFormat, err := mesh.ParseFormat(cfg.Stream.Format)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("invalid stream format: %w", err)
	}
	codec := persist.New(
		persist.WithStorageFormat(storageFormat),
		persist.WithWorkers(cfg.Storage.Workers),
	)

	tree := model.NewTree()
	svc, err := service.New(&service.Config{
		StreamFormat: streamFormat,
		ChunkSize:    cfg.Stream.ChunkSize,
	}, tree, codec, publisher, logger)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	svc.WithTracer(tel.Tracer(instrumentationName))

	m := metrics.NewWithMeter(tel.Meter(instrumentationName), logger.Underlying())
	grpcServer, err := rpc.New(rpc.FromAppConfig(cfg.Server), svc, logger, m)
	if err != nil {
		_ = publisher.Close()
		return nil, fmt.Errorf("failed to create grpc server: %w", err)
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		tel:       tel,
		publisher: publisher,
		tree:      tree,
		grpc:      grpcServer,
	}
	if cfg.Admin.Enabled {
		a.admin = server.NewServer(server.Config{
			Host:            cfg.Admin.Host,
			Port:            cfg.Admin.Port,
			ShutdownTimeout: cfg.Server.ShutdownTimeout.Duration(),
			ServiceName:     cfg.Observability.ServiceName,
		}, tree, tel, logger)
	}
	return a, nil
}

// serve runs the gRPC server on lis and the admin server, if enabled, until
// ctx is cancelled or one of them fails.
func (a *app) serve(ctx context.Context, lis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.grpc.Serve(gctx, lis)
	})
	if a.admin != nil {
		g.Go(func() error {
			if err := a.admin.Start(gctx); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// close releases resources in reverse creation order.
func (a *app) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.publisher.Close(); err != nil {
		a.logger.Warn(ctx, "failed to close event publisher", zap.Error(err))
	}
	if err := a.tel.Shutdown(ctx); err != nil {
		a.logger.Warn(ctx, "failed to shutdown telemetry", zap.Error(err))
	}
	_ = a.logger.Sync() // Best-effort sync on shutdown
}
