// Package server provides the zinspector admin HTTP server.
//
// The admin server runs beside the gRPC listener and exposes:
//   - GET /health          liveness plus telemetry health
//   - GET /metrics         Prometheus exposition
//   - GET /debug/registry  every live object in the registry
//   - POST /debug/registry/prune  evict index entries of removed objects
//   - GET /debug/tree      the object tree, optionally below ?id=
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/zinspector/internal/logging"
	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/model"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
	"github.com/fyrsmithlabs/zinspector/internal/telemetry"
)

// Config configures the admin server.
type Config struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	ServiceName     string
}

// HealthReporter reports telemetry health. *telemetry.Telemetry implements it.
type HealthReporter interface {
	Health() telemetry.HealthStatus
}

// Server represents the admin HTTP server.
type Server struct {
	config Config
	echo   *echo.Echo
	tree   *model.Tree
	health HealthReporter
	logger *logging.Logger
}

// HealthResponse is the JSON response for /health endpoint.
type HealthResponse struct {
	Status    string                  `json:"status"`
	Service   string                  `json:"service"`
	Objects   int                     `json:"objects"`
	Telemetry *telemetry.HealthStatus `json:"telemetry,omitempty"`
}

// ObjectInfo is one entry of /debug/registry.
type ObjectInfo struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`

	// Mesh only.
	Faces  int           `json:"faces,omitempty"`
	Bounds *[2]mesh.Vec3 `json:"bounds,omitempty"`
}

// PruneResponse is the JSON response for /debug/registry/prune.
type PruneResponse struct {
	Pruned int `json:"pruned"`
	Live   int `json:"live"`
}

// NewServer creates the admin server over tree. health and logger may be nil.
func NewServer(cfg Config, tree *model.Tree, health HealthReporter, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		config: cfg,
		echo:   e,
		tree:   tree,
		health: health,
		logger: logger.Named("admin"),
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ctx := logging.WithRequestID(c.Request().Context(), v.RequestID)
			s.logger.Debug(ctx, "admin request",
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.echo.GET("/debug/registry", s.handleRegistry)
	s.echo.POST("/debug/registry/prune", s.handlePrune)
	s.echo.GET("/debug/tree", s.handleTree)
}

func (s *Server) handleHealth(c echo.Context) error {
	resp := HealthResponse{
		Status:  "ok",
		Service: s.config.ServiceName,
		Objects: s.tree.Len(),
	}
	if s.health != nil {
		h := s.health.Health()
		resp.Telemetry = &h
		if h.Degraded {
			resp.Status = "degraded"
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRegistry(c echo.Context) error {
	active := s.tree.Active()
	out := make([]ObjectInfo, 0, len(active))
	for id, obj := range active {
		info := ObjectInfo{ID: id.String(), Kind: obj.Kind().String(), Name: obj.Name()}
		if m, ok := obj.(*model.Mesh); ok {
			if p := m.Project(); p != nil {
				info.Parent = p.ID().String()
			}
			if g := m.Geometry(); g != nil {
				lo, hi := g.Bounds()
				info.Faces = g.FaceCount()
				info.Bounds = &[2]mesh.Vec3{lo, hi}
			}
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind > out[j].Kind // Project before Mesh
		}
		return out[i].ID < out[j].ID
	})
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handlePrune(c echo.Context) error {
	n := s.tree.Prune()
	if n > 0 {
		s.logger.Info(c.Request().Context(), "pruned registry", zap.Int("evicted", n))
	}
	return c.JSON(http.StatusOK, PruneResponse{Pruned: n, Live: s.tree.Len()})
}

func (s *Server) handleTree(c echo.Context) error {
	nodes, err := s.tree.Build(registry.ID(c.QueryParam("id")))
	if errors.Is(err, registry.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nodes)
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Start serves until ctx is cancelled, then shuts down gracefully within
// the configured timeout. It returns http.ErrServerClosed after a graceful
// shutdown.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(s.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("admin server start: %w", err)
		}
	}()
	s.logger.Info(ctx, "admin server listening", zap.String("addr", s.Addr()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeout := s.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("admin server shutdown: %w", err)
		}
		return http.ErrServerClosed
	}
}

// Echo returns the underlying Echo instance for registering additional routes.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
