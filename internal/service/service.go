// Package service implements the tree query operations behind the RPC
// surface. It is transport independent: handlers call it with plain values
// and receive coded errors from internal/errors.
package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/zinspector/internal/events"
	"github.com/fyrsmithlabs/zinspector/internal/logging"
	"github.com/fyrsmithlabs/zinspector/internal/mesh"
	"github.com/fyrsmithlabs/zinspector/internal/metrics"
	"github.com/fyrsmithlabs/zinspector/internal/model"
	"github.com/fyrsmithlabs/zinspector/internal/persist"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
	"github.com/fyrsmithlabs/zinspector/internal/stream"
)

const instrumentationName = "github.com/fyrsmithlabs/zinspector/internal/service"

// Config configures the service.
type Config struct {
	// StreamFormat is the wire encoding of GetMeshData (default: glb).
	StreamFormat mesh.Format

	// ChunkSize bounds each GetMeshData chunk (default: 2 MiB).
	ChunkSize int
}

// DefaultConfig returns the defaults.
func DefaultConfig() *Config {
	return &Config{
		StreamFormat: stream.DefaultFormat,
		ChunkSize:    stream.DefaultChunkSize,
	}
}

// Service answers tree queries against one shared Tree. It keeps no state of
// its own beyond its collaborators.
type Service struct {
	config    *Config
	tree      *model.Tree
	codec     *persist.Codec
	publisher events.Publisher
	logger    *logging.Logger
	tracer    trace.Tracer
}

// New creates a service over tree. A nil codec stores STL, a nil publisher
// drops events and a nil logger discards output.
func New(cfg *Config, tree *model.Tree, codec *persist.Codec, publisher events.Publisher, logger *logging.Logger) (*Service, error) {
	if tree == nil {
		return nil, fmt.Errorf("tree is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.StreamFormat == "" {
		cfg.StreamFormat = stream.DefaultFormat
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = stream.DefaultChunkSize
	}
	if !mesh.CanEncode(cfg.StreamFormat) {
		return nil, fmt.Errorf("stream format %q has no encoder", cfg.StreamFormat)
	}
	if cfg.ChunkSize < 0 || cfg.ChunkSize > stream.MaxChunkSize {
		return nil, fmt.Errorf("chunk size %d out of range", cfg.ChunkSize)
	}
	if codec == nil {
		codec = persist.New()
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	s := &Service{
		config:    cfg,
		tree:      tree,
		codec:     codec,
		publisher: publisher,
		logger:    logger.Named("service"),
		tracer:    otel.Tracer(instrumentationName),
	}
	s.updateGauges()
	return s, nil
}

// WithTracer replaces the tracer. It is used by tests and by callers that
// own a dedicated tracer provider.
func (s *Service) WithTracer(t trace.Tracer) *Service {
	s.tracer = t
	return s
}

// Tree returns the shared tree.
func (s *Service) Tree() *model.Tree { return s.tree }

// start opens a span for op and tags the context with the object id.
func (s *Service) start(ctx context.Context, op string, id registry.ID) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, "service."+op)
	if id != "" {
		span.SetAttributes(attribute.String("object.id", id.String()))
		ctx = logging.WithObjectID(ctx, id.String())
	}
	return ctx, span
}

// fail classifies err, records it on span and logs it.
func (s *Service) fail(ctx context.Context, span trace.Span, op string, err error) error {
	err = classify(op, err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.Debug(ctx, op+" failed", zap.Error(err))
	return err
}

func (s *Service) publish(ctx context.Context, e events.Event) {
	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Warn(ctx, "event publish failed",
			zap.String("action", string(e.Action)),
			logging.ObjectID(e.ID.String()),
			zap.Error(err),
		)
	}
}

// updateGauges refreshes the live object gauges from the registry.
func (s *Service) updateGauges() {
	projects := len(s.tree.Root().Projects())
	metrics.SetLiveObjects("project", projects)
	metrics.SetLiveObjects("mesh", s.tree.Len()-projects)
}
