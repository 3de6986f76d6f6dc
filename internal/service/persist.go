package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/zinspector/internal/events"
	"github.com/fyrsmithlabs/zinspector/internal/logging"
	"github.com/fyrsmithlabs/zinspector/internal/metrics"
	"github.com/fyrsmithlabs/zinspector/internal/registry"
)

// SaveProject writes the project behind id to path, replacing any previous
// file atomically.
func (s *Service) SaveProject(ctx context.Context, id registry.ID, path string) error {
	ctx, span := s.start(ctx, "SaveProject", id)
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	p, err := s.tree.Project(id)
	if err != nil {
		return s.fail(ctx, span, "SaveProject", err)
	}

	start := time.Now()
	err = s.codec.Save(ctx, p, path)
	metrics.RecordPersist("save", time.Since(start), err)
	if err != nil {
		return s.fail(ctx, span, "SaveProject", err)
	}

	s.logger.Info(ctx, "project saved",
		logging.Path(path),
		zap.Int("meshes", p.Len()),
		zap.Duration("duration", time.Since(start)),
	)
	s.publish(ctx, events.Event{ID: p.ID(), Kind: p.Kind().String(), Name: p.Name(), Action: events.ActionSaved, Path: path})
	return nil
}

// LoadProject reads the project stored at path and appends it to the Root.
// The project and its meshes get fresh ids. On failure nothing is attached.
func (s *Service) LoadProject(ctx context.Context, path string) (registry.ID, error) {
	ctx, span := s.start(ctx, "LoadProject", "")
	defer span.End()
	span.SetAttributes(attribute.String("path", path))

	start := time.Now()
	p, err := s.codec.Load(ctx, path)
	metrics.RecordPersist("load", time.Since(start), err)
	if err != nil {
		return "", s.fail(ctx, span, "LoadProject", err)
	}
	if err := s.tree.AttachProject(p); err != nil {
		return "", s.fail(ctx, span, "LoadProject", err)
	}

	span.SetAttributes(attribute.String("object.id", p.ID().String()))
	s.logger.Info(ctx, "project loaded",
		logging.ObjectID(p.ID().String()),
		logging.Path(path),
		zap.Int("meshes", p.Len()),
		zap.Duration("duration", time.Since(start)),
	)

	s.updateGauges()
	s.publish(ctx, events.Event{ID: p.ID(), Kind: p.Kind().String(), Name: p.Name(), Action: events.ActionLoaded, Path: path})
	return p.ID(), nil
}
